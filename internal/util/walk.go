package util

import (
    "errors"
    "fmt"
    "io/fs"
    "os"
    "path/filepath"
    "sort"
    "strings"
)

var ErrRootNotFound = errors.New("root directory not found")

// ListFiles walks root recursively and returns every regular file (or symlink
// to one) whose name
// ends with ext. The match is a literal, case-sensitive suffix match.
// Results are sorted so repeated runs over an unchanged tree agree.
func ListFiles(root, ext string) ([]string, error) {
    fi, err := os.Stat(root)
    if err != nil {
        if errors.Is(err, fs.ErrNotExist) {
            return nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
        }
        return nil, err
    }
    if !fi.IsDir() {
        return nil, fmt.Errorf("%w: %s is not a directory", ErrRootNotFound, root)
    }

    out := []string{}
    err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
        if err != nil {
            return err
        }
        if !strings.HasSuffix(d.Name(), ext) {
            return nil
        }
        if d.Type()&fs.ModeSymlink != 0 {
            // follow links to regular files; dangling links are ignored
            if fi, err := os.Stat(p); err != nil || !fi.Mode().IsRegular() {
                return nil
            }
        } else if !d.Type().IsRegular() {
            return nil
        }
        out = append(out, p)
        return nil
    })
    if err != nil {
        return nil, fmt.Errorf("walking %s: %w", root, err)
    }
    sort.Strings(out)
    return out, nil
}

// NameAndExt splits the last path segment into stem and extension.
// The extension keeps its leading dot; a name without one yields "".
func NameAndExt(p string) (string, string) {
    base := filepath.Base(p)
    ext := filepath.Ext(base)
    // ".hidden" is a stem, not an extension
    if ext == base {
        return base, ""
    }
    return strings.TrimSuffix(base, ext), ext
}

// Name returns the file name of p without its extension.
func Name(p string) string {
    stem, _ := NameAndExt(p)
    return stem
}

// Subfolder returns the depth directory segments that follow the first
// segment equal to anchor, joined with "/". The last segment of p is the
// file itself and never counts as a folder.
func Subfolder(p, anchor string, depth int) (string, bool) {
    if depth < 1 {
        return "", false
    }
    parts := strings.Split(filepath.ToSlash(filepath.Clean(p)), "/")
    pos := -1
    for i, s := range parts {
        if s == anchor {
            pos = i
            break
        }
    }
    if pos < 0 || pos+depth >= len(parts)-1 {
        return "", false
    }
    return strings.Join(parts[pos+1:pos+depth+1], "/"), true
}
