package util

import (
    "fmt"
    "io"
    "os"
    "path/filepath"
    "strings"
)

func EnsureDir(path string) error {
    return os.MkdirAll(path, 0o755)
}

// ResetDir removes path and everything below it, then recreates it empty.
func ResetDir(path string) error {
    if err := os.RemoveAll(path); err != nil {
        return fmt.Errorf("removing %s: %w", path, err)
    }
    return EnsureDir(path)
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
    fi, err := os.Stat(path)
    return err == nil && fi.IsDir()
}

// WriteFileAtomic creates path's parent directories, streams write into a
// temporary sibling and renames it into place. On any error the temporary
// file is removed and path is left untouched.
func WriteFileAtomic(path string, write func(io.Writer) error) error {
    dir := filepath.Dir(path)
    if err := EnsureDir(dir); err != nil {
        return fmt.Errorf("creating %s: %w", dir, err)
    }
    tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
    if err != nil {
        return fmt.Errorf("creating temp file in %s: %w", dir, err)
    }
    name := tmp.Name()
    fail := func(err error) error {
        tmp.Close()
        os.Remove(name)
        return err
    }
    if err := write(tmp); err != nil {
        return fail(fmt.Errorf("writing %s: %w", path, err))
    }
    if err := tmp.Chmod(0o644); err != nil {
        return fail(fmt.Errorf("chmod %s: %w", path, err))
    }
    if err := tmp.Close(); err != nil {
        os.Remove(name)
        return fmt.Errorf("closing %s: %w", path, err)
    }
    if err := os.Rename(name, path); err != nil {
        os.Remove(name)
        return fmt.Errorf("renaming into %s: %w", path, err)
    }
    return nil
}

func Exists(path string) bool {
    _, err := os.Stat(path)
    return err == nil
}

// Within reports whether path is dir itself or lies somewhere below it.
// Both are made absolute first; symlinks are not resolved.
func Within(path, dir string) bool {
    ap, err := filepath.Abs(path)
    if err != nil {
        return false
    }
    ad, err := filepath.Abs(dir)
    if err != nil {
        return false
    }
    rel, err := filepath.Rel(ad, ap)
    if err != nil {
        return false
    }
    return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
