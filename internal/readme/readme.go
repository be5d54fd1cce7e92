// Package readme renders docs/index.md, a gallery of one preview size per
// generated icon.
package readme

import (
    "fmt"
    "io"
    "io/fs"
    "os"
    "path/filepath"
    "sort"
    "strings"

    "golang.org/x/text/cases"
    "golang.org/x/text/language"

    "github.com/youruser/foldericons/internal/util"
)

const FileName = "index.md"

type Options struct {
    GitHubUser string
    GitHubRepo string
    // PreviewDir is the size directory whose images are listed.
    PreviewDir string
    Ext        string
}

func DefaultOptions() Options {
    return Options{PreviewDir: "64x64", Ext: ".png"}
}

// Generate scans outputRoot and writes docsDir/index.md, returning its path.
// Top-level folders become sections and their children subsections.
func Generate(outputRoot, docsDir string, opt Options) (string, error) {
    if !util.IsDir(outputRoot) {
        return "", fmt.Errorf("%w: %s", util.ErrRootNotFound, outputRoot)
    }
    top, err := subdirs(outputRoot)
    if err != nil {
        return "", err
    }

    var b strings.Builder
    writeHeader(&b)
    title := cases.Title(language.English)
    for _, group := range top {
        groupPath := filepath.Join(outputRoot, group)
        fmt.Fprintf(&b, "\n## %s\n\n", title.String(group))

        children, err := subdirs(groupPath)
        if err != nil {
            return "", err
        }
        direct, err := previews(filepath.Join(groupPath, opt.PreviewDir), opt)
        if err != nil {
            return "", err
        }
        writeLinks(&b, outputRoot, direct, opt)
        for _, child := range children {
            if child == opt.PreviewDir {
                continue
            }
            files, err := previews(filepath.Join(groupPath, child), opt)
            if err != nil {
                return "", err
            }
            // size folders of a flat group hold no previews
            if len(files) == 0 {
                continue
            }
            fmt.Fprintf(&b, "\n### %s\n\n", title.String(child))
            writeLinks(&b, outputRoot, files, opt)
        }
    }
    writeFooter(&b)

    p := filepath.Join(docsDir, FileName)
    err = util.WriteFileAtomic(p, func(w io.Writer) error {
        _, err := io.WriteString(w, b.String())
        return err
    })
    if err != nil {
        return "", err
    }
    return p, nil
}

func subdirs(dir string) ([]string, error) {
    entries, err := os.ReadDir(dir)
    if err != nil {
        return nil, err
    }
    var out []string
    for _, e := range entries {
        if e.IsDir() {
            out = append(out, e.Name())
        }
    }
    sort.Strings(out)
    return out, nil
}

// previews returns every image below dir that sits in a PreviewDir folder.
func previews(dir string, opt Options) ([]string, error) {
    if !util.IsDir(dir) {
        return nil, nil
    }
    var files []string
    err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
        if err != nil {
            return err
        }
        if d.IsDir() || !strings.HasSuffix(d.Name(), opt.Ext) {
            return nil
        }
        if filepath.Base(filepath.Dir(p)) == opt.PreviewDir {
            files = append(files, p)
        }
        return nil
    })
    if err != nil {
        return nil, err
    }
    sort.Strings(files)
    return files, nil
}

// writeLinks links files relative to the folder holding the output tree.
func writeLinks(w io.Writer, outputRoot string, files []string, opt Options) {
    site := filepath.Dir(filepath.Clean(outputRoot))
    for _, f := range files {
        rel, err := filepath.Rel(site, f)
        if err != nil {
            rel = f
        }
        fmt.Fprintf(w, "![%s](%s)\n", filepath.Base(f), imageURL(opt, filepath.ToSlash(rel)))
    }
}

func imageURL(opt Options, rel string) string {
    if opt.GitHubUser == "" || opt.GitHubRepo == "" {
        return rel
    }
    return fmt.Sprintf("https://%s.github.io/%s/%s", opt.GitHubUser, opt.GitHubRepo, rel)
}

func writeHeader(w io.Writer) {
    io.WriteString(w, "# OS Folder Icons 📂\n\n")
    io.WriteString(w, "Collection of custom folder 📂 icons for MacOS, Linux, and Windows.\n\n")
    io.WriteString(w, "## Collection\n\n")
    io.WriteString(w, "The collections are sorted alphabetically 🔤.\n")
}

func writeFooter(w io.Writer) {
    io.WriteString(w, "\n## License\n\n")
    io.WriteString(w, "This project is licensed under the MIT License - see the [LICENSE.md](LICENSE.md) file for details\n")
    io.WriteString(w, "\n### Brand Images\n\n")
    io.WriteString(w, "- All brand icons are trademarks of their respective owners.\n")
    io.WriteString(w, "- The use of these trademarks does not indicate endorsement of the trademark holder by OS Folder Icons, nor vice versa.\n")
    io.WriteString(w, "- Brand icons should only be used to represent the company or product to which they refer.\n")
}
