// Package inventory turns the configured base and mask trees into the
// descriptors the generator pairs up.
package inventory

import (
    "path"
    "path/filepath"

    "github.com/youruser/foldericons/internal/calibration"
    "github.com/youruser/foldericons/internal/util"
)

const (
    // BaseAnchor is the directory whose next two segments name a base's OS
    // group, e.g. os_folders/windows/11/folder.png -> "windows/11".
    BaseAnchor = "os_folders"
    BaseDepth  = 2
    // MaskAnchor is the directory whose next segment names a mask's category.
    MaskAnchor = "masks"
    MaskDepth  = 1
)

// Base is a folder shell image plus its vertical calibration.
type Base struct {
    Path  string
    Name  string
    Group string
    // Padding is padding_top from base_info.inf, 0 when Calibrated is false.
    Padding    int
    Calibrated bool
}

// Mask is a glyph composited onto every base.
type Mask struct {
    Path     string
    Name     string
    Category string
}

func NewBase(p string) Base {
    group, _ := util.Subfolder(p, BaseAnchor, BaseDepth)
    pad, ok := calibration.ForImage(p)
    return Base{
        Path:       p,
        Name:       util.Name(p),
        Group:      group,
        Padding:    pad,
        Calibrated: ok,
    }
}

func NewMask(p string) Mask {
    cat, ok := util.Subfolder(p, MaskAnchor, MaskDepth)
    if !ok {
        cat = filepath.Base(filepath.Dir(p))
    }
    return Mask{Path: p, Name: util.Name(p), Category: cat}
}

// GroupLabel is where a pair's artifacts land below the output root: the
// base's OS group, if it has one, then the mask category.
func GroupLabel(b Base, m Mask) string {
    return path.Join(b.Group, m.Category)
}

// Bases lists every base image under root.
func Bases(root, ext string) ([]Base, error) {
    paths, err := util.ListFiles(root, ext)
    if err != nil {
        return nil, err
    }
    out := make([]Base, 0, len(paths))
    for _, p := range paths {
        out = append(out, NewBase(p))
    }
    return out, nil
}

// Masks lists every mask image under root.
func Masks(root, ext string) ([]Mask, error) {
    paths, err := util.ListFiles(root, ext)
    if err != nil {
        return nil, err
    }
    out := make([]Mask, 0, len(paths))
    for _, p := range paths {
        out = append(out, NewMask(p))
    }
    return out, nil
}
