// Package calibration reads the optional per-base descriptor that shifts the
// mask vertically, and holds the centering math that uses it.
package calibration

import (
    "os"
    "path/filepath"

    "gopkg.in/ini.v1"
)

const (
    DescriptorName = "base_info.inf"
    DescriptorExt  = ".inf"
    Section        = "image_calibration"
    PaddingKey     = "padding_top"
)

// DescriptorPath returns the descriptor that sits next to imagePath, if any.
func DescriptorPath(imagePath string) (string, bool) {
    p := filepath.Join(filepath.Dir(imagePath), DescriptorName)
    fi, err := os.Stat(p)
    if err != nil || fi.IsDir() {
        return "", false
    }
    return p, true
}

// ReadVerticalPadding parses padding_top from a descriptor.
// A path without the .inf extension is absent and is never opened.
// An unreadable file, a missing section or key, or a non-integer value all
// read as 0.
func ReadVerticalPadding(descPath string) (int, bool) {
    if filepath.Ext(descPath) != DescriptorExt {
        return 0, false
    }
    f, err := ini.LoadSources(ini.LoadOptions{InsensitiveKeys: true}, descPath)
    if err != nil {
        return 0, true
    }
    if !f.HasSection(Section) {
        return 0, true
    }
    return f.Section(Section).Key(PaddingKey).MustInt(0), true
}

// ForImage looks up and reads the descriptor for a base image in one step.
func ForImage(imagePath string) (int, bool) {
    p, ok := DescriptorPath(imagePath)
    if !ok {
        return 0, false
    }
    return ReadVerticalPadding(p)
}

// CenterY is the vertical anchor for a mask on an image of height h.
// Both steps truncate: h/2 first, then the scaled offset.
func CenterY(h, percent int) int {
    half := h / 2
    return half + half*percent/100
}
