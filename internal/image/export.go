package imagepkg

import (
    "errors"
    "fmt"
    "image"
    "path/filepath"
    "strconv"
    "strings"

    "github.com/disintegration/imaging"
)

var ErrInvalidSize = errors.New("invalid icon size")

// Size is a target variant in pixels.
type Size struct {
    Width  int `yaml:"width"`
    Height int `yaml:"height"`
}

func (s Size) String() string {
    return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// DefaultSizes are the variants written when nothing else is configured.
var DefaultSizes = []Size{
    {16, 16}, {32, 32}, {48, 48}, {64, 64}, {128, 128}, {256, 256}, {512, 512},
}

// ParseSize reads "WxH", or a bare "N" for a square.
func ParseSize(s string) (Size, error) {
    s = strings.TrimSpace(s)
    w, h, found := strings.Cut(strings.ToLower(s), "x")
    if !found {
        h = w
    }
    wi, err := strconv.Atoi(strings.TrimSpace(w))
    if err != nil {
        return Size{}, fmt.Errorf("%w: %q", ErrInvalidSize, s)
    }
    hi, err := strconv.Atoi(strings.TrimSpace(h))
    if err != nil {
        return Size{}, fmt.Errorf("%w: %q", ErrInvalidSize, s)
    }
    sz := Size{Width: wi, Height: hi}
    return sz, ValidateSizes([]Size{sz})
}

// ParseSizes reads a comma separated list such as "16x16,32x32".
func ParseSizes(s string) ([]Size, error) {
    var out []Size
    for _, part := range strings.Split(s, ",") {
        if strings.TrimSpace(part) == "" {
            continue
        }
        sz, err := ParseSize(part)
        if err != nil {
            return nil, err
        }
        out = append(out, sz)
    }
    if len(out) == 0 {
        return nil, fmt.Errorf("%w: empty size list", ErrInvalidSize)
    }
    return out, nil
}

// ValidateSizes rejects any non-positive dimension.
func ValidateSizes(sizes []Size) error {
    for _, s := range sizes {
        if s.Width <= 0 || s.Height <= 0 {
            return fmt.Errorf("%w: %s", ErrInvalidSize, s)
        }
    }
    return nil
}

// ExportTarget names where the variants of one composited pair go.
type ExportTarget struct {
    Root     string
    Group    string
    BaseName string
    MaskName string
    // Ext includes the leading dot, e.g. ".png".
    Ext string
}

// FileName is "<base>-<mask><ext>".
func (t ExportTarget) FileName() string {
    return t.BaseName + "-" + t.MaskName + t.Ext
}

// VariantPath is root/group/WxH/base-mask.ext.
func (t ExportTarget) VariantPath(s Size) string {
    return filepath.Join(t.Root, filepath.FromSlash(t.Group), s.String(), t.FileName())
}

// ExportVariants resizes img to every size in order and saves each one.
// Sizes are validated before anything is written. A failed write does not
// stop the remaining sizes; all failures come back joined, alongside the
// paths that were written.
func ExportVariants(img image.Image, sizes []Size, t ExportTarget) ([]string, error) {
    if err := ValidateSizes(sizes); err != nil {
        return nil, err
    }
    var (
        written []string
        errs    []error
    )
    for _, s := range sizes {
        p := t.VariantPath(s)
        v := imaging.Resize(img, s.Width, s.Height, imaging.Lanczos)
        if err := Save(v, p); err != nil {
            errs = append(errs, fmt.Errorf("variant %s: %w", s, err))
            continue
        }
        written = append(written, p)
    }
    return written, errors.Join(errs...)
}
