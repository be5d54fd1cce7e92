package imagepkg

import (
    "encoding/binary"
    "errors"
    "fmt"
    "image"
    "io"
    "path/filepath"
    "sort"
    "strings"
    "unicode"

    "github.com/disintegration/imaging"

    "github.com/youruser/foldericons/internal/util"
)

// BundleFormat is a multi-resolution icon container written next to the
// per-size variants.
type BundleFormat string

const (
    BundleICO  BundleFormat = "ico"
    BundleICNS BundleFormat = "icns"
    // BundleAuto picks ico or icns from the OS named in the group label.
    BundleAuto BundleFormat = "auto"
)

var ErrUnknownBundle = errors.New("unknown bundle format")

func ParseBundleFormat(s string) (BundleFormat, error) {
    switch f := BundleFormat(strings.ToLower(strings.TrimSpace(s))); f {
    case BundleICO, BundleICNS, BundleAuto:
        return f, nil
    }
    return "", fmt.Errorf("%w: %q", ErrUnknownBundle, s)
}

// ResolveBundles expands auto against group and drops duplicates.
func ResolveBundles(configured []BundleFormat, group string) []BundleFormat {
    seen := map[BundleFormat]bool{}
    var out []BundleFormat
    add := func(f BundleFormat) {
        if f != "" && !seen[f] {
            seen[f] = true
            out = append(out, f)
        }
    }
    for _, f := range configured {
        if f == BundleAuto {
            add(bundleForGroup(group))
            continue
        }
        add(f)
    }
    return out
}

func bundleForGroup(group string) BundleFormat {
    tokens := strings.FieldsFunc(strings.ToLower(group), func(r rune) bool {
        return !unicode.IsLetter(r) && !unicode.IsDigit(r)
    })
    for _, t := range tokens {
        switch {
        case strings.HasPrefix(t, "win"):
            return BundleICO
        case strings.HasPrefix(t, "mac"), t == "apple", t == "osx":
            return BundleICNS
        }
    }
    return ""
}

// BundlePath is root/group/base-mask.<format>.
func (t ExportTarget) BundlePath(f BundleFormat) string {
    return filepath.Join(t.Root, filepath.FromSlash(t.Group), t.BaseName+"-"+t.MaskName+"."+string(f))
}

// icnsTypes maps square edge length to the PNG-backed ICNS element type.
var icnsTypes = map[int]string{
    16:   "icp4",
    32:   "icp5",
    64:   "icp6",
    128:  "ic07",
    256:  "ic08",
    512:  "ic09",
    1024: "ic10",
}

type bundleEntry struct {
    size Size
    png  []byte
}

// WriteBundle renders img at every size the container can hold and writes
// the container. It returns "" and no error when none of sizes fit.
func WriteBundle(img image.Image, sizes []Size, t ExportTarget, f BundleFormat) (string, error) {
    var keep func(Size) bool
    var encode func(io.Writer, []bundleEntry) error
    switch f {
    case BundleICO:
        keep = func(s Size) bool { return s.Width <= 256 && s.Height <= 256 }
        encode = writeICO
    case BundleICNS:
        keep = func(s Size) bool { _, ok := icnsTypes[s.Width]; return ok && s.Width == s.Height }
        encode = writeICNS
    default:
        return "", fmt.Errorf("%w: %q", ErrUnknownBundle, f)
    }

    picked := bundleSizes(sizes, keep)
    if len(picked) == 0 {
        return "", nil
    }
    entries := make([]bundleEntry, 0, len(picked))
    for _, s := range picked {
        b, err := encodePNG(imaging.Resize(img, s.Width, s.Height, imaging.Lanczos))
        if err != nil {
            return "", fmt.Errorf("encoding %s entry %s: %w", f, s, err)
        }
        entries = append(entries, bundleEntry{size: s, png: b})
    }

    p := t.BundlePath(f)
    if err := util.WriteFileAtomic(p, func(w io.Writer) error { return encode(w, entries) }); err != nil {
        return "", err
    }
    return p, nil
}

// bundleSizes filters, dedupes and orders sizes smallest first.
func bundleSizes(sizes []Size, keep func(Size) bool) []Size {
    seen := map[Size]bool{}
    var out []Size
    for _, s := range sizes {
        if s.Width <= 0 || s.Height <= 0 || seen[s] || !keep(s) {
            continue
        }
        seen[s] = true
        out = append(out, s)
    }
    sort.Slice(out, func(i, j int) bool {
        if out[i].Width != out[j].Width {
            return out[i].Width < out[j].Width
        }
        return out[i].Height < out[j].Height
    })
    return out
}

// writeICO emits an ICO directory with PNG-compressed images.
// A width or height byte of 0 means 256.
func writeICO(w io.Writer, entries []bundleEntry) error {
    le := binary.LittleEndian
    header := make([]byte, 6+16*len(entries))
    le.PutUint16(header[0:], 0)
    le.PutUint16(header[2:], 1)
    le.PutUint16(header[4:], uint16(len(entries)))

    offset := uint32(len(header))
    for i, e := range entries {
        d := header[6+16*i:]
        d[0] = uint8(e.size.Width % 256)
        d[1] = uint8(e.size.Height % 256)
        le.PutUint16(d[4:], 1)
        le.PutUint16(d[6:], 32)
        le.PutUint32(d[8:], uint32(len(e.png)))
        le.PutUint32(d[12:], offset)
        offset += uint32(len(e.png))
    }
    if _, err := w.Write(header); err != nil {
        return err
    }
    for _, e := range entries {
        if _, err := w.Write(e.png); err != nil {
            return err
        }
    }
    return nil
}

// writeICNS emits an Apple icon file: "icns", total length, then one
// (type, length, png) element per size. Lengths are big-endian and include
// their own 8-byte headers.
func writeICNS(w io.Writer, entries []bundleEntry) error {
    be := binary.BigEndian
    total := 8
    for _, e := range entries {
        total += 8 + len(e.png)
    }
    head := make([]byte, 8)
    copy(head, "icns")
    be.PutUint32(head[4:], uint32(total))
    if _, err := w.Write(head); err != nil {
        return err
    }
    for _, e := range entries {
        copy(head, icnsTypes[e.size.Width])
        be.PutUint32(head[4:], uint32(8+len(e.png)))
        if _, err := w.Write(head); err != nil {
            return err
        }
        if _, err := w.Write(e.png); err != nil {
            return err
        }
    }
    return nil
}
