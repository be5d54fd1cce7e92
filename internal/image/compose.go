package imagepkg

import (
    "image"
    "image/color"
    "math"

    "github.com/disintegration/imaging"

    "github.com/youruser/foldericons/internal/calibration"
)

// CompositeOptions tunes how a mask is laid onto a base.
type CompositeOptions struct {
    // Proportion is the largest share of the base width/height a mask may
    // cover before it is shrunk.
    Proportion float64
    // Alpha multiplies the mask's alpha channel. 1 leaves it untouched.
    Alpha float64
    // PaddingPercent moves the anchor point down (or up, when negative),
    // relative to half the base height.
    PaddingPercent int
}

func DefaultCompositeOptions() CompositeOptions {
    return CompositeOptions{Proportion: 0.6, Alpha: 1.0}
}

// Composite lays mask at the calibrated center of base and blends it over.
// Neither input is modified; the result has base's dimensions.
func Composite(base, mask image.Image, opt CompositeOptions) *image.NRGBA {
    out := imaging.Clone(base)
    size := out.Bounds().Size()

    m := FitMask(imaging.Clone(mask), size, opt.Proportion)
    m = ApplyOpacity(m, opt.Alpha)
    pos := Placement(size, m.Bounds().Size(), opt.PaddingPercent)

    // Paste clips whatever falls outside the base.
    layer := imaging.New(size.X, size.Y, color.NRGBA{})
    layer = imaging.Paste(layer, m, pos)

    over(out, layer)
    return out
}

// FitMask shrinks mask to proportion of base when it is larger than that in
// either dimension. Both axes are scaled to the same box derived from the
// base, so a mask whose aspect ratio differs from the base gets stretched.
func FitMask(mask *image.NRGBA, base image.Point, proportion float64) *image.NRGBA {
    limitW := float64(base.X) * proportion
    limitH := float64(base.Y) * proportion
    size := mask.Bounds().Size()
    if float64(size.X) <= limitW && float64(size.Y) <= limitH {
        return mask
    }
    w, h := int(limitW), int(limitH)
    if w < 1 {
        w = 1
    }
    if h < 1 {
        h = 1
    }
    return imaging.Resize(mask, w, h, imaging.Lanczos)
}

// ApplyOpacity returns a copy of img with every alpha value multiplied by
// alpha and truncated. RGB is left alone.
func ApplyOpacity(img *image.NRGBA, alpha float64) *image.NRGBA {
    if alpha == 1 {
        return img
    }
    alpha = math.Max(0, math.Min(1, alpha))
    out := imaging.Clone(img)
    for i := 3; i < len(out.Pix); i += 4 {
        out.Pix[i] = uint8(float64(out.Pix[i]) * alpha)
    }
    return out
}

// CenterOf is the anchor point of an image of the given size.
func CenterOf(size image.Point, paddingPercent int) image.Point {
    return image.Pt(size.X/2, calibration.CenterY(size.Y, paddingPercent))
}

// Placement is the top-left corner at which a mask lands on a base.
// It may be negative when the mask overhangs the base.
func Placement(base, mask image.Point, paddingPercent int) image.Point {
    return CenterOf(base, paddingPercent).Sub(CenterOf(mask, 0))
}

// over blends top onto dst in place with straight-alpha "over".
// Both images must be the same size with tight strides.
func over(dst, top *image.NRGBA) {
    d, s := dst.Pix, top.Pix
    for i := 0; i+3 < len(d) && i+3 < len(s); i += 4 {
        sa := uint32(s[i+3])
        if sa == 0 {
            continue
        }
        if sa == 255 {
            copy(d[i:i+4], s[i:i+4])
            continue
        }
        da := uint32(d[i+3])
        // everything below is scaled by 255
        ws := sa * 255
        wd := da * (255 - sa)
        den := ws + wd
        for c := 0; c < 3; c++ {
            num := uint32(s[i+c])*ws + uint32(d[i+c])*wd
            d[i+c] = uint8((num + den/2) / den)
        }
        d[i+3] = uint8((den + 127) / 255)
    }
}
