package imagepkg

import (
    "bytes"
    "fmt"
    "image"
    "io"

    "github.com/disintegration/imaging"
    // imaging already brings bmp and tiff; webp masks need this decoder too.
    _ "golang.org/x/image/webp"

    "github.com/youruser/foldericons/internal/util"
)

// Open decodes the image at path and normalizes it to NRGBA.
// Sources without an alpha channel come back fully opaque.
func Open(path string) (*image.NRGBA, error) {
    img, err := imaging.Open(path)
    if err != nil {
        return nil, fmt.Errorf("opening image %s: %w", path, err)
    }
    return imaging.Clone(img), nil
}

// Save encodes img in the format implied by path's extension.
// Parent directories are created; the file appears only once fully written.
func Save(img image.Image, path string) error {
    format, err := imaging.FormatFromFilename(path)
    if err != nil {
        return fmt.Errorf("saving %s: %w", path, err)
    }
    return util.WriteFileAtomic(path, func(w io.Writer) error {
        return imaging.Encode(w, img, format)
    })
}

func encodePNG(img image.Image) ([]byte, error) {
    buf := new(bytes.Buffer)
    if err := imaging.Encode(buf, img, imaging.PNG); err != nil {
        return nil, err
    }
    return buf.Bytes(), nil
}
