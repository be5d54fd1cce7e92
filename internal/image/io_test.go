package imagepkg

import (
    "os"
    "path/filepath"
    "testing"

    "github.com/disintegration/imaging"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestSaveAndOpen(t *testing.T) {
    p := filepath.Join(t.TempDir(), "a", "b", "img.png")
    require.NoError(t, Save(solid(12, 8, blue), p))

    img, err := Open(p)
    require.NoError(t, err)
    assert.Equal(t, 12, img.Bounds().Dx())
    assert.Equal(t, 8, img.Bounds().Dy())
    assert.Equal(t, blue, img.NRGBAAt(3, 3))
}

func TestOpenAddsOpaqueAlpha(t *testing.T) {
    p := filepath.Join(t.TempDir(), "opaque.jpg")
    require.NoError(t, imaging.Save(solid(8, 8, white), p))

    img, err := Open(p)
    require.NoError(t, err)
    for i := 3; i < len(img.Pix); i += 4 {
        require.Equal(t, uint8(255), img.Pix[i])
    }
}

func TestOpenCorrupt(t *testing.T) {
    p := filepath.Join(t.TempDir(), "broken.png")
    require.NoError(t, os.WriteFile(p, []byte("not an image"), 0o644))

    _, err := Open(p)
    require.Error(t, err)
    assert.Contains(t, err.Error(), p)

    _, err = Open(filepath.Join(t.TempDir(), "missing.png"))
    require.Error(t, err)
}

func TestSaveUnsupportedExtension(t *testing.T) {
    dir := t.TempDir()
    p := filepath.Join(dir, "img.xyz")
    require.Error(t, Save(solid(2, 2, red), p))

    entries, err := os.ReadDir(dir)
    require.NoError(t, err)
    assert.Empty(t, entries)
}
