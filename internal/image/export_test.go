package imagepkg

import (
    "os"
    "path/filepath"
    "testing"

    "github.com/disintegration/imaging"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func target(root string) ExportTarget {
    return ExportTarget{Root: root, Group: "shapes", BaseName: "windows_base", MaskName: "star", Ext: ".png"}
}

func TestVariantPath(t *testing.T) {
    tg := ExportTarget{Root: "output", Group: "windows/11/shapes", BaseName: "folder", MaskName: "star", Ext: ".png"}
    assert.Equal(t, filepath.Join("output", "windows", "11", "shapes", "32x32", "folder-star.png"), tg.VariantPath(Size{Width: 32, Height: 32}))
    assert.Equal(t, "folder-star.png", tg.FileName())
}

func TestExportVariants(t *testing.T) {
    root := t.TempDir()
    img := solid(256, 256, red)

    paths, err := ExportVariants(img, []Size{{Width: 16, Height: 16}, {Width: 64, Height: 64}}, target(root))
    require.NoError(t, err)
    require.Equal(t, []string{
        filepath.Join(root, "shapes", "16x16", "windows_base-star.png"),
        filepath.Join(root, "shapes", "64x64", "windows_base-star.png"),
    }, paths)

    for i, want := range []int{16, 64} {
        got, err := imaging.Open(paths[i])
        require.NoError(t, err)
        assert.Equal(t, want, got.Bounds().Dx())
        assert.Equal(t, want, got.Bounds().Dy())
    }
}

func TestExportVariantsKeepsOrderAndDuplicates(t *testing.T) {
    root := t.TempDir()
    paths, err := ExportVariants(solid(40, 40, blue), []Size{{Width: 32, Height: 32}, {Width: 16, Height: 16}, {Width: 32, Height: 32}}, target(root))
    require.NoError(t, err)
    require.Len(t, paths, 3)
    assert.Equal(t, paths[0], paths[2])
    assert.Contains(t, paths[1], "16x16")
}

func TestExportVariantsStretches(t *testing.T) {
    root := t.TempDir()
    paths, err := ExportVariants(solid(40, 40, blue), []Size{{Width: 48, Height: 24}}, target(root))
    require.NoError(t, err)
    got, err := imaging.Open(paths[0])
    require.NoError(t, err)
    assert.Equal(t, 48, got.Bounds().Dx())
    assert.Equal(t, 24, got.Bounds().Dy())
}

func TestExportVariantsRejectsBadSizeBeforeWriting(t *testing.T) {
    root := filepath.Join(t.TempDir(), "out")
    paths, err := ExportVariants(solid(8, 8, red), []Size{{Width: 16, Height: 16}, {Width: 0, Height: 16}}, target(root))
    require.ErrorIs(t, err, ErrInvalidSize)
    assert.Empty(t, paths)
    _, statErr := os.Stat(root)
    assert.True(t, os.IsNotExist(statErr))
}

func TestExportVariantsIsolatesWriteFailures(t *testing.T) {
    root := t.TempDir()
    // a file where the 32x32 directory should go
    require.NoError(t, os.MkdirAll(filepath.Join(root, "shapes"), 0o755))
    require.NoError(t, os.WriteFile(filepath.Join(root, "shapes", "32x32"), nil, 0o644))

    paths, err := ExportVariants(solid(64, 64, red), []Size{{Width: 32, Height: 32}, {Width: 16, Height: 16}}, target(root))
    require.Error(t, err)
    assert.Contains(t, err.Error(), "32x32")
    assert.Equal(t, []string{filepath.Join(root, "shapes", "16x16", "windows_base-star.png")}, paths)
}

func TestExportVariantsIdempotent(t *testing.T) {
    img := Composite(solid(128, 128, red), solid(40, 40, blue), DefaultCompositeOptions())
    sizes := []Size{{Width: 16, Height: 16}, {Width: 48, Height: 48}}

    read := func(root string) [][]byte {
        paths, err := ExportVariants(img, sizes, target(root))
        require.NoError(t, err)
        var out [][]byte
        for _, p := range paths {
            b, err := os.ReadFile(p)
            require.NoError(t, err)
            out = append(out, b)
        }
        return out
    }

    root := filepath.Join(t.TempDir(), "out")
    first := read(root)
    require.NoError(t, os.RemoveAll(root))
    second := read(root)
    assert.Equal(t, first, second)
}

func TestParseSizes(t *testing.T) {
    got, err := ParseSizes("16x16, 32X32,48")
    require.NoError(t, err)
    assert.Equal(t, []Size{{Width: 16, Height: 16}, {Width: 32, Height: 32}, {Width: 48, Height: 48}}, got)

    got, err = ParseSizes("64x32")
    require.NoError(t, err)
    assert.Equal(t, []Size{{Width: 64, Height: 32}}, got)

    for _, bad := range []string{"", "0x16", "16x-1", "ax16", " , "} {
        _, err := ParseSizes(bad)
        assert.ErrorIs(t, err, ErrInvalidSize, bad)
    }
}

func TestDefaultSizes(t *testing.T) {
    var got []string
    for _, s := range DefaultSizes {
        got = append(got, s.String())
    }
    assert.Equal(t, []string{"16x16", "32x32", "48x48", "64x64", "128x128", "256x256", "512x512"}, got)
}
