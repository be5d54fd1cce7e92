package main

import (
    "bytes"
    "image/color"
    "os"
    "path/filepath"
    "testing"

    "github.com/disintegration/imaging"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/youruser/foldericons/internal/config"
    imagepkg "github.com/youruser/foldericons/internal/image"
)

func execute(t *testing.T, args ...string) (string, error) {
    t.Helper()
    cmd := newRootCmd()
    var out, errOut bytes.Buffer
    cmd.SetOut(&out)
    cmd.SetErr(&errOut)
    cmd.SetArgs(args)
    err := cmd.Execute()
    return out.String(), err
}

func TestVersion(t *testing.T) {
    out, err := execute(t, "version")
    require.NoError(t, err)
    assert.Equal(t, "foldericons "+version+"\n", out)
}

func TestGenerateAndReadme(t *testing.T) {
    root := t.TempDir()
    base := filepath.Join(root, "bases")
    mask := filepath.Join(root, "masks")
    out := filepath.Join(root, "output")
    docs := filepath.Join(root, "docs")
    require.NoError(t, imagepkg.Save(imaging.New(64, 64, color.NRGBA{G: 200, A: 255}), filepath.Join(base, "folder.png")))
    require.NoError(t, imagepkg.Save(imaging.New(16, 16, color.NRGBA{R: 200, A: 255}), filepath.Join(mask, "shapes", "star.png")))

    t.Setenv(config.EnvConfigFile, "")
    t.Setenv(config.EnvBaseDir, base)
    t.Setenv(config.EnvMaskDir, mask)
    t.Setenv(config.EnvOutputDir, out)
    t.Setenv(config.EnvSizes, "16x16,64x64")
    t.Setenv(config.EnvDocsDir, docs)
    t.Setenv(config.EnvLogLevel, "error")

    stdout, err := execute(t, "--env-file", "", "generate")
    require.NoError(t, err)
    assert.Contains(t, stdout, "2 artifacts written, 0 pairs skipped")
    assert.FileExists(t, filepath.Join(out, "shapes", "64x64", "folder-star.png"))

    _, err = execute(t, "--env-file", "", "readme")
    require.NoError(t, err)
    b, err := os.ReadFile(filepath.Join(docs, "index.md"))
    require.NoError(t, err)
    assert.Contains(t, string(b), "folder-star.png")
}

func TestGenerateConfigError(t *testing.T) {
    t.Setenv(config.EnvConfigFile, "")
    t.Setenv(config.EnvBaseDir, filepath.Join(t.TempDir(), "missing"))
    t.Setenv(config.EnvMaskDir, t.TempDir())

    _, err := execute(t, "--env-file", "")
    assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
