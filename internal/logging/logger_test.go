package logging

import (
    "bytes"
    "encoding/json"
    "strings"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/youruser/foldericons/internal/config"
)

func TestNewLevels(t *testing.T) {
    var buf bytes.Buffer
    log := New("foldericons", config.LogConfig{Level: "warn"}, &buf)

    log.Info("hidden")
    log.Warn("shown", "pair", "folder-star")

    out := buf.String()
    assert.NotContains(t, out, "hidden")
    assert.Contains(t, out, "shown")
    assert.Contains(t, out, "pair=folder-star")
    assert.Contains(t, out, "foldericons")
}

func TestNewUnknownLevelFallsBackToInfo(t *testing.T) {
    var buf bytes.Buffer
    log := New("x", config.LogConfig{Level: "nonsense"}, &buf)
    log.Debug("quiet")
    log.Info("loud")
    assert.NotContains(t, buf.String(), "quiet")
    assert.Contains(t, buf.String(), "loud")
}

func TestNewJSON(t *testing.T) {
    var buf bytes.Buffer
    log := New("foldericons", config.LogConfig{Level: "info", JSON: true}, &buf)
    log.Info("written", "count", 3)

    line := strings.TrimSpace(buf.String())
    var rec map[string]any
    require.NoError(t, json.Unmarshal([]byte(line), &rec))
    assert.Equal(t, "written", rec["@message"])
    assert.Equal(t, float64(3), rec["count"])
    assert.Equal(t, "foldericons", rec["@module"])
}
