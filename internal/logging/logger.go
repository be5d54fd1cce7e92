package logging

import (
    "io"
    "os"
    "time"

    "github.com/hashicorp/go-hclog"

    "github.com/youruser/foldericons/internal/config"
)

// New creates the process logger from the resolved log settings.
func New(name string, cfg config.LogConfig, output io.Writer) hclog.Logger {
    if output == nil {
        output = os.Stderr
    }
    level := hclog.LevelFromString(cfg.Level)
    if level == hclog.NoLevel {
        level = hclog.Info
    }
    return hclog.New(&hclog.LoggerOptions{
        Name:       name,
        Level:      level,
        JSONFormat: cfg.JSON,
        Output:     output,
        TimeFormat: "2006-01-02T15:04:05Z",
        TimeFn: func() time.Time {
            return time.Now().UTC()
        },
    })
}
