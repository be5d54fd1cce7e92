// Package generator drives a full run: every base is paired with every mask,
// composited, and exported at each configured size.
package generator

import (
    "image"

    "github.com/hashicorp/go-hclog"

    "github.com/youruser/foldericons/internal/config"
    imagepkg "github.com/youruser/foldericons/internal/image"
    "github.com/youruser/foldericons/internal/inventory"
    "github.com/youruser/foldericons/internal/util"
)

// Summary counts what a run did. Pairs = composited pairs + Skipped.
type Summary struct {
    Bases   int
    Masks   int
    Pairs   int
    Skipped int
    Written int
    Failed  int
    Files   []string
}

type Generator struct {
    cfg *config.Config
    log hclog.Logger
}

func New(cfg *config.Config, log hclog.Logger) *Generator {
    if log == nil {
        log = hclog.NewNullLogger()
    }
    return &Generator{cfg: cfg, log: log.Named("generator")}
}

// Run rebuilds the whole output tree. Only configuration problems are
// returned as errors; unreadable images skip their pairs and failed writes
// are counted, and both are logged.
func (g *Generator) Run() (Summary, error) {
    var sum Summary
    if err := g.cfg.Validate(); err != nil {
        return sum, err
    }

    bases, err := inventory.Bases(g.cfg.BaseDir, g.cfg.Extension)
    if err != nil {
        return sum, err
    }
    masks, err := inventory.Masks(g.cfg.MaskDir, g.cfg.Extension)
    if err != nil {
        return sum, err
    }
    sum.Bases, sum.Masks = len(bases), len(masks)
    g.log.Info("inventory", "bases", len(bases), "masks", len(masks), "sizes", len(g.cfg.Sizes))

    if err := util.ResetDir(g.cfg.OutputDir); err != nil {
        return sum, err
    }

    for _, b := range bases {
        if len(masks) == 0 {
            break
        }
        baseImg, err := imagepkg.Open(b.Path)
        if err != nil {
            g.log.Error("skipping base", "base", b.Path, "pairs", len(masks), "error", err)
            sum.Pairs += len(masks)
            sum.Skipped += len(masks)
            continue
        }
        if b.Calibrated {
            g.log.Debug("calibrated base", "base", b.Path, "padding_top", b.Padding)
        }
        for _, m := range masks {
            sum.Pairs++
            g.pair(b, baseImg, m, &sum)
        }
    }

    g.log.Info("run finished",
        "pairs", sum.Pairs,
        "skipped", sum.Skipped,
        "written", sum.Written,
        "failed", sum.Failed)
    return sum, nil
}

func (g *Generator) pair(b inventory.Base, baseImg *image.NRGBA, m inventory.Mask, sum *Summary) {
    log := g.log.With("base", b.Name, "mask", m.Name)

    maskImg, err := imagepkg.Open(m.Path)
    if err != nil {
        log.Error("skipping pair", "path", m.Path, "error", err)
        sum.Skipped++
        return
    }

    out := imagepkg.Composite(baseImg, maskImg, g.cfg.CompositeOptions(b.Padding))
    target := imagepkg.ExportTarget{
        Root:     g.cfg.OutputDir,
        Group:    inventory.GroupLabel(b, m),
        BaseName: b.Name,
        MaskName: m.Name,
        Ext:      g.cfg.Extension,
    }

    paths, err := imagepkg.ExportVariants(out, g.cfg.Sizes, target)
    sum.Written += len(paths)
    sum.Files = append(sum.Files, paths...)
    if err != nil {
        sum.Failed += len(g.cfg.Sizes) - len(paths)
        log.Error("variants failed", "group", target.Group, "error", err)
    }

    for _, f := range imagepkg.ResolveBundles(g.cfg.Bundles, b.Group) {
        p, err := imagepkg.WriteBundle(out, g.cfg.Sizes, target, f)
        if err != nil {
            sum.Failed++
            log.Error("bundle failed", "format", f, "error", err)
            continue
        }
        if p == "" {
            log.Debug("no sizes fit bundle", "format", f)
            continue
        }
        sum.Written++
        sum.Files = append(sum.Files, p)
    }
    log.Trace("pair done", "group", target.Group, "files", len(paths))
}
