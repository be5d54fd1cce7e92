package config

import (
    "errors"
    "fmt"
    "os"
    "strconv"
    "strings"

    "github.com/hashicorp/go-hclog"
    "github.com/joho/godotenv"
    "gopkg.in/yaml.v3"

    imagepkg "github.com/youruser/foldericons/internal/image"
    "github.com/youruser/foldericons/internal/util"
)

var ErrInvalidConfig = errors.New("invalid config")

// Environment variable names.
const (
    EnvConfigFile = "FOLDERICONS_CONFIG"
    EnvBaseDir    = "BASE_FOLDER_PATH"
    EnvMaskDir    = "MASK_FOLDER_PATH"
    EnvOutputDir  = "OUTPUT_FOLDER"
    EnvExtension  = "IMAGE_FILE_EXTENSION"
    EnvProportion = "MASK_PROPORTION"
    EnvAlpha      = "MASK_ALPHA"
    EnvSizes      = "ICON_SIZES"
    EnvBundles    = "BUNDLE_FORMATS"
    EnvLogLevel   = "LOG_LEVEL"
    EnvLogJSON    = "LOG_JSON"
    EnvDocsDir    = "DOCS_FOLDER"
    EnvGitHubUser = "GITHUB_USERNAME"
    EnvGitHubRepo = "GITHUB_REPOSITORY_NAME"
)

// Config is resolved once at startup and handed down; nothing below cmd
// reads the environment.
type Config struct {
    BaseDir    string                  `yaml:"base_folder"`
    MaskDir    string                  `yaml:"mask_folder"`
    OutputDir  string                  `yaml:"output_folder"`
    Extension  string                  `yaml:"image_extension"`
    Proportion float64                 `yaml:"proportion"`
    Alpha      float64                 `yaml:"alpha"`
    Sizes      []imagepkg.Size         `yaml:"sizes"`
    Bundles    []imagepkg.BundleFormat `yaml:"bundles"`
    Log        LogConfig               `yaml:"log"`
    Docs       DocsConfig              `yaml:"docs"`
}

type LogConfig struct {
    Level string `yaml:"level"`
    JSON  bool   `yaml:"json"`
}

type DocsConfig struct {
    Dir        string `yaml:"dir"`
    GitHubUser string `yaml:"github_username"`
    GitHubRepo string `yaml:"github_repository"`
}

// Default returns the settings used when nothing overrides them.
func Default() *Config {
    opt := imagepkg.DefaultCompositeOptions()
    return &Config{
        OutputDir:  "./output",
        Extension:  ".png",
        Proportion: opt.Proportion,
        Alpha:      opt.Alpha,
        Sizes:      append([]imagepkg.Size(nil), imagepkg.DefaultSizes...),
        Log:        LogConfig{Level: "info"},
        Docs: DocsConfig{
            Dir:        "./docs",
            GitHubUser: "shariati",
            GitHubRepo: "OS-Folder-Icons",
        },
    }
}

// Load reads envFile into the process environment when it exists, then
// builds the config from the environment and validates it.
func Load(envFile string) (*Config, error) {
    if err := LoadDotEnv(envFile); err != nil {
        return nil, err
    }
    cfg, err := FromEnv(os.LookupEnv)
    if err != nil {
        return nil, err
    }
    if err := cfg.Validate(); err != nil {
        return nil, err
    }
    return cfg, nil
}

// LoadDotEnv copies envFile into the process environment without
// overriding variables that are already set. A missing file is not an error.
func LoadDotEnv(envFile string) error {
    if envFile == "" || !util.Exists(envFile) {
        return nil
    }
    if err := godotenv.Load(envFile); err != nil {
        return fmt.Errorf("failed to load %s: %w", envFile, err)
    }
    return nil
}

// FromEnv starts from Default, applies the YAML file named by
// FOLDERICONS_CONFIG if set, then individual variables. It does not validate.
func FromEnv(lookup func(string) (string, bool)) (*Config, error) {
    cfg := Default()

    if p, ok := lookup(EnvConfigFile); ok && p != "" {
        if err := cfg.mergeFile(p); err != nil {
            return nil, err
        }
    }

    str := func(key string, dst *string) {
        if v, ok := lookup(key); ok && v != "" {
            *dst = v
        }
    }
    str(EnvBaseDir, &cfg.BaseDir)
    str(EnvMaskDir, &cfg.MaskDir)
    str(EnvOutputDir, &cfg.OutputDir)
    str(EnvExtension, &cfg.Extension)
    str(EnvLogLevel, &cfg.Log.Level)
    str(EnvDocsDir, &cfg.Docs.Dir)
    str(EnvGitHubUser, &cfg.Docs.GitHubUser)
    str(EnvGitHubRepo, &cfg.Docs.GitHubRepo)

    var errs []error
    num := func(key string, dst *float64) {
        if v, ok := lookup(key); ok && v != "" {
            f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
            if err != nil {
                errs = append(errs, fmt.Errorf("%s: %w", key, err))
                return
            }
            *dst = f
        }
    }
    num(EnvProportion, &cfg.Proportion)
    num(EnvAlpha, &cfg.Alpha)

    if v, ok := lookup(EnvLogJSON); ok && v != "" {
        b, err := strconv.ParseBool(v)
        if err != nil {
            errs = append(errs, fmt.Errorf("%s: %w", EnvLogJSON, err))
        }
        cfg.Log.JSON = b
    }
    if v, ok := lookup(EnvSizes); ok && v != "" {
        sizes, err := imagepkg.ParseSizes(v)
        if err != nil {
            errs = append(errs, fmt.Errorf("%s: %w", EnvSizes, err))
        }
        cfg.Sizes = sizes
    }
    if v, ok := lookup(EnvBundles); ok {
        cfg.Bundles = nil
        for _, f := range strings.Split(v, ",") {
            if strings.TrimSpace(f) == "" {
                continue
            }
            cfg.Bundles = append(cfg.Bundles, imagepkg.BundleFormat(strings.TrimSpace(f)))
        }
    }

    if err := errors.Join(errs...); err != nil {
        return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
    }
    return cfg, nil
}

func (c *Config) mergeFile(path string) error {
    data, err := os.ReadFile(path)
    if err != nil {
        return fmt.Errorf("failed to read config file: %w", err)
    }
    if err := yaml.Unmarshal(data, c); err != nil {
        return fmt.Errorf("failed to parse config: %w", err)
    }
    return nil
}

// Validate checks everything a run needs before any output is touched.
func (c *Config) Validate() error {
    fail := func(format string, args ...any) error {
        return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
    }
    if c.BaseDir == "" {
        return fail("%s is required", EnvBaseDir)
    }
    if c.MaskDir == "" {
        return fail("%s is required", EnvMaskDir)
    }
    if !util.IsDir(c.BaseDir) {
        return fail("base folder %s does not exist", c.BaseDir)
    }
    if !util.IsDir(c.MaskDir) {
        return fail("mask folder %s does not exist", c.MaskDir)
    }
    if c.OutputDir == "" {
        return fail("%s is required", EnvOutputDir)
    }
    // the output root is wiped at the start of a run
    for _, in := range []string{c.BaseDir, c.MaskDir} {
        if util.Within(in, c.OutputDir) {
            return fail("output folder %s would overwrite input folder %s", c.OutputDir, in)
        }
    }
    if !strings.HasPrefix(c.Extension, ".") || len(c.Extension) < 2 {
        return fail("image extension %q must start with a dot", c.Extension)
    }
    if c.Proportion <= 0 || c.Proportion > 1 {
        return fail("proportion %v must be in (0, 1]", c.Proportion)
    }
    if c.Alpha < 0 || c.Alpha > 1 {
        return fail("alpha %v must be in [0, 1]", c.Alpha)
    }
    if len(c.Sizes) == 0 {
        return fail("at least one icon size is required")
    }
    if err := imagepkg.ValidateSizes(c.Sizes); err != nil {
        return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
    }
    for i, f := range c.Bundles {
        parsed, err := imagepkg.ParseBundleFormat(string(f))
        if err != nil {
            return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
        }
        c.Bundles[i] = parsed
    }
    if hclog.LevelFromString(c.Log.Level) == hclog.NoLevel {
        return fail("unknown log level %q", c.Log.Level)
    }
    return nil
}

// CompositeOptions is the compositor setup for a base with the given padding.
func (c *Config) CompositeOptions(padding int) imagepkg.CompositeOptions {
    return imagepkg.CompositeOptions{
        Proportion:     c.Proportion,
        Alpha:          c.Alpha,
        PaddingPercent: padding,
    }
}
