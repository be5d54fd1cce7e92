package main

import (
    "fmt"
    "os"

    "github.com/spf13/cobra"

    "github.com/youruser/foldericons/internal/config"
    "github.com/youruser/foldericons/internal/generator"
    "github.com/youruser/foldericons/internal/logging"
    "github.com/youruser/foldericons/internal/readme"
)

const version = "0.1.0"

var envFile string

func main() {
    if err := newRootCmd().Execute(); err != nil {
        fmt.Fprintln(os.Stderr, err)
        os.Exit(1)
    }
}

func newRootCmd() *cobra.Command {
    root := &cobra.Command{
        Use:           "foldericons",
        Short:         "Composite mask glyphs onto OS folder icons",
        Long:          "Composite every mask onto every base folder image and export the results at each icon size. Settings come from the environment (and an optional .env file).",
        SilenceUsage:  true,
        SilenceErrors: true,
        RunE:          runGenerate,
    }
    root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

    root.AddCommand(&cobra.Command{
        Use:   "generate",
        Short: "Rebuild the output folder",
        RunE:  runGenerate,
    })
    root.AddCommand(&cobra.Command{
        Use:   "readme",
        Short: "Write docs/index.md from the output folder",
        RunE:  runReadme,
    })
    root.AddCommand(&cobra.Command{
        Use:   "version",
        Short: "Print the version",
        Run: func(cmd *cobra.Command, args []string) {
            fmt.Fprintf(cmd.OutOrStdout(), "foldericons %s\n", version)
        },
    })
    return root
}

func runGenerate(cmd *cobra.Command, args []string) error {
    cfg, err := config.Load(envFile)
    if err != nil {
        return err
    }
    log := logging.New("foldericons", cfg.Log, cmd.ErrOrStderr())

    sum, err := generator.New(cfg, log).Run()
    if err != nil {
        return err
    }
    fmt.Fprintf(cmd.OutOrStdout(), "%d artifacts written, %d pairs skipped, %d writes failed\n",
        sum.Written, sum.Skipped, sum.Failed)
    return nil
}

func runReadme(cmd *cobra.Command, args []string) error {
    if err := config.LoadDotEnv(envFile); err != nil {
        return err
    }
    cfg, err := config.FromEnv(os.LookupEnv)
    if err != nil {
        return err
    }
    log := logging.New("foldericons", cfg.Log, cmd.ErrOrStderr())

    opt := readme.DefaultOptions()
    opt.Ext = cfg.Extension
    opt.GitHubUser = cfg.Docs.GitHubUser
    opt.GitHubRepo = cfg.Docs.GitHubRepo
    p, err := readme.Generate(cfg.OutputDir, cfg.Docs.Dir, opt)
    if err != nil {
        return err
    }
    log.Info("readme written", "path", p)
    return nil
}
