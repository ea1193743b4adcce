// Package cli implements the gfshare command-line interface: a thin
// cobra wrapper that exercises the library's split/combine/newShare/
// random operations end to end and wires the domain stack (mnemonic
// bridging, post-combine wallet verification, encrypted backups).
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level state
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrz1836/gfshare/internal/config"
	"github.com/mrz1836/gfshare/internal/output"
	gfserr "github.com/mrz1836/gfshare/pkg/errors"
)

// BuildInfo carries version metadata injected via ldflags.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

var (
	outputFormat string
	verbose      bool
	cfgPath      string

	cfg       config.Defaults
	logger    *config.Logger
	formatter *output.Formatter
)

var rootCmd = &cobra.Command{
	Use:   "gfshare",
	Short: "Shamir's Secret Sharing over GF(2^b)",
	Long: `gfshare splits a secret into n shares such that any k reconstruct it,
while any k-1 reveal no information, using Shamir's Secret Sharing over a
binary Galois field.

Example:
  gfshare split --secret deadbeef --shares 5 --threshold 3
  gfshare combine --share 801ab.. --share 802cd.. --share 803ef..`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return initGlobals()
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		cleanup()
	},
}

// Execute runs the root command with the given build metadata.
func Execute(info BuildInfo) error {
	buildVersion, buildCommit, buildDate = info.Version, info.Commit, info.Date

	if err := rootCmd.Execute(); err != nil {
		formatErr(err)
		return err
	}
	return nil
}

// ExitCode returns the appropriate process exit code for err.
func ExitCode(err error) int {
	return gfserr.ExitCode(err)
}

func formatErr(err error) {
	format := output.FormatText
	if formatter != nil {
		format = formatter.Format()
	}
	if fmtErr := output.FormatError(os.Stderr, err, format); fmtErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v (formatting failed: %v)\n", err, fmtErr)
	}
}

func initGlobals() error {
	path := cfgPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			path = ""
		}
	}

	var err error
	cfg, err = config.Load(path)
	if err != nil {
		cfg = config.DefaultDefaults()
	}

	logLevel := config.ParseLogLevel(cfg.LogLevel)
	if verbose {
		logLevel = config.LogLevelDebug
	}
	logger, err = config.NewLogger(logLevel, cfg.LogFile)
	if err != nil {
		logger = config.NullLogger()
	}

	explicit := output.ParseFormat(outputFormat)
	if explicit == output.FormatAuto && cfg.OutputFormat != "" {
		explicit = output.ParseFormat(cfg.OutputFormat)
	}
	detected := output.DetectFormat(os.Stdout, explicit)
	formatter = output.NewFormatter(detected, os.Stdout)

	return nil
}

// rngOrDefault resolves the effective RNG source for a command: an
// explicit --rng flag wins, then the config file's default, then nil so
// the engine auto-detects a secure source.
func rngOrDefault(flag string) any {
	if flag != "" {
		return flag
	}
	if cfg.RNGSource != "" {
		return cfg.RNGSource
	}
	return nil
}

func cleanup() {
	if logger != nil {
		_ = logger.Close()
	}
}

//nolint:gochecknoglobals // version info set at build time via ldflags
var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, _ []string) {
		if formatter != nil && formatter.Format() == output.FormatJSON {
			_ = formatter.Print(map[string]string{
				"version": buildVersion, "commit": buildCommit, "date": buildDate,
			})
			return
		}
		cmd.Printf("gfshare version %s\n", buildVersion)
		cmd.Printf("  commit: %s\n", buildCommit)
		cmd.Printf("  built:  %s\n", buildDate)
	},
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for flag registration
func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "auto", "output format: text, json, auto")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default: $XDG_CONFIG_HOME/gfshare/config.yaml)")
}
