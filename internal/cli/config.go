package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mrz1836/gfshare/internal/config"
	"github.com/mrz1836/gfshare/internal/output"
	gfserr "github.com/mrz1836/gfshare/pkg/errors"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Init writes the default field width, RNG source, and output format to
the CLI's config file so later commands need not repeat them.

Example:
  gfshare init --bits 10`,
	RunE: runInit,
}

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var initBits int

func runInit(_ *cobra.Command, _ []string) error {
	path := cfgPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return err
		}
	}

	d := config.DefaultDefaults()
	d.Bits = initBits

	if err := config.Save(path, d); err != nil {
		return err
	}

	return formatter.Println("wrote " + path)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or change the CLI's persisted defaults",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active config file path and its settings",
	RunE: func(_ *cobra.Command, _ []string) error {
		path := cfgPath
		if path == "" {
			var err error
			path, err = config.DefaultPath()
			if err != nil {
				path = "(unresolvable)"
			}
		}

		if formatter.IsJSON() {
			return formatter.Print(map[string]any{
				"path":          path,
				"bits":          cfg.Bits,
				"rng_source":    cfg.RNGSource,
				"output_format": cfg.OutputFormat,
				"log_level":     cfg.LogLevel,
				"log_file":      cfg.LogFile,
			})
		}

		table := output.NewTable("Setting", "Value")
		table.SetNoHeader(true)
		table.AddRow("path", path)
		table.AddRow("bits", strconv.Itoa(cfg.Bits))
		table.AddRow("rng_source", cfg.RNGSource)
		table.AddRow("output_format", cfg.OutputFormat)
		table.AddRow("log_level", cfg.LogLevel)
		table.AddRow("log_file", cfg.LogFile)
		return table.Render(formatter.Writer())
	},
}

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var (
	configSetBits         int
	configSetRNGSource    string
	configSetOutputFormat string
	configSetLogLevel     string
)

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update one or more persisted defaults",
	Long: `Set updates the config file in place, leaving fields whose flag was
not passed untouched.

Example:
  gfshare config set --bits 10 --log-level debug`,
	RunE: runConfigSet,
}

func runConfigSet(cmd *cobra.Command, _ []string) error {
	path := cfgPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return err
		}
	}

	d, err := config.Load(path)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("bits") {
		if configSetBits < 3 || configSetBits > 20 {
			return gfserr.ErrBitsOutOfRange
		}
		d.Bits = configSetBits
	}
	if cmd.Flags().Changed("rng-source") {
		d.RNGSource = configSetRNGSource
	}
	if cmd.Flags().Changed("output-format") {
		d.OutputFormat = configSetOutputFormat
	}
	if cmd.Flags().Changed("log-level") {
		d.LogLevel = configSetLogLevel
	}

	if err := config.Save(path, d); err != nil {
		return err
	}

	return formatter.Println("updated " + path)
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for flag registration
func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().IntVar(&initBits, "bits", 8, "field width b, GF(2^b), in [3,20]")

	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configSetCmd)

	configSetCmd.Flags().IntVar(&configSetBits, "bits", 0, "field width b, GF(2^b), in [3,20]")
	configSetCmd.Flags().StringVar(&configSetRNGSource, "rng-source", "", "named default RNG source")
	configSetCmd.Flags().StringVar(&configSetOutputFormat, "output-format", "", "default output format: text, json, auto")
	configSetCmd.Flags().StringVar(&configSetLogLevel, "log-level", "", "default log level: off, error, debug")
}
