package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mrz1836/gfshare"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var (
	randomBits int
	randomRNG  string
)

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Draw random hex from the active source",
	Long: `Random draws bits random bits from a secure (or named) source and
prints the hex encoding, exposing the library's RNG contract directly.

Example:
  gfshare random --bits 128`,
	RunE: runRandom,
}

func runRandom(_ *cobra.Command, _ []string) error {
	eng := gfshare.NewEngine()
	if err := eng.Init(0, rngOrDefault(randomRNG)); err != nil {
		return err
	}

	hex, err := eng.Random(randomBits)
	if err != nil {
		return err
	}

	if logger != nil {
		logger.DebugAttrs("random", slog.Int("bits", randomBits))
	}

	if formatter.IsJSON() {
		return formatter.Print(map[string]string{"random": hex})
	}
	return formatter.Println(hex)
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for flag registration
func init() {
	rootCmd.AddCommand(randomCmd)
	randomCmd.Flags().IntVar(&randomBits, "bits", 128, "number of random bits to draw")
	randomCmd.Flags().StringVar(&randomRNG, "rng", "", "named RNG source (default: auto-detected secure source)")
}
