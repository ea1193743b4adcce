package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mrz1836/gfshare"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var (
	splitSecret    string
	splitShares    int
	splitThreshold int
	splitBits      int
	splitRNG       string
	splitPadTo     int
)

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Split a hex secret into shares",
	Long: `Split divides a hex-encoded secret into n public share strings, any
k of which reconstruct it.

Example:
  gfshare split --secret deadbeef --shares 5 --threshold 3`,
	RunE: runSplit,
}

func runSplit(cmd *cobra.Command, _ []string) error {
	eng := gfshare.NewEngine()

	bits := splitBits
	if !cmd.Flags().Changed("bits") && cfg.Bits != 0 {
		bits = cfg.Bits
	}
	if err := eng.Init(bits, rngOrDefault(splitRNG)); err != nil {
		return err
	}

	shares, err := eng.Share(splitSecret, splitShares, splitThreshold, splitPadTo)
	if err != nil {
		return err
	}

	if logger != nil {
		logger.DebugAttrs("split", slog.Int("bits", bits), slog.Int("shares", splitShares), slog.Int("threshold", splitThreshold))
	}

	if formatter.IsJSON() {
		return formatter.Print(map[string]any{"shares": shares})
	}
	for _, s := range shares {
		cmd.Println(s)
	}
	return nil
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for flag registration
func init() {
	rootCmd.AddCommand(splitCmd)
	splitCmd.Flags().StringVar(&splitSecret, "secret", "", "hex-encoded secret to split (required)")
	splitCmd.Flags().IntVar(&splitShares, "shares", 5, "total number of shares (n)")
	splitCmd.Flags().IntVar(&splitThreshold, "threshold", 3, "shares required to reconstruct (k)")
	splitCmd.Flags().IntVar(&splitBits, "bits", 8, "field width b, GF(2^b), in [3,20]")
	splitCmd.Flags().StringVar(&splitRNG, "rng", "", "named RNG source (default: auto-detected secure source)")
	splitCmd.Flags().IntVar(&splitPadTo, "pad-to", 0, "left-pad the marked secret to this many bits (0: no extra padding)")
	_ = splitCmd.MarkFlagRequired("secret")
}
