package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mrz1836/gfshare"
	"github.com/mrz1836/gfshare/internal/output"
	"github.com/mrz1836/gfshare/internal/walletshare"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var (
	combineShares    []string
	combineRNG       string
	combineVerifyKey bool
)

var combineCmd = &cobra.Command{
	Use:   "combine",
	Short: "Reconstruct a secret from shares",
	Long: `Combine reconstructs the original hex secret from a threshold-sized
set of public share strings.

Example:
  gfshare combine --share 801ab.. --share 802cd.. --share 803ef..`,
	RunE: runCombine,
}

func runCombine(_ *cobra.Command, _ []string) error {
	// Combine requires an engine configured for the same field width the
	// shares were split under; read it off the first share rather than
	// asking the caller to pass --bits redundantly.
	comps, err := gfshare.ExtractShareComponents(combineShares[0])
	if err != nil {
		return err
	}

	eng := gfshare.NewEngine()
	if err := eng.Init(comps.Bits, rngOrDefault(combineRNG)); err != nil {
		return err
	}

	secret, err := eng.Combine(combineShares)
	if err != nil {
		return err
	}

	output.Warn("reconstruction carries no integrity check; verify the secret independently before trusting it")

	if logger != nil {
		logger.DebugAttrs("combine", slog.Int("bits", comps.Bits), slog.Int("shares", len(combineShares)))
	}

	if combineVerifyKey {
		info, vErr := walletshare.VerifySecp256k1Key(secret)
		if vErr != nil {
			return vErr
		}
		output.Success("recovered secret parses as a secp256k1 private key (" + info.Address + ")")

		if formatter.IsJSON() {
			return formatter.Print(map[string]string{"secret": secret, "address": info.Address})
		}
		return formatter.Println(secret)
	}

	if formatter.IsJSON() {
		return formatter.Print(map[string]string{"secret": secret})
	}
	return formatter.Println(secret)
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for flag registration
func init() {
	rootCmd.AddCommand(combineCmd)
	combineCmd.Flags().StringArrayVar(&combineShares, "share", nil, "a public share string (repeat for each share)")
	combineCmd.Flags().StringVar(&combineRNG, "rng", "", "named RNG source (unused by combine, accepted for symmetry)")
	combineCmd.Flags().BoolVar(&combineVerifyKey, "verify-key", false, "additionally check the recovered secret parses as a secp256k1 private key")
	_ = combineCmd.MarkFlagRequired("share")
}
