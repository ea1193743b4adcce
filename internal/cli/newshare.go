package cli

import (
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mrz1836/gfshare"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var (
	newShareID     int
	newShareShares []string
	newShareRNG    string
)

var newShareCmd = &cobra.Command{
	Use:   "new-share",
	Short: "Mint an additional share at a new id",
	Long: `NewShare mints an additional share at a given id from an existing
threshold-sized share set, without reconstructing the secret in the
caller's code.

Example:
  gfshare new-share --id 7 --share 801ab.. --share 802cd.. --share 803ef..`,
	RunE: runNewShare,
}

func runNewShare(_ *cobra.Command, _ []string) error {
	comps, err := gfshare.ExtractShareComponents(newShareShares[0])
	if err != nil {
		return err
	}

	eng := gfshare.NewEngine()
	if err := eng.Init(comps.Bits, rngOrDefault(newShareRNG)); err != nil {
		return err
	}

	minted, err := eng.NewShare(newShareID, newShareShares)
	if err != nil {
		return err
	}

	if logger != nil {
		logger.DebugAttrs("new-share", slog.Int("bits", comps.Bits), slog.Int("id", newShareID))
	}

	if formatter.IsJSON() {
		return formatter.Print(map[string]string{"share": minted})
	}
	return formatter.Println(minted)
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for flag registration
func init() {
	rootCmd.AddCommand(newShareCmd)
	newShareCmd.Flags().IntVar(&newShareID, "id", 0, "share id to mint, 1.."+strconv.Itoa((1<<20)-1))
	newShareCmd.Flags().StringArrayVar(&newShareShares, "share", nil, "an existing public share string (repeat for each share)")
	newShareCmd.Flags().StringVar(&newShareRNG, "rng", "", "named RNG source (unused by new-share, accepted for symmetry)")
	_ = newShareCmd.MarkFlagRequired("id")
	_ = newShareCmd.MarkFlagRequired("share")
}
