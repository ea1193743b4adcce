package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrz1836/gfshare/internal/mnemonic"
	"github.com/mrz1836/gfshare/internal/walletshare"
)

var mnemonicCmd = &cobra.Command{
	Use:   "mnemonic",
	Short: "Bridge BIP-39 recovery phrases to the hex-secret contract",
}

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var mnemonicWords int

var mnemonicGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new BIP-39 mnemonic",
	Long: `Generate creates a new random BIP-39 recovery phrase.

Example:
  gfshare mnemonic generate --words 24`,
	RunE: func(_ *cobra.Command, _ []string) error {
		phrase, err := mnemonic.Generate(mnemonicWords)
		if err != nil {
			return err
		}
		if formatter.IsJSON() {
			return formatter.Print(map[string]string{"mnemonic": phrase})
		}
		return formatter.Println(phrase)
	},
}

var mnemonicToHexCmd = &cobra.Command{
	Use:   "to-hex <phrase...>",
	Short: "Convert a mnemonic phrase to the hex secret gfshare split expects",
	Long: `ToHex validates a mnemonic phrase and prints its BIP-39 entropy as hex,
ready to hand to "gfshare split --secret".

Example:
  gfshare mnemonic to-hex abandon abandon abandon ... about`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		phrase := joinArgs(args)

		if typos := mnemonic.DetectTypos(phrase); len(typos) > 0 {
			return mnemonicTypoError(typos)
		}

		h, err := mnemonic.ToHex(phrase)
		if err != nil {
			return err
		}
		if formatter.IsJSON() {
			return formatter.Print(map[string]string{"hex": h})
		}
		return formatter.Println(h)
	},
}

var mnemonicFromHexCmd = &cobra.Command{
	Use:   "from-hex <hex>",
	Short: "Rebuild a mnemonic phrase from hex entropy recovered by combine",
	Long: `FromHex is the inverse of to-hex: given the hex secret gfshare combine
returned, rebuilds the original mnemonic phrase.

Example:
  gfshare mnemonic from-hex 00000000000000000000000000000000`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		phrase, err := mnemonic.FromHex(args[0])
		if err != nil {
			return err
		}
		if formatter.IsJSON() {
			return formatter.Print(map[string]string{"mnemonic": phrase})
		}
		return formatter.Println(phrase)
	},
}

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var verifyPassphrase string

var mnemonicVerifyCmd = &cobra.Command{
	Use:   "verify <phrase...>",
	Short: "Confirm a recovered phrase parses as usable wallet key material",
	Long: `Verify treats a (just-recombined) mnemonic phrase as a BIP-32 seed and
confirms it derives a well-formed master extended key. SSS carries no
integrity check, so a bad combine can succeed silently; this catches
that case before the caller trusts the recovered phrase.

Example:
  gfshare mnemonic verify abandon abandon abandon ... about`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		phrase := joinArgs(args)

		seed, err := mnemonic.Seed(phrase, verifyPassphrase)
		if err != nil {
			return err
		}

		info, err := walletshare.VerifyBIP32Seed(seed)
		if err != nil {
			return err
		}

		if formatter.IsJSON() {
			return formatter.Print(info)
		}
		cmd.Printf("master key:     %s\n", info.ExtendedKey)
		cmd.Printf("first child:    %s\n", info.FirstChild)
		cmd.Printf("first hardened: %s\n", info.FirstHardened)
		return nil
	},
}

func joinArgs(args []string) string {
	out := args[0]
	for _, a := range args[1:] {
		out += " " + a
	}
	return out
}

func mnemonicTypoError(typos []mnemonic.TypoInfo) error {
	msg := mnemonic.FormatTypoSuggestions(typos)
	return &typoErr{msg: msg}
}

type typoErr struct{ msg string }

func (e *typoErr) Error() string { return "invalid mnemonic phrase: " + e.msg }

//nolint:gochecknoinits // Cobra CLI pattern requires init for flag registration
func init() {
	rootCmd.AddCommand(mnemonicCmd)
	mnemonicCmd.AddCommand(mnemonicGenerateCmd, mnemonicToHexCmd, mnemonicFromHexCmd, mnemonicVerifyCmd)

	mnemonicGenerateCmd.Flags().IntVar(&mnemonicWords, "words", 24, "word count: 12 or 24")
	mnemonicVerifyCmd.Flags().StringVar(&verifyPassphrase, "passphrase", "", "optional BIP-39 passphrase")
}
