package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mrz1836/gfshare/internal/backup"
	"github.com/mrz1836/gfshare/internal/fileutil"
	"github.com/mrz1836/gfshare/internal/output"
	"github.com/mrz1836/gfshare/internal/sharecodec"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Archive or open a password-encrypted bundle of share strings",
}

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var (
	backupCreateShares    []string
	backupCreateThreshold int
	backupCreateOut       string
)

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Bundle share strings into a single encrypted backup file",
	Long: `Create encodes (n, k, shares) as JSON and age-encrypts it with a
password you are prompted for, so a share custodian keeps one file
instead of n loose strings.

Example:
  gfshare backup create --share 801ab.. --share 802cd.. --threshold 2 --out shares.age`,
	RunE: runBackupCreate,
}

func runBackupCreate(_ *cobra.Command, _ []string) error {
	comps, err := sharecodec.Extract(backupCreateShares[0])
	if err != nil {
		return err
	}

	password, err := promptNewPassword()
	if err != nil {
		return err
	}
	defer password.Destroy()

	ciphertext, err := backup.Create(comps.Bits, backupCreateThreshold, backupCreateShares, string(password.Bytes()))
	if err != nil {
		return err
	}

	if err := fileutil.WriteAtomic(backupCreateOut, ciphertext, 0o600); err != nil {
		return err
	}

	output.Success("wrote backup bundle to " + backupCreateOut)
	return formatter.Println("wrote " + backupCreateOut)
}

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var backupOpenFile string

var backupOpenCmd = &cobra.Command{
	Use:   "open",
	Short: "Decrypt a backup file and print its share strings",
	Long: `Open decrypts a backup file previously produced by "backup create" and
prints the bundled share strings.

Example:
  gfshare backup open --file shares.age`,
	RunE: runBackupOpen,
}

func runBackupOpen(cmd *cobra.Command, _ []string) error {
	ciphertext, err := os.ReadFile(backupOpenFile) //nolint:gosec // G304: path is an explicit CLI argument
	if err != nil {
		return err
	}

	password, err := promptPassword("Enter backup password: ")
	if err != nil {
		return err
	}
	defer password.Destroy()

	bundle, err := backup.Open(cmd.Context(), backupOpenFile, ciphertext, string(password.Bytes()))
	if err != nil {
		return err
	}

	output.Success("decrypted backup bundle from " + backupOpenFile)

	if formatter.IsJSON() {
		return formatter.Print(bundle)
	}
	for _, s := range bundle.Shares {
		cmd.Println(s)
	}
	return nil
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for flag registration
func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupCreateCmd, backupOpenCmd)

	backupCreateCmd.Flags().StringArrayVar(&backupCreateShares, "share", nil, "a public share string (repeat for each share)")
	backupCreateCmd.Flags().IntVar(&backupCreateThreshold, "threshold", 0, "the threshold k recorded in the bundle metadata")
	backupCreateCmd.Flags().StringVar(&backupCreateOut, "out", "shares.age", "output file path")
	_ = backupCreateCmd.MarkFlagRequired("share")

	backupOpenCmd.Flags().StringVar(&backupOpenFile, "file", "", "path to an encrypted backup file")
	_ = backupOpenCmd.MarkFlagRequired("file")
}
