package cli

import (
	"bytes"
	"fmt"
	"os"
	"syscall"

	"golang.org/x/term"

	"github.com/mrz1836/gfshare/internal/entropy"
	gfserr "github.com/mrz1836/gfshare/pkg/errors"
)

// promptPassword prompts for a password with hidden input, moving the
// typed bytes into a SecureBytes buffer so the terminal's copy is
// zeroed before this returns. The caller must Destroy the result.
func promptPassword(prompt string) (*entropy.SecureBytes, error) {
	fmt.Fprint(os.Stderr, prompt) //nolint:errcheck // CLI prompt output, best effort

	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr) //nolint:errcheck // CLI prompt output, best effort

	if err != nil {
		return nil, fmt.Errorf("reading password: %w", err)
	}

	password, err := entropy.SecureBytesFromSlice(raw)
	zeroBytes(raw)
	if err != nil {
		return nil, err
	}
	return password, nil
}

// promptNewPassword prompts for a new password with confirmation. The
// caller must Destroy the result.
func promptNewPassword() (*entropy.SecureBytes, error) {
	password, err := promptPassword("Enter backup password: ")
	if err != nil {
		return nil, err
	}

	if len(password.Bytes()) < 8 {
		password.Destroy()
		return nil, gfserr.WithSuggestion(
			gfserr.ErrGeneral,
			"password must be at least 8 characters",
		)
	}

	confirm, err := promptPassword("Confirm password: ")
	if err != nil {
		password.Destroy()
		return nil, err
	}
	defer confirm.Destroy()

	if !bytes.Equal(password.Bytes(), confirm.Bytes()) {
		password.Destroy()
		return nil, gfserr.WithSuggestion(gfserr.ErrGeneral, "passwords do not match")
	}

	return password, nil
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
