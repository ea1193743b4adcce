package output

import (
	"fmt"
	"os"
)

// Warn and Success below are side-channel status messages printed
// alongside (never instead of) a command's share/secret payload. They
// always go to stderr so they never land inside output a script has
// piped from stdout, text or JSON alike.

// Warn prints a warning message to stderr with a warning prefix. Used for
// things like reminding a caller that Shamir's Secret Sharing carries no
// integrity check, so a bad share set can still "reconstruct" silently.
func Warn(msg string) {
	_, _ = fmt.Fprintln(os.Stderr, "⚠️  "+msg)
}

// Warnf prints a formatted warning message to stderr.
func Warnf(format string, args ...any) {
	Warn(fmt.Sprintf(format, args...))
}

// Success prints a confirmation message to stderr with a success prefix,
// e.g. after a backup bundle has been written to disk.
func Success(msg string) {
	_, _ = fmt.Fprintln(os.Stderr, "✅ "+msg)
}

// Successf prints a formatted success message to stderr.
func Successf(format string, args ...any) {
	Success(fmt.Sprintf(format, args...))
}
