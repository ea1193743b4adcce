// Command gfshare is a thin CLI wrapper over the gfshare library: split
// a secret into shares, combine them back, mint new shares, draw random
// hex, and archive share sets as encrypted backups.
package main

import (
	"os"

	"github.com/mrz1836/gfshare/internal/cli"
)

// Build info variables set via ldflags during build.
//
//nolint:gochecknoglobals // Required for ldflags injection at build time
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	if err := cli.Execute(cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    buildDate,
	}); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
