// Package report prints user facing messages outside the interactive timer
package report

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/breathe/internal/osutil"
)

func Error(err error) {
	pterm.Error.Println(err)
}

// Quit reports err and exits with a non-zero status.
func Quit(err error) {
	Error(err)
	os.Exit(int(osutil.ExitError))
}
