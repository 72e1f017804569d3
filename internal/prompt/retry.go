package prompt

import (
	"fmt"
	"io"

	"github.com/javoire/githelper/internal/git"
	"github.com/javoire/githelper/internal/ui"
)

// Retry runs fn until it succeeds or the user declines another attempt.
// It reports whether fn eventually succeeded; failures are printed, never returned.
func Retry(p Prompter, out io.Writer, fn func() error) bool {
	for {
		err := fn()
		if err == nil {
			return true
		}
		fmt.Fprintln(out, ui.Error(git.Diagnostic(err)))
		answer, perr := p.Confirm("Do you want to retry?")
		if perr != nil || answer != Yes {
			return false
		}
	}
}
