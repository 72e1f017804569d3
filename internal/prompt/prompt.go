package prompt

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/javoire/githelper/internal/git"
	"github.com/mattn/go-isatty"
)

// Answer is the outcome of a confirmation prompt
type Answer int

const (
	No Answer = iota
	Yes
	Back
)

func (a Answer) String() string {
	switch a {
	case Yes:
		return "yes"
	case Back:
		return "back"
	default:
		return "no"
	}
}

// Prompter reads user decisions. Every method blocks until it has a valid
// answer or the input ends, in which case it returns io.EOF.
type Prompter interface {
	// Confirm accepts y/yes/1, n/no/2 and b; anything else re-prompts
	Confirm(question string) (Answer, error)
	// Line returns one trimmed line, possibly empty
	Line(label string) (string, error)
	// Required re-prompts until the line is non-empty
	Required(label string) (string, error)
	// Choose lists options and returns the 0-based pick, or -1 when skipped
	Choose(label string, options []string) (int, error)
	// Date returns a date in git.DateLayout, or def on empty input
	Date(label string, def time.Time) (time.Time, error)
}

// New returns a SurveyPrompter when in and out are terminals and a
// LinePrompter otherwise.
func New(in io.Reader, out io.Writer) Prompter {
	inFile, inOK := in.(*os.File)
	outFile, outOK := out.(*os.File)
	if inOK && outOK && isTerminal(inFile) && isTerminal(outFile) {
		return NewSurveyPrompter(inFile, outFile)
	}
	return NewLinePrompter(in, out)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ValidationError reports malformed user input. It is always handled where
// the input was read.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// ParseConfirm maps a reply onto an Answer. ok is false for anything outside
// the accepted vocabulary.
func ParseConfirm(input string) (answer Answer, ok bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes", "1":
		return Yes, true
	case "n", "no", "2":
		return No, true
	case "b":
		return Back, true
	}
	return No, false
}

// ParseIndex parses a 1-based selection in [1, n]
func ParseIndex(input string, n int) (int, error) {
	input = strings.TrimSpace(input)
	i, err := strconv.Atoi(input)
	if err != nil {
		return 0, &ValidationError{Field: "selection", Value: input, Reason: "not a number"}
	}
	if i < 1 || i > n {
		return 0, &ValidationError{Field: "selection", Value: input, Reason: fmt.Sprintf("must be between 1 and %d", n)}
	}
	return i, nil
}

// ParseDate parses a date in git.DateLayout in the local zone
func ParseDate(input string) (time.Time, error) {
	input = strings.TrimSpace(input)
	d, err := time.ParseInLocation(git.DateLayout, input, time.Local)
	if err != nil {
		return time.Time{}, &ValidationError{Field: "date", Value: input, Reason: "expected YYYY-MM-DD HH:MM:SS"}
	}
	return d, nil
}

// ParseCount parses a positive count, returning def for empty input
func ParseCount(input string, def int) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return def, nil
	}
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 {
		return 0, &ValidationError{Field: "count", Value: input, Reason: "must be a positive number"}
	}
	return n, nil
}
