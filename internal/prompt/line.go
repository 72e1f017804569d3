package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/javoire/githelper/internal/git"
	"github.com/javoire/githelper/internal/ui"
)

// LinePrompter reads answers one line at a time from any reader. It is used
// when stdin is not a terminal and by tests.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a LinePrompter reading from in and writing prompts to out
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

func (p *LinePrompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Confirm asks question until the reply is in the accepted vocabulary
func (p *LinePrompter) Confirm(question string) (Answer, error) {
	for {
		fmt.Fprintf(p.out, "%s (y/n/b): ", question)
		line, err := p.readLine()
		if err != nil {
			return No, err
		}
		if answer, ok := ParseConfirm(line); ok {
			return answer, nil
		}
		fmt.Fprintln(p.out, ui.Warning("Please answer y/yes/1, n/no/2 or b."))
	}
}

// Line prints label and returns the trimmed reply
func (p *LinePrompter) Line(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	return p.readLine()
}

// Required asks until the reply is non-empty
func (p *LinePrompter) Required(label string) (string, error) {
	for {
		line, err := p.Line(label)
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
		fmt.Fprintln(p.out, ui.Warning("A value is required."))
	}
}

// Choose prints a numbered list and asks for a number; empty input or b skips
func (p *LinePrompter) Choose(label string, options []string) (int, error) {
	for i, opt := range options {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, opt)
	}
	for {
		line, err := p.Line(label + " (number, Enter to skip)")
		if err != nil {
			return -1, err
		}
		if line == "" || strings.EqualFold(line, "b") {
			return -1, nil
		}
		i, err := ParseIndex(line, len(options))
		if err != nil {
			fmt.Fprintln(p.out, ui.Warning(err.Error()))
			continue
		}
		return i - 1, nil
	}
}

// Date asks for a date, showing def; empty input accepts def
func (p *LinePrompter) Date(label string, def time.Time) (time.Time, error) {
	for {
		line, err := p.Line(fmt.Sprintf("%s [%s]", label, def.Format(git.DateLayout)))
		if err != nil {
			return time.Time{}, err
		}
		if line == "" {
			return def, nil
		}
		d, err := ParseDate(line)
		if err != nil {
			fmt.Fprintln(p.out, ui.Warning(err.Error()))
			continue
		}
		return d, nil
	}
}
