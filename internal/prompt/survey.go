package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/javoire/githelper/internal/git"
)

const skipOption = "(skip)"

// SurveyPrompter asks through survey on an interactive terminal. Dates get
// an editable prefilled default.
type SurveyPrompter struct {
	opts []survey.AskOpt
}

// NewSurveyPrompter creates a SurveyPrompter bound to the given terminal files
func NewSurveyPrompter(in, out *os.File) *SurveyPrompter {
	return &SurveyPrompter{opts: []survey.AskOpt{survey.WithStdio(in, out, out)}}
}

func (p *SurveyPrompter) ask(q survey.Prompt, response interface{}, v survey.Validator) error {
	opts := p.opts
	if v != nil {
		opts = append(append([]survey.AskOpt{}, opts...), survey.WithValidator(v))
	}
	if err := survey.AskOne(q, response, opts...); err != nil {
		if errors.Is(err, terminal.InterruptErr) || errors.Is(err, io.EOF) {
			return io.EOF
		}
		return err
	}
	return nil
}

func confirmValidator(ans interface{}) error {
	s, _ := ans.(string)
	if _, ok := ParseConfirm(s); !ok {
		return errors.New("please answer y/yes/1, n/no/2 or b")
	}
	return nil
}

func dateValidator(ans interface{}) error {
	s, _ := ans.(string)
	_, err := ParseDate(s)
	return err
}

// Confirm asks question until the reply is in the accepted vocabulary
func (p *SurveyPrompter) Confirm(question string) (Answer, error) {
	var reply string
	if err := p.ask(&survey.Input{Message: question + " (y/n/b)"}, &reply, confirmValidator); err != nil {
		return No, err
	}
	answer, _ := ParseConfirm(reply)
	return answer, nil
}

// Line asks for a free-form value
func (p *SurveyPrompter) Line(label string) (string, error) {
	var reply string
	if err := p.ask(&survey.Input{Message: label}, &reply, nil); err != nil {
		return "", err
	}
	return strings.TrimSpace(reply), nil
}

// Required asks until the value is non-empty
func (p *SurveyPrompter) Required(label string) (string, error) {
	var reply string
	if err := p.ask(&survey.Input{Message: label}, &reply, survey.Required); err != nil {
		return "", err
	}
	return strings.TrimSpace(reply), nil
}

// Choose shows a select list with a trailing skip entry
func (p *SurveyPrompter) Choose(label string, options []string) (int, error) {
	var idx int
	q := &survey.Select{
		Message: label,
		Options: append(append([]string{}, options...), skipOption),
	}
	if err := p.ask(q, &idx, nil); err != nil {
		return -1, err
	}
	if idx >= len(options) {
		return -1, nil
	}
	return idx, nil
}

// Date asks for a date, prefilled with def
func (p *SurveyPrompter) Date(label string, def time.Time) (time.Time, error) {
	var reply string
	q := &survey.Input{
		Message: fmt.Sprintf("%s (YYYY-MM-DD HH:MM:SS)", label),
		Default: def.Format(git.DateLayout),
	}
	if err := p.ask(q, &reply, dateValidator); err != nil {
		return time.Time{}, err
	}
	return ParseDate(reply)
}
