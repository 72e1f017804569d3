// Package menu renders numbered menus and dispatches the chosen entry to a
// handler keyed by Action.
package menu

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/javoire/githelper/internal/git"
	"github.com/javoire/githelper/internal/prompt"
	"github.com/javoire/githelper/internal/ui"
)

// ErrExit is returned by a handler to leave the menu loop
var ErrExit = errors.New("exit menu")

// Handler runs one menu action. Errors other than ErrExit and io.EOF are
// printed and the menu is shown again.
type Handler func() error

// Item is one numbered menu entry
type Item struct {
	Key    string
	Label  string
	Action Action
}

// Menu is a titled list of items. Header, when set, supplies extra lines
// shown under the title each time the menu is drawn.
type Menu struct {
	Title  string
	Header func() []string
	Items  []Item
}

// Render returns the framed menu
func (m *Menu) Render() string {
	var lines []string
	if m.Header != nil {
		lines = append(lines, m.Header()...)
		lines = append(lines, "")
	}
	for _, item := range m.Items {
		lines = append(lines, fmt.Sprintf("%s. %s", item.Key, item.Label))
	}
	return ui.Frame(m.Title, lines...)
}

// Lookup resolves user input to an item. "b" and "back" select the back
// entry when the menu has one.
func (m *Menu) Lookup(input string) (Item, bool) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return Item{}, false
	}
	for _, item := range m.Items {
		if strings.ToLower(item.Key) == input {
			return item, true
		}
	}
	if input == "b" || input == "back" {
		for _, item := range m.Items {
			if item.Action == ActionBack {
				return item, true
			}
		}
	}
	return Item{}, false
}

func (m *Menu) hasBack() bool {
	for _, item := range m.Items {
		if item.Action == ActionBack {
			return true
		}
	}
	return false
}

// Run shows m until the back entry is chosen, a handler returns ErrExit, or
// input ends (io.EOF is returned).
func Run(m *Menu, p prompt.Prompter, out io.Writer, handlers map[Action]Handler) error {
	for {
		fmt.Fprintln(out)
		fmt.Fprintln(out, m.Render())

		input, err := p.Line("Select an option")
		if err != nil {
			return err
		}

		item, ok := m.Lookup(input)
		if !ok {
			lower := strings.ToLower(input)
			if !m.hasBack() && (lower == "b" || lower == "back") {
				fmt.Fprintln(out, ui.Warning("Nothing to go back to."))
			} else {
				fmt.Fprintln(out, ui.Warning(fmt.Sprintf("Invalid option %q.", input)))
			}
			continue
		}
		if item.Action == ActionBack {
			return nil
		}

		handler, ok := handlers[item.Action]
		if !ok {
			fmt.Fprintln(out, ui.Warning(item.Label+" is not available."))
			continue
		}

		slog.Debug("menu action", "menu", m.Title, "action", item.Action.String())
		err = handler()
		switch {
		case err == nil:
		case errors.Is(err, ErrExit):
			return nil
		case errors.Is(err, io.EOF):
			return err
		default:
			fmt.Fprintln(out, ui.Error(git.Diagnostic(err)))
		}
	}
}
