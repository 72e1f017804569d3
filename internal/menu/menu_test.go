package menu

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/javoire/githelper/internal/prompt"
	"github.com/javoire/githelper/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMenu() *Menu {
	return &Menu{
		Title: "Quick Actions",
		Items: []Item{
			{Key: "1", Label: "Quick pull", Action: ActionQuickPull},
			{Key: "2", Label: "Stash list", Action: ActionStashList},
			{Key: "3", Label: "Back", Action: ActionBack},
		},
	}
}

func TestLookup(t *testing.T) {
	m := testMenu()

	tests := []struct {
		input  string
		action Action
		ok     bool
	}{
		{"1", ActionQuickPull, true},
		{" 2 ", ActionStashList, true},
		{"3", ActionBack, true},
		{"b", ActionBack, true},
		{"BACK", ActionBack, true},
		{"4", ActionNone, false},
		{"", ActionNone, false},
		{"pull", ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			item, ok := m.Lookup(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.action, item.Action)
		})
	}
}

func TestRunDispatchesByAction(t *testing.T) {
	testutil.SetupTest()
	var out bytes.Buffer
	p := prompt.NewLinePrompter(strings.NewReader("1\n9\n2\n1\nb\n"), &out)

	var calls []Action
	handlers := map[Action]Handler{
		ActionQuickPull: func() error { calls = append(calls, ActionQuickPull); return nil },
		ActionStashList: func() error { calls = append(calls, ActionStashList); return errors.New("stash exploded") },
	}

	err := Run(testMenu(), p, &out, handlers)

	require.NoError(t, err)
	assert.Equal(t, []Action{ActionQuickPull, ActionStashList, ActionQuickPull}, calls)
	assert.Contains(t, out.String(), `Invalid option "9"`)
	assert.Contains(t, out.String(), "stash exploded")
	assert.Contains(t, out.String(), "Quick Actions")
}

func TestRunStopsOnExitAndEOF(t *testing.T) {
	testutil.SetupTest()

	t.Run("handler exit", func(t *testing.T) {
		var out bytes.Buffer
		p := prompt.NewLinePrompter(strings.NewReader("1\n"), &out)
		err := Run(testMenu(), p, &out, map[Action]Handler{
			ActionQuickPull: func() error { return ErrExit },
		})
		assert.NoError(t, err)
	})

	t.Run("end of input", func(t *testing.T) {
		var out bytes.Buffer
		p := prompt.NewLinePrompter(strings.NewReader(""), &out)
		err := Run(testMenu(), p, &out, nil)
		assert.ErrorIs(t, err, io.EOF)
	})
}

func TestRunWithoutBackEntry(t *testing.T) {
	testutil.SetupTest()
	var out bytes.Buffer
	p := prompt.NewLinePrompter(strings.NewReader("b\n1\n"), &out)
	m := &Menu{
		Title:  "Main Menu",
		Header: func() []string { return []string{"Current branch: main"} },
		Items:  []Item{{Key: "1", Label: "Exit", Action: ActionExit}},
	}

	err := Run(m, p, &out, map[Action]Handler{
		ActionExit: func() error { return ErrExit },
	})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Nothing to go back to.")
	assert.Contains(t, out.String(), "Current branch: main")
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "rebase-excise", ActionRebaseExcise.String())
	assert.Equal(t, "unknown", Action(999).String())
}
