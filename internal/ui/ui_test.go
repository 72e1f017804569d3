package ui

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessagesWithoutColor(t *testing.T) {
	prev := color.NoColor
	SetNoColor(true)
	defer SetNoColor(prev)

	assert.Equal(t, "✓ done", Success("done"))
	assert.Equal(t, "⚠ careful", Warning("careful"))
	assert.Equal(t, "✗ broken", Error("broken"))
	assert.Equal(t, "→ try this", Suggestion("try this"))
	assert.Equal(t, "main", Branch("main"))
	assert.Equal(t, "open", PRState("OPEN"))
	assert.Equal(t, "[https://x/1 :merged]", PRInfo("https://x/1", "MERGED"))
}

func TestFrame(t *testing.T) {
	prev := color.NoColor
	SetNoColor(true)
	defer SetNoColor(prev)

	out := Frame("Commit Management", "1. Stage changes", "2. Back")

	assert.Contains(t, out, "Commit Management")
	assert.Contains(t, out, "1. Stage changes")
	assert.Contains(t, out, "2. Back")
	assert.Contains(t, out, "╭")
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer

	err := Table(&buf, []string{"Branch", "Author"}, [][]string{
		{"main", "Jane"},
		{"feature", "Sam"},
	})

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "main")
	assert.Contains(t, out, "feature")
	assert.Contains(t, out, "Sam")
}
