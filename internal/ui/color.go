package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Color functions - these respect NoColor setting automatically
var (
	cyan      = color.New(color.FgCyan)
	green     = color.New(color.FgGreen)
	boldGreen = color.New(color.FgGreen, color.Bold)
	magenta   = color.New(color.FgMagenta)
	red       = color.New(color.FgRed)
	yellow    = color.New(color.FgYellow)
	blue      = color.New(color.FgBlue)
	dim       = color.New(color.Faint)
)

// Branch returns a branch name in cyan
func Branch(name string) string {
	return cyan.Sprint(name)
}

// Hash returns an abbreviated commit hash in yellow
func Hash(h string) string {
	return yellow.Sprint(h)
}

// CurrentBranchMarker returns the bold green asterisk for current branch
func CurrentBranchMarker() string {
	return boldGreen.Sprint(" *")
}

// PRState returns the PR state with appropriate coloring
func PRState(state string) string {
	switch strings.ToUpper(state) {
	case "OPEN":
		return green.Sprint(strings.ToLower(state))
	case "MERGED":
		return magenta.Sprint(strings.ToLower(state))
	case "CLOSED":
		return red.Sprint(strings.ToLower(state))
	default:
		return strings.ToLower(state)
	}
}

// Success returns a green success message with checkmark
func Success(msg string) string {
	return green.Sprintf("✓ %s", msg)
}

// Warning returns a yellow warning message with warning sign
func Warning(msg string) string {
	return yellow.Sprintf("⚠ %s", msg)
}

// Error returns a red error message with X
func Error(msg string) string {
	return red.Sprintf("✗ %s", msg)
}

// Suggestion returns a blue hint line shown after a failed command
func Suggestion(msg string) string {
	return blue.Sprintf("→ %s", msg)
}

// Command returns a command in green (for help text)
func Command(cmd string) string {
	return green.Sprint(cmd)
}

// Dim returns dimmed/gray text
func Dim(s string) string {
	return dim.Sprint(s)
}

// PRInfo formats PR information with URL and colored state
func PRInfo(url, state string) string {
	return fmt.Sprintf("[%s :%s]", url, PRState(state))
}

// SetNoColor sets whether color output is disabled
func SetNoColor(disabled bool) {
	color.NoColor = disabled
}
