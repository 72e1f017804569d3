package testutil

import (
	"github.com/fatih/color"
	"github.com/javoire/githelper/internal/spinner"
)

// SetupTest initializes test environment (disable spinners and colors)
func SetupTest() {
	spinner.Enabled = false
	color.NoColor = true
}

// TeardownTest cleans up after tests
func TeardownTest() {
	// Currently no cleanup needed, but keeping for future use
}
