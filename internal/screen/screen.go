package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/esvanberg/voctrain/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// RefreshMsg tells a screen that shared trainee state changed behind
// its back (vocabulary switched, level advanced) and cached views need
// rebuilding. Typically sent right after a PopScreenMsg so the screen
// underneath catches up.
type RefreshMsg struct{}
