// Package screens holds the views of the gradebook browser.
package screens

import (
	tea "charm.land/bubbletea/v2"

	"github.com/designchallenge/gradebook/internal/ui/layout"
)

// Screen defines the interface for all browser screens.
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

// PushMsg asks the app to show Screen on top of the current one.
type PushMsg struct {
	Screen Screen
}

// PopMsg asks the app to return to the previous screen.
type PopMsg struct{}

func push(s Screen) tea.Cmd {
	return func() tea.Msg { return PushMsg{Screen: s} }
}

func pop() tea.Msg { return PopMsg{} }
