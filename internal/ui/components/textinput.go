package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/designchallenge/gradebook/internal/ui/theme"
)

// FilterInput wraps bubbles/textinput as a name filter that can be
// switched on and off.
type FilterInput struct {
	Model  textinput.Model
	active bool
}

// NewFilterInput creates an inactive filter input.
func NewFilterInput(placeholder string, maxWidth int) FilterInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "/ "
	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}
	return FilterInput{Model: ti}
}

// Activate focuses the input so it receives key presses.
func (f *FilterInput) Activate() tea.Cmd {
	f.active = true
	return f.Model.Focus()
}

// Deactivate blurs the input, keeping its value.
func (f *FilterInput) Deactivate() {
	f.active = false
	f.Model.Blur()
}

// Clear empties the input and deactivates it.
func (f *FilterInput) Clear() {
	f.Model.SetValue("")
	f.Deactivate()
}

// Active reports whether the input currently takes key presses.
func (f FilterInput) Active() bool {
	return f.active
}

// Update forwards messages to the text input while active.
func (f FilterInput) Update(msg tea.Msg) (FilterInput, tea.Cmd) {
	if !f.active {
		return f, nil
	}
	var cmd tea.Cmd
	f.Model, cmd = f.Model.Update(msg)
	return f, cmd
}

// View renders the input, or the applied filter when inactive.
func (f FilterInput) View() string {
	if f.active {
		return f.Model.View()
	}
	if f.Model.Value() == "" {
		return ""
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render("filter: " + f.Model.Value())
}

// Value returns the current filter text.
func (f FilterInput) Value() string {
	return f.Model.Value()
}
