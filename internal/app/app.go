package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/designchallenge/gradebook/internal/gradebook"
	"github.com/designchallenge/gradebook/internal/screens"
	"github.com/designchallenge/gradebook/internal/ui/layout"
)

// AppModel is the root Bubble Tea model. It keeps a stack of screens with
// the roster at the bottom.
type AppModel struct {
	document string
	gb       *gradebook.Gradebook
	stack    []screens.Screen
	width    int
	height   int
}

// newAppModel creates an AppModel showing the roster of gb.
func newAppModel(document string, gb *gradebook.Gradebook) AppModel {
	return AppModel{
		document: document,
		gb:       gb,
		stack:    []screens.Screen{screens.NewRoster(gb)},
	}
}

// Active returns the top screen on the stack.
func (m AppModel) Active() screens.Screen {
	return m.stack[len(m.stack)-1]
}

// Depth returns the number of screens on the stack.
func (m AppModel) Depth() int {
	return len(m.stack)
}

func (m AppModel) Init() tea.Cmd {
	return m.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case screens.PushMsg:
		m.stack = append(m.stack, msg.Screen)
		return m, msg.Screen.Init()

	case screens.PopMsg:
		if len(m.stack) > 1 {
			m.stack = m.stack[:len(m.stack)-1]
		}
		return m, nil
	}

	// Copy before replacing the top so earlier AppModel values keep
	// their own stack.
	stack := append([]screens.Screen(nil), m.stack...)
	updated, cmd := stack[len(stack)-1].Update(msg)
	stack[len(stack)-1] = updated
	m.stack = stack
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.Active()
	header := layout.RenderHeader(m.document, active.Title(), len(m.gb.Students), len(m.gb.Assignments), m.width)

	hints := []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	if hp, ok := active.(screens.KeyHintProvider); ok {
		hints = hp.KeyHints()
	}
	footer := layout.RenderFooter(hints, m.width)

	content := active.View(m.width, layout.ContentHeight(header, footer, m.height))
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the browser for gb. document names the loaded file in the
// header.
func Run(document string, gb *gradebook.Gradebook) error {
	p := tea.NewProgram(newAppModel(document, gb))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
