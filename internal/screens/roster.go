package screens

import (
	"fmt"
	"math"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/designchallenge/gradebook/internal/gradebook"
	"github.com/designchallenge/gradebook/internal/summary"
	"github.com/designchallenge/gradebook/internal/ui/components"
	"github.com/designchallenge/gradebook/internal/ui/layout"
	"github.com/designchallenge/gradebook/internal/ui/theme"
)

// RosterScreen lists every student with their summary statistics.
type RosterScreen struct {
	gb      *gradebook.Gradebook
	stats   []summary.Stats
	visible []int // indexes into gb.Students that pass the filter
	cursor  components.Cursor
	filter  components.FilterInput
}

var _ Screen = (*RosterScreen)(nil)
var _ KeyHintProvider = (*RosterScreen)(nil)

// NewRoster creates the roster screen for gb.
func NewRoster(gb *gradebook.Gradebook) *RosterScreen {
	r := &RosterScreen{
		gb:     gb,
		stats:  make([]summary.Stats, len(gb.Students)),
		filter: components.NewFilterInput("name", 40),
	}
	for i, s := range gb.Students {
		r.stats[i] = summary.For(gb, s)
	}
	r.applyFilter()
	return r
}

func (r *RosterScreen) Init() tea.Cmd {
	return nil
}

func (r *RosterScreen) Title() string {
	return "Roster"
}

func (r *RosterScreen) KeyHints() []layout.KeyHint {
	if r.filter.Active() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Clear"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Grades"},
		{Key: "/", Description: "Filter"},
		{Key: "q", Description: "Quit"},
	}
}

// SetFilter keeps only students whose name contains text, ignoring case.
func (r *RosterScreen) SetFilter(text string) {
	r.filter.Model.SetValue(text)
	r.applyFilter()
}

// Visible returns the students currently listed, in order.
func (r *RosterScreen) Visible() []gradebook.Student {
	out := make([]gradebook.Student, len(r.visible))
	for i, idx := range r.visible {
		out[i] = r.gb.Students[idx]
	}
	return out
}

// Selected returns the highlighted student, if any.
func (r *RosterScreen) Selected() (gradebook.Student, bool) {
	if len(r.visible) == 0 {
		return gradebook.Student{}, false
	}
	return r.gb.Students[r.visible[r.cursor.Selected]], true
}

func (r *RosterScreen) applyFilter() {
	needle := strings.ToLower(strings.TrimSpace(r.filter.Value()))
	r.visible = r.visible[:0]
	for i, s := range r.gb.Students {
		if needle == "" || strings.Contains(strings.ToLower(s.SortableName), needle) {
			r.visible = append(r.visible, i)
		}
	}
	r.cursor.SetLen(len(r.visible))
}

func (r *RosterScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)

	if r.filter.Active() {
		if isKey {
			switch kmsg.String() {
			case "enter":
				r.filter.Deactivate()
				return r, nil
			case "esc":
				r.filter.Clear()
				r.applyFilter()
				return r, nil
			}
		}
		var cmd tea.Cmd
		r.filter, cmd = r.filter.Update(msg)
		r.applyFilter()
		return r, cmd
	}

	if !isKey {
		return r, nil
	}

	switch kmsg.String() {
	case "/":
		return r, r.filter.Activate()
	case "q":
		return r, tea.Quit
	case "enter":
		if len(r.visible) == 0 {
			return r, nil
		}
		return r, push(NewStudent(r.gb, r.visible[r.cursor.Selected]))
	}

	r.cursor = r.cursor.Update(msg)
	return r, nil
}

func (r *RosterScreen) View(width, height int) string {
	var b strings.Builder

	header := fmt.Sprintf("  %-*s  %6s  %5s", summary.NameWidth, "Student", "Score", "Late")
	b.WriteString(theme.ColumnHeader.Render(header))
	b.WriteString("\n")

	footer := r.filter.View()
	rows := height - 1
	if footer != "" {
		rows--
	}

	if len(r.visible) == 0 {
		b.WriteString(theme.Hint.Render("  No students match."))
		b.WriteString("\n")
	}

	start, end := r.cursor.Window(rows)
	for i := start; i < end; i++ {
		st := r.stats[r.visible[i]]
		b.WriteString(r.renderRow(st, i == r.cursor.Selected))
		b.WriteString("\n")
	}

	if footer != "" {
		b.WriteString(footer)
	}

	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func (r *RosterScreen) renderRow(st summary.Stats, selected bool) string {
	marker := "  "
	style := theme.Unselected
	if selected {
		marker = "▸ "
		style = theme.Selected
	}

	score := "     -"
	if !math.IsNaN(st.Score) {
		score = fmt.Sprintf("%6.2f", st.Score)
	}

	late := fmt.Sprintf("%2d/%-2d", st.Late, st.Total)
	if st.Late > 0 {
		late = theme.LateScore.Render(late)
	}

	name := fmt.Sprintf("%-*s", summary.NameWidth, layout.Truncate(st.Name, summary.NameWidth))
	return style.Render(marker+name) + "  " + style.Render(score) + "  " + late
}
