package screens

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/designchallenge/gradebook/internal/gradebook"
	"github.com/designchallenge/gradebook/internal/summary"
	"github.com/designchallenge/gradebook/internal/ui/components"
	"github.com/designchallenge/gradebook/internal/ui/layout"
	"github.com/designchallenge/gradebook/internal/ui/theme"
)

const assignmentWidth = 24

// StudentScreen shows one student's grade on every assignment.
type StudentScreen struct {
	gb      *gradebook.Gradebook
	student gradebook.Student
	pairs   []gradebook.Pair
	stats   summary.Stats
	cursor  components.Cursor
}

var _ Screen = (*StudentScreen)(nil)
var _ KeyHintProvider = (*StudentScreen)(nil)

// NewStudent creates the detail screen for gb.Students[index].
func NewStudent(gb *gradebook.Gradebook, index int) *StudentScreen {
	s := gb.Students[index]
	pairs := gb.Pairs(s)
	return &StudentScreen{
		gb:      gb,
		student: s,
		pairs:   pairs,
		stats:   summary.For(gb, s),
		cursor:  components.NewCursor(len(pairs)),
	}
}

func (s *StudentScreen) Init() tea.Cmd {
	return nil
}

func (s *StudentScreen) Title() string {
	return s.student.SortableName
}

func (s *StudentScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Roster"},
	}
}

func (s *StudentScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc", "backspace", "q":
			return s, pop
		}
	}
	s.cursor = s.cursor.Update(msg)
	return s, nil
}

func (s *StudentScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render(fmt.Sprintf("%s  #%d", s.student.SortableName, s.student.ID)))
	b.WriteString("  ")
	b.WriteString(theme.Hint.Render(s.stats.String()))
	b.WriteString("\n\n")

	header := fmt.Sprintf("  %-*s  %5s  %6s  %-5s  %s", assignmentWidth, "Assignment", "Score", "Late", "Posts", "Detail")
	b.WriteString(theme.ColumnHeader.Render(header))
	b.WriteString("\n")

	start, end := s.cursor.Window(height - 3)
	for i := start; i < end; i++ {
		b.WriteString(s.renderRow(s.pairs[i], i == s.cursor.Selected))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func (s *StudentScreen) renderRow(p gradebook.Pair, selected bool) string {
	marker := "  "
	nameStyle := theme.Unselected
	if selected {
		marker = "▸ "
		nameStyle = theme.Selected
	}

	name := fmt.Sprintf("%-*s", assignmentWidth, layout.Truncate(p.Assignment.Name, assignmentWidth))

	score := "    -"
	if p.Grade.Score != nil {
		score = fmt.Sprintf("%5d", *p.Grade.Score)
	}
	scoreStyle := theme.OnTimeScore
	if p.Grade.IsLate() {
		scoreStyle = theme.LateScore
	}

	chars := 0
	for _, post := range p.Grade.Posts {
		chars += post.Length
	}

	return nameStyle.Render(marker+name) + "  " +
		scoreStyle.Render(score) + "  " +
		fmt.Sprintf("%+5dh", p.Grade.Late) + "  " +
		components.NewPostBar(len(p.Grade.Posts)).View() + "  " +
		fmt.Sprintf("%d posts, %d chars", len(p.Grade.Posts), chars)
}
