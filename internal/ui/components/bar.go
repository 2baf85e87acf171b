package components

import (
	"strings"

	"github.com/designchallenge/gradebook/internal/ui/theme"
)

// PostBar draws a grade's post count as a bar of Cap cells at most, the
// terminal counterpart of the SVG table's post bars.
type PostBar struct {
	Posts int
	Cap   int
}

// NewPostBar creates a bar capped at five posts.
func NewPostBar(posts int) PostBar {
	return PostBar{Posts: posts, Cap: 5}
}

// Filled returns the number of filled cells.
func (p PostBar) Filled() int {
	return max(0, min(p.Posts, p.Cap))
}

// View renders the bar padded to Cap cells.
func (p PostBar) View() string {
	filled := p.Filled()
	return theme.PostBar.Render(strings.Repeat(" ", filled)) + strings.Repeat(" ", p.Cap-filled)
}
