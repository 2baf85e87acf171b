package components

import tea "charm.land/bubbletea/v2"

// Cursor tracks the selected row of a scrolling list.
type Cursor struct {
	Len      int
	Selected int
	offset   int
}

// NewCursor creates a cursor over n rows with the first selected.
func NewCursor(n int) Cursor {
	return Cursor{Len: n}
}

// SetLen changes the row count, clamping the selection.
func (c *Cursor) SetLen(n int) {
	c.Len = n
	if c.Selected >= n {
		c.Selected = max(0, n-1)
	}
	if c.offset > c.Selected {
		c.offset = c.Selected
	}
}

// Update handles keyboard navigation.
func (c Cursor) Update(msg tea.Msg) Cursor {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || c.Len == 0 {
		return c
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < c.Len-1 {
			c.Selected++
		}
	case "home", "g":
		c.Selected = 0
	case "end", "G":
		c.Selected = c.Len - 1
	}
	return c
}

// Window returns the half-open range of rows to draw in height lines,
// scrolling just enough to keep the selection visible.
func (c *Cursor) Window(height int) (start, end int) {
	if height <= 0 || c.Len == 0 {
		return 0, 0
	}
	if c.Selected < c.offset {
		c.offset = c.Selected
	}
	if c.Selected >= c.offset+height {
		c.offset = c.Selected - height + 1
	}
	end = min(c.offset+height, c.Len)
	return c.offset, end
}
