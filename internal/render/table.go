// Package render draws a gradebook as a minimal SVG table: one row per
// student, one column per assignment, with the score written over a bar
// whose width counts the student's posts.
package render

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	svg "github.com/ajstarks/svgo"

	"github.com/designchallenge/gradebook/internal/gradebook"
)

const (
	margin     = 5
	rowPitch   = 20 // font size + 2*pad
	scoreWidth = 20
	maxBarPost = 5
	barUnit    = 5
	barHeight  = 15

	barFill   = "#CCC"
	lateColor = "#C00"
)

// Table writes gb as an SVG document to w. Element ids are drawn from
// ids, which may be shared across renders.
func Table(w io.Writer, gb *gradebook.Gradebook, ids *Counter) error {
	var buf bytes.Buffer
	drawTable(svg.New(&buf), gb, ids)
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

// WriteFile renders gb into the SVG file at path.
func WriteFile(path string, gb *gradebook.Gradebook, ids *Counter) error {
	var buf bytes.Buffer
	if err := Table(&buf, gb, ids); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func drawTable(canvas *svg.SVG, gb *gradebook.Gradebook, ids *Counter) {
	nameBox := DefaultBox()
	nameWidth, _ := nameBox.Outer()
	scoreBox := DefaultBox()
	scoreBox.Width = scoreWidth
	colWidth, _ := scoreBox.Outer()

	width := 2*margin + nameWidth + colWidth*len(gb.Assignments)
	height := 2*margin + rowPitch*len(gb.Students)
	canvas.Start(width, height)

	for row, s := range gb.Students {
		canvas.Translate(margin, row*rowPitch)
		textBox(canvas, ids, s.SortableName, nameBox)

		left := nameWidth
		for _, g := range s.Grades {
			posts := min(maxBarPost, len(g.Posts))
			canvas.Rect(left, 0, posts*barUnit, barHeight, fmt.Sprintf(`fill="%s"`, barFill))

			box := scoreBox
			box.X = left
			if g.IsLate() {
				box.TextFill = lateColor
			}
			textBox(canvas, ids, scoreLabel(g), box)
			left += colWidth
		}
		canvas.Gend()
	}

	canvas.End()
}

func scoreLabel(g gradebook.Grade) string {
	if g.Score == nil {
		return "-"
	}
	return strconv.Itoa(*g.Score)
}
