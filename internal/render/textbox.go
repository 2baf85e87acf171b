package render

import (
	"fmt"

	svg "github.com/ajstarks/svgo"
)

// Box configures a clipped text box. Text has no measurable extent until
// it is rendered, so the box width is a guess and the clip path keeps
// overflowing text inside it.
type Box struct {
	FontSize   int
	FontFamily string
	Anchor     string
	TextFill   string
	// X and Y place the top-left of the box within the current group.
	X, Y int
	PadX int
	PadY int
	// Width is the clip width of the text.
	Width int
	// Fill paints a background rectangle when non-empty.
	Fill string
}

// DefaultBox returns the standard 10px Arial box, 120px wide.
func DefaultBox() Box {
	return Box{
		FontSize:   10,
		FontFamily: "Arial",
		Anchor:     "start",
		TextFill:   "black",
		PadX:       5,
		PadY:       5,
		Width:      120,
	}
}

// Outer returns the full width and height the box occupies, padding
// included.
func (b Box) Outer() (width, height int) {
	return b.Width + 2*b.PadX, b.FontSize + 2*b.PadY
}

// textBox draws s inside a group translated so that the text baseline
// sits PadY+FontSize below the box top.
func textBox(canvas *svg.SVG, ids *Counter, s string, b Box) {
	clipID := ids.Next()

	canvas.Translate(b.PadX+b.X, b.PadY+b.FontSize+b.Y)
	if b.Fill != "" {
		canvas.Rect(-b.PadX, -b.PadY-b.FontSize, 2*b.PadX+b.Width, 2*b.PadY+b.FontSize,
			fmt.Sprintf(`fill="%s"`, b.Fill))
	}

	canvas.ClipPath(fmt.Sprintf(`id="%s"`, clipID))
	canvas.Rect(0, -b.PadY-b.FontSize, b.Width, 2*b.PadY+b.FontSize)
	canvas.ClipEnd()

	style := fmt.Sprintf("font-size:%dpx;font-family:%s;text-anchor:%s", b.FontSize, b.FontFamily, b.Anchor)
	canvas.Text(0, 0, s, style,
		fmt.Sprintf(`fill="%s"`, b.TextFill),
		fmt.Sprintf(`clip-path="url(#%s)"`, clipID))
	canvas.Gend()
}
