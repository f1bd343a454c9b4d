package object

import "github.com/charmbracelet/lipgloss"

// Text is a simple drawable text object.
// Coordinates are 1-based cells of the render area.
type Text struct {
	X     int
	Y     int
	Value string
	Style *lipgloss.Style // nil renders plain text
}

// Draw writes the text at its position.
func (t Text) Draw(ctx DrawContext) error {
	if t.Value == "" || ctx.Writer == nil {
		return nil
	}
	x := t.X
	y := t.Y
	if x < 1 {
		x = 1
	}
	if y < 1 {
		y = 1
	}
	value := t.Value
	if t.Style != nil {
		value = t.Style.Render(value)
	}
	ctx.Writer.WriteAt(x, y, value)
	return nil
}
