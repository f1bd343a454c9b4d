package loop

import (
	"fmt"

	"github.com/tomz197/goalpong/internal/draw"
	"github.com/tomz197/goalpong/internal/loop/config"
	"github.com/tomz197/goalpong/internal/object"
)

const (
	controlsHint = "↑/↓ or W/S move · Esc quits"
	idleWarning  = "Still there? Press any key to keep playing"
)

// layout places the render area inside the terminal. Row 0 and the last row
// of the terminal are kept for the border, which also carries the HUD.
type layout struct {
	termW, termH     int
	renderW, renderH int
	offsetCol        int
	offsetRow        int
}

// clampTermSize computes the centered render area for a terminal of the given size.
func clampTermSize(termW, termH int) layout {
	l := layout{
		termW:   termW,
		termH:   termH,
		renderW: min(termW, config.MaxTermWidth),
		renderH: min(termH-2, config.MaxTermHeight),
	}
	if l.renderW < 0 {
		l.renderW = 0
	}
	if l.renderH < 0 {
		l.renderH = 0
	}
	l.offsetCol = (termW - l.renderW) / 2
	l.offsetRow = max((termH-l.renderH)/2, 1)
	return l
}

// empty reports whether there is no room to draw.
func (l layout) empty() bool {
	return l.renderW <= 0 || l.renderH <= 0
}

// applyLayout resizes the canvas and text writer when the terminal changed.
func (rn *runner) applyLayout() error {
	termW, termH, err := draw.TerminalSizeRawWith(rn.opts.TermSizeFunc)
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	if termW == rn.layout.termW && termH == rn.layout.termH {
		return nil
	}

	rn.layout = clampTermSize(termW, termH)
	rn.canvas.Resize(rn.layout.renderW, rn.layout.renderH)
	rn.canvas.SetOffset(rn.layout.offsetCol, rn.layout.offsetRow)
	// Text rows are counted from the top border line.
	rn.cw.SetOffset(rn.layout.offsetCol, rn.layout.offsetRow-1)

	draw.ClearScreen(rn.writer)
	rn.canvas.ForceRedraw()
	return nil
}

// drawFrame paints the board, then the border with the scores and hint
// inlaid, then the idle warning, and flushes everything in chunks.
func (rn *runner) drawFrame() error {
	if err := rn.applyLayout(); err != nil {
		return err
	}
	if rn.layout.empty() {
		return nil
	}

	if rn.idle != rn.wasIdle {
		// The warning was drawn over canvas cells, or is about to be.
		rn.canvas.ForceRedraw()
		rn.wasIdle = rn.idle
	}

	ctx := object.DrawContext{
		Canvas: rn.canvas,
		Writer: rn.cw,
		Styles: rn.styles,
	}

	rn.canvas.Clear()
	for _, obj := range rn.state.Objects() {
		if err := obj.Draw(ctx); err != nil {
			return fmt.Errorf("draw %T: %w", obj, err)
		}
	}
	if err := rn.canvas.Render(rn.cw); err != nil {
		return err
	}
	rn.canvas.RenderBorder(rn.cw)

	if err := rn.state.Score.Draw(ctx); err != nil {
		return err
	}
	if err := rn.hint(ctx).Draw(ctx); err != nil {
		return err
	}
	if rn.idle {
		if err := rn.idleText(ctx).Draw(ctx); err != nil {
			return err
		}
	}

	return rn.cw.Flush()
}

// hint returns the controls line, placed on the bottom border row.
func (rn *runner) hint(ctx object.DrawContext) object.Text {
	if rn.layout.renderW < len([]rune(controlsHint))+4 {
		return object.Text{}
	}
	return object.Text{X: 2, Y: rn.layout.renderH + 2, Value: controlsHint, Style: &ctx.Styles.Hint}
}

// idleText returns the inactivity warning, centered in the render area.
func (rn *runner) idleText(ctx object.DrawContext) object.Text {
	return object.Text{
		X:     (rn.layout.renderW-len(idleWarning))/2 + 1,
		Y:     rn.layout.renderH/2 + 1,
		Value: idleWarning,
		Style: &ctx.Styles.Hint,
	}
}
