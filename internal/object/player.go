package object

import "github.com/tomz197/goalpong/internal/loop/config"

// PlayerController moves a paddle from the keyboard.
type PlayerController struct {
	Speed float64 // units per second
}

// NewPlayerController creates a controller with the default player speed.
func NewPlayerController() PlayerController {
	return PlayerController{Speed: config.PlayerSpeed}
}

// Direction returns +1 for up, -1 for down and 0 for no key. Up wins when both are held.
func (c PlayerController) Direction(in Input) float64 {
	switch {
	case in.Up:
		return 1
	case in.Down:
		return -1
	default:
		return 0
	}
}

// Update moves p by the held direction over the tick and clamps it to the arena.
func (c PlayerController) Update(p *Paddle, ctx UpdateContext) {
	p.MoveBy(c.Direction(ctx.Input) * c.Speed * ctx.Delta.Seconds())
}
