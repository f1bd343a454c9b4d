package object

import (
	"github.com/tomz197/goalpong/internal/loop/config"
	"github.com/tomz197/goalpong/internal/physics"
)

// Paddle is a vertical bat. Only its Y moves; X is fixed by its side.
type Paddle struct {
	Pos  physics.Vec2
	Size physics.Vec2
	Side Side
}

// NewPaddle places a paddle in front of its side wall, vertically centered.
// The player defends the left side, the enemy the right.
func NewPaddle(side Side) Paddle {
	x := config.LeftWall + config.PaddleGap
	if side == SideEnemy {
		x = config.RightWall - config.PaddleGap
	}
	return Paddle{
		Pos:  physics.Vec2{X: x},
		Size: physics.Vec2{X: config.PaddleWidth, Y: config.PaddleHeight},
		Side: side,
	}
}

// Bounds returns the paddle's bounding box.
func (p *Paddle) Bounds() physics.Rect {
	return physics.Rect{Center: p.Pos, Size: p.Size}
}

// MoveBy shifts the paddle vertically and clamps it inside the arena.
func (p *Paddle) MoveBy(dy float64) {
	p.Pos.Y = physics.Clamp(p.Pos.Y+dy, config.PaddleBottomBound, config.PaddleTopBound)
}

// Collider returns the paddle as a bounce surface.
func (p *Paddle) Collider() Collider {
	return Collider{Kind: ColliderPaddle, Bounds: p.Bounds(), Owner: p.Side}
}

// Draw renders the paddle as a filled rectangle.
func (p *Paddle) Draw(ctx DrawContext) error {
	tl, br := rectToCanvas(p.Bounds())
	ctx.Canvas.FillRect(tl, br)
	return nil
}
