package object

import (
	"github.com/tomz197/goalpong/internal/loop/config"
	"github.com/tomz197/goalpong/internal/physics"
)

// Ball is the single moving body of the game.
type Ball struct {
	Pos  physics.Vec2
	Vel  physics.Vec2
	Size physics.Vec2
}

// BallStart is where the ball spawns and returns to after every goal.
var BallStart = physics.Vec2{}

// BallInitialVelocity returns the fixed launch velocity: the initial direction
// normalized and scaled to the ball speed.
func BallInitialVelocity() physics.Vec2 {
	return physics.Vec2{X: config.BallDirectionX, Y: config.BallDirectionY}.
		Normalize().
		Scale(config.BallSpeed)
}

// NewBall creates a ball at the start position with the initial velocity.
func NewBall() Ball {
	return Ball{
		Pos:  BallStart,
		Vel:  BallInitialVelocity(),
		Size: physics.Vec2{X: config.BallSize, Y: config.BallSize},
	}
}

// Bounds returns the ball's bounding box.
func (b *Ball) Bounds() physics.Rect {
	return physics.Rect{Center: b.Pos, Size: b.Size}
}

// Advance moves the ball by its velocity over dt seconds.
func (b *Ball) Advance(dt float64) {
	b.Pos = physics.Integrate(b.Pos, b.Vel, dt)
}

// Reset returns the ball to the start position with the initial velocity.
func (b *Ball) Reset() {
	b.Pos = BallStart
	b.Vel = BallInitialVelocity()
}

// Draw renders the ball as a filled circle.
func (b *Ball) Draw(ctx DrawContext) error {
	ctx.Canvas.FillCircle(ToCanvas(b.Pos), b.Size.X/2)
	return nil
}
