// Package object holds the game entities: the ball, the paddles and their
// controllers, the walls and goals of the board, and the scoreboard.
package object

import (
	"time"

	"github.com/tomz197/goalpong/internal/draw"
	"github.com/tomz197/goalpong/internal/input"
	"github.com/tomz197/goalpong/internal/loop/config"
	"github.com/tomz197/goalpong/internal/physics"
)

// Input is an alias for the input package's Input type.
type Input = input.Input

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Delta time.Duration // fixed timestep
	Input Input
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Canvas *draw.Canvas      // High-resolution canvas (2x vertical)
	Writer *draw.ChunkWriter // Text overlays, positioned in canvas cells
	Styles draw.Styles
}

// Object is anything that can be drawn each frame.
type Object interface {
	Draw(ctx DrawContext) error
}

// Side identifies the owner of a paddle or goal.
type Side int

const (
	SidePlayer Side = iota
	SideEnemy
)

// String returns the side name.
func (s Side) String() string {
	if s == SidePlayer {
		return "player"
	}
	return "enemy"
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SidePlayer {
		return SideEnemy
	}
	return SidePlayer
}

// Canvas origin in world coordinates: the top-left corner of the view.
const (
	viewLeft = config.LeftWall - config.GoalThickness/2
	viewTop  = config.TopWall + config.WallThickness/2
)

// ToCanvas converts world coordinates (origin at the center, Y up) to logical
// canvas coordinates (origin at the top-left, Y down).
func ToCanvas(v physics.Vec2) draw.Point {
	return draw.Point{X: v.X - viewLeft, Y: viewTop - v.Y}
}

// rectToCanvas returns the canvas corners of an axis-aligned world box.
func rectToCanvas(r physics.Rect) (topLeft, bottomRight draw.Point) {
	lo, hi := r.Min(), r.Max()
	return ToCanvas(physics.Vec2{X: lo.X, Y: hi.Y}), ToCanvas(physics.Vec2{X: hi.X, Y: lo.Y})
}
