package object

import (
	"github.com/tomz197/goalpong/internal/loop/config"
	"github.com/tomz197/goalpong/internal/physics"
)

// ColliderKind tells the collision pass how to respond to a hit.
type ColliderKind int

const (
	ColliderWall ColliderKind = iota
	ColliderPaddle
	ColliderGoal
)

// String returns the kind name.
func (k ColliderKind) String() string {
	switch k {
	case ColliderWall:
		return "wall"
	case ColliderPaddle:
		return "paddle"
	case ColliderGoal:
		return "goal"
	default:
		return "unknown"
	}
}

// Collider is a box the ball is tested against each tick.
// Owner is meaningful for paddles and goals.
type Collider struct {
	Kind   ColliderKind
	Bounds physics.Rect
	Owner  Side
}

// WallLocation names one of the four arena walls.
type WallLocation int

const (
	WallLeft WallLocation = iota
	WallRight
	WallBottom
	WallTop
)

// Wall is a static bounce surface.
type Wall struct {
	Location WallLocation
	Bounds   physics.Rect
}

// NewWall builds the wall at loc. Side walls span the arena height, top and
// bottom walls its width; both overhang by half a thickness to close the corners.
func NewWall(loc WallLocation) Wall {
	width := config.RightWall - config.LeftWall
	height := config.TopWall - config.BottomWall

	var center, size physics.Vec2
	switch loc {
	case WallLeft:
		center = physics.Vec2{X: config.LeftWall}
		size = physics.Vec2{X: config.WallThickness, Y: height + config.WallThickness}
	case WallRight:
		center = physics.Vec2{X: config.RightWall}
		size = physics.Vec2{X: config.WallThickness, Y: height + config.WallThickness}
	case WallBottom:
		center = physics.Vec2{Y: config.BottomWall}
		size = physics.Vec2{X: width + config.WallThickness, Y: config.WallThickness}
	case WallTop:
		center = physics.Vec2{Y: config.TopWall}
		size = physics.Vec2{X: width + config.WallThickness, Y: config.WallThickness}
	}
	return Wall{Location: loc, Bounds: physics.Rect{Center: center, Size: size}}
}

// NewWalls builds the four arena walls: left, right, bottom, top.
func NewWalls() [4]Wall {
	return [4]Wall{
		NewWall(WallLeft),
		NewWall(WallRight),
		NewWall(WallBottom),
		NewWall(WallTop),
	}
}

// Collider returns the wall as a bounce surface.
func (w *Wall) Collider() Collider {
	return Collider{Kind: ColliderWall, Bounds: w.Bounds}
}

// Draw renders the wall as a filled rectangle.
func (w *Wall) Draw(ctx DrawContext) error {
	tl, br := rectToCanvas(w.Bounds)
	ctx.Canvas.FillRect(tl, br)
	return nil
}

// Goal is a scoring zone on a side wall. A ball entering the goal owned by
// one side scores for the other.
type Goal struct {
	Owner  Side
	Bounds physics.Rect
}

// NewGoal builds the goal defended by owner: the player's goal sits on the
// left wall, the enemy's on the right.
func NewGoal(owner Side) Goal {
	x := config.LeftWall
	if owner == SideEnemy {
		x = config.RightWall
	}
	return Goal{
		Owner: owner,
		Bounds: physics.Rect{
			Center: physics.Vec2{X: x},
			Size:   physics.Vec2{X: config.GoalThickness, Y: config.GoalHeight + config.GoalThickness},
		},
	}
}

// NewGoals builds both goals: player (left) then enemy (right).
func NewGoals() [2]Goal {
	return [2]Goal{NewGoal(SidePlayer), NewGoal(SideEnemy)}
}

// Collider returns the goal as a scoring trigger.
func (g *Goal) Collider() Collider {
	return Collider{Kind: ColliderGoal, Bounds: g.Bounds, Owner: g.Owner}
}

// Draw cuts the goal opening out of the wall behind it.
func (g *Goal) Draw(ctx DrawContext) error {
	tl, br := rectToCanvas(g.Bounds)
	ctx.Canvas.EraseRect(tl, br)
	return nil
}
