// Package config centralizes all tunable game parameters.
package config

import "time"

// Arena walls, in world units. The origin is the center of the board and Y grows upward.
const (
	LeftWall   = -450.0 // x of the left wall's center line
	RightWall  = 450.0  // x of the right wall's center line
	BottomWall = -250.0 // y of the bottom wall's center line
	TopWall    = 250.0  // y of the top wall's center line

	WallThickness = 10.0
)

// Goals sit on the left and right walls and are slightly thicker so the ball
// reaches them before the wall behind.
const (
	GoalThickness = WallThickness * 1.5
	GoalHeight    = 150.0
)

// Paddles
const (
	PaddleWidth  = 40.0
	PaddleHeight = 120.0
	PaddleGap    = 60.0 // distance between a paddle's center and its side wall

	PlayerSpeed = 700.0 // units per second
	EnemySpeed  = 330.0 // units per second
)

// Ball
const (
	BallSize  = 30.0
	BallSpeed = 400.0 // units per second
)

// Initial ball direction (normalized before use).
const (
	BallDirectionX = 0.5
	BallDirectionY = -0.5
)

// PaddleTopBound is the highest y a paddle center may reach.
const PaddleTopBound = TopWall - WallThickness/2 - PaddleHeight/2

// PaddleBottomBound is the lowest y a paddle center may reach.
const PaddleBottomBound = BottomWall + WallThickness/2 + PaddleHeight/2

// Simulation and render rates.
const (
	TickRate  = 60
	TickTime  = time.Second / TickRate
	FrameRate = 60
	FrameTime = time.Second / FrameRate

	// MaxTicksPerFrame caps catch-up work after a stall so the loop cannot spiral.
	MaxTicksPerFrame = 5
)

// View is the logical canvas size. It covers the arena plus the goal overhang.
const (
	ViewWidth  = RightWall - LeftWall + GoalThickness
	ViewHeight = TopWall - BottomWall + WallThickness
)

// Render limits. Larger terminals get a centered render area with a border.
const (
	MaxTermWidth  = 160
	MaxTermHeight = 50
)
