// Package loop owns the simulation state, the ordered fixed-timestep tick and
// the real-time loop that drives it against a terminal.
package loop

import (
	"fmt"

	"github.com/tomz197/goalpong/internal/loop/config"
	"github.com/tomz197/goalpong/internal/object"
)

// State holds every entity of a match. Cardinalities are fixed: one ball, two
// paddles, four walls, two goals.
type State struct {
	Ball         object.Ball
	PlayerPaddle object.Paddle
	EnemyPaddle  object.Paddle
	Player       object.PlayerController
	Enemy        object.EnemyController
	Walls        [4]object.Wall
	Goals        [2]object.Goal
	Score        object.Scoreboard

	colliders []object.Collider // reused each tick
}

// NewState creates a match with the ball at the center and both paddles
// centered. enemyDir is the enemy paddle's initial direction of travel.
// It panics if the board constants describe an unplayable arena.
func NewState(enemyDir object.Direction) *State {
	mustValidateBoard()

	return &State{
		Ball:         object.NewBall(),
		PlayerPaddle: object.NewPaddle(object.SidePlayer),
		EnemyPaddle:  object.NewPaddle(object.SideEnemy),
		Player:       object.NewPlayerController(),
		Enemy:        object.NewEnemyController(enemyDir),
		Walls:        object.NewWalls(),
		Goals:        object.NewGoals(),
		colliders:    make([]object.Collider, 0, 8),
	}
}

func mustValidateBoard() {
	if config.RightWall-config.LeftWall <= 0 {
		panic(fmt.Sprintf("loop: arena width must be positive, walls at %v and %v", config.LeftWall, config.RightWall))
	}
	if config.TopWall-config.BottomWall <= 0 {
		panic(fmt.Sprintf("loop: arena height must be positive, walls at %v and %v", config.BottomWall, config.TopWall))
	}
	if config.PaddleTopBound < config.PaddleBottomBound {
		panic(fmt.Sprintf("loop: paddle of height %v does not fit the arena", config.PaddleHeight))
	}
}

// Colliders returns every box the ball is tested against, in a fixed order:
// walls, then paddles, then goals. The slice is reused by the next call.
func (s *State) Colliders() []object.Collider {
	s.colliders = s.colliders[:0]
	for i := range s.Walls {
		s.colliders = append(s.colliders, s.Walls[i].Collider())
	}
	s.colliders = append(s.colliders, s.PlayerPaddle.Collider(), s.EnemyPaddle.Collider())
	for i := range s.Goals {
		s.colliders = append(s.colliders, s.Goals[i].Collider())
	}
	return s.colliders
}

// Objects returns the drawables in paint order. Goals follow walls so their
// openings are cut into the walls already drawn.
func (s *State) Objects() []object.Object {
	objs := make([]object.Object, 0, 10)
	for i := range s.Walls {
		objs = append(objs, &s.Walls[i])
	}
	for i := range s.Goals {
		objs = append(objs, &s.Goals[i])
	}
	return append(objs, &s.PlayerPaddle, &s.EnemyPaddle, &s.Ball)
}
