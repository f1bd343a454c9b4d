package loop

import (
	"time"

	"github.com/tomz197/goalpong/internal/object"
)

// GoalEvent describes a goal scored during a tick.
type GoalEvent struct {
	Goal   object.Side // owner of the goal the ball entered
	Scorer object.Side // side credited with the point
}

// Step advances the match by one fixed timestep: paddles move first, then the
// ball, then the ball is tested against every collider at its new position.
// It reports the goal scored during the tick, if any.
func (s *State) Step(dt time.Duration, in object.Input) (GoalEvent, bool) {
	ctx := object.UpdateContext{Delta: dt, Input: in}

	s.Player.Update(&s.PlayerPaddle, ctx)
	s.Enemy.Update(&s.EnemyPaddle, ctx)

	s.Ball.Advance(dt.Seconds())

	return checkBallCollisions(s)
}
