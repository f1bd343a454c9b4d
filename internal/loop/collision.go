package loop

import (
	"github.com/tomz197/goalpong/internal/object"
	"github.com/tomz197/goalpong/internal/physics"
)

// checkBallCollisions tests the ball against every collider. A goal resets the
// ball, credits the opponent of the goal's owner and ends the pass; walls and
// paddles reflect the ball.
func checkBallCollisions(s *State) (GoalEvent, bool) {
	for _, c := range s.Colliders() {
		hit := physics.Collide(s.Ball.Bounds(), c.Bounds)
		if hit == physics.CollisionNone {
			continue
		}

		if c.Kind == object.ColliderGoal {
			s.Ball.Reset()
			scorer := s.Score.Credit(c.Owner)
			return GoalEvent{Goal: c.Owner, Scorer: scorer}, true
		}

		reflectBall(&s.Ball, hit)
	}
	return GoalEvent{}, false
}

// reflectBall flips the velocity component on the axis of the hit, but only
// while the ball is still moving into the surface. A ball that stays
// overlapping for several ticks would otherwise flip back and forth.
func reflectBall(b *object.Ball, hit physics.Collision) {
	reflectX := false
	reflectY := false

	switch hit {
	case physics.CollisionLeft:
		reflectX = b.Vel.X > 0
	case physics.CollisionRight:
		reflectX = b.Vel.X < 0
	case physics.CollisionTop:
		reflectY = b.Vel.Y < 0
	case physics.CollisionBottom:
		reflectY = b.Vel.Y > 0
	case physics.CollisionInside:
		// nothing to reflect against
	}

	if reflectX {
		b.Vel.X = -b.Vel.X
	}
	if reflectY {
		b.Vel.Y = -b.Vel.Y
	}
}
