package object

import (
	"math/rand"
	"time"

	"github.com/tomz197/goalpong/internal/loop/config"
)

// Direction is the enemy paddle's direction of travel.
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
)

// String returns the direction name.
func (d Direction) String() string {
	if d == DirectionUp {
		return "up"
	}
	return "down"
}

// sign returns +1 for up and -1 for down.
func (d Direction) sign() float64 {
	if d == DirectionUp {
		return 1
	}
	return -1
}

// NewRand returns a random source seeded with seed, or from the clock when
// seed is 0.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// RandomDirection picks up or down with equal probability.
func RandomDirection(r *rand.Rand) Direction {
	if r.Intn(2) == 0 {
		return DirectionUp
	}
	return DirectionDown
}

// EnemyController sweeps a paddle between the arena bounds.
// It flips direction once the paddle sits exactly on the bound it is heading for.
type EnemyController struct {
	Speed     float64 // units per second
	Direction Direction
}

// NewEnemyController creates a controller with the default enemy speed.
func NewEnemyController(dir Direction) EnemyController {
	return EnemyController{Speed: config.EnemySpeed, Direction: dir}
}

// Update flips direction at a reached bound, then moves p and clamps it.
func (c *EnemyController) Update(p *Paddle, ctx UpdateContext) {
	switch c.Direction {
	case DirectionUp:
		if p.Pos.Y == config.PaddleTopBound {
			c.Direction = DirectionDown
		}
	case DirectionDown:
		if p.Pos.Y == config.PaddleBottomBound {
			c.Direction = DirectionUp
		}
	}

	p.MoveBy(c.Direction.sign() * c.Speed * ctx.Delta.Seconds())
}
