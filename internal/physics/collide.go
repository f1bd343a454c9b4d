package physics

import "math"

// Rect is an axis-aligned box described by its center and full size.
type Rect struct {
	Center Vec2
	Size   Vec2
}

// Min returns the bottom-left corner.
func (r Rect) Min() Vec2 {
	return r.Center.Sub(r.Size.Scale(0.5))
}

// Max returns the top-right corner.
func (r Rect) Max() Vec2 {
	return r.Center.Add(r.Size.Scale(0.5))
}

// Overlaps reports whether r and o share interior area. Touching edges do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	aMin, aMax := r.Min(), r.Max()
	bMin, bMax := o.Min(), o.Max()
	return aMin.X < bMax.X && aMax.X > bMin.X && aMin.Y < bMax.Y && aMax.Y > bMin.Y
}

// Collision names the side of the other box that a box penetrates.
type Collision int

const (
	CollisionNone   Collision = iota // boxes do not overlap
	CollisionLeft                    // a straddles b's left edge
	CollisionRight                   // a straddles b's right edge
	CollisionTop                     // a straddles b's top edge
	CollisionBottom                  // a straddles b's bottom edge
	CollisionInside                  // no edge is straddled on the chosen axis
)

// String returns the collision side name.
func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionLeft:
		return "left"
	case CollisionRight:
		return "right"
	case CollisionTop:
		return "top"
	case CollisionBottom:
		return "bottom"
	case CollisionInside:
		return "inside"
	default:
		return "unknown"
	}
}

// Collide classifies how box a overlaps box b.
//
// Each axis is classified on its own: a box straddling one edge of b on that
// axis yields the matching side together with its penetration depth, any
// other overlap on the axis is Inside with infinite depth. The axis with the
// shallower penetration decides the result; on a tie X wins.
func Collide(a, b Rect) Collision {
	if !a.Overlaps(b) {
		return CollisionNone
	}

	aMin, aMax := a.Min(), a.Max()
	bMin, bMax := b.Min(), b.Max()

	xSide, xDepth := CollisionInside, math.Inf(-1)
	switch {
	case aMin.X < bMin.X && aMax.X > bMin.X && aMax.X < bMax.X:
		xSide, xDepth = CollisionLeft, bMin.X-aMax.X
	case aMin.X > bMin.X && aMin.X < bMax.X && aMax.X > bMax.X:
		xSide, xDepth = CollisionRight, aMin.X-bMax.X
	}

	ySide, yDepth := CollisionInside, math.Inf(-1)
	switch {
	case aMin.Y < bMin.Y && aMax.Y > bMin.Y && aMax.Y < bMax.Y:
		ySide, yDepth = CollisionBottom, bMin.Y-aMax.Y
	case aMin.Y > bMin.Y && aMin.Y < bMax.Y && aMax.Y > bMax.Y:
		ySide, yDepth = CollisionTop, aMin.Y-bMax.Y
	}

	if math.Abs(yDepth) < math.Abs(xDepth) {
		return ySide
	}
	return xSide
}
