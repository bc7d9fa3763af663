package sim

import (
	"github.com/jakecoffman/cp"

	"roomcrawler/common"
)

// Rect is an axis-aligned rectangle in screen space.
type Rect struct {
	X, Y float64
	W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

func (r Rect) Center() cp.Vector {
	return cp.Vector{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Inset shrinks the rectangle by m on every side.
func (r Rect) Inset(m float64) Rect {
	return Rect{X: r.X + m, Y: r.Y + m, W: r.W - 2*m, H: r.H - 2*m}
}

// Expand grows the rectangle by m on every side.
func (r Rect) Expand(m float64) Rect {
	return r.Inset(-m)
}

// ClampVec returns v constrained to the rectangle.
func (r Rect) ClampVec(v cp.Vector) cp.Vector {
	return cp.Vector{
		X: common.Clamp(v.X, r.X, r.Right()),
		Y: common.Clamp(v.Y, r.Y, r.Bottom()),
	}
}

// Contains reports whether v lies inside the rectangle, edges included.
func (r Rect) Contains(v cp.Vector) bool {
	return v.X >= r.X && v.X <= r.Right() && v.Y >= r.Y && v.Y <= r.Bottom()
}

// CirclesOverlap reports whether two circles touch or intersect.
func CirclesOverlap(a cp.Vector, ra float64, b cp.Vector, rb float64) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	rr := ra + rb
	return dx*dx+dy*dy <= rr*rr
}

// CircleRectOverlap reports whether a circle touches or intersects an
// axis-aligned rectangle.
func CircleRectOverlap(c cp.Vector, r float64, rc Rect) bool {
	n := rc.ClampVec(c)
	dx := c.X - n.X
	dy := c.Y - n.Y
	return dx*dx+dy*dy <= r*r
}
