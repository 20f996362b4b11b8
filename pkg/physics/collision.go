// pkg/physics/collision.go
package physics

import "math"

// Circle represents a circular collision shape
type Circle struct {
	Center Vector2D
	Radius float64
}

// Overlaps reports whether two circles touch or overlap. Ships use it as a
// broad phase before the per-edge tests since every corner lies on the ship's
// bounding circle.
func (c Circle) Overlaps(other Circle) bool {
	return c.Center.Distance(other.Center) <= c.Radius+other.Radius
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64
}

// BoundsOf returns the bounding box of a segment's two endpoints.
func BoundsOf(p1, p2 Vector2D) Bounds {
	return Bounds{
		MinX: math.Min(p1.X, p2.X),
		MaxX: math.Max(p1.X, p2.X),
		MinY: math.Min(p1.Y, p2.Y),
		MaxY: math.Max(p1.Y, p2.Y),
	}
}

// Contains reports whether point lies inside the box, allowing Epsilon of
// slack on each side so points on axis-aligned segments survive rounding.
func (b Bounds) Contains(point Vector2D) bool {
	if !point.IsFinite() {
		return false
	}
	return point.X >= b.MinX-Epsilon &&
		point.X <= b.MaxX+Epsilon &&
		point.Y >= b.MinY-Epsilon &&
		point.Y <= b.MaxY+Epsilon
}

// Width returns the horizontal extent of the box.
func (b Bounds) Width() float64 {
	return b.MaxX - b.MinX
}

// Height returns the vertical extent of the box.
func (b Bounds) Height() float64 {
	return b.MaxY - b.MinY
}
