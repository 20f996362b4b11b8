// pkg/physics/vector.go
package physics

import "math"

// Vector2D represents a point or displacement on the play area.
// The y axis grows downward, matching a top-left origin drawing surface.
type Vector2D struct {
	X float64
	Y float64
}

// Add returns the sum of two vectors
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{
		X: v.X + other.X,
		Y: v.Y + other.Y,
	}
}

// Sub returns the difference between two vectors
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{
		X: v.X - other.X,
		Y: v.Y - other.Y,
	}
}

// Scale multiplies the vector by a scalar value
func (v Vector2D) Scale(factor float64) Vector2D {
	return Vector2D{
		X: v.X * factor,
		Y: v.Y * factor,
	}
}

// Length returns the magnitude of the vector
func (v Vector2D) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the distance between two points
func (v Vector2D) Distance(other Vector2D) float64 {
	return v.Sub(other).Length()
}

// Cross returns the z component of the 3D cross product of v and other.
func (v Vector2D) Cross(other Vector2D) float64 {
	return v.X*other.Y - v.Y*other.X
}

// IsFinite reports whether both components are real numbers.
// Degenerate intersection maths yields NaN or Inf components.
func (v Vector2D) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) &&
		!math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// ApproxEqual compares both components within Epsilon.
func (v Vector2D) ApproxEqual(other Vector2D) bool {
	return ApproxEqual(v.X, other.X) && ApproxEqual(v.Y, other.Y)
}

// XDist returns the horizontal component of a displacement of distance
// along angle (radians).
func XDist(distance, angle float64) float64 {
	return distance * math.Cos(angle)
}

// YDist returns the vertical component of a displacement of distance along
// angle (radians). It is negated because screen y grows downward.
func YDist(distance, angle float64) float64 {
	return -distance * math.Sin(angle)
}

// Displacement creates a screen-space vector from an angle and magnitude.
func Displacement(distance, angle float64) Vector2D {
	return Vector2D{
		X: XDist(distance, angle),
		Y: YDist(distance, angle),
	}
}
