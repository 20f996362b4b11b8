package physics

import "math"

// Arena is the read-only context handed to every per-tick operation.
type Arena struct {
	Width       float64
	Height      float64
	RefreshRate float64 // ticks per second
}

// TickMillis returns the duration of one tick in milliseconds.
func (a Arena) TickMillis() float64 {
	return 1000 / a.RefreshRate
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// NormalizeDegrees maps any finite angle into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// -tiny + 360 rounds up to 360
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// KinematicBody is the shared pose and motion state of ships and projectiles.
// Degrees is the canonical heading and stays in [0, 360) after every mutation
// made through the methods below.
type KinematicBody struct {
	Position      Vector2D
	Degrees       float64
	Speed         float64 // distance units per tick
	RotationSpeed float64 // degrees per tick
	Radius        float64
}

// Radians returns the heading in radians.
func (b *KinematicBody) Radians() float64 {
	return DegToRad(b.Degrees)
}

// SetRadians sets the heading from a radian value.
func (b *KinematicBody) SetRadians(rad float64) {
	b.Degrees = NormalizeDegrees(RadToDeg(rad))
}

// NormalizeHeading re-normalizes Degrees after a direct field assignment.
func (b *KinematicBody) NormalizeHeading() {
	b.Degrees = NormalizeDegrees(b.Degrees)
}

// Move displaces the body by distance along angle (radians).
func (b *KinematicBody) Move(distance, angle float64) {
	b.Position = b.Position.Add(Displacement(distance, angle))
}

// MoveForward displaces the body by Speed along its heading.
func (b *KinematicBody) MoveForward() {
	b.Move(b.Speed, b.Radians())
}

// Rotate turns the body by deg degrees.
func (b *KinematicBody) Rotate(deg float64) {
	b.Degrees = NormalizeDegrees(b.Degrees + deg)
}

// RotateCounter turns counterclockwise by RotationSpeed.
func (b *KinematicBody) RotateCounter() {
	b.Rotate(b.RotationSpeed)
}

// RotateClock turns clockwise by RotationSpeed.
func (b *KinematicBody) RotateClock() {
	b.Rotate(-b.RotationSpeed)
}

// ClampToBounds keeps the body's circle inside a width x height area.
// Each axis is handled independently. On an axis shorter than the circle's
// diameter the body is centered instead.
func (b *KinematicBody) ClampToBounds(width, height float64) {
	b.Position.X = clampAxis(b.Position.X, b.Radius, width)
	b.Position.Y = clampAxis(b.Position.Y, b.Radius, height)
}

func clampAxis(v, radius, extent float64) float64 {
	switch {
	case 2*radius > extent:
		return extent / 2
	case v-radius < 0:
		return radius
	case v+radius > extent:
		return extent - radius
	}
	return v
}

// Collider returns the body's bounding circle.
func (b *KinematicBody) Collider() Circle {
	return Circle{Center: b.Position, Radius: b.Radius}
}
