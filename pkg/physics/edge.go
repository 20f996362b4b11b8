package physics

import "math"

// Edge is a finite segment with the coefficients of its infinite line.
//
// Slope is +Inf or -Inf for a vertical segment; YIntercept is then NaN and
// XIntercept holds the line's x. XIntercept is NaN for a horizontal segment.
type Edge struct {
	P1         Vector2D
	P2         Vector2D
	Slope      float64
	YIntercept float64
	XIntercept float64
	Bounds     Bounds
}

// NewEdge derives line coefficients and the bounding box from two endpoints.
func NewEdge(p1, p2 Vector2D) Edge {
	slope := (p2.Y - p1.Y) / (p2.X - p1.X)

	yInt := math.NaN()
	xInt := math.NaN()
	switch {
	case math.IsInf(slope, 0):
		xInt = p2.X
	case slope == 0:
		yInt = p2.Y
	default:
		yInt = p2.Y - slope*p2.X
		xInt = -yInt / slope
	}

	return Edge{
		P1:         p1,
		P2:         p2,
		Slope:      slope,
		YIntercept: yInt,
		XIntercept: xInt,
		Bounds:     BoundsOf(p1, p2),
	}
}

// Vertical reports whether the edge's line is parallel to the y axis.
func (e Edge) Vertical() bool {
	return math.IsInf(e.Slope, 0)
}

// Horizontal reports whether the edge's line is parallel to the x axis.
func (e Edge) Horizontal() bool {
	return e.Slope == 0
}

// YAt evaluates the line equation. It is NaN for vertical edges.
func (e Edge) YAt(x float64) float64 {
	if e.Vertical() {
		return math.NaN()
	}
	return e.Slope*x + e.YIntercept
}

// OnLine reports whether point satisfies the edge's infinite line equation.
// The residual is measured as the perpendicular distance to the line, scaled
// by the magnitude of the coordinates involved.
func (e Edge) OnLine(point Vector2D) bool {
	if !point.IsFinite() {
		return false
	}
	dir := e.P2.Sub(e.P1)
	length := dir.Length()
	if length == 0 {
		return point.ApproxEqual(e.P1)
	}
	dist := math.Abs(dir.Cross(point.Sub(e.P1))) / length
	scale := math.Max(1, math.Max(math.Abs(point.X), math.Abs(point.Y)))
	return dist <= Epsilon*scale
}

// Contains reports whether point lies on the finite segment: on the line and
// inside the bounding box. An infinite-line intersection can fall outside the
// segment, which is why both tests are needed.
func (e Edge) Contains(point Vector2D) bool {
	return e.OnLine(point) && e.Bounds.Contains(point)
}

// Span returns the endpoints of the edge's infinite line clipped to the
// x range [0, width] (or y range [0, height] when vertical).
func (e Edge) Span(width, height float64) (Vector2D, Vector2D) {
	if e.Vertical() {
		return Vector2D{X: e.XIntercept, Y: 0}, Vector2D{X: e.XIntercept, Y: height}
	}
	return Vector2D{X: 0, Y: e.YIntercept}, Vector2D{X: width, Y: e.YAt(width)}
}
