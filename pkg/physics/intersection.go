package physics

import "math"

// LineLineIntersection returns the intersection of the two edges' infinite
// lines. Parallel lines, including two vertical ones, report false.
func LineLineIntersection(l1, l2 Edge) (Vector2D, bool) {
	switch {
	case l1.Vertical() && l2.Vertical():
		return Vector2D{}, false
	case l1.Vertical():
		x := l1.XIntercept
		return finite(Vector2D{X: x, Y: l2.YAt(x)})
	case l2.Vertical():
		return LineLineIntersection(l2, l1)
	case l1.Slope == l2.Slope:
		return Vector2D{}, false
	}

	x := (l2.YIntercept - l1.YIntercept) / (l1.Slope - l2.Slope)
	return finite(Vector2D{X: x, Y: l1.YAt(x)})
}

// CircleLineIntersection returns the points where the edge's infinite line
// crosses the circle, lowest x (or y, for vertical lines) first. A tangent
// line yields the same point twice; a miss yields nil.
func CircleLineIntersection(c Circle, line Edge) []Vector2D {
	h, k, r := c.Center.X, c.Center.Y, c.Radius

	if line.Vertical() {
		dx := line.XIntercept - h
		disc := r*r - dx*dx
		if disc < 0 || math.IsNaN(disc) {
			return nil
		}
		root := math.Sqrt(disc)
		return []Vector2D{
			{X: line.XIntercept, Y: k - root},
			{X: line.XIntercept, Y: k + root},
		}
	}

	// (1+m²)x² + 2(m(b-k) - h)x + h² + (b-k)² - r² = 0
	m, b := line.Slope, line.YIntercept
	qa := 1 + m*m
	qb := 2 * (m*(b-k) - h)
	qc := h*h + (b-k)*(b-k) - r*r

	disc := qb*qb - 4*qa*qc
	if disc < 0 || math.IsNaN(disc) {
		return nil
	}
	root := math.Sqrt(disc)
	x1 := (-qb - root) / (2 * qa)
	x2 := (-qb + root) / (2 * qa)
	return []Vector2D{
		{X: x1, Y: line.YAt(x1)},
		{X: x2, Y: line.YAt(x2)},
	}
}

func finite(p Vector2D) (Vector2D, bool) {
	if !p.IsFinite() {
		return Vector2D{}, false
	}
	return p, true
}
