package physics

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Epsilon is the absolute and relative tolerance used when validating that a
// computed point lies on a line or inside a segment's bounds.
const Epsilon = 1e-6

// ApproxEqual reports whether a and b are equal within Epsilon, either
// absolutely or relative to their magnitude. NaN is never equal to anything.
func ApproxEqual(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	return scalar.EqualWithinAbsOrRel(a, b, Epsilon, Epsilon)
}
