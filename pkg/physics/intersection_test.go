package physics

import (
	"math"
	"testing"
)

func TestNewEdge(t *testing.T) {
	t.Run("sloped", func(t *testing.T) {
		edge := NewEdge(Vector2D{X: 0, Y: 2}, Vector2D{X: 2, Y: 0})
		if edge.Slope != -1 {
			t.Errorf("Slope = %v, expected -1", edge.Slope)
		}
		if edge.YIntercept != 2 {
			t.Errorf("YIntercept = %v, expected 2", edge.YIntercept)
		}
		if edge.XIntercept != 2 {
			t.Errorf("XIntercept = %v, expected 2", edge.XIntercept)
		}
		expected := Bounds{MinX: 0, MaxX: 2, MinY: 0, MaxY: 2}
		if edge.Bounds != expected {
			t.Errorf("Bounds = %+v, expected %+v", edge.Bounds, expected)
		}
	})

	t.Run("vertical", func(t *testing.T) {
		edge := NewEdge(Vector2D{X: 3, Y: 10}, Vector2D{X: 3, Y: -4})
		if !edge.Vertical() {
			t.Fatalf("expected vertical edge, slope %v", edge.Slope)
		}
		if !math.IsNaN(edge.YIntercept) {
			t.Errorf("YIntercept = %v, expected NaN", edge.YIntercept)
		}
		if edge.XIntercept != 3 {
			t.Errorf("XIntercept = %v, expected 3", edge.XIntercept)
		}
		if edge.Bounds.MinY != -4 || edge.Bounds.MaxY != 10 {
			t.Errorf("Bounds = %+v", edge.Bounds)
		}
	})

	t.Run("horizontal", func(t *testing.T) {
		edge := NewEdge(Vector2D{X: -1, Y: 7}, Vector2D{X: 5, Y: 7})
		if !edge.Horizontal() {
			t.Fatalf("expected horizontal edge, slope %v", edge.Slope)
		}
		if edge.YIntercept != 7 {
			t.Errorf("YIntercept = %v, expected 7", edge.YIntercept)
		}
		if !math.IsNaN(edge.XIntercept) {
			t.Errorf("XIntercept = %v, expected NaN", edge.XIntercept)
		}
	})
}

func TestEdge_Contains(t *testing.T) {
	edge := NewEdge(Vector2D{X: 0, Y: 0}, Vector2D{X: 4, Y: 4})

	tests := []struct {
		name     string
		point    Vector2D
		expected bool
	}{
		{"midpoint", Vector2D{X: 2, Y: 2}, true},
		{"endpoint", Vector2D{X: 4, Y: 4}, true},
		{"on_line_outside_segment", Vector2D{X: 6, Y: 6}, false},
		{"inside_box_off_line", Vector2D{X: 1, Y: 3}, false},
		{"rounding_drift", Vector2D{X: 1 + 1e-12, Y: 1}, true},
		{"nan", Vector2D{X: math.NaN(), Y: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := edge.Contains(tt.point); got != tt.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tt.point, got, tt.expected)
			}
		})
	}
}

func TestEdge_Span(t *testing.T) {
	edge := NewEdge(Vector2D{X: 1, Y: 1}, Vector2D{X: 2, Y: 2})
	a, b := edge.Span(10, 20)
	if a != (Vector2D{X: 0, Y: 0}) || b != (Vector2D{X: 10, Y: 10}) {
		t.Errorf("Span() = %v, %v", a, b)
	}

	vertical := NewEdge(Vector2D{X: 4, Y: 1}, Vector2D{X: 4, Y: 2})
	a, b = vertical.Span(10, 20)
	if a != (Vector2D{X: 4, Y: 0}) || b != (Vector2D{X: 4, Y: 20}) {
		t.Errorf("vertical Span() = %v, %v", a, b)
	}
}

func TestLineLineIntersection(t *testing.T) {
	tests := []struct {
		name     string
		l1       Edge
		l2       Edge
		expected Vector2D
		ok       bool
	}{
		{
			name:     "crossing_diagonals",
			l1:       NewEdge(Vector2D{X: 0, Y: 0}, Vector2D{X: 2, Y: 2}),
			l2:       NewEdge(Vector2D{X: 0, Y: 2}, Vector2D{X: 2, Y: 0}),
			expected: Vector2D{X: 1, Y: 1},
			ok:       true,
		},
		{
			name:     "first_vertical",
			l1:       NewEdge(Vector2D{X: 3, Y: -5}, Vector2D{X: 3, Y: 5}),
			l2:       NewEdge(Vector2D{X: 0, Y: 1}, Vector2D{X: 1, Y: 3}),
			expected: Vector2D{X: 3, Y: 7},
			ok:       true,
		},
		{
			name:     "second_vertical",
			l1:       NewEdge(Vector2D{X: 0, Y: 1}, Vector2D{X: 1, Y: 3}),
			l2:       NewEdge(Vector2D{X: 3, Y: -5}, Vector2D{X: 3, Y: 5}),
			expected: Vector2D{X: 3, Y: 7},
			ok:       true,
		},
		{
			name: "both_vertical",
			l1:   NewEdge(Vector2D{X: 1, Y: 0}, Vector2D{X: 1, Y: 5}),
			l2:   NewEdge(Vector2D{X: 2, Y: 0}, Vector2D{X: 2, Y: 5}),
			ok:   false,
		},
		{
			name: "parallel",
			l1:   NewEdge(Vector2D{X: 0, Y: 0}, Vector2D{X: 1, Y: 1}),
			l2:   NewEdge(Vector2D{X: 0, Y: 1}, Vector2D{X: 1, Y: 2}),
			ok:   false,
		},
		{
			name:     "infinite_lines_not_segments",
			l1:       NewEdge(Vector2D{X: 0, Y: 0}, Vector2D{X: 1, Y: 0}),
			l2:       NewEdge(Vector2D{X: 10, Y: 10}, Vector2D{X: 11, Y: 11}),
			expected: Vector2D{X: 0, Y: 0},
			ok:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			point, ok := LineLineIntersection(tt.l1, tt.l2)
			if ok != tt.ok {
				t.Fatalf("LineLineIntersection() ok = %v, expected %v (point %v)", ok, tt.ok, point)
			}
			if ok && !point.ApproxEqual(tt.expected) {
				t.Errorf("LineLineIntersection() = %v, expected %v", point, tt.expected)
			}
		})
	}
}

func TestCircleLineIntersection(t *testing.T) {
	tests := []struct {
		name     string
		circle   Circle
		line     Edge
		expected []Vector2D
	}{
		{
			name:     "horizontal_through_center",
			circle:   Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 5},
			line:     NewEdge(Vector2D{X: -10, Y: 0}, Vector2D{X: 10, Y: 0}),
			expected: []Vector2D{{X: -5, Y: 0}, {X: 5, Y: 0}},
		},
		{
			name:     "tangent",
			circle:   Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 5},
			line:     NewEdge(Vector2D{X: -10, Y: 5}, Vector2D{X: 10, Y: 5}),
			expected: []Vector2D{{X: 0, Y: 5}, {X: 0, Y: 5}},
		},
		{
			name:     "diagonal",
			circle:   Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 5},
			line:     NewEdge(Vector2D{X: -4, Y: -3}, Vector2D{X: 3, Y: 4}),
			expected: []Vector2D{{X: -4, Y: -3}, {X: 3, Y: 4}},
		},
		{
			name:     "vertical",
			circle:   Circle{Center: Vector2D{X: 2, Y: 3}, Radius: 5},
			line:     NewEdge(Vector2D{X: 5, Y: -10}, Vector2D{X: 5, Y: 10}),
			expected: []Vector2D{{X: 5, Y: -1}, {X: 5, Y: 7}},
		},
		{
			name:   "miss",
			circle: Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 1},
			line:   NewEdge(Vector2D{X: -10, Y: 4}, Vector2D{X: 10, Y: 4}),
		},
		{
			name:   "vertical_miss",
			circle: Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 1},
			line:   NewEdge(Vector2D{X: 4, Y: -1}, Vector2D{X: 4, Y: 1}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := CircleLineIntersection(tt.circle, tt.line)
			if len(points) != len(tt.expected) {
				t.Fatalf("CircleLineIntersection() returned %d points (%v), expected %d", len(points), points, len(tt.expected))
			}
			for i, p := range points {
				if !p.ApproxEqual(tt.expected[i]) {
					t.Errorf("point %d = %v, expected %v", i, p, tt.expected[i])
				}
			}
		})
	}
}

func TestCircle_Overlaps(t *testing.T) {
	tests := []struct {
		name     string
		circle1  Circle
		circle2  Circle
		expected bool
	}{
		{
			name:     "circles_touching",
			circle1:  Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 5},
			circle2:  Circle{Center: Vector2D{X: 10, Y: 0}, Radius: 5},
			expected: true,
		},
		{
			name:     "circles_overlapping",
			circle1:  Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 5},
			circle2:  Circle{Center: Vector2D{X: 5, Y: 0}, Radius: 5},
			expected: true,
		},
		{
			name:     "circles_apart",
			circle1:  Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 5},
			circle2:  Circle{Center: Vector2D{X: 15, Y: 0}, Radius: 5},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.circle1.Overlaps(tt.circle2); got != tt.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestBounds_Contains(t *testing.T) {
	bounds := BoundsOf(Vector2D{X: 10, Y: 0}, Vector2D{X: 0, Y: 20})

	tests := []struct {
		name     string
		point    Vector2D
		expected bool
	}{
		{"inside", Vector2D{X: 5, Y: 5}, true},
		{"corner", Vector2D{X: 10, Y: 20}, true},
		{"outside_x", Vector2D{X: 11, Y: 5}, false},
		{"outside_y", Vector2D{X: 5, Y: -1}, false},
		{"infinite", Vector2D{X: math.Inf(1), Y: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bounds.Contains(tt.point); got != tt.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tt.point, got, tt.expected)
			}
		})
	}
	if bounds.Width() != 10 || bounds.Height() != 20 {
		t.Errorf("Width/Height = %v/%v", bounds.Width(), bounds.Height())
	}
}
