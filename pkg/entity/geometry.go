package entity

import "github.com/opd-ai/go-duel/pkg/physics"

// Corners returns the closed outline of the ship: the apex, the two base
// corners at heading ±135°, and the apex again.
func (s *Ship) Corners() [4]physics.Vector2D {
	heading := s.Radians()
	spread := physics.DegToRad(CornerSpreadDegrees)

	apex := s.Position.Add(physics.Displacement(s.Radius, heading))
	return [4]physics.Vector2D{
		apex,
		s.Position.Add(physics.Displacement(s.Radius, heading+spread)),
		s.Position.Add(physics.Displacement(s.Radius, heading-spread)),
		apex,
	}
}

// Edges derives the three outline edges from the current pose. The result
// is recomputed on every call.
func (s *Ship) Edges() [3]physics.Edge {
	corners := s.Corners()
	var edges [3]physics.Edge
	for i := range edges {
		edges[i] = physics.NewEdge(corners[i], corners[i+1])
	}
	return edges
}

// Bounds returns the axis-aligned box around all three corners.
func (s *Ship) Bounds() physics.Bounds {
	corners := s.Corners()
	b := physics.BoundsOf(corners[0], corners[1])
	c := corners[2]
	b.MinX = min(b.MinX, c.X)
	b.MaxX = max(b.MaxX, c.X)
	b.MinY = min(b.MinY, c.Y)
	b.MaxY = max(b.MaxY, c.Y)
	return b
}
