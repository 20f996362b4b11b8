package entity

import "github.com/opd-ai/go-duel/pkg/physics"

// CheckCollision tests every edge of s against every edge of other and
// returns the first line intersection that lies on both finite segments.
func (s *Ship) CheckCollision(other *Ship) (physics.Vector2D, bool) {
	if other == nil || other == s {
		return physics.Vector2D{}, false
	}
	if !s.Collider().Overlaps(other.Collider()) {
		return physics.Vector2D{}, false
	}

	theirs := other.Edges()
	for _, l1 := range s.Edges() {
		for _, l2 := range theirs {
			point, ok := physics.LineLineIntersection(l1, l2)
			if !ok {
				continue
			}
			if l1.Contains(point) && l2.Contains(point) {
				return point, true
			}
		}
	}
	return physics.Vector2D{}, false
}

// Intersections returns every infinite-line intersection between the two
// outlines without segment validation. The debug overlay draws them.
func (s *Ship) Intersections(other *Ship) []physics.Vector2D {
	var points []physics.Vector2D
	theirs := other.Edges()
	for _, l1 := range s.Edges() {
		for _, l2 := range theirs {
			if point, ok := physics.LineLineIntersection(l1, l2); ok {
				points = append(points, point)
			}
		}
	}
	return points
}

// CheckShipCollision tests the projectile's circle against every edge of
// ship. The first hit on a finite edge deactivates the projectile, so a
// projectile reports at most one collision over its lifetime.
func (p *Projectile) CheckShipCollision(ship *Ship) (physics.Vector2D, bool) {
	if !p.Active || ship == nil {
		return physics.Vector2D{}, false
	}
	circle := p.Collider()
	if !circle.Overlaps(ship.Collider()) {
		return physics.Vector2D{}, false
	}

	for _, edge := range ship.Edges() {
		for _, point := range physics.CircleLineIntersection(circle, edge) {
			if edge.Contains(point) {
				p.Active = false
				return point, true
			}
		}
	}
	return physics.Vector2D{}, false
}

// ShipIntersections returns the raw circle-line intersections against each
// of ship's edge lines.
func (p *Projectile) ShipIntersections(ship *Ship) []physics.Vector2D {
	var points []physics.Vector2D
	circle := p.Collider()
	for _, edge := range ship.Edges() {
		points = append(points, physics.CircleLineIntersection(circle, edge)...)
	}
	return points
}
