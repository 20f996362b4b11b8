package engine

import (
	"github.com/EngoEngine/ecs"

	"github.com/opd-ai/go-duel/pkg/entity"
	"github.com/opd-ai/go-duel/pkg/event"
	"github.com/opd-ai/go-duel/pkg/physics"
)

// System priorities. The world updates higher priorities first.
const (
	ControlPriority   = 40
	MovementPriority  = 30
	CollisionPriority = 20
	CleanupPriority   = 10
)

// ControlSystem applies the held inputs to the controlled ship.
type ControlSystem struct {
	game   *Game
	inputs InputSet
}

// Priority implements ecs.Prioritizer.
func (cs *ControlSystem) Priority() int { return ControlPriority }

// Remove satisfies the ecs.System interface
func (cs *ControlSystem) Remove(basic ecs.BasicEntity) {
	// Not used for control system
}

// Update rotates, thrusts and fires the controlled ship.
func (cs *ControlSystem) Update(dt float32) {
	g := cs.game
	ship := g.controlled
	if ship == nil || cs.inputs == NoInput {
		return
	}

	if cs.inputs.Has(ActionRotateClockwise) {
		ship.RotateClock()
	}
	if cs.inputs.Has(ActionRotateCounterClockwise) {
		ship.RotateCounter()
	}
	if cs.inputs.Has(ActionForward) {
		ship.Thrust(g.Arena)
	}
	if cs.inputs.Has(ActionFire) {
		if p := ship.Fire(); p != nil {
			g.movement.Add(p)
			g.current.Fired = append(g.current.Fired, p.ID())
			g.publish(event.NewProjectileEvent(event.ProjectileFired, cs, g.CurrentTick,
				ship.ID(), p.ID(), p.Position.X, p.Position.Y, p.Degrees))
			g.logger.Debug(g.ctx, "projectile fired",
				"tick", g.CurrentTick, "ship", ship.Name, "x", p.Position.X, "y", p.Position.Y)
		}
	}
}

// MovementSystem advances every tracked body once per tick, in the order
// the bodies were added.
type MovementSystem struct {
	game   *Game
	bodies []entity.Body
	index  map[uint64]int
}

// NewMovementSystem creates an empty movement system bound to g.
func NewMovementSystem(g *Game) *MovementSystem {
	return &MovementSystem{
		game:  g,
		index: make(map[uint64]int),
	}
}

// Priority implements ecs.Prioritizer.
func (ms *MovementSystem) Priority() int { return MovementPriority }

// Add starts tracking body. Adding a tracked body is a no-op.
func (ms *MovementSystem) Add(body entity.Body) {
	if _, ok := ms.index[body.ID()]; ok {
		return
	}
	ms.index[body.ID()] = len(ms.bodies)
	ms.bodies = append(ms.bodies, body)
}

// Remove satisfies the ecs.System interface
func (ms *MovementSystem) Remove(basic ecs.BasicEntity) {
	i, ok := ms.index[basic.ID()]
	if !ok {
		return
	}
	delete(ms.index, basic.ID())
	ms.bodies = append(ms.bodies[:i], ms.bodies[i+1:]...)
	for j := i; j < len(ms.bodies); j++ {
		ms.index[ms.bodies[j].ID()] = j
	}
}

// Len returns the number of tracked bodies.
func (ms *MovementSystem) Len() int { return len(ms.bodies) }

// Update advances every body and records projectile wall bounces.
func (ms *MovementSystem) Update(dt float32) {
	g := ms.game
	for _, body := range ms.bodies {
		body.Advance(g.Arena)

		if body.Kind() != entity.KindProjectile {
			continue
		}
		p := body.(*entity.Projectile)
		if p.LastBounce == 0 {
			continue
		}
		g.current.Bounces = append(g.current.Bounces, Bounce{ProjectileID: p.ID(), Walls: p.LastBounce})
		// projectiles keep no owner reference, so ShipID stays zero
		bounce := event.NewProjectileEvent(event.WallBounce, ms, g.CurrentTick,
			0, p.ID(), p.Position.X, p.Position.Y, p.Degrees)
		bounce.Walls = p.LastBounce.String()
		g.publish(bounce)
	}
}

// CollisionSystem runs ship-vs-ship and projectile-vs-ship checks and
// recolors everything when a contact occurs.
type CollisionSystem struct {
	game *Game
}

// Priority implements ecs.Prioritizer.
func (cs *CollisionSystem) Priority() int { return CollisionPriority }

// Remove satisfies the ecs.System interface
func (cs *CollisionSystem) Remove(basic ecs.BasicEntity) {
	// Not used for collision system
}

// Update detects this tick's contacts and intersection markers.
func (cs *CollisionSystem) Update(dt float32) {
	g := cs.game
	var contacts []entity.Contact
	var markers []physics.Vector2D

	if len(g.Ships) == 2 {
		a, b := g.Ships[0], g.Ships[1]
		markers = append(markers, a.Intersections(b)...)
		if point, ok := a.CheckCollision(b); ok {
			contacts = append(contacts, entity.Contact{
				A: entity.KindShip, B: entity.KindShip,
				AID: a.ID(), BID: b.ID(),
				Point: point,
			})
		}
	}

	for _, ship := range g.Ships {
		target := g.otherShip(ship)
		if target == nil {
			continue
		}
		for _, p := range ship.Projectiles {
			if !p.Active {
				continue
			}
			markers = append(markers, p.ShipIntersections(target)...)
			if point, ok := p.CheckShipCollision(target); ok {
				contacts = append(contacts, entity.Contact{
					A: entity.KindProjectile, B: entity.KindShip,
					AID: p.ID(), BID: target.ID(),
					Point: point,
				})
			}
		}
	}

	g.markers = markers
	g.contacts = contacts
	g.current.Contacts = contacts
	if len(contacts) == 0 {
		return
	}

	for _, ship := range g.Ships {
		ship.Color = g.randomColor()
	}
	g.MarkerColor = g.randomColor()

	for _, c := range contacts {
		eventType := event.ShipCollision
		if c.A == entity.KindProjectile {
			eventType = event.ProjectileHit
		}
		g.publish(event.NewContactEvent(eventType, cs, g.CurrentTick,
			c.A.String(), c.B.String(), c.AID, c.BID, c.Point.X, c.Point.Y))
		g.logger.Debug(g.ctx, "contact",
			"tick", g.CurrentTick, "a", c.A.String(), "b", c.B.String(), "x", c.Point.X, "y", c.Point.Y)
	}
}

// CleanupSystem prunes inactive projectiles after every other system ran.
type CleanupSystem struct {
	game *Game
}

// Priority implements ecs.Prioritizer.
func (cs *CleanupSystem) Priority() int { return CleanupPriority }

// Remove satisfies the ecs.System interface
func (cs *CleanupSystem) Remove(basic ecs.BasicEntity) {
	// Not used for cleanup system
}

// Update removes inactive projectiles from their ships and the world.
func (cs *CleanupSystem) Update(dt float32) {
	g := cs.game
	for _, ship := range g.Ships {
		for _, p := range ship.PruneProjectiles() {
			g.world.RemoveEntity(p.BasicEntity)
			g.current.Pruned++
			g.publish(event.NewProjectileEvent(event.ProjectilePruned, cs, g.CurrentTick,
				ship.ID(), p.ID(), p.Position.X, p.Position.Y, p.Degrees))
		}
	}
}
