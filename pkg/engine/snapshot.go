package engine

import (
	"github.com/opd-ai/go-duel/pkg/entity"
	"github.com/opd-ai/go-duel/pkg/physics"
)

// Snapshot is a read-only copy of everything a renderer draws.
type Snapshot struct {
	Tick        uint64
	Width       float64
	Height      float64
	ShowLines   bool
	MarkerColor string
	Ships       []ShipView
	Contacts    []physics.Vector2D
	Markers     []physics.Vector2D
}

// ShipView is the drawable state of one ship.
type ShipView struct {
	ID          uint64
	Name        string
	Color       string
	Position    physics.Vector2D
	Degrees     float64
	Radians     float64
	Radius      float64
	FireReady   bool
	Corners     [4]physics.Vector2D
	Edges       [3]physics.Edge
	Projectiles []ProjectileView
}

// ProjectileView is the drawable state of one projectile.
type ProjectileView struct {
	ID       uint64
	Position physics.Vector2D
	Radius   float64
	Degrees  float64
	Color    string
}

// Snapshot copies the current state for rendering.
func (g *Game) Snapshot() Snapshot {
	g.EntityLock.RLock()
	defer g.EntityLock.RUnlock()

	snap := Snapshot{
		Tick:        g.CurrentTick,
		Width:       g.Arena.Width,
		Height:      g.Arena.Height,
		ShowLines:   g.Config.ShowLines,
		MarkerColor: g.MarkerColor,
		Ships:       make([]ShipView, 0, len(g.Ships)),
		Markers:     append([]physics.Vector2D(nil), g.markers...),
	}
	for _, c := range g.contacts {
		snap.Contacts = append(snap.Contacts, c.Point)
	}
	for _, ship := range g.Ships {
		snap.Ships = append(snap.Ships, viewShip(ship))
	}
	return snap
}

func viewShip(ship *entity.Ship) ShipView {
	view := ShipView{
		ID:        ship.ID(),
		Name:      ship.Name,
		Color:     ship.Color,
		Position:  ship.Position,
		Degrees:   ship.Degrees,
		Radians:   ship.Radians(),
		Radius:    ship.Radius,
		FireReady: ship.CanFire(),
		Corners:   ship.Corners(),
		Edges:     ship.Edges(),
	}
	for _, p := range ship.Projectiles {
		if !p.Active {
			continue
		}
		view.Projectiles = append(view.Projectiles, ProjectileView{
			ID:       p.ID(),
			Position: p.Position,
			Radius:   p.Radius,
			Degrees:  p.Degrees,
			Color:    p.Color,
		})
	}
	return view
}

// LastContacts returns the validated contacts from the most recent tick.
func (g *Game) LastContacts() []entity.Contact {
	g.EntityLock.RLock()
	defer g.EntityLock.RUnlock()
	return append([]entity.Contact(nil), g.contacts...)
}
