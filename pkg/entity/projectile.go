// pkg/entity/projectile.go
package entity

import (
	"github.com/EngoEngine/ecs"

	"github.com/opd-ai/go-duel/pkg/physics"
)

// Reflection angles added when a projectile bounces.
const (
	verticalWallAngle   = 180.0
	horizontalWallAngle = 0.0
)

// Projectile is a circular shot. It keeps no reference to the ship that
// fired it.
type Projectile struct {
	ecs.BasicEntity
	physics.KinematicBody
	Active bool
	Color  string

	// LastBounce holds the walls struck during the most recent Advance.
	LastBounce WallHit
}

func newProjectile(body physics.KinematicBody, color string) *Projectile {
	return &Projectile{
		BasicEntity:   ecs.NewBasic(),
		KinematicBody: body,
		Active:        true,
		Color:         color,
	}
}

// Kind implements Body.
func (p *Projectile) Kind() Kind { return KindProjectile }

// BoundingRadius implements Body.
func (p *Projectile) BoundingRadius() float64 { return p.Radius }

// Kinematics implements Body.
func (p *Projectile) Kinematics() *physics.KinematicBody { return &p.KinematicBody }

// Advance implements Body: normalize the heading, move forward, then bounce
// off any boundary the projectile is crossing while heading into it.
func (p *Projectile) Advance(arena physics.Arena) {
	p.NormalizeHeading()
	p.MoveForward()
	p.LastBounce = p.Bounce(arena)
}

// Bounce reflects the heading off every boundary being struck and reports
// which ones were hit. Each reflection is heading = 360 - heading + wallAngle;
// striking two walls at once applies both in turn, which reverses the
// direction of travel.
func (p *Projectile) Bounce(arena physics.Arena) WallHit {
	hit := p.wallsStruck(arena)
	if hit.Has(WallVertical) {
		p.reflect(verticalWallAngle)
	}
	if hit.Has(WallHorizontal) {
		p.reflect(horizontalWallAngle)
	}
	return hit
}

func (p *Projectile) reflect(wallAngle float64) {
	p.Degrees = physics.NormalizeDegrees(360 - p.Degrees + wallAngle)
}

func (p *Projectile) wallsStruck(arena physics.Arena) WallHit {
	var hit WallHit
	d := p.Degrees
	x, y, r := p.Position.X, p.Position.Y, p.Radius

	headingLeft := d > 90 && d < 270
	headingRight := d < 90 || d > 270
	if (headingLeft && x-r <= 0) || (headingRight && x+r >= arena.Width) {
		hit |= WallVertical
	}

	// screen y grows downward, so headings in (0, 180) travel up
	headingUp := d > 0 && d < 180
	headingDown := d > 180 && d < 360
	if (headingUp && y-r <= 0) || (headingDown && y+r >= arena.Height) {
		hit |= WallHorizontal
	}
	return hit
}
