// pkg/entity/ship.go
package entity

import (
	"errors"
	"fmt"
	"math"

	"github.com/EngoEngine/ecs"

	"github.com/opd-ai/go-duel/pkg/physics"
)

const (
	// CornerSpreadDegrees is the angle between the apex and each base corner.
	CornerSpreadDegrees = 135.0
	// FireCornerIndex is the corner projectiles spawn from.
	FireCornerIndex = 2

	projectileSpeedFactor   = 2.0
	projectileRadiusDivisor = 5.0
)

// ErrInvalidShip is returned by NewShip for parameters that would push NaN
// through the geometry pipeline.
var ErrInvalidShip = errors.New("invalid ship")

// ShipParams describes a ship at spawn time.
type ShipParams struct {
	Name          string
	Position      physics.Vector2D
	Degrees       float64
	Radius        float64
	Speed         float64
	RotationSpeed float64
	FireRate      float64 // shots per second
	Color         string
}

// Ship is a triangular body that owns the projectiles it fires.
type Ship struct {
	ecs.BasicEntity
	physics.KinematicBody
	Name        string
	Color       string
	FireRate    float64
	FireCounter float64 // milliseconds since the last shot
	Projectiles []*Projectile
}

// NewShip validates params and creates a ship ready to fire.
func NewShip(p ShipParams) (*Ship, error) {
	if err := validateShipParams(p); err != nil {
		return nil, err
	}

	ship := &Ship{
		BasicEntity: ecs.NewBasic(),
		KinematicBody: physics.KinematicBody{
			Position:      p.Position,
			Degrees:       physics.NormalizeDegrees(p.Degrees),
			Speed:         p.Speed,
			RotationSpeed: p.RotationSpeed,
			Radius:        p.Radius,
		},
		Name:     p.Name,
		Color:    p.Color,
		FireRate: p.FireRate,
	}
	ship.FireCounter = ship.FireRefresh()
	return ship, nil
}

func validateShipParams(p ShipParams) error {
	switch {
	case !isPositive(p.Radius):
		return fmt.Errorf("%w: radius must be positive, got %v", ErrInvalidShip, p.Radius)
	case !isPositive(p.FireRate):
		return fmt.Errorf("%w: fire rate must be positive, got %v", ErrInvalidShip, p.FireRate)
	case p.Speed < 0 || math.IsNaN(p.Speed) || math.IsInf(p.Speed, 0):
		return fmt.Errorf("%w: speed must be a non-negative number, got %v", ErrInvalidShip, p.Speed)
	case p.RotationSpeed < 0 || math.IsNaN(p.RotationSpeed) || math.IsInf(p.RotationSpeed, 0):
		return fmt.Errorf("%w: rotation speed must be a non-negative number, got %v", ErrInvalidShip, p.RotationSpeed)
	case !p.Position.IsFinite() || math.IsNaN(p.Degrees) || math.IsInf(p.Degrees, 0):
		return fmt.Errorf("%w: pose must be finite", ErrInvalidShip)
	}
	return nil
}

func isPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// Kind implements Body.
func (s *Ship) Kind() Kind { return KindShip }

// BoundingRadius implements Body.
func (s *Ship) BoundingRadius() float64 { return s.Radius }

// Kinematics implements Body.
func (s *Ship) Kinematics() *physics.KinematicBody { return &s.KinematicBody }

// Advance implements Body. Ships only move on input, so a tick just charges
// the fire limiter.
func (s *Ship) Advance(arena physics.Arena) {
	s.FireCounter = math.Min(s.FireCounter+arena.TickMillis(), s.FireRefresh())
}

// Thrust moves the ship forward and keeps it inside the arena.
func (s *Ship) Thrust(arena physics.Arena) {
	s.MoveForward()
	s.ClampToBounds(arena.Width, arena.Height)
}

// FireRefresh is the minimum time between shots in milliseconds.
func (s *Ship) FireRefresh() float64 {
	return 1000 / s.FireRate
}

// CanFire reports whether the fire limiter has elapsed.
func (s *Ship) CanFire() bool {
	return s.FireCounter >= s.FireRefresh()
}

// Fire spawns a projectile from the fire corner when the limiter allows it.
// The projectile copies the ship's kinematic state, moves twice as fast and
// is a fifth of the size. It returns nil while the limiter is charging.
func (s *Ship) Fire() *Projectile {
	if !s.CanFire() {
		return nil
	}

	body := s.KinematicBody
	body.Position = s.Corners()[FireCornerIndex]
	body.Speed *= projectileSpeedFactor
	body.Radius /= projectileRadiusDivisor

	projectile := newProjectile(body, s.Color)
	s.Projectiles = append(s.Projectiles, projectile)
	s.FireCounter = 0
	return projectile
}

// PruneProjectiles drops inactive projectiles and returns the removed ones.
func (s *Ship) PruneProjectiles() []*Projectile {
	var removed []*Projectile
	kept := s.Projectiles[:0]
	for _, p := range s.Projectiles {
		if p.Active {
			kept = append(kept, p)
		} else {
			removed = append(removed, p)
		}
	}
	// release pointers held past the new length
	for i := len(kept); i < len(s.Projectiles); i++ {
		s.Projectiles[i] = nil
	}
	s.Projectiles = kept
	return removed
}
