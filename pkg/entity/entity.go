// pkg/entity/entity.go
package entity

import (
	"strings"

	"github.com/opd-ai/go-duel/pkg/physics"
)

// Kind tags the participants of a collision.
type Kind int

const (
	KindShip Kind = iota
	KindProjectile
	KindWall
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindProjectile:
		return "projectile"
	case KindWall:
		return "wall"
	default:
		return "unknown"
	}
}

// Body is the capability shared by everything the engine advances each tick.
type Body interface {
	ID() uint64
	Kind() Kind
	Advance(arena physics.Arena)
	BoundingRadius() float64
	Kinematics() *physics.KinematicBody
}

// WallHit records which play-area boundaries a projectile bounced off.
type WallHit uint8

const (
	WallVertical   WallHit = 1 << iota // left or right boundary
	WallHorizontal                     // top or bottom boundary
)

// Has reports whether all flags in w are set.
func (h WallHit) Has(w WallHit) bool {
	return h&w == w && w != 0
}

func (h WallHit) String() string {
	if h == 0 {
		return "none"
	}
	var parts []string
	if h.Has(WallVertical) {
		parts = append(parts, "vertical")
	}
	if h.Has(WallHorizontal) {
		parts = append(parts, "horizontal")
	}
	return strings.Join(parts, "+")
}

// Contact is a validated collision between two tagged participants.
type Contact struct {
	A     Kind
	B     Kind
	AID   uint64
	BID   uint64
	Point physics.Vector2D
}
