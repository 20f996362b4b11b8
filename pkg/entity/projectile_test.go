package entity

import (
	"testing"

	"github.com/opd-ai/go-duel/pkg/physics"
)

func testProjectile(x, y, heading, radius float64) *Projectile {
	return newProjectile(physics.KinematicBody{
		Position: physics.Vector2D{X: x, Y: y},
		Degrees:  heading,
		Speed:    4,
		Radius:   radius,
	}, "#FFFFFF")
}

func TestProjectile_Bounce(t *testing.T) {
	arena := physics.Arena{Width: 400, Height: 300, RefreshRate: 120}

	tests := []struct {
		name        string
		x, y        float64
		heading     float64
		wantHit     WallHit
		wantHeading float64
	}{
		{"left_wall_incoming", 3, 150, 200, WallVertical, 340},
		{"left_wall_outgoing", 3, 150, 20, 0, 20},
		{"right_wall_incoming", 398, 150, 10, WallVertical, 170},
		{"top_wall_incoming", 200, 2, 90, WallHorizontal, 270},
		{"bottom_wall_incoming", 200, 299, 250, WallHorizontal, 110},
		{"bottom_left_corner", 2, 298, 225, WallVertical | WallHorizontal, 45},
		{"top_right_corner", 398, 2, 45, WallVertical | WallHorizontal, 225},
		{"parallel_to_left_wall", 2, 150, 90, 0, 90},
		{"open_space", 200, 150, 200, 0, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testProjectile(tt.x, tt.y, tt.heading, 5)
			hit := p.Bounce(arena)
			if hit != tt.wantHit {
				t.Errorf("Bounce() = %v, expected %v", hit, tt.wantHit)
			}
			if !physics.ApproxEqual(p.Degrees, tt.wantHeading) {
				t.Errorf("heading = %v, expected %v", p.Degrees, tt.wantHeading)
			}
		})
	}
}

func TestProjectile_CornerBounceReverses(t *testing.T) {
	arena := physics.Arena{Width: 100, Height: 100, RefreshRate: 60}
	for _, heading := range []float64{100, 135, 170} {
		p := testProjectile(2, 2, heading, 5)
		p.Bounce(arena)
		want := physics.NormalizeDegrees(heading + 180)
		if !physics.ApproxEqual(p.Degrees, want) {
			t.Errorf("heading %v: bounced to %v, expected reversal to %v", heading, p.Degrees, want)
		}
	}
}

func TestProjectile_Advance(t *testing.T) {
	arena := physics.Arena{Width: 400, Height: 300, RefreshRate: 120}

	p := testProjectile(100, 100, 360, 5)
	p.Speed = 10
	p.Advance(arena)

	if p.Degrees != 0 {
		t.Errorf("heading = %v, expected normalized 0", p.Degrees)
	}
	if !p.Position.ApproxEqual(physics.Vector2D{X: 110, Y: 100}) {
		t.Errorf("position = %v, expected (110, 100)", p.Position)
	}
	if p.LastBounce != 0 {
		t.Errorf("LastBounce = %v in open space", p.LastBounce)
	}

	edge := testProjectile(8, 150, 180, 5)
	edge.Advance(arena)
	if !edge.LastBounce.Has(WallVertical) {
		t.Errorf("LastBounce = %v, expected vertical", edge.LastBounce)
	}
	if edge.Degrees != 0 {
		t.Errorf("heading = %v after left wall bounce, expected 0", edge.Degrees)
	}
}

func TestProjectile_StaysInArena(t *testing.T) {
	arena := physics.Arena{Width: 200, Height: 150, RefreshRate: 120}
	p := testProjectile(100, 75, 33, 4)
	p.Speed = 3

	for i := 0; i < 2000; i++ {
		p.Advance(arena)
		pos := p.Position
		if pos.X < -p.Speed || pos.X > arena.Width+p.Speed ||
			pos.Y < -p.Speed || pos.Y > arena.Height+p.Speed {
			t.Fatalf("tick %d: projectile escaped to %v", i, pos)
		}
		if p.Degrees < 0 || p.Degrees >= 360 {
			t.Fatalf("tick %d: heading %v out of range", i, p.Degrees)
		}
	}
}
