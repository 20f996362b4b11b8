// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-duel/pkg/engine"
	"github.com/opd-ai/go-duel/pkg/logging"
	"github.com/opd-ai/go-duel/pkg/physics"
)

// Renderer draws the pieces of a duel snapshot.
type Renderer interface {
	Clear()
	RenderLine(from, to physics.Vector2D)
	RenderShip(ship engine.ShipView)
	RenderProjectile(projectile engine.ProjectileView)
	RenderMarker(point physics.Vector2D)
	Present() error
}

// Draw renders snap through r: debug lines first, then ships, projectiles
// and finally intersection markers on top.
func Draw(r Renderer, snap engine.Snapshot) error {
	r.Clear()

	if snap.ShowLines {
		for _, ship := range snap.Ships {
			for _, edge := range ship.Edges {
				from, to := edge.Span(snap.Width, snap.Height)
				r.RenderLine(from, to)
			}
		}
	}
	for _, ship := range snap.Ships {
		r.RenderShip(ship)
	}
	for _, ship := range snap.Ships {
		for _, p := range ship.Projectiles {
			r.RenderProjectile(p)
		}
	}
	for _, m := range snap.Markers {
		r.RenderMarker(m)
	}
	return r.Present()
}

// NullRenderer logs draw calls at debug level instead of drawing.
type NullRenderer struct {
	logger *logging.Logger
	ctx    context.Context
}

// NewNullRenderer creates a new NullRenderer with structured logging.
func NewNullRenderer(logger *logging.Logger) *NullRenderer {
	if logger == nil {
		logger = logging.Discard()
	}
	return &NullRenderer{
		logger: logger,
		ctx:    context.Background(),
	}
}

// Clear implements Renderer.
func (d *NullRenderer) Clear() {
	d.logger.Debug(d.ctx, "Clear called")
}

// RenderLine implements Renderer.
func (d *NullRenderer) RenderLine(from, to physics.Vector2D) {
	d.logger.Debug(d.ctx, "RenderLine called",
		"from_x", from.X, "from_y", from.Y,
		"to_x", to.X, "to_y", to.Y,
	)
}

// RenderShip implements Renderer.
func (d *NullRenderer) RenderShip(ship engine.ShipView) {
	d.logger.Debug(d.ctx, "RenderShip called",
		"ship_id", ship.ID,
		"ship_name", ship.Name,
		"x", ship.Position.X,
		"y", ship.Position.Y,
		"degrees", ship.Degrees,
		"color", ship.Color,
	)
}

// RenderProjectile implements Renderer.
func (d *NullRenderer) RenderProjectile(projectile engine.ProjectileView) {
	d.logger.Debug(d.ctx, "RenderProjectile called",
		"projectile_id", projectile.ID,
		"x", projectile.Position.X,
		"y", projectile.Position.Y,
	)
}

// RenderMarker implements Renderer.
func (d *NullRenderer) RenderMarker(point physics.Vector2D) {
	d.logger.Debug(d.ctx, "RenderMarker called", "x", point.X, "y", point.Y)
}

// Present implements Renderer.
func (d *NullRenderer) Present() error {
	d.logger.Debug(d.ctx, "Present called")
	return nil
}
