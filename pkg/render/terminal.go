package render

import (
	"bufio"
	"io"
	"math"
	"strings"
	"unicode"

	"github.com/opd-ai/go-duel/pkg/engine"
	"github.com/opd-ai/go-duel/pkg/physics"
)

// Glyphs used by the terminal renderer.
const (
	GlyphEmpty      = ' '
	GlyphLine       = '.'
	GlyphEdge       = '*'
	GlyphProjectile = 'o'
	GlyphMarker     = 'x'
)

// TerminalRenderer provides a simple ASCII-based rendering for terminals.
// The whole arena is scaled onto a fixed character grid.
type TerminalRenderer struct {
	out    io.Writer
	width  int
	height int
	buffer [][]rune
	scaleX float64
	scaleY float64
	ansi   bool
}

// NewTerminalRenderer creates a renderer drawing an arenaWidth x arenaHeight
// arena onto a width x height grid written to out. Dimensions below one
// are raised to one.
func NewTerminalRenderer(out io.Writer, width, height int, arenaWidth, arenaHeight float64) *TerminalRenderer {
	width = max(width, 1)
	height = max(height, 1)
	buffer := make([][]rune, height)
	for i := range buffer {
		buffer[i] = make([]rune, width)
	}

	r := &TerminalRenderer{
		out:    out,
		width:  width,
		height: height,
		buffer: buffer,
		scaleX: arenaWidth / float64(width),
		scaleY: arenaHeight / float64(height),
	}
	r.Clear()
	return r
}

// SetANSI makes Present clear the screen before each frame.
func (r *TerminalRenderer) SetANSI(enabled bool) {
	r.ansi = enabled
}

// worldToScreen converts arena coordinates to grid cells.
func (r *TerminalRenderer) worldToScreen(pos physics.Vector2D) (int, int) {
	return int(math.Floor(pos.X / r.scaleX)), int(math.Floor(pos.Y / r.scaleY))
}

func (r *TerminalRenderer) plot(pos physics.Vector2D, glyph rune) {
	x, y := r.worldToScreen(pos)
	if x >= 0 && x < r.width && y >= 0 && y < r.height {
		r.buffer[y][x] = glyph
	}
}

// segment plots glyph along from-to at roughly two samples per cell.
func (r *TerminalRenderer) segment(from, to physics.Vector2D, glyph rune) {
	d := to.Sub(from)
	steps := int(math.Ceil(2 * math.Max(math.Abs(d.X)/r.scaleX, math.Abs(d.Y)/r.scaleY)))
	steps = min(max(steps, 1), 4*(r.width+r.height))
	for i := 0; i <= steps; i++ {
		r.plot(from.Add(d.Scale(float64(i)/float64(steps))), glyph)
	}
}

// Clear implements Renderer.
func (r *TerminalRenderer) Clear() {
	for y := range r.buffer {
		for x := range r.buffer[y] {
			r.buffer[y][x] = GlyphEmpty
		}
	}
}

// RenderLine implements Renderer.
func (r *TerminalRenderer) RenderLine(from, to physics.Vector2D) {
	if !from.IsFinite() || !to.IsFinite() {
		return
	}
	r.segment(from, to, GlyphLine)
}

// RenderShip implements Renderer. The outline is drawn with GlyphEdge and
// the center with the first letter of the ship's name.
func (r *TerminalRenderer) RenderShip(ship engine.ShipView) {
	for _, edge := range ship.Edges {
		r.segment(edge.P1, edge.P2, GlyphEdge)
	}
	r.plot(ship.Position, shipGlyph(ship.Name))
}

func shipGlyph(name string) rune {
	for _, c := range name {
		return unicode.ToUpper(c)
	}
	return 'S'
}

// RenderProjectile implements Renderer.
func (r *TerminalRenderer) RenderProjectile(projectile engine.ProjectileView) {
	r.plot(projectile.Position, GlyphProjectile)
}

// RenderMarker implements Renderer.
func (r *TerminalRenderer) RenderMarker(point physics.Vector2D) {
	r.plot(point, GlyphMarker)
}

// Frame returns the current buffer as bordered text.
func (r *TerminalRenderer) Frame() string {
	var sb strings.Builder
	border := "+" + strings.Repeat("-", r.width) + "+\n"
	sb.WriteString(border)
	for y := range r.buffer {
		sb.WriteByte('|')
		sb.WriteString(string(r.buffer[y]))
		sb.WriteString("|\n")
	}
	sb.WriteString(border)
	return sb.String()
}

// Present implements Renderer.
func (r *TerminalRenderer) Present() error {
	w := bufio.NewWriter(r.out)
	if r.ansi {
		w.WriteString("\033[H\033[2J")
	}
	w.WriteString(r.Frame())
	return w.Flush()
}

// DrawSnapshot is a convenience for Draw(r, snap).
func (r *TerminalRenderer) DrawSnapshot(snap engine.Snapshot) error {
	return Draw(r, snap)
}
