package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/opd-ai/go-duel/pkg/engine"
	"github.com/opd-ai/go-duel/pkg/logging"
	"github.com/opd-ai/go-duel/pkg/physics"
)

// recordingRenderer captures call order.
type recordingRenderer struct {
	calls []string
}

func (r *recordingRenderer) Clear() {
	r.calls = append(r.calls, "clear")
}

func (r *recordingRenderer) RenderLine(from, to physics.Vector2D) {
	r.calls = append(r.calls, "line")
}

func (r *recordingRenderer) RenderShip(ship engine.ShipView) {
	r.calls = append(r.calls, "ship")
}

func (r *recordingRenderer) RenderMarker(point physics.Vector2D) {
	r.calls = append(r.calls, "marker")
}

func (r *recordingRenderer) Present() error {
	r.calls = append(r.calls, "present")
	return nil
}

func (r *recordingRenderer) RenderProjectile(engine.ProjectileView) {
	r.calls = append(r.calls, "projectile")
}

var (
	_ Renderer = (*NullRenderer)(nil)
	_ Renderer = (*TerminalRenderer)(nil)
	_ Renderer = (*recordingRenderer)(nil)
)

func TestDraw_Order(t *testing.T) {
	snap := engine.Snapshot{
		Width: 100, Height: 100, ShowLines: true,
		Ships: []engine.ShipView{
			{Name: "a", Projectiles: []engine.ProjectileView{{ID: 1}}},
			{Name: "b"},
		},
		Markers: []physics.Vector2D{{X: 1, Y: 1}},
	}
	snap.Ships[0].Edges[0] = physics.NewEdge(physics.Vector2D{X: 0, Y: 0}, physics.Vector2D{X: 10, Y: 10})
	snap.Ships[0].Edges[1] = physics.NewEdge(physics.Vector2D{X: 10, Y: 10}, physics.Vector2D{X: 20, Y: 0})
	snap.Ships[0].Edges[2] = physics.NewEdge(physics.Vector2D{X: 20, Y: 0}, physics.Vector2D{X: 0, Y: 0})
	snap.Ships[1].Edges = snap.Ships[0].Edges

	r := &recordingRenderer{}
	if err := Draw(r, snap); err != nil {
		t.Fatal(err)
	}

	want := "clear,line,line,line,line,line,line,ship,ship,projectile,marker,present"
	if got := strings.Join(r.calls, ","); got != want {
		t.Errorf("draw order = %s\nwant %s", got, want)
	}

	r.calls = nil
	snap.ShowLines = false
	Draw(r, snap)
	if strings.Contains(strings.Join(r.calls, ","), "line") {
		t.Error("lines drawn with ShowLines off")
	}
}

func TestNullRenderer_LogsCalls(t *testing.T) {
	t.Setenv(logging.LevelEnvVar, "DEBUG")
	var buf bytes.Buffer
	renderer := NewNullRenderer(logging.NewLoggerWithWriter(&buf))

	snap := engine.Snapshot{
		Ships:   []engine.ShipView{{ID: 3, Name: "player", Projectiles: []engine.ProjectileView{{ID: 4}}}},
		Markers: []physics.Vector2D{{X: 2, Y: 3}},
	}
	if err := Draw(renderer, snap); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}

	for _, msg := range []string{"Clear called", "RenderShip called", "RenderProjectile called", "RenderMarker called", "Present called"} {
		if !strings.Contains(buf.String(), msg) {
			t.Errorf("log missing %q", msg)
		}
	}
	if !strings.Contains(buf.String(), `"ship_name":"player"`) {
		t.Errorf("ship attributes not logged: %s", buf.String())
	}
}

func TestNullRenderer_NilLogger(t *testing.T) {
	renderer := NewNullRenderer(nil)
	if err := Draw(renderer, engine.Snapshot{}); err != nil {
		t.Errorf("Draw failed: %v", err)
	}
}
