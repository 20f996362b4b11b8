// pkg/engine/game.go
package engine

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/EngoEngine/ecs"

	"github.com/opd-ai/go-duel/pkg/config"
	"github.com/opd-ai/go-duel/pkg/entity"
	"github.com/opd-ai/go-duel/pkg/event"
	"github.com/opd-ai/go-duel/pkg/logging"
	"github.com/opd-ai/go-duel/pkg/physics"
)

// GameStatus is the lifecycle state of a duel.
type GameStatus int

const (
	GameStatusWaiting GameStatus = iota
	GameStatusActive
	GameStatusEnded
)

func (s GameStatus) String() string {
	switch s {
	case GameStatusWaiting:
		return "waiting"
	case GameStatusActive:
		return "active"
	case GameStatusEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Bounce records a projectile reflecting off the arena boundary.
type Bounce struct {
	ProjectileID uint64
	Walls        entity.WallHit
}

// TickResult summarizes what happened during one Advance.
type TickResult struct {
	Tick     uint64
	Contacts []entity.Contact
	Bounces  []Bounce
	Fired    []uint64
	Pruned   int
}

// Game represents the core duel state and logic
type Game struct {
	Config      *config.GameConfig
	Arena       physics.Arena
	Ships       []*entity.Ship
	EntityLock  sync.RWMutex
	CurrentTick uint64
	EventBus    *event.Bus
	State       GameStatus
	MarkerColor string

	world     *ecs.World
	control   *ControlSystem
	movement  *MovementSystem
	collision *CollisionSystem
	cleanup   *CleanupSystem

	logger *logging.Logger
	ctx    context.Context
	rng    *rand.Rand

	controlled    *entity.Ship
	current       TickResult
	pending       []event.Event
	contacts      []entity.Contact
	markers       []physics.Vector2D
	statusCounter float64
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for engine diagnostics.
func WithLogger(logger *logging.Logger) Option {
	return func(g *Game) { g.logger = logger }
}

// WithEventBus publishes engine events on bus instead of a private one.
func WithEventBus(bus *event.Bus) Option {
	return func(g *Game) { g.EventBus = bus }
}

// WithContext sets the context carried into log calls, e.g. one holding a
// match ID.
func WithContext(ctx context.Context) Option {
	return func(g *Game) { g.ctx = ctx }
}

// NewGame validates cfg and builds a duel with both ships spawned.
func NewGame(cfg *config.GameConfig, opts ...Option) (*Game, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil config", config.ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	game := &Game{
		Config:      cfg,
		Arena:       cfg.PhysicsArena(),
		MarkerColor: cfg.MarkerColor,
		State:       GameStatusWaiting,
		rng:         rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9E3779B97F4A7C15)),
	}
	for _, opt := range opts {
		opt(game)
	}
	if game.EventBus == nil {
		game.EventBus = event.NewEventBus()
	}
	if game.logger == nil {
		game.logger = logging.Discard()
	}
	if game.ctx == nil {
		game.ctx = logging.WithMatchID(context.Background(), "")
	}

	game.initSystems()
	if err := game.initShips(); err != nil {
		return nil, err
	}

	game.logger.Info(game.ctx, "duel created",
		"width", game.Arena.Width,
		"height", game.Arena.Height,
		"refresh_rate", game.Arena.RefreshRate,
		"ships", len(game.Ships))

	return game, nil
}

func (g *Game) initSystems() {
	g.world = &ecs.World{}
	g.control = &ControlSystem{game: g}
	g.movement = NewMovementSystem(g)
	g.collision = &CollisionSystem{game: g}
	g.cleanup = &CleanupSystem{game: g}

	g.world.AddSystem(g.control)
	g.world.AddSystem(g.movement)
	g.world.AddSystem(g.collision)
	g.world.AddSystem(g.cleanup)
}

func (g *Game) initShips() error {
	for _, sc := range g.Config.Ships {
		ship, err := entity.NewShip(entity.ShipParams{
			Name:          sc.Name,
			Position:      g.Config.ShipPosition(sc),
			Degrees:       sc.Degrees,
			Radius:        sc.Radius,
			Speed:         g.Config.ShipSpeed(sc),
			RotationSpeed: g.Config.ShipRotationSpeed(sc),
			FireRate:      sc.FireRate,
			Color:         sc.Color,
		})
		if err != nil {
			return fmt.Errorf("spawning ship %q: %w", sc.Name, err)
		}
		// spawn fully inside the arena
		ship.ClampToBounds(g.Arena.Width, g.Arena.Height)

		g.Ships = append(g.Ships, ship)
		g.movement.Add(ship)
		if sc.Controlled {
			g.controlled = ship
		}
	}
	return nil
}

// Start marks the duel active and announces it.
func (g *Game) Start() {
	g.EntityLock.Lock()
	g.State = GameStatusActive
	g.EntityLock.Unlock()

	g.EventBus.Publish(&event.BaseEvent{
		EventType: event.GameStarted,
		Source:    g,
	})
	g.logger.Info(g.ctx, "duel started")
}

// Stop ends the duel.
func (g *Game) Stop() {
	g.EntityLock.Lock()
	g.State = GameStatusEnded
	tick := g.CurrentTick
	g.EntityLock.Unlock()

	g.EventBus.Publish(&event.BaseEvent{
		EventType: event.GameEnded,
		Source:    g,
	})
	g.logger.Info(g.ctx, "duel ended", "ticks", tick)
}

// Controlled returns the player-controlled ship, or nil when both ships
// are idle.
func (g *Game) Controlled() *entity.Ship {
	return g.controlled
}

// Advance runs one fixed tick with the given held inputs. Systems run in
// priority order: control, movement, collision, cleanup.
func (g *Game) Advance(inputs InputSet) TickResult {
	g.EntityLock.Lock()

	g.CurrentTick++
	g.current = TickResult{Tick: g.CurrentTick}
	g.control.inputs = inputs
	g.world.Update(float32(g.Arena.TickMillis() / 1000))

	result := g.current
	if status := g.statusDue(); status != nil {
		g.pending = append(g.pending, status)
	}
	events := g.pending
	g.pending = nil
	g.EntityLock.Unlock()

	// handlers may query the game, so publish outside the lock
	for _, e := range events {
		g.EventBus.Publish(e)
	}
	return result
}

// statusDue advances the status timer and returns a report when one is due.
func (g *Game) statusDue() *event.StatusEvent {
	interval := g.Config.StatusIntervalMS
	if interval <= 0 {
		return nil
	}
	g.statusCounter += g.Arena.TickMillis()
	if g.statusCounter < interval {
		return nil
	}
	g.statusCounter -= interval
	return event.NewStatusEvent(g, g.CurrentTick, g.status())
}

// Status returns a rounded summary row per ship.
func (g *Game) Status() []event.ShipStatus {
	g.EntityLock.RLock()
	defer g.EntityLock.RUnlock()
	return g.status()
}

func (g *Game) status() []event.ShipStatus {
	rows := make([]event.ShipStatus, 0, len(g.Ships))
	for _, ship := range g.Ships {
		rows = append(rows, event.ShipStatus{
			Name:        ship.Name,
			X:           logging.Round2(ship.Position.X),
			Y:           logging.Round2(ship.Position.Y),
			Degrees:     logging.Round2(ship.Degrees),
			Radians:     logging.Round2(ship.Radians()),
			Projectiles: len(ship.Projectiles),
		})
	}
	return rows
}

// publish queues an event for delivery once the current tick completes.
func (g *Game) publish(e event.Event) {
	g.pending = append(g.pending, e)
}

func (g *Game) randomColor() string {
	return fmt.Sprintf("#%02X%02X%02X", g.rng.IntN(256), g.rng.IntN(256), g.rng.IntN(256))
}

// otherShip returns the opponent of s.
func (g *Game) otherShip(s *entity.Ship) *entity.Ship {
	for _, ship := range g.Ships {
		if ship != s {
			return ship
		}
	}
	return nil
}
