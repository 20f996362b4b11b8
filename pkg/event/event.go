// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Event types published by the duel engine
const (
	GameStarted      Type = "game_started"
	GameEnded        Type = "game_ended"
	ProjectileFired  Type = "projectile_fired"
	ProjectileHit    Type = "projectile_hit"
	ProjectilePruned Type = "projectile_pruned"
	ShipCollision    Type = "ship_collision"
	WallBounce       Type = "wall_bounce"
	StatusReport     Type = "status_report"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Subscription identifies a registered handler. Cancel removes it from the bus.
type Subscription struct {
	ID     uint64
	Cancel func()
}

type subscriber struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]subscriber
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]subscriber),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], subscriber{id: id, handler: handler})

	return &Subscription{
		ID:     id,
		Cancel: func() { b.unsubscribe(eventType, id) },
	}
}

func (b *Bus) unsubscribe(eventType Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.handlers[eventType]
	for i, s := range subs {
		if s.id == id {
			b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	if len(b.handlers[eventType]) == 0 {
		delete(b.handlers, eventType)
	}
}

// Publish sends an event to all subscribed handlers. Handlers run
// synchronously on the caller's goroutine.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	subs := b.handlers[event.GetType()]
	b.mu.RUnlock()

	for _, s := range subs {
		s.handler(event)
	}
}

// Specific event implementations

// ProjectileEvent describes a projectile being fired, bouncing or pruned.
type ProjectileEvent struct {
	BaseEvent
	Tick         uint64
	ShipID       uint64
	ProjectileID uint64
	X, Y         float64
	Degrees      float64
	Walls        string // set for WallBounce
}

// NewProjectileEvent creates a new projectile event
func NewProjectileEvent(eventType Type, source interface{}, tick, shipID, projectileID uint64, x, y, degrees float64) *ProjectileEvent {
	return &ProjectileEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		Tick:         tick,
		ShipID:       shipID,
		ProjectileID: projectileID,
		X:            x,
		Y:            y,
		Degrees:      degrees,
	}
}

// ContactEvent contains information about a validated collision
type ContactEvent struct {
	BaseEvent
	Tick    uint64
	KindA   string
	KindB   string
	EntityA uint64
	EntityB uint64
	X, Y    float64
}

// NewContactEvent creates a new contact event
func NewContactEvent(eventType Type, source interface{}, tick uint64, kindA, kindB string, entityA, entityB uint64, x, y float64) *ContactEvent {
	return &ContactEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		Tick:    tick,
		KindA:   kindA,
		KindB:   kindB,
		EntityA: entityA,
		EntityB: entityB,
		X:       x,
		Y:       y,
	}
}

// ShipStatus is one ship's row in a status report.
type ShipStatus struct {
	Name        string
	X, Y        float64
	Degrees     float64
	Radians     float64
	Projectiles int
}

// StatusEvent is a periodic summary of every ship.
type StatusEvent struct {
	BaseEvent
	Tick  uint64
	Ships []ShipStatus
}

// NewStatusEvent creates a new status event
func NewStatusEvent(source interface{}, tick uint64, ships []ShipStatus) *StatusEvent {
	return &StatusEvent{
		BaseEvent: BaseEvent{
			EventType: StatusReport,
			Source:    source,
		},
		Tick:  tick,
		Ships: ships,
	}
}
