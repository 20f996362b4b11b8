package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/gocarina/gocsv"
	"github.com/sony/gobreaker"

	"github.com/opd-ai/go-duel/pkg/config"
	"github.com/opd-ai/go-duel/pkg/event"
	"github.com/opd-ai/go-duel/pkg/logging"
)

// Output file names inside the telemetry directory.
const (
	StatusFile   = "status.csv"
	ContactsFile = "contacts.csv"
)

// StatusRow is one ship's line of a periodic status report.
type StatusRow struct {
	Tick        uint64  `csv:"tick"`
	Ship        string  `csv:"ship"`
	X           float64 `csv:"x"`
	Y           float64 `csv:"y"`
	Degrees     float64 `csv:"degrees"`
	Radians     float64 `csv:"radians"`
	Projectiles int     `csv:"projectiles"`
}

// ContactRow is one detected contact.
type ContactRow struct {
	Tick    uint64  `csv:"tick"`
	Event   string  `csv:"event"`
	KindA   string  `csv:"kind_a"`
	KindB   string  `csv:"kind_b"`
	EntityA uint64  `csv:"entity_a"`
	EntityB uint64  `csv:"entity_b"`
	X       float64 `csv:"x"`
	Y       float64 `csv:"y"`
}

// Recorder writes status and contact rows as CSV.
type Recorder struct {
	mu       sync.Mutex
	status   io.Writer
	contacts io.Writer
	files    []*os.File
	guard    *WriteGuard
	logger   *logging.Logger
	ctx      context.Context
	subs     []*event.Subscription

	statusHeaderWritten  bool
	contactHeaderWritten bool
	skipped              int
}

// NewRecorder creates dir and opens status.csv and contacts.csv inside it.
// Returns nil if dir is empty (telemetry disabled); a nil Recorder is safe
// to use.
func NewRecorder(dir string, cfg config.TelemetryConfig, logger *logging.Logger) (*Recorder, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating telemetry directory: %w", err)
	}

	statusFile, err := os.Create(filepath.Join(dir, StatusFile))
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", StatusFile, err)
	}
	contactsFile, err := os.Create(filepath.Join(dir, ContactsFile))
	if err != nil {
		statusFile.Close()
		return nil, fmt.Errorf("creating %s: %w", ContactsFile, err)
	}

	r := NewRecorderWithWriters(statusFile, contactsFile, cfg, logger)
	r.files = []*os.File{statusFile, contactsFile}
	return r, nil
}

// NewRecorderWithWriters creates a Recorder over arbitrary sinks.
func NewRecorderWithWriters(status, contacts io.Writer, cfg config.TelemetryConfig, logger *logging.Logger) *Recorder {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Recorder{
		status:   status,
		contacts: contacts,
		guard:    NewWriteGuard("duel-telemetry", cfg, logger),
		logger:   logger,
		ctx:      context.Background(),
	}
}

// WithContext sets the context carried into log calls.
func (r *Recorder) WithContext(ctx context.Context) *Recorder {
	if r != nil {
		r.ctx = ctx
	}
	return r
}

// WriteStatus writes one row per ship.
func (r *Recorder) WriteStatus(tick uint64, ships []event.ShipStatus) error {
	if r == nil || len(ships) == 0 {
		return nil
	}
	rows := make([]StatusRow, 0, len(ships))
	for _, s := range ships {
		rows = append(rows, StatusRow{
			Tick:        tick,
			Ship:        s.Name,
			X:           s.X,
			Y:           s.Y,
			Degrees:     s.Degrees,
			Radians:     s.Radians,
			Projectiles: s.Projectiles,
		})
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.write(r.status, &r.statusHeaderWritten, rows, "status")
}

// WriteContact writes a contact row.
func (r *Recorder) WriteContact(e *event.ContactEvent) error {
	if r == nil || e == nil {
		return nil
	}
	rows := []ContactRow{{
		Tick:    e.Tick,
		Event:   string(e.GetType()),
		KindA:   e.KindA,
		KindB:   e.KindB,
		EntityA: e.EntityA,
		EntityB: e.EntityB,
		X:       logging.Round2(e.X),
		Y:       logging.Round2(e.Y),
	}}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.write(r.contacts, &r.contactHeaderWritten, rows, "contact")
}

// write marshals rows through the guard, with a header on the first
// successful write to w.
func (r *Recorder) write(w io.Writer, headerWritten *bool, rows interface{}, what string) error {
	err := r.guard.Execute(r.ctx, func() error {
		if !*headerWritten {
			if err := gocsv.Marshal(rows, w); err != nil {
				return err
			}
			*headerWritten = true
			return nil
		}
		return gocsv.MarshalWithoutHeaders(rows, w)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			r.skipped++
		}
		return fmt.Errorf("writing %s: %w", what, err)
	}
	return nil
}

// Attach subscribes the recorder to status and contact events on bus.
// Write errors are logged, never propagated to the publisher.
func (r *Recorder) Attach(bus *event.Bus) {
	if r == nil || bus == nil {
		return
	}
	r.subs = append(r.subs,
		bus.Subscribe(event.StatusReport, func(e event.Event) {
			if s, ok := e.(*event.StatusEvent); ok {
				r.logFailure(r.WriteStatus(s.Tick, s.Ships))
			}
		}),
		bus.Subscribe(event.ShipCollision, r.onContact),
		bus.Subscribe(event.ProjectileHit, r.onContact),
	)
}

func (r *Recorder) onContact(e event.Event) {
	if c, ok := e.(*event.ContactEvent); ok {
		r.logFailure(r.WriteContact(c))
	}
}

func (r *Recorder) logFailure(err error) {
	if err == nil || errors.Is(err, gobreaker.ErrOpenState) {
		return
	}
	r.logger.Warn(r.ctx, "telemetry write dropped", "error", err)
}

// Skipped returns how many writes were dropped while the breaker was open.
func (r *Recorder) Skipped() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.skipped
}

// State returns the write guard's breaker state.
func (r *Recorder) State() gobreaker.State {
	if r == nil {
		return gobreaker.StateClosed
	}
	return r.guard.State()
}

// Close unsubscribes from the bus and closes any files the recorder opened.
func (r *Recorder) Close() error {
	if r == nil {
		return nil
	}
	for _, sub := range r.subs {
		sub.Cancel()
	}
	r.subs = nil

	r.mu.Lock()
	defer r.mu.Unlock()
	var firstErr error
	for _, f := range r.files {
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	r.files = nil
	return firstErr
}
