// Package telemetry records duel status and contacts as CSV. Writes go
// through a circuit breaker so a failing sink never stalls the tick loop.
package telemetry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"github.com/opd-ai/go-duel/pkg/config"
	"github.com/opd-ai/go-duel/pkg/logging"
)

// WriteGuard wraps sink writes with circuit breaker functionality.
type WriteGuard struct {
	breaker *gobreaker.CircuitBreaker
	logger  *logging.Logger
}

// WriteOperation performs a single write and reports whether it failed.
type WriteOperation func() error

// NewWriteGuard creates a guard that opens after cfg.MaxConsecutiveFailures
// consecutive failed writes and probes again after cfg.BreakerTimeout.
func NewWriteGuard(name string, cfg config.TelemetryConfig, logger *logging.Logger) *WriteGuard {
	if logger == nil {
		logger = logging.Discard()
	}
	maxFailures := cfg.MaxConsecutiveFailures
	if maxFailures == 0 {
		maxFailures = 1
	}
	timeout := cfg.BreakerTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn(context.Background(), "telemetry breaker state changed",
				"name", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	}

	return &WriteGuard{
		breaker: gobreaker.NewCircuitBreaker(settings),
		logger:  logger,
	}
}

// Execute runs op through the breaker. While the breaker is open op is not
// called and gobreaker.ErrOpenState is returned wrapped.
func (g *WriteGuard) Execute(ctx context.Context, op WriteOperation) error {
	_, err := g.breaker.Execute(func() (interface{}, error) {
		return nil, op()
	})
	if err != nil {
		g.logger.LogWithContext(ctx, slog.LevelDebug, "telemetry write failed",
			"error", err,
			"state", g.breaker.State().String(),
		)
		return fmt.Errorf("circuit breaker: %w", err)
	}
	return nil
}

// State returns the current state of the breaker.
func (g *WriteGuard) State() gobreaker.State {
	return g.breaker.State()
}

// Counts returns the breaker's request counts for the current interval.
func (g *WriteGuard) Counts() gobreaker.Counts {
	return g.breaker.Counts()
}
