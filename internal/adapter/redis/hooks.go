package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/failsafe-go/failsafe-go/circuitbreaker"
	goredis "github.com/redis/go-redis/v9"
)

// CommandObserver receives per-command telemetry from MetricsHook.
type CommandObserver interface {
	ObserveCommand(operation, status string, d time.Duration)
	ObserveDialError()
}

// CircuitObserver receives circuit breaker state transitions.
type CircuitObserver interface {
	ObserveCircuitState(state string)
}

// MetricsHook implements goredis.Hook to collect metrics on all Redis operations.
type MetricsHook struct {
	observer CommandObserver
}

var _ goredis.Hook = (*MetricsHook)(nil)

func NewMetricsHook(observer CommandObserver) *MetricsHook {
	return &MetricsHook{observer: observer}
}

func (h *MetricsHook) DialHook(next goredis.DialHook) goredis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		conn, err := next(ctx, network, addr)
		if err != nil {
			h.observer.ObserveDialError()
		}
		return conn, err
	}
}

func (h *MetricsHook) ProcessHook(next goredis.ProcessHook) goredis.ProcessHook {
	return func(ctx context.Context, cmd goredis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmd)
		h.observer.ObserveCommand(cmd.Name(), commandStatus(err), time.Since(start))
		return err
	}
}

// ProcessPipelineHook records a pipeline as a single operation.
func (h *MetricsHook) ProcessPipelineHook(next goredis.ProcessPipelineHook) goredis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []goredis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmds)
		h.observer.ObserveCommand("pipeline", commandStatus(err), time.Since(start))
		return err
	}
}

func commandStatus(err error) string {
	if err != nil && !errors.Is(err, goredis.Nil) {
		return "error"
	}
	return "success"
}

// CircuitBreakerHook implements goredis.Hook and fails commands fast while
// Redis is unavailable, so a dead tally store does not add latency to every
// analysis request.
type CircuitBreakerHook struct {
	cb circuitbreaker.CircuitBreaker[any]
}

var _ goredis.Hook = (*CircuitBreakerHook)(nil)

// NewCircuitBreakerHook opens after a 60% failure rate over at least 5
// commands in 10s, probes again after 30s, and closes on one success.
func NewCircuitBreakerHook(observer CircuitObserver) *CircuitBreakerHook {
	cb := circuitbreaker.NewBuilder[any]().
		WithFailureRateThreshold(0.6, 5, 10*time.Second).
		WithDelay(30 * time.Second).
		WithSuccessThreshold(1).
		OnStateChanged(func(e circuitbreaker.StateChangedEvent) {
			slog.Warn("Circuit breaker state changed",
				"component", "redis",
				"from", stateName(e.OldState),
				"to", stateName(e.NewState),
			)
			if observer != nil {
				observer.ObserveCircuitState(stateName(e.NewState))
			}
		}).
		Build()

	return &CircuitBreakerHook{cb: cb}
}

func stateName(state circuitbreaker.State) string {
	switch state {
	case circuitbreaker.ClosedState:
		return "closed"
	case circuitbreaker.HalfOpenState:
		return "half-open"
	case circuitbreaker.OpenState:
		return "open"
	default:
		return "unknown"
	}
}

// DialHook passes through. A failed dial surfaces as the error of the command
// that needed the connection, and ProcessHook records it there once.
func (h *CircuitBreakerHook) DialHook(next goredis.DialHook) goredis.DialHook {
	return next
}

func (h *CircuitBreakerHook) ProcessHook(next goredis.ProcessHook) goredis.ProcessHook {
	return func(ctx context.Context, cmd goredis.Cmder) error {
		if !h.cb.TryAcquirePermit() {
			return fmt.Errorf("redis circuit breaker open for %s: %w", cmd.Name(), circuitbreaker.ErrOpen)
		}

		err := next(ctx, cmd)
		if err != nil && !errors.Is(err, goredis.Nil) {
			h.cb.RecordError(err)
			return err
		}
		h.cb.RecordSuccess()
		return err
	}
}

func (h *CircuitBreakerHook) ProcessPipelineHook(next goredis.ProcessPipelineHook) goredis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []goredis.Cmder) error {
		if !h.cb.TryAcquirePermit() {
			return fmt.Errorf("redis circuit breaker open for pipeline: %w", circuitbreaker.ErrOpen)
		}

		err := next(ctx, cmds)
		if err != nil {
			h.cb.RecordError(err)
			return err
		}
		h.cb.RecordSuccess()
		return nil
	}
}

// State reports the breaker state as closed, half-open or open.
func (h *CircuitBreakerHook) State() string {
	return stateName(h.cb.State())
}
