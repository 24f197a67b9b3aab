package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pscheid92/reviewpulse/internal/platform/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fastPolicy = retry.Policy{
	MaxAttempts:    3,
	InitialBackoff: 1 * time.Millisecond,
}

func TestDo_SuccessFirstAttempt(t *testing.T) {
	calls := 0
	val, err := retry.Do(context.Background(), fastPolicy, retry.Always, func(context.Context) (string, error) {
		calls++
		return "PONG", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "PONG", val)
	assert.Equal(t, 1, calls)
}

func TestDo_SuccessAfterRetries(t *testing.T) {
	calls := 0
	var retried []int
	p := fastPolicy
	p.OnRetry = func(attempt int, _ error, _ time.Duration) { retried = append(retried, attempt) }

	err := retry.DoVoid(context.Background(), p, retry.Always, func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("connection refused")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []int{1, 2}, retried)
}

func TestDo_ExhaustsAttempts(t *testing.T) {
	transient := errors.New("connection refused")
	calls := 0

	err := retry.DoVoid(context.Background(), fastPolicy, retry.Always, func(context.Context) error {
		calls++
		return transient
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, transient)
	assert.Contains(t, err.Error(), "failed after 3 attempts")
	assert.Equal(t, 3, calls)
}

func TestDo_StopsOnPermanentError(t *testing.T) {
	calls := 0

	err := retry.DoVoid(context.Background(), fastPolicy, retry.UnlessCanceled, func(context.Context) error {
		calls++
		return context.Canceled
	})

	var permanent *retry.PermanentError
	require.ErrorAs(t, err, &permanent)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestDo_ContextCancelledDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := retry.Policy{MaxAttempts: 5, InitialBackoff: time.Hour}

	err := retry.DoVoid(ctx, p, retry.Always, func(context.Context) error {
		cancel()
		return errors.New("transient")
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), "context cancelled during retry")
}

func TestDo_BackoffIsCapped(t *testing.T) {
	var backoffs []time.Duration
	p := retry.Policy{
		MaxAttempts:    5,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     2 * time.Millisecond,
		OnRetry:        func(_ int, _ error, b time.Duration) { backoffs = append(backoffs, b) },
	}

	_ = retry.DoVoid(context.Background(), p, retry.Always, func(context.Context) error {
		return errors.New("transient")
	})

	assert.Equal(t, []time.Duration{time.Millisecond, 2 * time.Millisecond, 2 * time.Millisecond, 2 * time.Millisecond}, backoffs)
}

func TestDo_RejectsZeroAttempts(t *testing.T) {
	err := retry.DoVoid(context.Background(), retry.Policy{}, retry.Always, func(context.Context) error { return nil })
	require.Error(t, err)
}
