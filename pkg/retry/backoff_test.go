package retry

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig(maxRetries int) Config {
	return Config{
		MaxRetries:     maxRetries,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
		Multiplier:     2.0,
	}
}

func TestWithExponentialBackoff_SucceedsAfterTransientFailures(t *testing.T) {
	var retried []int
	cfg := fastConfig(5)
	cfg.OnRetry = func(attempt int, _ time.Duration, _ error) { retried = append(retried, attempt) }

	attempts := 0
	err := WithExponentialBackoff(context.Background(), cfg, func(ctx context.Context) error {
		attempts++
		if attempts < 3 {
			return errors.New("temporary failure")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, []int{1, 2}, retried)
}

func TestWithExponentialBackoff_ExhaustsRetries(t *testing.T) {
	expected := errors.New("still failing")
	attempts := 0
	err := WithExponentialBackoff(context.Background(), fastConfig(3), func(ctx context.Context) error {
		attempts++
		return expected
	})

	require.Error(t, err)
	assert.Equal(t, 4, attempts, "1 initial + 3 retries")
	assert.ErrorIs(t, err, expected)
}

func TestWithExponentialBackoff_ZeroRetriesRunsOnce(t *testing.T) {
	attempts := 0
	err := WithExponentialBackoff(context.Background(), fastConfig(0), func(ctx context.Context) error {
		attempts++
		return errors.New("nope")
	})
	assert.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestWithExponentialBackoff_PermanentStopsImmediately(t *testing.T) {
	notFound := errors.New("404")
	attempts := 0
	err := WithExponentialBackoff(context.Background(), fastConfig(5), func(ctx context.Context) error {
		attempts++
		return Permanent(fmt.Errorf("lookup: %w", notFound))
	})

	assert.Equal(t, 1, attempts)
	assert.ErrorIs(t, err, notFound)
	assert.False(t, IsPermanent(err), "the permanent marker is stripped on return")
}

func TestWithExponentialBackoff_ContextCancellation(t *testing.T) {
	cfg := Config{MaxRetries: 10, InitialBackoff: 50 * time.Millisecond, MaxBackoff: time.Second, Multiplier: 2}
	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	attempts := 0
	err := WithExponentialBackoff(ctx, cfg, func(ctx context.Context) error {
		attempts++
		return errors.New("always fails")
	})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.GreaterOrEqual(t, attempts, 1)
	assert.Less(t, attempts, 5)
}

func TestCalculateBackoff(t *testing.T) {
	cfg := Config{InitialBackoff: time.Second, MaxBackoff: 30 * time.Second, Multiplier: 2.0}

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{0, 0},
		{1, time.Second},
		{2, 2 * time.Second},
		{4, 8 * time.Second},
		{6, 30 * time.Second},
		{10, 30 * time.Second},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, calculateBackoff(tt.attempt, cfg), "attempt %d", tt.attempt)
	}
}

func TestCalculateBackoff_JitterStaysInRange(t *testing.T) {
	cfg := Config{InitialBackoff: time.Second, MaxBackoff: 10 * time.Second, Multiplier: 2.0, Jitter: true}
	for i := 0; i < 20; i++ {
		got := calculateBackoff(3, cfg)
		assert.GreaterOrEqual(t, got, 3*time.Second)
		assert.LessOrEqual(t, got, 5*time.Second)
	}
}

func TestPermanentNil(t *testing.T) {
	assert.NoError(t, Permanent(nil))
}
