package inference

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-tourism-filter/internal/types"
)

func TestGuard_Infer(t *testing.T) {
	vocab := types.DestinationVocabulary()
	ctx := context.Background()

	t.Run("passes results through", func(t *testing.T) {
		want := &Result{Confidence: "medium", Tags: map[string][]string{"geo_type": {"urban"}}}
		g := NewGuard(ProviderFunc(func(context.Context, string, string, types.Vocabulary) (*Result, error) {
			return want, nil
		}), DefaultGuardConfig(), discardLogger())

		got, err := g.Infer(ctx, "a", "b", vocab)
		require.NoError(t, err)
		assert.Same(t, want, got)
	})

	t.Run("times out slow providers", func(t *testing.T) {
		slow := ProviderFunc(func(ctx context.Context, _, _ string, _ types.Vocabulary) (*Result, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Second):
				return &Result{}, nil
			}
		})
		cfg := DefaultGuardConfig()
		cfg.Timeout = 20 * time.Millisecond
		g := NewGuard(slow, cfg, discardLogger())

		start := time.Now()
		_, err := g.Infer(ctx, "a", "b", vocab)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInferenceUnavailable)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Less(t, time.Since(start), 500*time.Millisecond)
	})

	t.Run("wraps plain errors", func(t *testing.T) {
		g := NewGuard(ProviderFunc(func(context.Context, string, string, types.Vocabulary) (*Result, error) {
			return nil, errors.New("connection refused")
		}), DefaultGuardConfig(), discardLogger())

		_, err := g.Infer(ctx, "a", "b", vocab)
		assert.ErrorIs(t, err, ErrInferenceUnavailable)
	})

	t.Run("breaker opens after consecutive failures", func(t *testing.T) {
		var calls atomic.Int32
		failing := ProviderFunc(func(context.Context, string, string, types.Vocabulary) (*Result, error) {
			calls.Add(1)
			return nil, errors.New("boom")
		})
		cfg := DefaultGuardConfig()
		cfg.FailureThreshold = 2
		cfg.RatePerSecond = 1000
		cfg.Burst = 1000
		g := NewGuard(failing, cfg, discardLogger())

		for i := 0; i < 5; i++ {
			_, err := g.Infer(ctx, "a", "b", vocab)
			assert.ErrorIs(t, err, ErrInferenceUnavailable)
			if i < 2 {
				assert.NotErrorIs(t, err, ErrRejected, "provider failures are not rejections")
			} else {
				assert.ErrorIs(t, err, ErrRejected)
			}
		}
		assert.Equal(t, int32(2), calls.Load())
		assert.Equal(t, "open", g.State())
	})

	t.Run("rate limit rejects bursts", func(t *testing.T) {
		var calls atomic.Int32
		ok := ProviderFunc(func(context.Context, string, string, types.Vocabulary) (*Result, error) {
			calls.Add(1)
			return &Result{}, nil
		})
		cfg := DefaultGuardConfig()
		cfg.RatePerSecond = 0.001
		cfg.Burst = 1
		g := NewGuard(ok, cfg, discardLogger())

		_, err := g.Infer(ctx, "a", "b", vocab)
		require.NoError(t, err)
		_, err = g.Infer(ctx, "a", "b", vocab)
		assert.ErrorIs(t, err, ErrInferenceUnavailable)
		assert.ErrorIs(t, err, ErrRejected)
		assert.Equal(t, int32(1), calls.Load())
	})
}
