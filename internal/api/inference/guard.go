package inference

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/FACorreiaa/go-tourism-filter/internal/types"
)

// GuardConfig bounds calls to an inference provider.
type GuardConfig struct {
	Timeout          time.Duration // per call
	RatePerSecond    float64
	Burst            int
	FailureThreshold uint32        // consecutive failures before the breaker opens
	OpenTimeout      time.Duration // time spent open before a half-open trial call
}

func DefaultGuardConfig() GuardConfig {
	return GuardConfig{
		Timeout:          5 * time.Second,
		RatePerSecond:    2,
		Burst:            5,
		FailureThreshold: 5,
		OpenTimeout:      time.Minute,
	}
}

var _ Provider = (*Guard)(nil)

// Guard decorates a Provider with a timeout, a rate limit and a circuit breaker.
// Every failure it returns wraps ErrInferenceUnavailable; calls refused before
// reaching the provider also wrap ErrRejected.
type Guard struct {
	next    Provider
	cb      *gobreaker.CircuitBreaker[*Result]
	limiter *rate.Limiter
	timeout time.Duration
	logger  *slog.Logger
}

func NewGuard(next Provider, cfg GuardConfig, logger *slog.Logger) *Guard {
	def := DefaultGuardConfig()
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.RatePerSecond <= 0 {
		cfg.RatePerSecond = def.RatePerSecond
	}
	if cfg.Burst <= 0 {
		cfg.Burst = def.Burst
	}
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = def.FailureThreshold
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = def.OpenTimeout
	}

	cb := gobreaker.NewCircuitBreaker[*Result](gobreaker.Settings{
		Name:        "destination-inference",
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Inference circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Guard{
		next:    next,
		cb:      cb,
		limiter: rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.Burst),
		timeout: cfg.Timeout,
		logger:  logger,
	}
}

func (g *Guard) Infer(ctx context.Context, city, country string, vocabulary types.Vocabulary) (*Result, error) {
	if !g.limiter.Allow() {
		return nil, fmt.Errorf("%w: %w: rate limit exceeded", ErrInferenceUnavailable, ErrRejected)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	res, err := g.cb.Execute(func() (*Result, error) {
		return g.next.Infer(ctx, city, country, vocabulary)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			g.logger.DebugContext(ctx, "Inference rejected by circuit breaker", slog.Any("error", err))
			return nil, fmt.Errorf("%w: %w: %w", ErrInferenceUnavailable, ErrRejected, err)
		}
		if errors.Is(err, ErrInferenceUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrInferenceUnavailable, err)
	}
	return res, nil
}

// State reports the breaker state, for health output.
func (g *Guard) State() string {
	return g.cb.State().String()
}
