package inference

import (
	"context"
	"errors"

	"github.com/FACorreiaa/go-tourism-filter/internal/types"
)

// ErrInferenceUnavailable covers timeouts, transport failures, malformed
// responses and responses with no usable tags.
var ErrInferenceUnavailable = errors.New("inference unavailable")

// ErrRejected marks calls the Guard refused without reaching the provider,
// because of the rate limit or an open breaker.
var ErrRejected = errors.New("inference call rejected")

// Result is the raw answer of a provider. Tags are keyed by dimension name and
// are not yet restricted to the vocabulary.
type Result struct {
	City       string              `json:"city"`
	Country    string              `json:"country"`
	Region     string              `json:"region"`
	Tags       map[string][]string `json:"tags"`
	Confidence string              `json:"confidence"`
	Notes      string              `json:"notes"`
}

// Provider guesses the tag profile of a destination missing from the lookup table.
type Provider interface {
	Infer(ctx context.Context, city, country string, vocabulary types.Vocabulary) (*Result, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context, city, country string, vocabulary types.Vocabulary) (*Result, error)

func (f ProviderFunc) Infer(ctx context.Context, city, country string, vocabulary types.Vocabulary) (*Result, error) {
	return f(ctx, city, country, vocabulary)
}

// Unavailable is used when no inference backend is configured.
type Unavailable struct{}

func (Unavailable) Infer(context.Context, string, string, types.Vocabulary) (*Result, error) {
	return nil, ErrInferenceUnavailable
}
