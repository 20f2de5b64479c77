package destination

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"

	"github.com/FACorreiaa/go-tourism-filter/app/observability/metrics"
	"github.com/FACorreiaa/go-tourism-filter/internal/api/inference"
	"github.com/FACorreiaa/go-tourism-filter/internal/types"
)

var errNoUsableTags = fmt.Errorf("%w: no usable geo_type in inferred tags", inference.ErrInferenceUnavailable)

type Config struct {
	FuzzyThreshold int
}

// Resolver turns a (city, country) pair into a tag profile: exact lookup, fuzzy
// lookup, cached inference, live inference, then a generic fallback. It never fails.
type Resolver struct {
	table      *Table
	matcher    *Matcher
	cache      ProfileCache
	provider   inference.Provider
	vocabulary types.Vocabulary
	group      singleflight.Group
	logger     *slog.Logger
	metrics    *metrics.AppMetrics
}

func NewResolver(table *Table, cache ProfileCache, provider inference.Provider, cfg Config, logger *slog.Logger, m *metrics.AppMetrics) *Resolver {
	if cache == nil {
		cache = NewMemoryCache()
	}
	if provider == nil {
		provider = inference.Unavailable{}
	}
	return &Resolver{
		table:      table,
		matcher:    NewMatcher(cfg.FuzzyThreshold),
		cache:      cache,
		provider:   provider,
		vocabulary: types.DestinationVocabulary(),
		logger:     logger,
		metrics:    m,
	}
}

func (r *Resolver) Resolve(ctx context.Context, city, country string) types.DestinationProfile {
	ctx, span := otel.Tracer("DestinationResolver").Start(ctx, "Resolve", trace.WithAttributes(
		attribute.String("city", city),
		attribute.String("country", country),
	))
	defer span.End()

	p := r.resolve(ctx, city, country)
	kind := p.Resolution.Kind()
	span.SetAttributes(attribute.String("resolution", string(kind)))
	span.SetStatus(codes.Ok, "destination resolved")
	r.metrics.RecordResolution(ctx, string(kind))
	return p
}

func (r *Resolver) resolve(ctx context.Context, city, country string) types.DestinationProfile {
	city, country = strings.TrimSpace(city), strings.TrimSpace(country)
	key := NormalizeKey(city, country)
	l := r.logger.With(slog.String("key", key))

	if NormalizeName(city) == "" {
		l.WarnContext(ctx, "Empty destination, using fallback profile")
		return types.FallbackProfile(city, country, key, "empty destination")
	}

	if p, ok := r.table.Lookup(key); ok {
		return p
	}

	if p, score, ok := r.table.FuzzyLookup(r.matcher, city, country); ok {
		l.InfoContext(ctx, "Fuzzy destination match", slog.String("matched", p.Key), slog.Int("similarity", score))
		return p.WithResolution(types.FuzzyMatch{Query: key, MatchedKey: p.Key, Similarity: score})
	}

	if p, ok := r.cache.Get(key); ok {
		l.DebugContext(ctx, "Using cached destination profile")
		return p
	}

	// concurrent requests for the same destination share one inference call
	v, _, _ := r.group.Do(key, func() (any, error) {
		if p, ok := r.cache.Get(key); ok {
			return p, nil
		}
		p, err := r.infer(context.WithoutCancel(ctx), city, country, key)
		// a locally rejected call says nothing about the destination
		if !errors.Is(err, inference.ErrRejected) {
			r.cache.Set(key, p)
		}
		return p, nil
	})
	return v.(types.DestinationProfile)
}

// infer returns the inferred profile, or a fallback together with the error that caused it.
func (r *Resolver) infer(ctx context.Context, city, country, key string) (types.DestinationProfile, error) {
	l := r.logger.With(slog.String("key", key))
	l.InfoContext(ctx, "Destination not in table, requesting inference")

	start := time.Now()
	res, err := r.provider.Infer(ctx, city, country, r.vocabulary)
	if err == nil && res == nil {
		err = fmt.Errorf("%w: empty result", inference.ErrInferenceUnavailable)
	}
	if err == nil {
		var p types.DestinationProfile
		if p, err = r.profileFromInference(ctx, city, country, key, res); err == nil {
			r.metrics.RecordInference(ctx, time.Since(start).Seconds(), "ok")
			return p, nil
		}
	}

	r.metrics.RecordInference(ctx, time.Since(start).Seconds(), "error")
	l.WarnContext(ctx, "Inference unavailable, using fallback profile", slog.Any("error", err))
	trace.SpanFromContext(ctx).RecordError(err)
	return types.FallbackProfile(city, country, key, err.Error()), err
}

func (r *Resolver) profileFromInference(ctx context.Context, city, country, key string, res *inference.Result) (types.DestinationProfile, error) {
	tags, dropped := types.DestinationTagsFromMap(res.Tags)
	if len(dropped) > 0 {
		r.logger.WarnContext(ctx, "Dropped inferred tags outside the vocabulary",
			slog.String("key", key),
			slog.Any("dropped", dropped),
		)
	}
	if tags.GeoType.IsEmpty() {
		return types.DestinationProfile{}, errNoUsableTags
	}
	confidence := types.ParseConfidence(res.Confidence)
	return types.DestinationProfile{
		City:       city,
		Country:    country,
		Key:        key,
		Region:     firstRegion(tags.GeoRegion),
		Tags:       tags,
		Resolution: types.Inferred{Confidence: confidence},
	}, nil
}

// CachedProfiles reports how many inferred or fallback profiles are cached.
func (r *Resolver) CachedProfiles() int { return r.cache.Len() }

// Table exposes the lookup table for listings.
func (r *Resolver) Table() *Table { return r.table }
