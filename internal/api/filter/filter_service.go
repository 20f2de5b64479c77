package filter

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-tourism-filter/app/observability/metrics"
	"github.com/FACorreiaa/go-tourism-filter/internal/api/catalog"
	"github.com/FACorreiaa/go-tourism-filter/internal/api/temporal"
	"github.com/FACorreiaa/go-tourism-filter/internal/types"
)

const (
	defaultExcludedSample = 50
	defaultFallbackSize   = 10
)

var _ Service = (*ServiceImpl)(nil)

// Service is the entry point of the filtering engine.
type Service interface {
	Filter(ctx context.Context, city, country string, prefs types.UserPreferences) (*types.FilterResult, error)
}

// ProfileResolver resolves a destination to its tag profile. It never fails.
type ProfileResolver interface {
	Resolve(ctx context.Context, city, country string) types.DestinationProfile
}

type Config struct {
	ExcludedSample int // rejected categories kept verbatim in the result
	FallbackSize   int // generic categories injected into an empty list
}

type ServiceImpl struct {
	logger   *slog.Logger
	catalog  *catalog.Catalog
	resolver ProfileResolver
	temporal *temporal.Resolver
	cfg      Config
	metrics  *metrics.AppMetrics
}

func NewServiceImpl(cat *catalog.Catalog, resolver ProfileResolver, tr *temporal.Resolver, cfg Config, logger *slog.Logger, m *metrics.AppMetrics) *ServiceImpl {
	if cfg.ExcludedSample < 0 {
		cfg.ExcludedSample = 0
	}
	if cfg.FallbackSize <= 0 {
		cfg.FallbackSize = defaultFallbackSize
	}
	if tr == nil {
		tr = temporal.NewResolver(nil)
	}
	return &ServiceImpl{
		logger:   logger,
		catalog:  cat,
		resolver: resolver,
		temporal: tr,
		cfg:      cfg,
		metrics:  m,
	}
}

// DefaultConfig matches the documented defaults.
func DefaultConfig() Config {
	return Config{ExcludedSample: defaultExcludedSample, FallbackSize: defaultFallbackSize}
}

// Filter resolves the destination and the trip's temporal context once, then
// filters and scores every catalog list against them.
func (s *ServiceImpl) Filter(ctx context.Context, city, country string, prefs types.UserPreferences) (*types.FilterResult, error) {
	ctx, span := otel.Tracer("FilterService").Start(ctx, "Filter", trace.WithAttributes(
		attribute.String("city", city),
		attribute.String("country", country),
		attribute.String("trip_type", string(prefs.TripType)),
		attribute.String("budget", string(prefs.Budget)),
	))
	defer span.End()
	l := s.logger.With(slog.String("method", "Filter"), slog.String("city", city), slog.String("country", country))
	start := time.Now()

	if err := prefs.Validate(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid preferences")
		s.metrics.RecordFilter(ctx, time.Since(start).Seconds(), 0, "invalid_input")
		return nil, fmt.Errorf("filter preferences: %w", err)
	}

	profile := s.resolver.Resolve(ctx, city, country)
	hemisphere := temporal.HemisphereFor(profile.Tags.GeoRegion, profile.Hemisphere)
	tc := s.temporal.Resolve(prefs.DateRange, hemisphere, profile.Tags.SeasonalFeatures)

	result := &types.FilterResult{
		Destination:      profile.Info(),
		TemporalContext:  tc,
		ExcludedExamples: []types.ExcludedCategory{},
	}
	for _, kind := range types.ListKinds {
		kept := s.filterList(kind, profile, tc, prefs, result)
		if len(kept) == 0 {
			kept = s.fallbacks(kind)
			if len(kept) > 0 {
				s.metrics.RecordFallbackInjection(ctx, string(kind))
				l.InfoContext(ctx, "List empty after filtering, injected generic categories",
					slog.String("list", string(kind)),
					slog.Int("injected", len(kept)),
				)
			}
		}
		*result.List(kind) = kept
	}

	span.SetAttributes(
		attribute.String("resolution", string(result.Destination.Resolution)),
		attribute.String("season", string(tc.AdjustedSeason)),
		attribute.Int("excluded", result.ExcludedCount),
	)
	l.DebugContext(ctx, "Categories filtered",
		slog.String("resolution", string(result.Destination.Resolution)),
		slog.String("season", string(tc.AdjustedSeason)),
		slog.Any("special_periods", tc.SpecialPeriods.Sorted()),
		slog.Int("excluded", result.ExcludedCount),
	)
	s.metrics.RecordFilter(ctx, time.Since(start).Seconds(), result.ExcludedCount, "ok")
	span.SetStatus(codes.Ok, "Categories filtered")
	return result, nil
}

func (s *ServiceImpl) filterList(kind types.ListKind, p types.DestinationProfile, tc types.TemporalContext, prefs types.UserPreferences, result *types.FilterResult) []types.ScoredCategory {
	type scored struct {
		item     types.ScoredCategory
		position int
	}
	records := s.catalog.List(kind)
	passed := make([]scored, 0, len(records))
	for _, rec := range records {
		ok, reason := Passes(rec, p, tc, prefs)
		if !ok {
			result.ExcludedCount++
			if len(result.ExcludedExamples) < s.cfg.ExcludedSample {
				result.ExcludedExamples = append(result.ExcludedExamples, types.ExcludedCategory{
					Name:   rec.Name,
					Parent: rec.ParentCategory,
					Reason: reason,
				})
			}
			continue
		}
		passed = append(passed, scored{
			item:     toScored(rec, ScoreCategory(rec, p, tc, prefs).Total(), false),
			position: rec.Position,
		})
	}

	slices.SortStableFunc(passed, func(a, b scored) int {
		if a.item.Score != b.item.Score {
			return b.item.Score - a.item.Score
		}
		return a.position - b.position
	})

	out := make([]types.ScoredCategory, len(passed))
	for i, sc := range passed {
		out[i] = sc.item
	}
	return out
}

func (s *ServiceImpl) fallbacks(kind types.ListKind) []types.ScoredCategory {
	candidates := s.catalog.FallbackCandidates(kind)
	if len(candidates) > s.cfg.FallbackSize {
		candidates = candidates[:s.cfg.FallbackSize]
	}
	out := make([]types.ScoredCategory, 0, len(candidates))
	for _, rec := range candidates {
		out = append(out, toScored(rec, 0, true))
	}
	return out
}

func toScored(rec types.CategoryRecord, score int, fallback bool) types.ScoredCategory {
	return types.ScoredCategory{
		CategoryName:        rec.Name,
		ParentCategory:      rec.ParentCategory,
		Score:               score,
		SearchQueryTemplate: rec.SearchQueryTemplate,
		Description:         rec.Description,
		IsFallback:          fallback,
	}
}
