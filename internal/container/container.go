package container

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	database "github.com/FACorreiaa/go-tourism-filter/app/db"
	"github.com/FACorreiaa/go-tourism-filter/app/observability/metrics"
	"github.com/FACorreiaa/go-tourism-filter/config"
	"github.com/FACorreiaa/go-tourism-filter/internal/api/catalog"
	"github.com/FACorreiaa/go-tourism-filter/internal/api/destination"
	"github.com/FACorreiaa/go-tourism-filter/internal/api/filter"
	"github.com/FACorreiaa/go-tourism-filter/internal/api/health"
	"github.com/FACorreiaa/go-tourism-filter/internal/api/inference"
	"github.com/FACorreiaa/go-tourism-filter/internal/api/temporal"
)

const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

var _ health.Status = (*Container)(nil)

// Container holds all application dependencies. The catalog and destination
// table are fully loaded before NewContainer returns.
type Container struct {
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.AppMetrics
	Pool    *pgxpool.Pool // nil unless destinations come from postgres

	Catalog       *catalog.Catalog
	Table         *destination.Table
	Resolver      *destination.Resolver
	Guard         *inference.Guard // nil when inference is disabled
	FilterService filter.Service

	FilterHandler      *filter.Handler
	CatalogHandler     *catalog.Handler
	DestinationHandler *destination.Handler
	HealthHandler      *health.Handler
}

// NewContainer initializes and returns a new dependency container.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger, m *metrics.AppMetrics) (*Container, error) {
	c := &Container{Config: cfg, Logger: logger, Metrics: m}

	cat, err := catalog.NewFileSource(cfg.Data.CategoriesPath, logger).Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	c.Catalog = cat

	source, err := c.tableSource(ctx)
	if err != nil {
		c.Close()
		return nil, err
	}
	table, err := source.Load(ctx)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to load destination table: %w", err)
	}
	c.Table = table

	provider, err := c.inferenceProvider(ctx)
	if err != nil {
		c.Close()
		return nil, err
	}

	c.Resolver = destination.NewResolver(table, destination.NewMemoryCache(), provider,
		destination.Config{FuzzyThreshold: cfg.Filter.FuzzyThreshold}, logger, m)
	c.FilterService = filter.NewServiceImpl(cat, c.Resolver, temporal.NewResolver(nil), filter.Config{
		ExcludedSample: cfg.Filter.ExcludedSample,
		FallbackSize:   cfg.Filter.FallbackSize,
	}, logger, m)

	c.FilterHandler = filter.NewFilterHandler(c.FilterService, filter.Limits{
		Default: cfg.Filter.DefaultLimit,
		Min:     cfg.Filter.MinLimit,
	}, logger)
	c.CatalogHandler = catalog.NewCatalogHandler(cat, logger)
	c.DestinationHandler = destination.NewDestinationHandler(table, logger)
	c.HealthHandler = health.NewHealthHandler(c, logger)

	logger.InfoContext(ctx, "Container initialized",
		slog.Int("categories", cat.Size()),
		slog.Int("destinations", table.Len()),
		slog.String("destination_source", c.sourceName()),
		slog.String("inference", c.InferenceState()),
	)
	return c, nil
}

func (c *Container) sourceName() string {
	if c.Config.Data.DestinationSource == "" {
		return SourceFile
	}
	return c.Config.Data.DestinationSource
}

func (c *Container) tableSource(ctx context.Context) (destination.TableSource, error) {
	fileSource := destination.NewFileSource(c.Config.Data.DestinationsPath, c.Logger)
	if c.sourceName() != SourcePostgres {
		return fileSource, nil
	}

	dbConfig, err := database.NewDatabaseConfig(c.Config, c.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to generate database config: %w", err)
	}
	if err := database.RunMigrations(dbConfig.ConnectionURL, c.Logger); err != nil {
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}
	pool, err := database.Init(ctx, dbConfig, c.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database pool: %w", err)
	}
	c.Pool = pool
	if err := database.WaitForDB(ctx, pool, c.Logger); err != nil {
		return nil, err
	}

	repo := destination.NewPostgresRepository(pool, c.Logger, c.Metrics)
	return destination.NewPostgresSource(repo, fileSource, c.Logger), nil
}

func (c *Container) inferenceProvider(ctx context.Context) (inference.Provider, error) {
	inf := c.Config.Inference
	if !inf.Enabled || inf.APIKey == "" {
		c.Logger.WarnContext(ctx, "Destination inference disabled, unknown destinations use the fallback profile",
			slog.Bool("enabled", inf.Enabled),
			slog.Bool("api_key_set", inf.APIKey != ""),
		)
		return inference.Unavailable{}, nil
	}

	client, err := inference.NewAIClient(ctx, inf.APIKey, inf.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to create inference client: %w", err)
	}
	c.Guard = inference.NewGuard(inference.NewGeminiProvider(client, c.Logger), inference.GuardConfig{
		Timeout:          inf.Timeout,
		RatePerSecond:    inf.RatePerSecond,
		Burst:            inf.Burst,
		FailureThreshold: inf.FailureThreshold,
		OpenTimeout:      inf.OpenTimeout,
	}, c.Logger)
	return c.Guard, nil
}

func (c *Container) DestinationsLoaded() int {
	if c.Table == nil {
		return 0
	}
	return c.Table.Len()
}

func (c *Container) CategoriesLoaded() int {
	if c.Catalog == nil {
		return 0
	}
	return c.Catalog.Size()
}

func (c *Container) CachedInferredProfiles() int {
	if c.Resolver == nil {
		return 0
	}
	return c.Resolver.CachedProfiles()
}

// InferenceState is the breaker state, or "disabled".
func (c *Container) InferenceState() string {
	if c.Guard == nil {
		return "disabled"
	}
	return c.Guard.State()
}

// Close releases all resources held by the container.
func (c *Container) Close() {
	if c.Pool != nil {
		c.Pool.Close()
	}
}
