package destination

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-tourism-filter/app/observability/metrics"
	"github.com/FACorreiaa/go-tourism-filter/internal/types"
)

// DB is the subset of pgxpool.Pool used by the repository.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

var _ Repository = (*PostgresRepository)(nil)

// Repository persists the destination table.
type Repository interface {
	ListDestinations(ctx context.Context) ([]Record, error)
	CountDestinations(ctx context.Context) (int, error)
	SaveDestinations(ctx context.Context, records []Record) (int, error)
}

type PostgresRepository struct {
	db      DB
	logger  *slog.Logger
	metrics *metrics.AppMetrics
}

func NewPostgresRepository(db DB, logger *slog.Logger, m *metrics.AppMetrics) *PostgresRepository {
	return &PostgresRepository{
		db:      db,
		logger:  logger,
		metrics: m,
	}
}

func (r *PostgresRepository) ListDestinations(ctx context.Context) ([]Record, error) {
	ctx, span := otel.Tracer("DestinationRepository").Start(ctx, "ListDestinations", trace.WithAttributes(
		attribute.String("db.system", "postgresql"),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "ListDestinations"))
	start := time.Now()

	query := `
        SELECT city, country, aliases, hemisphere, tags
        FROM destinations
        ORDER BY country, city`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.metrics.RecordDbQuery(ctx, "list_destinations", time.Since(start).Seconds(), err)
		l.ErrorContext(ctx, "Failed to query destinations", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB query failed")
		return nil, fmt.Errorf("database error fetching destinations: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			rec        Record
			hemisphere string
			rawTags    []byte
		)
		if err := rows.Scan(&rec.City, &rec.Country, &rec.Aliases, &hemisphere, &rawTags); err != nil {
			l.ErrorContext(ctx, "Failed to scan destination row", slog.Any("error", err))
			span.RecordError(err)
			return nil, fmt.Errorf("database error scanning destination: %w", err)
		}
		if err := json.Unmarshal(rawTags, &rec.Tags); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("destination %q has malformed tags: %w", rec.City, err)
		}
		rec.Hemisphere = types.Hemisphere(hemisphere)
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		r.metrics.RecordDbQuery(ctx, "list_destinations", time.Since(start).Seconds(), err)
		l.ErrorContext(ctx, "Error iterating destination rows", slog.Any("error", err))
		span.RecordError(err)
		return nil, fmt.Errorf("database error reading destinations: %w", err)
	}

	r.metrics.RecordDbQuery(ctx, "list_destinations", time.Since(start).Seconds(), nil)
	l.DebugContext(ctx, "Fetched destinations", slog.Int("count", len(records)))
	span.SetStatus(codes.Ok, "Destinations fetched")
	return records, nil
}

func (r *PostgresRepository) CountDestinations(ctx context.Context) (int, error) {
	ctx, span := otel.Tracer("DestinationRepository").Start(ctx, "CountDestinations")
	defer span.End()

	start := time.Now()
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM destinations`).Scan(&n)
	r.metrics.RecordDbQuery(ctx, "count_destinations", time.Since(start).Seconds(), err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB query failed")
		return 0, fmt.Errorf("database error counting destinations: %w", err)
	}
	return n, nil
}

// SaveDestinations inserts records in one transaction, skipping keys that already exist.
// It returns the number of rows inserted.
func (r *PostgresRepository) SaveDestinations(ctx context.Context, records []Record) (int, error) {
	ctx, span := otel.Tracer("DestinationRepository").Start(ctx, "SaveDestinations", trace.WithAttributes(
		attribute.Int("records", len(records)),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "SaveDestinations"))
	start := time.Now()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		span.RecordError(err)
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
        INSERT INTO destinations (id, city, country, normalized_key, aliases, hemisphere, tags)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (normalized_key) DO NOTHING`

	inserted := 0
	for _, rec := range records {
		rawTags, err := json.Marshal(rec.Tags)
		if err != nil {
			return 0, fmt.Errorf("failed to encode tags of %q: %w", rec.City, err)
		}
		aliases := rec.Aliases
		if aliases == nil {
			aliases = []string{}
		}
		tag, err := tx.Exec(ctx, query,
			uuid.New(), rec.City, rec.Country, NormalizeKey(rec.City, rec.Country),
			aliases, string(rec.Hemisphere), rawTags,
		)
		if err != nil {
			r.metrics.RecordDbQuery(ctx, "save_destinations", time.Since(start).Seconds(), err)
			l.ErrorContext(ctx, "Failed to insert destination", slog.String("city", rec.City), slog.Any("error", err))
			span.RecordError(err)
			span.SetStatus(codes.Error, "DB insert failed")
			return 0, fmt.Errorf("failed to insert destination %q: %w", rec.City, err)
		}
		inserted += int(tag.RowsAffected())
	}

	if err := tx.Commit(ctx); err != nil {
		span.RecordError(err)
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	r.metrics.RecordDbQuery(ctx, "save_destinations", time.Since(start).Seconds(), nil)
	l.InfoContext(ctx, "Destinations saved", slog.Int("inserted", inserted), slog.Int("records", len(records)))
	span.SetStatus(codes.Ok, "Destinations saved")
	return inserted, nil
}

var _ TableSource = (*PostgresSource)(nil)

// PostgresSource loads the table from Postgres, seeding an empty database first.
type PostgresSource struct {
	repo   Repository
	seed   *FileSource
	logger *slog.Logger
}

func NewPostgresSource(repo Repository, seed *FileSource, logger *slog.Logger) *PostgresSource {
	return &PostgresSource{repo: repo, seed: seed, logger: logger}
}

func (s *PostgresSource) Load(ctx context.Context) (*Table, error) {
	n, err := s.repo.CountDestinations(ctx)
	if err != nil {
		return nil, err
	}
	if n == 0 && s.seed != nil {
		records, err := s.seed.Records(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to read seed destinations: %w", err)
		}
		if _, err := s.repo.SaveDestinations(ctx, records); err != nil {
			return nil, fmt.Errorf("failed to seed destinations: %w", err)
		}
	}

	records, err := s.repo.ListDestinations(ctx)
	if err != nil {
		return nil, err
	}
	table, err := NewTable(records)
	if err != nil {
		return nil, fmt.Errorf("invalid destination table: %w", err)
	}
	s.logger.InfoContext(ctx, "Destination table loaded from database", slog.Int("destinations", table.Len()))
	return table, nil
}
