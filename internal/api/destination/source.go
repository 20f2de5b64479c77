package destination

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/goccy/go-json"

	"github.com/FACorreiaa/go-tourism-filter/data"
	"github.com/FACorreiaa/go-tourism-filter/internal/types"
)

// TableSource delivers the destination table once at startup.
type TableSource interface {
	Load(ctx context.Context) (*Table, error)
}

type tableFile struct {
	Version      string   `json:"version"`
	Destinations []Record `json:"destinations"`
}

var _ TableSource = (*FileSource)(nil)

// FileSource loads the table from a JSON file, or from the embedded default when path is empty.
type FileSource struct {
	path   string
	logger *slog.Logger
}

func NewFileSource(path string, logger *slog.Logger) *FileSource {
	return &FileSource{path: path, logger: logger}
}

func (s *FileSource) Load(ctx context.Context) (*Table, error) {
	records, err := s.Records(ctx)
	if err != nil {
		return nil, err
	}
	table, err := NewTable(records)
	if err != nil {
		return nil, fmt.Errorf("invalid destination table: %w", err)
	}
	s.logger.InfoContext(ctx, "Destination table loaded", slog.Int("destinations", table.Len()))
	return table, nil
}

// Records reads and validates the raw records without indexing them.
func (s *FileSource) Records(ctx context.Context) ([]Record, error) {
	raw := data.Destinations
	source := "embedded"
	if s.path != "" {
		b, err := os.ReadFile(s.path)
		if err != nil {
			return nil, fmt.Errorf("failed to read destination file: %w", err)
		}
		raw, source = b, s.path
	}
	return decodeRecords(ctx, raw, source, s.logger)
}

func decodeRecords(ctx context.Context, raw []byte, source string, logger *slog.Logger) ([]Record, error) {
	if err := data.Validate(data.DestinationsSchema, raw); err != nil {
		return nil, fmt.Errorf("destination file %s: %w", source, err)
	}
	var f tableFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to decode destination file %s: %w", source, err)
	}
	if f.Version != types.VocabularyVersion {
		logger.WarnContext(ctx, "Destination file vocabulary version differs",
			slog.String("source", source),
			slog.String("file_version", f.Version),
			slog.String("vocabulary_version", types.VocabularyVersion),
		)
	}
	return f.Destinations, nil
}
