package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/goccy/go-json"

	"github.com/FACorreiaa/go-tourism-filter/data"
	"github.com/FACorreiaa/go-tourism-filter/internal/types"
)

// Source delivers the catalog once at startup.
type Source interface {
	Load(ctx context.Context) (*Catalog, error)
}

type subcategory struct {
	Name                string             `json:"name"`
	Description         string             `json:"description"`
	SearchQueryTemplate string             `json:"search_query_template"`
	Tags                types.CategoryTags `json:"tags"`
}

type parentEntry struct {
	Parent        string        `json:"parent"`
	Subcategories []subcategory `json:"subcategories"`
}

type catalogFile struct {
	Version       string        `json:"version"`
	Places        []parentEntry `json:"places"`
	Activities    []parentEntry `json:"activities"`
	Cuisines      []parentEntry `json:"cuisines"`
	DiningFormats []parentEntry `json:"dining_formats"`
	Dietary       []parentEntry `json:"dietary"`
}

func (f catalogFile) entries(kind types.ListKind) []parentEntry {
	switch kind {
	case types.ListPlaces:
		return f.Places
	case types.ListActivities:
		return f.Activities
	case types.ListCuisines:
		return f.Cuisines
	case types.ListDiningFormats:
		return f.DiningFormats
	case types.ListDietary:
		return f.Dietary
	}
	return nil
}

var _ Source = (*FileSource)(nil)

// FileSource reads the catalog from a JSON file, or the embedded default when path is empty.
type FileSource struct {
	path   string
	logger *slog.Logger
}

func NewFileSource(path string, logger *slog.Logger) *FileSource {
	return &FileSource{path: path, logger: logger}
}

func (s *FileSource) Load(ctx context.Context) (*Catalog, error) {
	raw := data.Categories
	source := "embedded"
	if s.path != "" {
		b, err := os.ReadFile(s.path)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog file: %w", err)
		}
		raw, source = b, s.path
	}

	c, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", source, err)
	}
	if c.Version != types.VocabularyVersion {
		s.logger.WarnContext(ctx, "Catalog vocabulary version differs",
			slog.String("source", source),
			slog.String("file_version", c.Version),
			slog.String("vocabulary_version", types.VocabularyVersion),
		)
	}
	for _, kind := range types.ListKinds {
		if len(c.FallbackCandidates(kind)) == 0 {
			s.logger.WarnContext(ctx, "Catalog list has no generic fallback records", slog.String("list", string(kind)))
		}
	}
	s.logger.InfoContext(ctx, "Catalog loaded",
		slog.String("source", source),
		slog.Int("categories", c.Size()),
		slog.Any("per_list", c.Counts()),
	)
	return c, nil
}

// Decode validates raw catalog JSON against the schema and flattens it into a Catalog.
func Decode(raw []byte) (*Catalog, error) {
	if err := data.Validate(data.CategoriesSchema, raw); err != nil {
		return nil, err
	}
	var f catalogFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	var records []types.CategoryRecord
	for _, kind := range types.ListKinds {
		for _, parent := range f.entries(kind) {
			for _, sub := range parent.Subcategories {
				records = append(records, types.CategoryRecord{
					Name:                sub.Name,
					ParentCategory:      parent.Parent,
					List:                kind,
					Description:         sub.Description,
					SearchQueryTemplate: sub.SearchQueryTemplate,
					Tags:                sub.Tags,
				})
			}
		}
	}
	return New(f.Version, records)
}
