package catalog

import (
	"fmt"

	"github.com/FACorreiaa/go-tourism-filter/internal/types"
)

// Catalog is the immutable, validated set of category records, split by list.
type Catalog struct {
	Version string
	lists   map[types.ListKind][]types.CategoryRecord
	size    int
}

// New indexes records by list and assigns catalog positions in the given order.
func New(version string, records []types.CategoryRecord) (*Catalog, error) {
	c := &Catalog{
		Version: version,
		lists:   make(map[types.ListKind][]types.CategoryRecord, len(types.ListKinds)),
	}
	seen := map[string]struct{}{}
	for i, rec := range records {
		if c.listIndex(rec.List) < 0 {
			return nil, fmt.Errorf("category %q: unknown list %q", rec.Name, rec.List)
		}
		if rec.Name == "" || rec.ParentCategory == "" {
			return nil, fmt.Errorf("category %d in %s: name and parent are required", i, rec.List)
		}
		if err := rec.Tags.Validate(); err != nil {
			return nil, fmt.Errorf("category %q: %w", rec.Name, err)
		}
		if rec.Tags.HomeRegion != "" && rec.List != types.ListCuisines {
			return nil, fmt.Errorf("category %q: home_region is only valid for cuisines", rec.Name)
		}
		id := string(rec.List) + "/" + rec.ParentCategory + "/" + rec.Name
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("category %q: duplicate in %s/%s", rec.Name, rec.List, rec.ParentCategory)
		}
		seen[id] = struct{}{}

		rec.Tags = rec.Tags.Normalize()
		rec.Position = i
		c.lists[rec.List] = append(c.lists[rec.List], rec)
		c.size++
	}
	return c, nil
}

func (c *Catalog) listIndex(kind types.ListKind) int {
	for i, k := range types.ListKinds {
		if k == kind {
			return i
		}
	}
	return -1
}

// List returns the records of one list in catalog order. The slice must not be modified.
func (c *Catalog) List(kind types.ListKind) []types.CategoryRecord {
	return c.lists[kind]
}

// Size is the total number of records across all lists.
func (c *Catalog) Size() int { return c.size }

// Counts reports the number of records per list.
func (c *Catalog) Counts() map[types.ListKind]int {
	out := make(map[types.ListKind]int, len(types.ListKinds))
	for _, kind := range types.ListKinds {
		out[kind] = len(c.lists[kind])
	}
	return out
}

// FallbackCandidates returns the generic records of a list in catalog order.
func (c *Catalog) FallbackCandidates(kind types.ListKind) []types.CategoryRecord {
	var out []types.CategoryRecord
	for _, rec := range c.lists[kind] {
		if rec.IsFallbackCandidate() {
			out = append(out, rec)
		}
	}
	return out
}

// ParentGroup is one parent category with its subcategories, for listings.
type ParentGroup struct {
	Parent        string                 `json:"parent"`
	Subcategories []types.CategoryRecord `json:"subcategories"`
}

// Grouped returns each list's records grouped by parent, parents in first-seen order.
func (c *Catalog) Grouped() map[types.ListKind][]ParentGroup {
	out := make(map[types.ListKind][]ParentGroup, len(types.ListKinds))
	for _, kind := range types.ListKinds {
		groups := []ParentGroup{}
		index := map[string]int{}
		for _, rec := range c.lists[kind] {
			i, ok := index[rec.ParentCategory]
			if !ok {
				i = len(groups)
				index[rec.ParentCategory] = i
				groups = append(groups, ParentGroup{Parent: rec.ParentCategory})
			}
			groups[i].Subcategories = append(groups[i].Subcategories, rec)
		}
		out[kind] = groups
	}
	return out
}
