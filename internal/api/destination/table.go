package destination

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/FACorreiaa/go-tourism-filter/internal/types"
)

// Record is one destination as stored in the data file or the database.
type Record struct {
	City       string                `json:"city"`
	Country    string                `json:"country"`
	Aliases    []string              `json:"aliases,omitempty"`
	Hemisphere types.Hemisphere      `json:"hemisphere,omitempty"`
	Tags       types.DestinationTags `json:"tags"`
}

// Table is the read-only, in-memory destination lookup table.
type Table struct {
	profiles   map[string]types.DestinationProfile
	aliases    map[string]string // alias key -> canonical key
	candidates []candidate
	order      []string
}

// NewTable validates and indexes records. Unknown tag values, duplicate keys and
// bad hemisphere overrides are errors: the table must be fully valid before use.
func NewTable(records []Record) (*Table, error) {
	t := &Table{
		profiles: make(map[string]types.DestinationProfile, len(records)),
		aliases:  map[string]string{},
	}
	for i, rec := range records {
		if strings.TrimSpace(rec.City) == "" || strings.TrimSpace(rec.Country) == "" {
			return nil, fmt.Errorf("destination %d: city and country are required", i)
		}
		if err := rec.Tags.Validate(); err != nil {
			return nil, fmt.Errorf("destination %q: %w", rec.City, err)
		}
		switch rec.Hemisphere {
		case "", types.Northern, types.Southern:
		default:
			return nil, fmt.Errorf("destination %q: unknown hemisphere %q", rec.City, rec.Hemisphere)
		}

		key := NormalizeKey(rec.City, rec.Country)
		if _, dup := t.profiles[key]; dup {
			return nil, fmt.Errorf("destination %q: duplicate key %q", rec.City, key)
		}
		tags, _ := rec.Tags.Sanitize()
		t.profiles[key] = types.DestinationProfile{
			City:       rec.City,
			Country:    rec.Country,
			Key:        key,
			Region:     firstRegion(tags.GeoRegion),
			Hemisphere: rec.Hemisphere,
			Tags:       tags,
			Resolution: types.ExactMatch{Key: key},
		}
		t.order = append(t.order, key)

		country := NormalizeName(rec.Country)
		t.candidates = append(t.candidates, candidate{key: key, city: NormalizeName(rec.City), country: country})
		for _, alias := range rec.Aliases {
			aliasKey := NormalizeKey(alias, rec.Country)
			if aliasKey == key {
				continue
			}
			t.aliases[aliasKey] = key
			t.candidates = append(t.candidates, candidate{key: key, city: NormalizeName(alias), country: country})
		}
	}
	for alias := range t.aliases {
		if _, clash := t.profiles[alias]; clash {
			return nil, fmt.Errorf("alias key %q collides with a destination", alias)
		}
	}
	return t, nil
}

func firstRegion(regions types.Set[types.GeoRegion]) string {
	if sorted := regions.Sorted(); len(sorted) > 0 {
		return string(sorted[0])
	}
	return ""
}

// Lookup finds a destination by normalized key, following aliases.
func (t *Table) Lookup(key string) (types.DestinationProfile, bool) {
	if canonical, ok := t.aliases[key]; ok {
		key = canonical
	}
	p, ok := t.profiles[key]
	return p, ok
}

// FuzzyLookup matches a misspelt city against every table entry.
func (t *Table) FuzzyLookup(m *Matcher, city, country string) (types.DestinationProfile, int, bool) {
	key, score, ok := m.Match(NormalizeName(city), NormalizeName(country), t.candidates)
	if !ok {
		return types.DestinationProfile{}, 0, false
	}
	p, ok := t.profiles[key]
	return p, score, ok
}

func (t *Table) Len() int { return len(t.profiles) }

// Profiles returns every destination in load order.
func (t *Table) Profiles() []types.DestinationProfile {
	out := make([]types.DestinationProfile, 0, len(t.order))
	for _, key := range t.order {
		out = append(out, t.profiles[key])
	}
	return out
}

// CityEntry and CountryGroup shape the destination picker listing.
type CityEntry struct {
	City   string `json:"city"`
	Region string `json:"region"`
}

type CountryGroup struct {
	Country string      `json:"country"`
	Cities  []CityEntry `json:"cities"`
}

// ByCountry groups destinations by country, both levels sorted by name.
func (t *Table) ByCountry() []CountryGroup {
	groups := map[string][]CityEntry{}
	for _, p := range t.Profiles() {
		groups[p.Country] = append(groups[p.Country], CityEntry{City: p.City, Region: p.Region})
	}
	out := make([]CountryGroup, 0, len(groups))
	for country, cities := range groups {
		slices.SortFunc(cities, func(a, b CityEntry) int { return cmp.Compare(a.City, b.City) })
		out = append(out, CountryGroup{Country: country, Cities: cities})
	}
	slices.SortFunc(out, func(a, b CountryGroup) int { return cmp.Compare(a.Country, b.Country) })
	return out
}
