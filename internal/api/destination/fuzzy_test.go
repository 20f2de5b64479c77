package destination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		city, country, want string
	}{
		{"Prague", "Czech Republic", "prague_czech republic"},
		{"  PRAGUE ", " czech   republic", "prague_czech republic"},
		{"São Paulo", "Brazil", "sao paulo_brazil"},
		{"Kraków", "Poland", "krakow_poland"},
		{"Zürich", "Switzerland", "zurich_switzerland"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeKey(tt.city, tt.country), tt.city)
	}
}

func TestNormalizeKey_RoundTrip(t *testing.T) {
	key := NormalizeKey("Reykjavík", "Iceland")
	city, country, _ := cutKey(key)
	assert.Equal(t, key, NormalizeKey(city, country))
}

func cutKey(key string) (string, string, bool) {
	for i := len(key) - 1; i >= 0; i-- {
		if key[i] == '_' {
			return key[:i], key[i+1:], true
		}
	}
	return key, "", false
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 100, Similarity("prague", "prague"))
	assert.Equal(t, 0, Similarity("", "prague"))
	assert.Equal(t, 100, Similarity("new york", "york new"), "word order is ignored")
	assert.GreaterOrEqual(t, Similarity("pragu", "prague"), 80)
	assert.Equal(t, containmentSimilarity, Similarity("barcelona city", "barcelona"))
	assert.Less(t, Similarity("rome", "oslo"), 50)
	assert.Equal(t, Similarity("lisbon", "lisboa"), Similarity("lisboa", "lisbon"), "symmetric")
}

func TestMatcher_Match(t *testing.T) {
	candidates := []candidate{
		{key: "prague_czech republic", city: "prague", country: "czech republic"},
		{key: "paris_france", city: "paris", country: "france"},
		{key: "springfield_usa", city: "springfield", country: "usa"},
		{key: "springfield_australia", city: "springfield", country: "australia"},
	}
	m := NewMatcher(DefaultFuzzyThreshold)

	t.Run("misspelling with country", func(t *testing.T) {
		key, score, ok := m.Match("prag", "czech republic", candidates)
		assert.True(t, ok)
		assert.Equal(t, "prague_czech republic", key)
		assert.GreaterOrEqual(t, score, DefaultFuzzyThreshold)
	})

	t.Run("country spelling does not block an exact city", func(t *testing.T) {
		key, score, ok := m.Match("prague", "czechia", candidates)
		assert.True(t, ok)
		assert.Equal(t, "prague_czech republic", key)
		assert.Equal(t, 100, score)
	})

	t.Run("shared city with unknown country stays ambiguous", func(t *testing.T) {
		_, _, ok := m.Match("springfield", "us", candidates)
		assert.False(t, ok)
	})

	t.Run("ties are rejected", func(t *testing.T) {
		_, _, ok := m.Match("springfield", "", candidates)
		assert.False(t, ok)
	})

	t.Run("country picks among shared cities", func(t *testing.T) {
		key, _, ok := m.Match("springfield", "usa", candidates)
		assert.True(t, ok)
		assert.Equal(t, "springfield_usa", key)
	})

	t.Run("country breaks the tie", func(t *testing.T) {
		key, _, ok := m.Match("springfeld", "australia", candidates)
		assert.True(t, ok)
		assert.Equal(t, "springfield_australia", key)
	})

	t.Run("unrelated name", func(t *testing.T) {
		_, _, ok := m.Match("ulaanbaatar", "mongolia", candidates)
		assert.False(t, ok)
	})

	t.Run("empty city", func(t *testing.T) {
		_, _, ok := m.Match("", "france", candidates)
		assert.False(t, ok)
	})
}

func TestNewMatcher_DefaultsOutOfRangeThreshold(t *testing.T) {
	assert.Equal(t, DefaultFuzzyThreshold, NewMatcher(0).threshold)
	assert.Equal(t, DefaultFuzzyThreshold, NewMatcher(150).threshold)
	assert.Equal(t, 90, NewMatcher(90).threshold)
}
