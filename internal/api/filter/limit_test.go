package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FACorreiaa/go-tourism-filter/internal/types"
)

func item(parent, name string, score int) types.ScoredCategory {
	return types.ScoredCategory{CategoryName: name, ParentCategory: parent, Score: score}
}

func names(items []types.ScoredCategory) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.CategoryName
	}
	return out
}

func TestLimitByParent(t *testing.T) {
	items := []types.ScoredCategory{
		item("Markets", "Christmas Markets", 73),
		item("Museums", "Art", 60),
		item("Nightlife", "Clubs", 55),
		item("Markets", "Local", 20),
		item("Museums", "History", 40),
		item("Parks", "City Parks", 30),
	}

	t.Run("keeps best parents in item order", func(t *testing.T) {
		// averages: Nightlife 55, Museums 50, Markets 46.5, Parks 30
		got := LimitByParent(items, 2)
		assert.Equal(t, []string{"Art", "Clubs", "History"}, names(got))
	})

	t.Run("limit above parent count", func(t *testing.T) {
		assert.Equal(t, items, LimitByParent(items, 10))
	})

	t.Run("disabled", func(t *testing.T) {
		assert.Equal(t, items, LimitByParent(items, 0))
	})

	t.Run("ties go to first seen", func(t *testing.T) {
		tied := []types.ScoredCategory{
			item("A", "a1", 40),
			item("B", "b1", 40),
			item("C", "c1", 40),
		}
		assert.Equal(t, []string{"a1", "b1"}, names(LimitByParent(tied, 2)))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, LimitByParent(nil, 5))
	})
}
