package filter

import (
	"slices"

	"github.com/FACorreiaa/go-tourism-filter/internal/types"
)

// LimitByParent keeps the items of the n parent categories with the best
// average score. Item order is preserved and ties between parents go to the
// one seen first. n <= 0 disables the limit.
func LimitByParent(items []types.ScoredCategory, n int) []types.ScoredCategory {
	if n <= 0 {
		return items
	}

	type parentStats struct {
		name  string
		sum   int
		count int
	}
	var parents []*parentStats
	index := map[string]*parentStats{}
	for _, it := range items {
		ps, ok := index[it.ParentCategory]
		if !ok {
			ps = &parentStats{name: it.ParentCategory}
			index[it.ParentCategory] = ps
			parents = append(parents, ps)
		}
		ps.sum += it.Score
		ps.count++
	}
	if len(parents) <= n {
		return items
	}

	// compare averages without division: a.sum/a.count > b.sum/b.count
	slices.SortStableFunc(parents, func(a, b *parentStats) int {
		left, right := a.sum*b.count, b.sum*a.count
		switch {
		case left > right:
			return -1
		case left < right:
			return 1
		}
		return 0
	})

	keep := make(map[string]struct{}, n)
	for _, ps := range parents[:n] {
		keep[ps.name] = struct{}{}
	}
	out := make([]types.ScoredCategory, 0, len(items))
	for _, it := range items {
		if _, ok := keep[it.ParentCategory]; ok {
			out = append(out, it)
		}
	}
	return out
}
