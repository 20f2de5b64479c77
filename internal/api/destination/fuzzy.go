package destination

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

const (
	// DefaultFuzzyThreshold is the minimum similarity (0-100) for a fuzzy match.
	DefaultFuzzyThreshold = 80

	containmentSimilarity = 85
	minContainmentLength  = 4
)

// Similarity scores two normalized city names from 0 to 100, taking the best of
// edit distance, token overlap and containment.
func Similarity(a, b string) int {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 100
	}
	best := editSimilarity(a, b)
	if s := tokenSimilarity(a, b); s > best {
		best = s
	}
	if s := containment(a, b); s > best {
		best = s
	}
	return best
}

func editSimilarity(a, b string) int {
	longest := max(len([]rune(a)), len([]rune(b)))
	d := levenshtein.ComputeDistance(a, b)
	return 100 - d*100/longest
}

// tokenSimilarity is the Jaccard index of the word sets, so word order does not matter.
func tokenSimilarity(a, b string) int {
	ta, tb := map[string]struct{}{}, map[string]struct{}{}
	for _, t := range tokens(a) {
		ta[t] = struct{}{}
	}
	for _, t := range tokens(b) {
		tb[t] = struct{}{}
	}
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}
	shared := 0
	for t := range ta {
		if _, ok := tb[t]; ok {
			shared++
		}
	}
	union := len(ta) + len(tb) - shared
	return shared * 100 / union
}

func containment(a, b string) int {
	short, long := a, b
	if len(short) > len(long) {
		short, long = long, short
	}
	if len([]rune(short)) < minContainmentLength {
		return 0
	}
	if strings.Contains(long, short) {
		return containmentSimilarity
	}
	return 0
}

// candidate is a fuzzy-matchable table entry.
type candidate struct {
	key     string
	city    string // normalized
	country string // normalized
}

// Matcher picks the single best table entry for a misspelt destination.
type Matcher struct {
	threshold int
}

func NewMatcher(threshold int) *Matcher {
	if threshold <= 0 || threshold > 100 {
		threshold = DefaultFuzzyThreshold
	}
	return &Matcher{threshold: threshold}
}

// Match returns the key and city similarity of the best candidate at or above
// the threshold. The country never disqualifies a city; it only decides between
// candidates with equal city similarity. A remaining tie is not a match.
func (m *Matcher) Match(city, country string, candidates []candidate) (string, int, bool) {
	if city == "" {
		return "", 0, false
	}
	bestKey, bestScore := "", -1
	bestAgrees, tied := false, false
	for _, c := range candidates {
		score := Similarity(city, c.city)
		agrees := country != "" && country == c.country

		switch {
		case score > bestScore, score == bestScore && agrees && !bestAgrees:
			bestKey, bestScore, bestAgrees, tied = c.key, score, agrees, false
		case score == bestScore && agrees == bestAgrees && c.key != bestKey:
			tied = true
		}
	}
	if bestScore < m.threshold || tied {
		return "", 0, false
	}
	return bestKey, bestScore, true
}
