package types

import (
	"slices"
	"strings"

	"github.com/goccy/go-json"
)

// Set is a set of enumerated tag values. A nil Set behaves as an empty set and
// serializes as an empty JSON array, so callers only ever branch on emptiness.
type Set[T ~string] map[T]struct{}

// NewSet builds a set from the given values.
func NewSet[T ~string](values ...T) Set[T] {
	s := make(Set[T], len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

func (s Set[T]) Len() int { return len(s) }

func (s Set[T]) IsEmpty() bool { return len(s) == 0 }

// Intersects reports whether the two sets share at least one value.
func (s Set[T]) Intersects(other Set[T]) bool {
	small, large := s, other
	if len(small) > len(large) {
		small, large = large, small
	}
	for v := range small {
		if large.Has(v) {
			return true
		}
	}
	return false
}

// Overlap counts the values present in both sets.
func (s Set[T]) Overlap(other Set[T]) int {
	n := 0
	for v := range s {
		if other.Has(v) {
			n++
		}
	}
	return n
}

// Sorted returns the values in lexical order. Never nil.
func (s Set[T]) Sorted() []T {
	out := make([]T, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// Restrict returns the subset of s drawn from allowed, plus the values that were dropped.
func (s Set[T]) Restrict(allowed Set[T]) (Set[T], []T) {
	kept := make(Set[T], len(s))
	var dropped []T
	for _, v := range s.Sorted() {
		if allowed.Has(v) {
			kept[v] = struct{}{}
			continue
		}
		dropped = append(dropped, v)
	}
	return kept, dropped
}

// Clone returns an independent copy; the result is never nil.
func (s Set[T]) Clone() Set[T] {
	out := make(Set[T], len(s))
	for v := range s {
		out[v] = struct{}{}
	}
	return out
}

func (s Set[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

func (s *Set[T]) UnmarshalJSON(data []byte) error {
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = ParseSet[T](raw)
	return nil
}

// ParseSet lower-cases and trims raw strings into a set. Empty strings are skipped.
func ParseSet[T ~string](raw []string) Set[T] {
	s := make(Set[T], len(raw))
	for _, r := range raw {
		v := strings.ToLower(strings.TrimSpace(r))
		if v == "" {
			continue
		}
		s[T(v)] = struct{}{}
	}
	return s
}
