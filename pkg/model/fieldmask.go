package model

import (
	"sort"
	"strings"
)

// FieldMask is an immutable set of field paths. Paths are stored
// deduplicated in canonical (segment-lexicographic) order; membership is
// purely set-based, so a mask may contain both a path and one of its
// prefixes or descendants.
type FieldMask struct {
	paths []FieldPath
}

// NewFieldMask builds a mask from the given paths, deduplicating and
// sorting them. The input slice is not retained.
func NewFieldMask(paths ...FieldPath) FieldMask {
	sorted := make([]FieldPath, len(paths))
	copy(sorted, paths)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Compare(sorted[j]) < 0
	})

	out := sorted[:0]
	for _, p := range sorted {
		if len(out) == 0 || out[len(out)-1].Compare(p) != 0 {
			out = append(out, p)
		}
	}
	return FieldMask{paths: out}
}

// Len returns the number of paths in the mask.
func (m FieldMask) Len() int { return len(m.paths) }

// Empty reports whether the mask contains no paths.
func (m FieldMask) Empty() bool { return len(m.paths) == 0 }

// Paths returns the mask's paths in canonical order. The returned slice
// must not be modified.
func (m FieldMask) Paths() []FieldPath { return m.paths }

// Contains reports whether the exact path is a member of the mask.
func (m FieldMask) Contains(p FieldPath) bool {
	i := sort.Search(len(m.paths), func(i int) bool {
		return m.paths[i].Compare(p) >= 0
	})
	return i < len(m.paths) && m.paths[i].Compare(p) == 0
}

// Equal reports whether both masks contain the same set of paths.
func (m FieldMask) Equal(other FieldMask) bool {
	if len(m.paths) != len(other.paths) {
		return false
	}
	for i := range m.paths {
		if m.paths[i].Compare(other.paths[i]) != 0 {
			return false
		}
	}
	return true
}

// String renders the mask as a brace-wrapped list of dotted paths in
// canonical order.
func (m FieldMask) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, p := range m.paths {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteByte('}')
	return b.String()
}
