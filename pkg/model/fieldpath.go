package model

import "strings"

// FieldPath is an ordered sequence of field names addressing a value at
// arbitrary nesting depth. Segments are raw field names; escaping and
// parsing of user-facing dotted syntax happen outside this package.
//
// The empty path addresses the document root. Mutating operations on
// ObjectValue reject it; see Set and Delete.
type FieldPath []string

// NewFieldPath builds a path from the given segments.
func NewFieldPath(segments ...string) FieldPath {
	return FieldPath(segments)
}

// Empty reports whether the path has no segments.
func (p FieldPath) Empty() bool { return len(p) == 0 }

// Len returns the number of segments.
func (p FieldPath) Len() int { return len(p) }

// FirstSegment returns the first segment. Panics on an empty path.
func (p FieldPath) FirstSegment() string { return p[0] }

// LastSegment returns the final segment. Panics on an empty path.
func (p FieldPath) LastSegment() string { return p[len(p)-1] }

// PopLast returns the path without its final segment.
func (p FieldPath) PopLast() FieldPath {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1]
}

// PopFirst returns the path without its first segment.
func (p FieldPath) PopFirst() FieldPath {
	if len(p) == 0 {
		return nil
	}
	return p[1:]
}

// Child returns a new path with one extra trailing segment. The receiver
// is not modified and no storage is shared with the result.
func (p FieldPath) Child(segment string) FieldPath {
	out := make(FieldPath, 0, len(p)+1)
	out = append(out, p...)
	return append(out, segment)
}

// Concat returns the concatenation of two paths as a new path.
func (p FieldPath) Concat(other FieldPath) FieldPath {
	out := make(FieldPath, 0, len(p)+len(other))
	out = append(out, p...)
	return append(out, other...)
}

// Equal reports whether both paths have identical segment sequences.
func (p FieldPath) Equal(other FieldPath) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// Compare orders paths segment by segment, shorter prefix first. This is
// the canonical order used by FieldMask.
func (p FieldPath) Compare(other FieldPath) int {
	n := len(p)
	if len(other) < n {
		n = len(other)
	}
	for i := 0; i < n; i++ {
		if c := strings.Compare(p[i], other[i]); c != 0 {
			return c
		}
	}
	return len(p) - len(other)
}

// IsPrefixOf reports whether every segment of p matches the start of other.
// An empty path is a prefix of everything.
func (p FieldPath) IsPrefixOf(other FieldPath) bool {
	if len(p) > len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// String renders the path in dotted form for display. Segments that are
// not simple identifiers are quoted with backticks, with backslash
// escaping for backticks and backslashes inside them.
func (p FieldPath) String() string {
	var b strings.Builder
	for i, seg := range p {
		if i > 0 {
			b.WriteByte('.')
		}
		if identifierSegment(seg) {
			b.WriteString(seg)
			continue
		}
		b.WriteByte('`')
		for j := 0; j < len(seg); j++ {
			c := seg[j]
			if c == '`' || c == '\\' {
				b.WriteByte('\\')
			}
			b.WriteByte(c)
		}
		b.WriteByte('`')
	}
	return b.String()
}

func identifierSegment(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c == '_':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
