package codec

import (
	"fmt"
	"strings"

	"github.com/aretw0/strata/pkg/model"
)

// ParsePath turns a user-facing dotted path into a FieldPath. The
// syntax is deliberately simple: segments separated by dots, with
// backtick quoting for segments containing dots or backticks
// (backslash escapes inside quotes). This is the inverse of
// FieldPath.String for every path it can produce.
func ParsePath(s string) (model.FieldPath, error) {
	if s == "" {
		return nil, fmt.Errorf("empty field path")
	}

	var path model.FieldPath
	var segment strings.Builder
	inQuote := false
	lastWasDot := true // a dot at the very start is also invalid

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case inQuote:
			if c == '\\' && i+1 < len(s) {
				i++
				segment.WriteByte(s[i])
			} else if c == '`' {
				inQuote = false
			} else {
				segment.WriteByte(c)
			}
		case c == '`':
			inQuote = true
			lastWasDot = false
		case c == '.':
			if lastWasDot {
				return nil, fmt.Errorf("empty segment in field path %q", s)
			}
			path = append(path, segment.String())
			segment.Reset()
			lastWasDot = true
		default:
			segment.WriteByte(c)
			lastWasDot = false
		}
	}
	if inQuote {
		return nil, fmt.Errorf("unterminated quote in field path %q", s)
	}
	if lastWasDot {
		return nil, fmt.Errorf("empty segment in field path %q", s)
	}
	return append(path, segment.String()), nil
}
