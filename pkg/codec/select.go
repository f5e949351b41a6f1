package codec

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/strata/pkg/model"
)

// Select filters a document's field mask down to the leaf paths whose
// slash-joined form matches a doublestar glob, so "user/**" selects
// every field below user and "**/id" every id at any depth.
func Select(ov *model.ObjectValue, pattern string) (model.FieldMask, error) {
	if !doublestar.ValidatePattern(pattern) {
		return model.FieldMask{}, fmt.Errorf("invalid pattern %q", pattern)
	}

	var matched []model.FieldPath
	for _, path := range ov.FieldMask().Paths() {
		ok, err := doublestar.Match(pattern, strings.Join(path, "/"))
		if err != nil {
			return model.FieldMask{}, fmt.Errorf("matching %s: %w", path, err)
		}
		if ok {
			matched = append(matched, path)
		}
	}
	return model.NewFieldMask(matched...), nil
}
