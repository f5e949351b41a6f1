package strata

import (
	"github.com/aretw0/strata/pkg/model"
)

// Version exposes the version of the library.
// See version.go for the implementation using go:embed.

// --- Types ---

// Value is a public alias for the document value union.
type Value = model.Value

// Kind is a public alias for the value kind discriminator.
type Kind = model.Kind

// Entry is a public alias for one ordered map entry.
type Entry = model.Entry

// Timestamp is a public alias for the seconds/nanos timestamp.
type Timestamp = model.Timestamp

// GeoPoint is a public alias for a latitude/longitude pair.
type GeoPoint = model.GeoPoint

// FieldPath is a public alias for a dotted field path.
type FieldPath = model.FieldPath

// FieldMask is a public alias for a sorted, deduplicated path set.
type FieldMask = model.FieldMask

// ObjectValue is a public alias for a mutable document tree.
type ObjectValue = model.ObjectValue

// --- Constructors ---

// Null returns the null value.
func Null() Value { return model.Null() }

// Bool returns a boolean value.
func Bool(b bool) Value { return model.Bool(b) }

// Int returns a 64-bit integer value.
func Int(i int64) Value { return model.Int(i) }

// Double returns a 64-bit floating point value.
func Double(d float64) Value { return model.Double(d) }

// String returns a string value.
func String(s string) Value { return model.String(s) }

// Bytes returns a byte-blob value.
func Bytes(b []byte) Value { return model.Bytes(b) }

// Reference returns a document reference value.
func Reference(name string) Value { return model.Reference(name) }

// Geo returns a geographical point value.
func Geo(lat, lng float64) Value { return model.Geo(lat, lng) }

// Time returns a timestamp value.
func Time(ts Timestamp) Value { return model.Time(ts) }

// Array returns an array value holding the given elements in order.
// The slice is not copied; ObjectValue.Set clones on insert.
func Array(elements ...Value) Value { return model.Array(elements...) }

// Map returns a map value holding the given entries in order. Keys
// must be distinct; the entries are not copied.
func Map(entries ...Entry) Value { return model.Map(entries...) }

// Pair builds one map entry.
func Pair(key string, value Value) Entry { return model.Pair(key, value) }

// Path builds a field path from individual segments.
func Path(segments ...string) FieldPath { return model.NewFieldPath(segments...) }

// NewObjectValue returns an empty document.
func NewObjectValue() *ObjectValue { return model.NewObjectValue() }

// NewFieldMask returns the sorted, deduplicated mask of the given paths.
func NewFieldMask(paths ...FieldPath) FieldMask { return model.NewFieldMask(paths...) }

// ServerTimestamp returns a pending-write sentinel carrying the local write time.
func ServerTimestamp(localWriteTime Timestamp) Value {
	return model.ServerTimestamp(localWriteTime)
}

// IsServerTimestamp reports whether v is a pending-write sentinel.
func IsServerTimestamp(v Value) bool { return model.IsServerTimestamp(v) }

// --- Comparison ---

// Equal reports semantic equality between two values.
func Equal(a, b Value) bool { return model.Equal(a, b) }

// Compare orders two values, possibly of different kinds.
func Compare(a, b Value) int { return model.Compare(a, b) }
