package model

import "time"

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindDouble
	KindTimestamp
	KindString
	KindBytes
	KindReference
	KindGeoPoint
	KindArray
	KindMap
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindDouble:
		return "double"
	case KindTimestamp:
		return "timestamp"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	case KindReference:
		return "reference"
	case KindGeoPoint:
		return "geopoint"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	default:
		return "invalid"
	}
}

// Timestamp is a point in time with nanosecond precision.
// It avoids time.Time so that equality and ordering stay free of
// monotonic-clock and location concerns.
type Timestamp struct {
	Seconds int64
	Nanos   int32
}

// TimestampFromTime converts a time.Time to a Timestamp.
func TimestampFromTime(t time.Time) Timestamp {
	return Timestamp{Seconds: t.Unix(), Nanos: int32(t.Nanosecond())}
}

// Time converts the Timestamp back to a time.Time in UTC.
func (t Timestamp) Time() time.Time {
	return time.Unix(t.Seconds, int64(t.Nanos)).UTC()
}

// Compare orders timestamps by seconds, then nanos.
func (t Timestamp) Compare(other Timestamp) int {
	if c := compareInt64(t.Seconds, other.Seconds); c != 0 {
		return c
	}
	return compareInt64(int64(t.Nanos), int64(other.Nanos))
}

// GeoPoint is a geographical point.
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// Entry is a single key/value pair inside a map-typed Value.
// Within one map, keys are pairwise distinct.
type Entry struct {
	Key   string
	Value Value
}

// Pair builds a map entry. Convenience for Map(...).
func Pair(key string, value Value) Entry {
	return Entry{Key: key, Value: value}
}

// Value is a tagged union over the document value variants.
//
// A Value is cheap to copy for scalar variants; array and map variants
// share backing storage on plain assignment, so code that needs an
// independent tree must use Clone. The zero Value is null.
//
// Payload accessors (Bool, Int, Text, Fields, ...) return the zero value
// when called on a Value of a different kind.
type Value struct {
	kind    Kind
	boolean bool
	integer int64
	double  float64
	ts      Timestamp
	str     string // string and reference payloads
	blob    []byte
	geo     GeoPoint
	values  []Value // array payload
	fields  []Entry // map payload
}

// Null returns the null value.
func Null() Value {
	return Value{kind: KindNull}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, boolean: b}
}

// Int returns a 64-bit integer value.
func Int(i int64) Value {
	return Value{kind: KindInt, integer: i}
}

// Double returns a 64-bit floating point value.
func Double(d float64) Value {
	return Value{kind: KindDouble, double: d}
}

// Time returns a timestamp value.
func Time(t Timestamp) Value {
	return Value{kind: KindTimestamp, ts: t}
}

// String returns a string value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Bytes returns a bytes value. The slice is not copied; use Clone when
// the caller retains the backing array.
func Bytes(b []byte) Value {
	return Value{kind: KindBytes, blob: b}
}

// Reference returns a document reference value holding a slash-separated
// resource name.
func Reference(name string) Value {
	return Value{kind: KindReference, str: name}
}

// Geo returns a geo-point value.
func Geo(lat, lng float64) Value {
	return Value{kind: KindGeoPoint, geo: GeoPoint{Latitude: lat, Longitude: lng}}
}

// Array returns an array value holding the given elements in order.
func Array(elements ...Value) Value {
	return Value{kind: KindArray, values: elements}
}

// Map returns a map value holding the given entries in order.
// Keys must be distinct; Map does not deduplicate.
func Map(entries ...Entry) Value {
	return Value{kind: KindMap, fields: entries}
}

// Kind reports which variant the value holds.
func (v Value) Kind() Kind { return v.kind }

// IsMap reports whether the value is map-typed.
func (v Value) IsMap() bool { return v.kind == KindMap }

// Bool returns the boolean payload.
func (v Value) Bool() bool { return v.boolean }

// Int returns the integer payload.
func (v Value) Int() int64 { return v.integer }

// Double returns the double payload.
func (v Value) Double() float64 { return v.double }

// Time returns the timestamp payload.
func (v Value) Time() Timestamp { return v.ts }

// Text returns the string payload.
func (v Value) Text() string { return v.str }

// Ref returns the reference payload.
func (v Value) Ref() string { return v.str }

// Bytes returns the bytes payload without copying.
func (v Value) Bytes() []byte { return v.blob }

// Geo returns the geo-point payload.
func (v Value) Geo() GeoPoint { return v.geo }

// Elements returns the array payload without copying.
func (v Value) Elements() []Value { return v.values }

// Fields returns the map payload without copying. Entries are in
// insertion order.
func (v Value) Fields() []Entry { return v.fields }

// Clone returns a deep copy of the value. The result shares no backing
// storage with the receiver, so either side can be mutated freely.
func (v Value) Clone() Value {
	switch v.kind {
	case KindBytes:
		out := v
		out.blob = append([]byte(nil), v.blob...)
		return out
	case KindArray:
		out := v
		out.values = make([]Value, len(v.values))
		for i, e := range v.values {
			out.values[i] = e.Clone()
		}
		return out
	case KindMap:
		out := v
		out.fields = make([]Entry, len(v.fields))
		for i, f := range v.fields {
			out.fields[i] = Entry{Key: f.Key, Value: f.Value.Clone()}
		}
		return out
	default:
		return v
	}
}

// findField returns the index of the entry with the given key, or -1.
// The scan is linear: map levels are ordered arrays, not hash maps, so
// lookup cost is O(entries at that level).
func findField(fields []Entry, key string) int {
	for i := range fields {
		if fields[i].Key == key {
			return i
		}
	}
	return -1
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
