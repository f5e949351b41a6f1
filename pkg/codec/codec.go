// Package codec bridges the in-memory value model to interchange
// representations: native Go trees as produced by the YAML and JSON
// decoders, and whole documents in either format.
//
// The model itself stays free of serialization concerns; everything
// format-shaped lives here.
package codec

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/aretw0/strata/pkg/model"
)

// FromNative converts a decoded YAML/JSON tree into a Value. Map keys
// are sorted during conversion so that the entry order of the result is
// deterministic regardless of Go map iteration order.
//
// Unlike the model's precondition panics, malformed input here is an
// ordinary error: native trees come from external data.
func FromNative(in any) (model.Value, error) {
	switch x := in.(type) {
	case nil:
		return model.Null(), nil
	case bool:
		return model.Bool(x), nil
	case int:
		return model.Int(int64(x)), nil
	case int32:
		return model.Int(int64(x)), nil
	case int64:
		return model.Int(x), nil
	case uint:
		return model.Int(int64(x)), nil
	case uint32:
		return model.Int(int64(x)), nil
	case uint64:
		if x > uint64(1)<<63-1 {
			return model.Value{}, fmt.Errorf("integer %d overflows int64", x)
		}
		return model.Int(int64(x)), nil
	case float32:
		return model.Double(float64(x)), nil
	case float64:
		return model.Double(x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return model.Int(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return model.Value{}, fmt.Errorf("invalid number %q: %w", x.String(), err)
		}
		return model.Double(f), nil
	case string:
		return model.String(x), nil
	case []byte:
		return model.Bytes(x), nil
	case time.Time:
		return model.Time(model.TimestampFromTime(x)), nil
	case []any:
		elements := make([]model.Value, len(x))
		for i, e := range x {
			v, err := FromNative(e)
			if err != nil {
				return model.Value{}, fmt.Errorf("element %d: %w", i, err)
			}
			elements[i] = v
		}
		return model.Array(elements...), nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		entries := make([]model.Entry, 0, len(x))
		for _, k := range keys {
			v, err := FromNative(x[k])
			if err != nil {
				return model.Value{}, fmt.Errorf("field %q: %w", k, err)
			}
			entries = append(entries, model.Pair(k, v))
		}
		return model.Map(entries...), nil
	case model.Value:
		return x, nil
	default:
		return model.Value{}, fmt.Errorf("unsupported native type %T", in)
	}
}

// ToNative converts a Value back into a plain Go tree suitable for the
// YAML and JSON encoders. Map entry order is not representable in a Go
// map and is dropped; canonical output relies on the encoders' own key
// sorting.
//
// Reference and geo-point have no native form in either format: a
// reference becomes its resource name string, a geo-point a two-field
// mapping.
func ToNative(v model.Value) any {
	switch v.Kind() {
	case model.KindNull:
		return nil
	case model.KindBool:
		return v.Bool()
	case model.KindInt:
		return v.Int()
	case model.KindDouble:
		return v.Double()
	case model.KindTimestamp:
		return v.Time().Time()
	case model.KindString:
		return v.Text()
	case model.KindBytes:
		return v.Bytes()
	case model.KindReference:
		return v.Ref()
	case model.KindGeoPoint:
		geo := v.Geo()
		return map[string]any{
			"latitude":  geo.Latitude,
			"longitude": geo.Longitude,
		}
	case model.KindArray:
		out := make([]any, len(v.Elements()))
		for i, e := range v.Elements() {
			out[i] = ToNative(e)
		}
		return out
	case model.KindMap:
		out := make(map[string]any, len(v.Fields()))
		for _, f := range v.Fields() {
			out[f.Key] = ToNative(f.Value)
		}
		return out
	default:
		panic("codec: invalid value kind")
	}
}
