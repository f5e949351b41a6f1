package model

import (
	"sort"
	"strconv"
	"strings"
)

const hexDigits = "0123456789ABCDEF"

// String renders the canonical form of the value, used for debugging and
// as a stable textual identity. Map keys are emitted in sorted order so
// the form is independent of insertion order; local modifications can
// bring entries out of order and must not change the canonical form.
func (v Value) String() string {
	var b strings.Builder
	v.canonify(&b)
	return b.String()
}

func (v Value) canonify(b *strings.Builder) {
	switch v.kind {
	case KindNull:
		b.WriteString("null")
	case KindBool:
		if v.boolean {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case KindInt:
		b.WriteString(strconv.FormatInt(v.integer, 10))
	case KindDouble:
		b.WriteString(strconv.FormatFloat(v.double, 'g', -1, 64))
	case KindTimestamp:
		b.WriteString("time(")
		b.WriteString(strconv.FormatInt(v.ts.Seconds, 10))
		b.WriteByte(',')
		b.WriteString(strconv.FormatInt(int64(v.ts.Nanos), 10))
		b.WriteByte(')')
	case KindString:
		b.WriteString(v.str)
	case KindBytes:
		for _, c := range v.blob {
			b.WriteByte(hexDigits[c>>4])
			b.WriteByte(hexDigits[c&0x0F])
		}
	case KindReference:
		b.WriteString(v.str)
	case KindGeoPoint:
		b.WriteString("geo(")
		b.WriteString(strconv.FormatFloat(v.geo.Latitude, 'g', -1, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(v.geo.Longitude, 'g', -1, 64))
		b.WriteByte(')')
	case KindArray:
		b.WriteByte('[')
		for i, e := range v.values {
			if i > 0 {
				b.WriteByte(',')
			}
			e.canonify(b)
		}
		b.WriteByte(']')
	case KindMap:
		v.canonifyObject(b)
	default:
		panic("model: invalid value kind")
	}
}

func (v Value) canonifyObject(b *strings.Builder) {
	indexes := make([]int, len(v.fields))
	for i := range indexes {
		indexes[i] = i
	}
	sort.Slice(indexes, func(i, j int) bool {
		return v.fields[indexes[i]].Key < v.fields[indexes[j]].Key
	})

	b.WriteByte('{')
	for i, idx := range indexes {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(v.fields[idx].Key)
		b.WriteByte(':')
		v.fields[idx].Value.canonify(b)
	}
	b.WriteByte('}')
}
