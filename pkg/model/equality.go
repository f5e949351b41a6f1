package model

import "math"

// Type order groups the kinds the way the backend orders them, with
// server timestamp sentinels pulled out of the map kind. Integers and
// doubles share one numeric order but are never equal to each other.
const (
	TypeOrderNull = iota
	TypeOrderBool
	TypeOrderNumber
	TypeOrderTimestamp
	TypeOrderServerTimestamp
	TypeOrderString
	TypeOrderBytes
	TypeOrderReference
	TypeOrderGeoPoint
	TypeOrderArray
	TypeOrderMap
)

// TypeOrder returns the ordering class of the value's kind. A map with
// the server timestamp shape classifies as TypeOrderServerTimestamp.
func TypeOrder(v Value) int {
	switch v.kind {
	case KindNull:
		return TypeOrderNull
	case KindBool:
		return TypeOrderBool
	case KindInt, KindDouble:
		return TypeOrderNumber
	case KindTimestamp:
		return TypeOrderTimestamp
	case KindString:
		return TypeOrderString
	case KindBytes:
		return TypeOrderBytes
	case KindReference:
		return TypeOrderReference
	case KindGeoPoint:
		return TypeOrderGeoPoint
	case KindArray:
		return TypeOrderArray
	case KindMap:
		if IsServerTimestamp(v) {
			return TypeOrderServerTimestamp
		}
		return TypeOrderMap
	default:
		panic("model: invalid value kind")
	}
}

// Equal reports deep content equality of two values.
//
// Values of different type orders are never equal; in particular an
// integer never equals a double, even for the same mathematical number.
// Doubles compare bitwise, so NaN equals NaN. Server timestamp sentinels
// compare by their local write times. Maps compare as unordered sets of
// keyed entries.
func Equal(left, right Value) bool {
	leftType := TypeOrder(left)
	if leftType != TypeOrder(right) {
		return false
	}

	switch leftType {
	case TypeOrderNull:
		return true
	case TypeOrderBool:
		return left.boolean == right.boolean
	case TypeOrderNumber:
		return numberEqual(left, right)
	case TypeOrderTimestamp:
		return left.ts == right.ts
	case TypeOrderServerTimestamp:
		return Equal(LocalWriteTime(left), LocalWriteTime(right))
	case TypeOrderString, TypeOrderReference:
		return left.str == right.str
	case TypeOrderBytes:
		return bytesCompare(left.blob, right.blob) == 0
	case TypeOrderGeoPoint:
		return left.geo == right.geo
	case TypeOrderArray:
		return arrayEqual(left, right)
	case TypeOrderMap:
		return objectEqual(left, right)
	default:
		panic("model: invalid type order")
	}
}

func numberEqual(left, right Value) bool {
	if left.kind == KindInt && right.kind == KindInt {
		return left.integer == right.integer
	}
	if left.kind == KindDouble && right.kind == KindDouble {
		return math.Float64bits(left.double) == math.Float64bits(right.double)
	}
	return false
}

func arrayEqual(left, right Value) bool {
	if len(left.values) != len(right.values) {
		return false
	}
	for i := range left.values {
		if !Equal(left.values[i], right.values[i]) {
			return false
		}
	}
	return true
}

func objectEqual(left, right Value) bool {
	if len(left.fields) != len(right.fields) {
		return false
	}
	for _, f := range right.fields {
		i := findField(left.fields, f.Key)
		if i < 0 || !Equal(left.fields[i].Value, f.Value) {
			return false
		}
	}
	return true
}
