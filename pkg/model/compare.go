package model

import (
	"bytes"
	"math"
	"sort"
	"strings"
)

// Compare defines a total order over all values: first by type order,
// then within a kind. Integers and doubles compare numerically against
// each other; NaN orders below every other number. Returns -1, 0 or 1.
func Compare(left, right Value) int {
	leftType := TypeOrder(left)
	rightType := TypeOrder(right)
	if leftType != rightType {
		return compareInt(leftType, rightType)
	}

	switch leftType {
	case TypeOrderNull:
		return 0
	case TypeOrderBool:
		return compareBool(left.boolean, right.boolean)
	case TypeOrderNumber:
		return compareNumbers(left, right)
	case TypeOrderTimestamp:
		return left.ts.Compare(right.ts)
	case TypeOrderServerTimestamp:
		return LocalWriteTime(left).Time().Compare(LocalWriteTime(right).Time())
	case TypeOrderString:
		return strings.Compare(left.str, right.str)
	case TypeOrderBytes:
		return bytesCompare(left.blob, right.blob)
	case TypeOrderReference:
		return compareReferences(left.str, right.str)
	case TypeOrderGeoPoint:
		if c := compareFloat(left.geo.Latitude, right.geo.Latitude); c != 0 {
			return c
		}
		return compareFloat(left.geo.Longitude, right.geo.Longitude)
	case TypeOrderArray:
		return compareArrays(left.values, right.values)
	case TypeOrderMap:
		return compareObjects(left.fields, right.fields)
	default:
		panic("model: invalid type order")
	}
}

func compareNumbers(left, right Value) int {
	if left.kind == KindInt && right.kind == KindInt {
		return compareInt64(left.integer, right.integer)
	}
	return compareFloat(numericValue(left), numericValue(right))
}

func numericValue(v Value) float64 {
	if v.kind == KindInt {
		return float64(v.integer)
	}
	return v.double
}

// compareFloat orders doubles with NaN below everything, matching the
// backend's number ordering rather than IEEE semantics.
func compareFloat(a, b float64) int {
	switch {
	case math.IsNaN(a):
		if math.IsNaN(b) {
			return 0
		}
		return -1
	case math.IsNaN(b):
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case b:
		return -1
	default:
		return 1
	}
}

func compareInt(a, b int) int {
	return compareInt64(int64(a), int64(b))
}

func bytesCompare(a, b []byte) int {
	return bytes.Compare(a, b)
}

func compareReferences(left, right string) int {
	leftSegments := splitResourceName(left)
	rightSegments := splitResourceName(right)

	n := len(leftSegments)
	if len(rightSegments) < n {
		n = len(rightSegments)
	}
	for i := 0; i < n; i++ {
		if c := strings.Compare(leftSegments[i], rightSegments[i]); c != 0 {
			return c
		}
	}
	return compareInt(len(leftSegments), len(rightSegments))
}

func splitResourceName(name string) []string {
	var segments []string
	for _, s := range strings.Split(name, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}

func compareArrays(left, right []Value) int {
	n := len(left)
	if len(right) < n {
		n = len(right)
	}
	for i := 0; i < n; i++ {
		if c := Compare(left[i], right[i]); c != 0 {
			return c
		}
	}
	return compareInt(len(left), len(right))
}

// compareObjects walks both maps in sorted key order; entry order within
// a map never affects the result.
func compareObjects(left, right []Entry) int {
	leftKeys := sortedKeys(left)
	rightKeys := sortedKeys(right)

	n := len(leftKeys)
	if len(rightKeys) < n {
		n = len(rightKeys)
	}
	for i := 0; i < n; i++ {
		if c := strings.Compare(leftKeys[i], rightKeys[i]); c != 0 {
			return c
		}
		leftValue := left[findField(left, leftKeys[i])].Value
		rightValue := right[findField(right, rightKeys[i])].Value
		if c := Compare(leftValue, rightValue); c != 0 {
			return c
		}
	}
	return compareInt(len(leftKeys), len(rightKeys))
}

func sortedKeys(fields []Entry) []string {
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.Key
	}
	sort.Strings(keys)
	return keys
}
