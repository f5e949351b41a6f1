package model

import (
	"math"
	"testing"
)

func TestEqual(t *testing.T) {
	ts := Timestamp{Seconds: 100, Nanos: 5}

	tests := []struct {
		name  string
		left  Value
		right Value
		want  bool
	}{
		{"null", Null(), Null(), true},
		{"bool", Bool(true), Bool(true), true},
		{"bool mismatch", Bool(true), Bool(false), false},
		{"int", Int(7), Int(7), true},
		{"int vs double never equal", Int(1), Double(1.0), false},
		{"double bitwise nan", Double(math.NaN()), Double(math.NaN()), true},
		{"double zero vs neg zero", Double(0.0), Double(math.Copysign(0, -1)), false},
		{"timestamp", Time(ts), Time(ts), true},
		{"timestamp nanos differ", Time(ts), Time(Timestamp{Seconds: 100, Nanos: 6}), false},
		{"string", String("a"), String("a"), true},
		{"string vs reference", String("a"), Reference("a"), false},
		{"bytes", Bytes([]byte{1, 2}), Bytes([]byte{1, 2}), true},
		{"bytes differ", Bytes([]byte{1, 2}), Bytes([]byte{1, 3}), false},
		{"geo", Geo(1, 2), Geo(1, 2), true},
		{"array", Array(Int(1), Int(2)), Array(Int(1), Int(2)), true},
		{"array order matters", Array(Int(1), Int(2)), Array(Int(2), Int(1)), false},
		{
			"map ignores entry order",
			Map(Pair("a", Int(1)), Pair("b", Int(2))),
			Map(Pair("b", Int(2)), Pair("a", Int(1))),
			true,
		},
		{
			"map extra key",
			Map(Pair("a", Int(1))),
			Map(Pair("a", Int(1)), Pair("b", Int(2))),
			false,
		},
		{
			"sentinel compares by local write time",
			ServerTimestamp(ts),
			Map(
				Pair(LocalWriteTimeKey, Time(ts)),
				Pair(TypeKey, String(ServerTimestampSentinel)),
			),
			true,
		},
		{
			"sentinel never equals plain map",
			ServerTimestamp(ts),
			Map(Pair("a", Int(1))),
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.left, tt.right); got != tt.want {
				t.Errorf("Equal(%s, %s) = %v, want %v", tt.left, tt.right, got, tt.want)
			}
			if got := Equal(tt.right, tt.left); got != tt.want {
				t.Errorf("Equal(%s, %s) = %v, want %v (asymmetric)", tt.right, tt.left, got, tt.want)
			}
		})
	}
}

func TestTypeOrder(t *testing.T) {
	ordered := []Value{
		Null(),
		Bool(false),
		Int(1),
		Time(Timestamp{Seconds: 1}),
		ServerTimestamp(Timestamp{Seconds: 1}),
		String("a"),
		Bytes([]byte{1}),
		Reference("projects/p/databases/d/documents/c/doc"),
		Geo(1, 2),
		Array(),
		Map(Pair("a", Int(1))),
	}
	for i := 1; i < len(ordered); i++ {
		if TypeOrder(ordered[i-1]) >= TypeOrder(ordered[i]) {
			t.Errorf("TypeOrder(%s) = %d not below TypeOrder(%s) = %d",
				ordered[i-1], TypeOrder(ordered[i-1]), ordered[i], TypeOrder(ordered[i]))
		}
	}

	if got := TypeOrder(Double(1.5)); got != TypeOrderNumber {
		t.Errorf("TypeOrder(double) = %d, want number", got)
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name  string
		left  Value
		right Value
		want  int
	}{
		{"across type orders", Bool(true), Int(-1000), -1},
		{"bool", Bool(false), Bool(true), -1},
		{"int", Int(1), Int(2), -1},
		{"mixed int double", Int(1), Double(1.5), -1},
		{"mixed equal", Int(1), Double(1.0), 0},
		{"nan smallest number", Double(math.NaN()), Double(math.Inf(-1)), -1},
		{"timestamps", Time(Timestamp{Seconds: 1, Nanos: 2}), Time(Timestamp{Seconds: 1, Nanos: 3}), -1},
		{"strings", String("a"), String("b"), -1},
		{"bytes prefix", Bytes([]byte{1}), Bytes([]byte{1, 0}), -1},
		{
			"references segment-wise",
			Reference("projects/p/databases/d/documents/c/a"),
			Reference("projects/p/databases/d/documents/c/b"),
			-1,
		},
		{"geo lat first", Geo(1, 9), Geo(2, 0), -1},
		{"geo lng second", Geo(1, 1), Geo(1, 2), -1},
		{"arrays elementwise", Array(Int(1), Int(3)), Array(Int(1), Int(4)), -1},
		{"arrays length", Array(Int(1)), Array(Int(1), Int(0)), -1},
		{
			"maps sorted key walk",
			Map(Pair("b", Int(2)), Pair("a", Int(1))),
			Map(Pair("a", Int(1)), Pair("b", Int(3))),
			-1,
		},
		{
			"maps equal regardless of order",
			Map(Pair("b", Int(2)), Pair("a", Int(1))),
			Map(Pair("a", Int(1)), Pair("b", Int(2))),
			0,
		},
		{
			"sentinels by local write time",
			ServerTimestamp(Timestamp{Seconds: 1}),
			ServerTimestamp(Timestamp{Seconds: 2}),
			-1,
		},
		{
			"sentinel sorts between timestamp and string",
			ServerTimestamp(Timestamp{Seconds: 1 << 40}),
			String(""),
			-1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.left, tt.right); got != tt.want {
				t.Errorf("Compare(%s, %s) = %d, want %d", tt.left, tt.right, got, tt.want)
			}
			if got, want := Compare(tt.right, tt.left), -tt.want; got != want {
				t.Errorf("Compare(%s, %s) = %d, want %d (not antisymmetric)", tt.right, tt.left, got, want)
			}
		})
	}
}

func TestCanonicalString(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"null", Null(), "null"},
		{"bool", Bool(true), "true"},
		{"int", Int(-42), "-42"},
		{"double", Double(1.5), "1.5"},
		{"timestamp", Time(Timestamp{Seconds: 3, Nanos: 9}), "time(3,9)"},
		{"string", String("abc"), "abc"},
		{"bytes upper hex", Bytes([]byte{0xDE, 0xAD}), "DEAD"},
		{"geo", Geo(1.5, -2.5), "geo(1.5,-2.5)"},
		{"array", Array(Int(1), String("x")), "[1,x]"},
		{"empty map", Map(), "{}"},
		{
			"map keys sorted",
			Map(Pair("b", Int(2)), Pair("a", Int(1))),
			"{a:1,b:2}",
		},
		{
			"nested",
			Map(Pair("m", Map(Pair("k", Array(Bool(false)))))),
			"{m:{k:[false]}}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
