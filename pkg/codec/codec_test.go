package codec

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/strata/pkg/model"
)

func TestFromNativeScalars(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want model.Value
	}{
		{"nil", nil, model.Null()},
		{"bool", true, model.Bool(true)},
		{"int", 42, model.Int(42)},
		{"int64", int64(-1), model.Int(-1)},
		{"float64", 1.5, model.Double(1.5)},
		{"json number int", json.Number("7"), model.Int(7)},
		{"json number float", json.Number("2.5"), model.Double(2.5)},
		{"string", "hi", model.String("hi")},
		{"bytes", []byte{1, 2}, model.Bytes([]byte{1, 2})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromNative(tt.in)
			require.NoError(t, err)
			assert.True(t, model.Equal(got, tt.want), "got %s, want %s", got, tt.want)
		})
	}
}

func TestFromNativeTime(t *testing.T) {
	now := time.Date(2024, 3, 9, 10, 0, 0, 123, time.UTC)
	got, err := FromNative(now)
	require.NoError(t, err)
	require.Equal(t, model.KindTimestamp, got.Kind())
	assert.Equal(t, model.TimestampFromTime(now), got.Time())
}

func TestFromNativeMapKeysAreSorted(t *testing.T) {
	got, err := FromNative(map[string]any{"b": 2, "a": 1, "c": 3})
	require.NoError(t, err)
	require.Equal(t, model.KindMap, got.Kind())

	var keys []string
	for _, f := range got.Fields() {
		keys = append(keys, f.Key)
	}
	assert.Equal(t, []string{"a", "b", "c"}, keys)
}

func TestFromNativeRejectsUnsupportedTypes(t *testing.T) {
	_, err := FromNative(struct{ X int }{1})
	assert.Error(t, err)

	_, err = FromNative(map[string]any{"a": make(chan int)})
	assert.ErrorContains(t, err, `field "a"`)
}

func TestToNativeRoundTrip(t *testing.T) {
	original := model.Map(
		model.Pair("name", model.String("ada")),
		model.Pair("age", model.Int(36)),
		model.Pair("scores", model.Array(model.Double(1.5), model.Null())),
		model.Pair("nested", model.Map(model.Pair("ok", model.Bool(true)))),
	)

	back, err := FromNative(ToNative(original))
	require.NoError(t, err)
	assert.True(t, model.Equal(back, original), "round trip changed value: %s", back)
}

func TestYAMLCodecRoundTrip(t *testing.T) {
	in := []byte("name: ada\nnested:\n  count: 3\nlist:\n  - 1\n  - two\n")
	ov, err := YAMLCodec{}.Decode(in)
	require.NoError(t, err)

	name, ok := ov.Get(model.NewFieldPath("name"))
	require.True(t, ok)
	assert.True(t, model.Equal(name, model.String("ada")))

	count, ok := ov.Get(model.NewFieldPath("nested", "count"))
	require.True(t, ok)
	assert.True(t, model.Equal(count, model.Int(3)))

	out, err := YAMLCodec{}.Encode(ov)
	require.NoError(t, err)

	again, err := YAMLCodec{}.Decode(out)
	require.NoError(t, err)
	assert.True(t, ov.Equal(again), "round trip changed tree: %s vs %s", ov, again)
}

func TestYAMLCodecRejectsNonMapping(t *testing.T) {
	_, err := YAMLCodec{}.Decode([]byte("- 1\n- 2\n"))
	assert.Error(t, err)
}

func TestYAMLCodecEmptyDocument(t *testing.T) {
	ov, err := YAMLCodec{}.Decode(nil)
	require.NoError(t, err)
	assert.True(t, ov.Equal(model.NewObjectValue()))
}

func TestJSONCodecPreservesIntegers(t *testing.T) {
	ov, err := JSONCodec{}.Decode([]byte(`{"big": 9007199254740993, "f": 0.5}`))
	require.NoError(t, err)

	big, ok := ov.Get(model.NewFieldPath("big"))
	require.True(t, ok)
	require.Equal(t, model.KindInt, big.Kind())
	assert.Equal(t, int64(9007199254740993), big.Int())

	f, ok := ov.Get(model.NewFieldPath("f"))
	require.True(t, ok)
	assert.Equal(t, model.KindDouble, f.Kind())
}

func TestJSONCodecRoundTrip(t *testing.T) {
	ov := model.NewObjectValue()
	ov.Set(model.NewFieldPath("a", "b"), model.String("x"))
	ov.Set(model.NewFieldPath("n"), model.Int(5))

	out, err := JSONCodec{}.Encode(ov)
	require.NoError(t, err)

	again, err := JSONCodec{}.Decode(out)
	require.NoError(t, err)
	assert.True(t, ov.Equal(again))
}

func TestForExtension(t *testing.T) {
	for _, ext := range []string{".yaml", ".yml", ".json", ".YAML"} {
		_, err := ForExtension(ext)
		assert.NoError(t, err, ext)
	}
	_, err := ForExtension(".md")
	assert.Error(t, err)
}
