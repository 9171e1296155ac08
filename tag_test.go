package juggle

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagOf(t *testing.T) {
	type name string
	type count uint8

	var nilMap map[string]int
	var nilSlice []int
	var nilIface error
	ch := make(chan int)

	cases := []struct {
		name string
		in   any
		tag  Tag
		want any
	}{
		{"nil", nil, TagNull, nil},
		{"nilMap", nilMap, TagNull, nil},
		{"nilIface", nilIface, TagNull, nil},
		{"nilObject", (*Object)(nil), TagNull, nil},
		{"bool", true, TagBool, true},
		{"int", 3, TagInt, 3},
		{"int64", int64(-3), TagInt, -3},
		{"namedUint", count(7), TagInt, 7},
		{"float32", float32(0.5), TagFloat, 0.5},
		{"namedString", name("n"), TagString, "n"},
		{"bytes", []byte("ab"), TagString, "ab"},
		{"jsonInt", json.Number("12"), TagInt, 12},
		{"jsonFloat", json.Number("1.5"), TagFloat, 1.5},
		{"ptrInt", new(int), TagInt, 0},
		{"hugeUint", uint64(math.MaxUint64), TagFloat, float64(math.MaxUint64)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, tag := TagOf(tc.in)
			assert.Equal(t, tc.tag, tag)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("nilSlice", func(t *testing.T) {
		got, tag := TagOf(nilSlice)
		assert.Equal(t, TagArray, tag)
		assert.Equal(t, []any{}, got)
	})

	t.Run("opaque", func(t *testing.T) {
		_, tag := TagOf(ch)
		assert.Equal(t, TagObject, tag, "chan")

		_, tag = TagOf(complex(1, 2))
		assert.Equal(t, TagObject, tag, "complex")
	})

	t.Run("map", func(t *testing.T) {
		got, tag := TagOf(map[string]int{"b": 2, "a": 1})
		require.Equal(t, TagArray, tag)
		assert.Equal(t, [][2]any{{"a", 1}, {"b", 2}}, pairs(got.(*Map)))
	})

	t.Run("numericMapKeys", func(t *testing.T) {
		got, _ := TagOf(map[any]int{"x": 3, 10: 2, 2: 1})
		assert.Equal(t, [][2]any{{"2", 1}, {"10", 2}, {"x", 3}}, pairs(got.(*Map)))
	})
}

func TestTagString(t *testing.T) {
	want := map[Tag]string{
		TagNull:   "NULL",
		TagBool:   "boolean",
		TagInt:    "integer",
		TagFloat:  "double",
		TagString: "string",
		TagArray:  "array",
		TagObject: "object",
		Tag(99):   "unknown",
	}

	for tag, s := range want {
		assert.Equal(t, s, tag.String())
	}
}

func TestIsList(t *testing.T) {
	assert.True(t, isList([]any{1}))
	assert.True(t, isList(NewMap()))
	assert.True(t, isList(MapOf("0", 1, "1", 2)))

	assert.False(t, isList(MapOf("1", 1)))
	assert.False(t, isList(MapOf("0", 1, "x", 2)))
}
