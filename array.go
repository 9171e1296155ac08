package juggle

import (
	"strconv"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Map is an associative array: string keys in insertion order.
//
// Lists are represented as []any. Both are classified as [TagArray].
type Map = orderedmap.OrderedMap[string, any]

// NewMap returns an empty [Map].
func NewMap() *Map {
	return orderedmap.New[string, any]()
}

// MapOf builds a [Map] from alternating key, value arguments. It panics if a
// key is not a string or a value is missing.
func MapOf(kv ...any) *Map {
	if len(kv)%2 != 0 {
		panic("juggle: MapOf called with an odd number of arguments")
	}

	m := orderedmap.New[string, any](len(kv) / 2)
	for i := 0; i < len(kv); i += 2 {
		m.Set(kv[i].(string), kv[i+1])
	}

	return m
}

// arrayLen returns the number of elements of a normalized array.
func arrayLen(v any) int {
	switch a := v.(type) {
	case []any:
		return len(a)
	case *Map:
		return a.Len()
	}

	return 0
}

// arrayValues returns the elements of a normalized array in order.
func arrayValues(v any) []any {
	switch a := v.(type) {
	case []any:
		return a
	case *Map:
		out := make([]any, 0, a.Len())
		for p := a.Oldest(); p != nil; p = p.Next() {
			out = append(out, p.Value)
		}

		return out
	}

	return nil
}

// firstValue returns the first element of a non-empty normalized array.
func firstValue(v any) any {
	switch a := v.(type) {
	case []any:
		return a[0]
	case *Map:
		return a.Oldest().Value
	}

	return nil
}

// isList reports whether the array has implicit sequential keys, i.e. it is a
// []any or a Map keyed exactly "0", "1", ... in order. Empty arrays are lists.
func isList(v any) bool {
	m, ok := v.(*Map)
	if !ok {
		return true
	}

	i := 0
	for p := m.Oldest(); p != nil; p = p.Next() {
		if p.Key != strconv.Itoa(i) {
			return false
		}
		i++
	}

	return true
}
