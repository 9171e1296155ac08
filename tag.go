package juggle

import (
	"cmp"
	"encoding/json"
	"reflect"
	"slices"

	"github.com/spf13/cast"
	"go.dw1.io/safemath"
)

// Tag classifies the runtime type of a value handed to a [Caster].
type Tag uint8

const (
	TagNull Tag = iota
	TagBool
	TagInt
	TagFloat
	TagString
	TagArray
	TagObject
)

var tagNames = [...]string{
	TagNull:   "NULL",
	TagBool:   "boolean",
	TagInt:    "integer",
	TagFloat:  "double",
	TagString: "string",
	TagArray:  "array",
	TagObject: "object",
}

// String returns the long type name of t.
func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}

	return "unknown"
}

// TagOf classifies v and returns it in normalized form: every integer kind as
// int, every float kind as float64, string kinds and []byte as string, slices
// and arrays as []any, and Go maps as a *Map with sorted keys. Objects are
// returned unchanged.
func TagOf(v any) (any, Tag) {
	switch x := v.(type) {
	case nil:
		return nil, TagNull
	case bool:
		return x, TagBool
	case int:
		return x, TagInt
	case float64:
		return x, TagFloat
	case string:
		return x, TagString
	case []byte:
		return string(x), TagString
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return normalizeInt(i)
		}
		if f, err := x.Float64(); err == nil {
			return f, TagFloat
		}

		return x.String(), TagString
	case []any:
		return x, TagArray
	case *Map:
		if x == nil {
			return nil, TagNull
		}

		return x, TagArray
	case *Object:
		if x == nil {
			return nil, TagNull
		}

		return x, TagObject
	}

	return tagReflect(reflect.ValueOf(v))
}

func tagReflect(rv reflect.Value) (any, Tag) {
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool(), TagBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return normalizeInt(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return normalizeInt(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float(), TagFloat
	case reflect.String:
		return rv.String(), TagString
	case reflect.Slice:
		if rv.IsNil() {
			return []any{}, TagArray
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return string(rv.Bytes()), TagString
		}
		fallthrough
	case reflect.Array:
		list := make([]any, rv.Len())
		for i := range list {
			list[i] = rv.Index(i).Interface()
		}

		return list, TagArray
	case reflect.Map:
		if rv.IsNil() {
			return nil, TagNull
		}

		return mapFromReflect(rv), TagArray
	case reflect.Pointer:
		if rv.IsNil() {
			return nil, TagNull
		}
		if rv.Elem().Kind() == reflect.Struct {
			return rv.Interface(), TagObject
		}

		return TagOf(rv.Elem().Interface())
	case reflect.Interface:
		if rv.IsNil() {
			return nil, TagNull
		}

		return TagOf(rv.Elem().Interface())
	case reflect.Invalid:
		return nil, TagNull
	}

	// structs and kinds that cannot be decomposed (func, chan, complex)
	return rv.Interface(), TagObject
}

// normalizeInt narrows any integer to int. Values that do not fit are
// classified as floats.
func normalizeInt[I safemath.Integer](i I) (any, Tag) {
	n, err := safemath.ConvertAny[int](i)
	if err != nil {
		return float64(i), TagFloat
	}

	return n, TagInt
}

type mapKey struct {
	text string
	num  float64
	isN  bool
	key  reflect.Value
}

func mapFromReflect(rv reflect.Value) *Map {
	keys := make([]mapKey, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		kv, tag := TagOf(k.Interface())
		mk := mapKey{key: k, text: cast.ToString(kv)}
		if tag == TagInt || tag == TagFloat {
			mk.num, mk.isN = cast.ToFloat64(kv), true
		}
		keys = append(keys, mk)
	}

	// numeric keys first in numeric order, then the rest lexically
	slices.SortFunc(keys, func(a, b mapKey) int {
		switch {
		case a.isN && b.isN:
			return cmp.Compare(a.num, b.num)
		case a.isN:
			return -1
		case b.isN:
			return 1
		}

		return cmp.Compare(a.text, b.text)
	})

	m := NewMap()
	for _, k := range keys {
		m.Set(k.text, rv.MapIndex(k.key).Interface())
	}

	return m
}
