package juggle

// builtin casts through a built-in name. Built-in names always resolve, so
// the error of CastTo is never set.
func builtin(name string, v any) Result {
	res, _ := std.CastTo(name, v)
	return res
}

// CastToBool casts v to "bool" using the [Default] registry.
func CastToBool(v any) Result { return builtin(TypeBool, v) }

// CastToInt casts v to "int" using the [Default] registry.
func CastToInt(v any) Result { return builtin(TypeInt, v) }

// CastToFloat casts v to "float" using the [Default] registry.
func CastToFloat(v any) Result { return builtin(TypeFloat, v) }

// CastToStr casts v to "str" using the [Default] registry.
func CastToStr(v any) Result { return builtin(TypeStr, v) }

// CastToArr casts v to "arr" using the [Default] registry.
func CastToArr(v any) Result { return builtin(TypeArr, v) }

// CastToObj casts v to "obj" using the [Default] registry.
func CastToObj(v any) Result { return builtin(TypeObj, v) }

// CastToBoolean is [CastToBool].
func CastToBoolean(v any) Result { return CastToBool(v) }

// CastToInteger is [CastToInt].
func CastToInteger(v any) Result { return CastToInt(v) }

// CastToDouble is [CastToFloat].
func CastToDouble(v any) Result { return CastToFloat(v) }

// CastToString is [CastToStr].
func CastToString(v any) Result { return CastToStr(v) }

// CastToArray is [CastToArr].
func CastToArray(v any) Result { return CastToArr(v) }

// CastToObject is [CastToObj].
func CastToObject(v any) Result { return CastToObj(v) }

// Scalar is the set of Go types [To] can produce.
type Scalar interface {
	bool | int | float64 | string
}

// To casts v to the built-in type matching T using the [Default] registry.
// The second result is false when the conversion fails, or when a caster
// loaded over the built-in name produced a value that is not a T.
func To[T Scalar](v any) (T, bool) {
	var zero T

	var name string
	switch any(zero).(type) {
	case bool:
		name = TypeBool
	case int:
		name = TypeInt
	case float64:
		name = TypeFloat
	case string:
		name = TypeStr
	}

	return as[T](builtin(name, v))
}
