package juggle

import "fmt"

// Result is the outcome of a cast: either a converted value or [Failure].
//
// A successful Result may hold nil or a zero value; use [Result.OK] to tell
// success from failure.
type Result struct {
	value any
	ok    bool
}

// Failure is the Result of a conversion the rules do not allow.
var Failure = Result{}

// Success wraps a converted value.
func Success(v any) Result {
	return Result{value: v, ok: true}
}

// OK reports whether the conversion succeeded.
func (r Result) OK() bool { return r.ok }

// Value returns the converted value, or nil for [Failure].
func (r Result) Value() any { return r.value }

// Get returns the converted value and whether the conversion succeeded.
func (r Result) Get() (any, bool) { return r.value, r.ok }

// Bool returns the value as a bool.
func (r Result) Bool() (bool, bool) { return as[bool](r) }

// Int returns the value as an int.
func (r Result) Int() (int, bool) { return as[int](r) }

// Float returns the value as a float64.
func (r Result) Float() (float64, bool) { return as[float64](r) }

// Str returns the value as a string.
func (r Result) Str() (string, bool) { return as[string](r) }

// List returns the value as a list array.
func (r Result) List() ([]any, bool) { return as[[]any](r) }

// Map returns the value as an associative array.
func (r Result) Map() (*Map, bool) { return as[*Map](r) }

// Object returns the value as an Object.
func (r Result) Object() (*Object, bool) { return as[*Object](r) }

// String implements fmt.Stringer for debugging output.
func (r Result) String() string {
	if !r.ok {
		return "<failure>"
	}

	return fmt.Sprintf("%v", r.value)
}

func as[T any](r Result) (T, bool) {
	if !r.ok {
		var zero T
		return zero, false
	}

	v, ok := r.value.(T)

	return v, ok
}
