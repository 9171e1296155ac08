package juggle

var std = New()

// Default returns the process-wide registry used by the package-level
// functions.
func Default() *Registry {
	return std
}

// LoadCaster registers fn under name in the [Default] registry.
func LoadCaster(name string, fn Caster) {
	std.LoadCaster(name, fn)
}

// LoadCasters registers every caster of m in the [Default] registry.
func LoadCasters(m *Casters) {
	std.LoadCasters(m)
}

// CastTo converts v to the type called name using the [Default] registry.
func CastTo(name string, v any) (Result, error) {
	return std.CastTo(name, v)
}

// CanCastTo reports whether v can be cast to the type called name using the
// [Default] registry.
func CanCastTo(name string, v any) (bool, error) {
	return std.CanCastTo(name, v)
}

// Castable returns the built-in type names v can be cast to using the
// [Default] registry.
func Castable(v any) []string {
	return std.Castable(v)
}

// MustCastTo is like [CastTo] but panics on an unknown caster or a failed
// conversion.
func MustCastTo(name string, v any) any {
	return std.MustCastTo(name, v)
}

// Bind returns a function that casts to name using the [Default] registry.
func Bind(name string) func(v any) (Result, error) {
	return std.Bind(name)
}
