// Package juggle coerces dynamically typed values into one of six target
// types using a fixed table of heuristic rules.
//
// The targets are addressed by canonical short names: "bool", "int", "float",
// "str", "arr" and "obj". The long forms "boolean", "integer", "double",
// "string", "array" and "object" are accepted everywhere a name is.
//
//	r, err := juggle.CastTo("int", "123.45") // 123
//	r, err = juggle.CastTo("arr", 1.5)       // []any{1, ".", 5}
//	juggle.Castable("test")                  // ["str" "arr"]
//
// A conversion that the rules do not allow is not an error: it yields
// [Failure], a [Result] that is distinct from every successful value,
// including successful nil, zero and empty results. The only error is
// [ErrUnknownCaster], returned when a name resolves to no registered caster.
//
// Casters are stored in a [Registry]. The built-in casters live in a default
// tier that is materialized on first use; [Registry.LoadCaster] adds to a
// custom tier that shadows the default one for the same name. Built-in
// casters delegate to each other through their registry, so overriding one
// of them changes every conversion that passes through it.
//
// Package-level functions operate on a process-wide registry returned by
// [Default].
package juggle
