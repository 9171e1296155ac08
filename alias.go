package juggle

import "slices"

// Canonical names of the built-in casters.
const (
	TypeBool  = "bool"
	TypeInt   = "int"
	TypeStr   = "str"
	TypeArr   = "arr"
	TypeFloat = "float"
	TypeObj   = "obj"
)

// builtins is the order in which Castable probes the built-in casters.
var builtins = [...]string{TypeBool, TypeInt, TypeStr, TypeArr, TypeFloat, TypeObj}

var aliases = map[string]string{
	"boolean": TypeBool,
	"integer": TypeInt,
	"string":  TypeStr,
	"array":   TypeArr,
	"double":  TypeFloat,
	"object":  TypeObj,
}

// Resolve maps a long type name to its canonical short form. Any other name
// is returned unchanged.
func Resolve(name string) string {
	if short, ok := aliases[name]; ok {
		return short
	}

	return name
}

// Builtins returns the canonical names of the built-in casters in the order
// [Registry.Castable] probes them.
func Builtins() []string {
	return slices.Clone(builtins[:])
}
