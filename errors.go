package juggle

import (
	"errors"
	"fmt"
)

// ErrUnknownCaster indicates that a type name resolves to no caster in
// either tier of a registry.
//
// It is always wrapped in an [UnknownCasterError].
var ErrUnknownCaster = errors.New("juggle: no caster registered")

// ErrNotCastable is the panic value used by [MustCastTo] when the conversion
// yields [Failure].
var ErrNotCastable = errors.New("juggle: value cannot be cast")

// UnknownCasterError carries the name that failed to resolve.
// Use errors.Is(err, ErrUnknownCaster) or errors.As to inspect it.
type UnknownCasterError struct {
	Name string
}

// Error implements error.
func (e *UnknownCasterError) Error() string {
	return fmt.Sprintf("juggle: could not find a caster for %q", e.Name)
}

// Unwrap returns [ErrUnknownCaster].
func (e *UnknownCasterError) Unwrap() error { return ErrUnknownCaster }

var _ error = (*UnknownCasterError)(nil)
