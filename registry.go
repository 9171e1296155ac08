package juggle

import (
	"fmt"
	"slices"
	"sync"

	"github.com/go-logr/logr"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Caster converts v, whose classification is tag, into its target type. It
// returns [Failure] when the conversion is not possible.
//
// v is always in the normalized form produced by [TagOf].
type Caster func(v any, tag Tag) Result

// Casters is an ordered name to caster mapping for [Registry.LoadCasters].
type Casters = orderedmap.OrderedMap[string, Caster]

// NewCasters returns an empty [Casters] mapping.
func NewCasters() *Casters {
	return orderedmap.New[string, Caster]()
}

// Registry holds the casters addressed by type name.
//
// The custom tier is consulted first. The default tier, holding the built-in
// casters, is created on first use. A Registry is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	custom *Casters

	once     sync.Once
	defaults map[string]Caster

	log logr.Logger
}

type options struct {
	casters *Casters
	log     logr.Logger
}

// Option configures a [Registry] created by [New].
type Option func(*options)

// WithCaster registers fn under name in the custom tier of the new registry.
func WithCaster(name string, fn Caster) Option {
	return func(o *options) {
		o.casters.Set(name, fn)
	}
}

// WithCasters registers every caster of m in order.
func WithCasters(m *Casters) Option {
	return func(o *options) {
		for p := m.Oldest(); p != nil; p = p.Next() {
			o.casters.Set(p.Key, p.Value)
		}
	}
}

// WithLogger sets the logger used for registry events. The default discards
// everything.
func WithLogger(log logr.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// New returns a Registry with only the built-in casters, plus whatever the
// options register.
func New(opts ...Option) *Registry {
	o := options{casters: NewCasters(), log: logr.Discard()}
	for _, opt := range opts {
		opt(&o)
	}

	r := &Registry{custom: NewCasters(), log: o.log}
	r.LoadCasters(o.casters)

	return r
}

// LoadCaster registers fn under the canonical form of name, replacing any
// custom or built-in caster of that name for all later calls. It panics if
// name is empty or fn is nil.
func (r *Registry) LoadCaster(name string, fn Caster) {
	if name == "" {
		panic("juggle: empty caster name")
	}
	if fn == nil {
		panic("juggle: nil caster for " + name)
	}

	name = Resolve(name)

	r.mu.Lock()
	_, replaced := r.custom.Set(name, fn)
	r.mu.Unlock()

	switch {
	case replaced:
		r.log.V(1).Info("replaced custom caster", "name", name)
	case isBuiltin(name):
		r.log.V(1).Info("overrode built-in caster", "name", name)
	default:
		r.log.V(1).Info("loaded caster", "name", name)
	}
}

// LoadCasters registers every caster of m in iteration order, so later
// entries win when two names resolve to the same canonical name.
func (r *Registry) LoadCasters(m *Casters) {
	for p := m.Oldest(); p != nil; p = p.Next() {
		r.LoadCaster(p.Key, p.Value)
	}
}

// Caster returns the caster registered for name.
func (r *Registry) Caster(name string) (Caster, error) {
	name = Resolve(name)

	r.mu.RLock()
	fn, ok := r.custom.Get(name)
	r.mu.RUnlock()
	if ok {
		return fn, nil
	}

	r.once.Do(r.loadDefaults)
	if fn, ok := r.defaults[name]; ok {
		return fn, nil
	}

	return nil, &UnknownCasterError{Name: name}
}

// Names returns every name that resolves to a caster: built-ins first, then
// custom names in registration order.
func (r *Registry) Names() []string {
	names := Builtins()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for p := r.custom.Oldest(); p != nil; p = p.Next() {
		if !isBuiltin(p.Key) {
			names = append(names, p.Key)
		}
	}

	return names
}

// CastTo converts v to the type called name. It returns [Failure] when the
// conversion is not possible and an [*UnknownCasterError] when no caster is
// registered for name.
func (r *Registry) CastTo(name string, v any) (Result, error) {
	fn, err := r.Caster(name)
	if err != nil {
		return Failure, err
	}

	nv, tag := TagOf(v)

	return fn(nv, tag), nil
}

// CanCastTo reports whether [Registry.CastTo] succeeds for name and v.
func (r *Registry) CanCastTo(name string, v any) (bool, error) {
	res, err := r.CastTo(name, v)
	if err != nil {
		return false, err
	}

	return res.OK(), nil
}

// Castable returns the built-in type names v can be cast to, in the order
// bool, int, str, arr, float, obj. Custom casters are not consulted unless
// they override a built-in.
func (r *Registry) Castable(v any) []string {
	var out []string
	for _, name := range builtins {
		if ok, _ := r.CanCastTo(name, v); ok {
			out = append(out, name)
		}
	}

	return out
}

// Bind returns a function equivalent to calling CastTo with name. The name
// is resolved on every call, so casters loaded after Bind are honoured.
func (r *Registry) Bind(name string) func(v any) (Result, error) {
	return func(v any) (Result, error) {
		return r.CastTo(name, v)
	}
}

// MustCastTo is like CastTo but panics if no caster is registered for name
// or the conversion fails.
func (r *Registry) MustCastTo(name string, v any) any {
	res, err := r.CastTo(name, v)
	if err != nil {
		panic(err)
	}
	if !res.OK() {
		panic(fmt.Errorf("%w: %s to %s", ErrNotCastable, tagOnly(v), Resolve(name)))
	}

	return res.Value()
}

// delegate casts through the registry on behalf of a built-in caster. The
// built-in names always resolve, so an error cannot occur here.
func (r *Registry) delegate(name string, v any) Result {
	res, err := r.CastTo(name, v)
	if err != nil {
		return Failure
	}

	return res
}

func (r *Registry) loadDefaults() {
	r.defaults = map[string]Caster{
		TypeBool:  r.toBool,
		TypeInt:   r.toInt,
		TypeFloat: r.toFloat,
		TypeStr:   r.toStr,
		TypeArr:   r.toArr,
		TypeObj:   r.toObj,
	}

	r.log.V(1).Info("materialized default casters", "count", len(r.defaults))
}

func isBuiltin(name string) bool {
	return slices.Contains(builtins[:], name)
}

func tagOnly(v any) Tag {
	_, tag := TagOf(v)
	return tag
}
