package juggle

import (
	"reflect"
	"strings"
)

// Object is a generic record with named fields kept in insertion order. It
// is what arrays become when cast to "obj".
type Object struct {
	fields *Map
}

// NewObject returns an Object without fields.
func NewObject() *Object {
	return &Object{fields: NewMap()}
}

// Set assigns a field, appending it if it did not exist.
func (o *Object) Set(name string, v any) {
	o.fields.Set(name, v)
}

// Get returns the value of a field.
func (o *Object) Get(name string) (any, bool) {
	return o.fields.Get(name)
}

// Has reports whether the field exists.
func (o *Object) Has(name string) bool {
	_, ok := o.fields.Get(name)
	return ok
}

// Len returns the number of fields.
func (o *Object) Len() int {
	return o.fields.Len()
}

// Names returns the field names in insertion order.
func (o *Object) Names() []string {
	names := make([]string, 0, o.fields.Len())
	for p := o.fields.Oldest(); p != nil; p = p.Next() {
		names = append(names, p.Key)
	}

	return names
}

// MarshalJSON encodes the object as a JSON object with fields in order.
func (o *Object) MarshalJSON() ([]byte, error) {
	return o.fields.MarshalJSON()
}

// decompose enumerates the public fields of an object into a Map. It fails
// for values that have no structure to enumerate and for object graphs that
// refer back to themselves.
func decompose(v any) (*Map, bool) {
	return walker{}.decompose(v)
}

// visit identifies a pointer, map or slice on the current decomposition path.
type visit struct {
	typ reflect.Type
	ptr uintptr
	n   int
}

// walker holds the reference values being decomposed. Entries are removed on
// the way back up, so a value shared by two fields is not a cycle.
type walker map[visit]struct{}

// enter records rv on the path. It reports false if rv is already on it.
func (w walker) enter(rv reflect.Value) (visit, bool) {
	var k visit
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map:
		if rv.IsNil() {
			return k, true
		}
		k = visit{typ: rv.Type(), ptr: rv.Pointer()}
	case reflect.Slice:
		if rv.Len() == 0 {
			return k, true
		}
		k = visit{typ: rv.Type(), ptr: rv.Pointer(), n: rv.Len()}
	default:
		return k, true
	}

	if _, seen := w[k]; seen {
		return k, false
	}
	w[k] = struct{}{}

	return k, true
}

func (w walker) leave(k visit) {
	delete(w, k)
}

func (w walker) decompose(v any) (*Map, bool) {
	rv := reflect.ValueOf(v)
	k, ok := w.enter(rv)
	if !ok {
		return nil, false
	}
	defer w.leave(k)

	if o, ok := v.(*Object); ok {
		m := NewMap()
		for p := o.fields.Oldest(); p != nil; p = p.Next() {
			ev, ok := w.export(p.Value)
			if !ok {
				return nil, false
			}
			m.Set(p.Key, ev)
		}

		return m, true
	}

	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return NewMap(), true
		}
		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Struct {
		return nil, false
	}

	m := NewMap()
	if !w.structFields(rv, m) {
		return nil, false
	}

	return m, true
}

func (w walker) structFields(rv reflect.Value, m *Map) bool {
	rt := rv.Type()
	for i := range rt.NumField() {
		f := rt.Field(i)
		name, skip := fieldName(f)
		if skip {
			continue
		}

		fv := rv.Field(i)
		if f.Anonymous && name == "" && f.IsExported() {
			for fv.Kind() == reflect.Pointer && !fv.IsNil() {
				fv = fv.Elem()
			}
			if fv.Kind() == reflect.Struct {
				if !w.structFields(fv, m) {
					return false
				}
				continue
			}
		}
		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}

		ev, ok := w.export(fv.Interface())
		if !ok {
			return false
		}
		m.Set(name, ev)
	}

	return true
}

// fieldName returns the json tag name of f, or "" if it has none.
func fieldName(f reflect.StructField) (string, bool) {
	tag, ok := f.Tag.Lookup("json")
	if !ok {
		return "", false
	}
	if tag == "-" {
		return "", true
	}

	name, _, _ := strings.Cut(tag, ",")

	return name, false
}

// export converts nested objects into maps so a decomposed object contains
// arrays and scalars only. Opaque values are kept as they are.
func (w walker) export(v any) (any, bool) {
	nv, tag := TagOf(v)
	switch tag {
	case TagObject:
		if k := reflect.ValueOf(nv).Kind(); k != reflect.Struct && k != reflect.Pointer {
			return nv, true
		}
		m, ok := w.decompose(nv)
		if !ok {
			return nil, false
		}

		return m, true
	case TagArray:
		k, ok := w.enter(reflect.ValueOf(v))
		if !ok {
			return nil, false
		}
		defer w.leave(k)

		switch a := nv.(type) {
		case []any:
			out := make([]any, len(a))
			for i, e := range a {
				if out[i], ok = w.export(e); !ok {
					return nil, false
				}
			}

			return out, true
		case *Map:
			out := NewMap()
			for p := a.Oldest(); p != nil; p = p.Next() {
				ev, ok := w.export(p.Value)
				if !ok {
					return nil, false
				}
				out.Set(p.Key, ev)
			}

			return out, true
		}
	}

	return nv, true
}

// objectFromMap builds an Object from an associative array. Associative
// arrays nested anywhere below it, including inside lists, become objects. It
// fails if the array contains itself.
func objectFromMap(m *Map) (*Object, bool) {
	v, ok := walker{}.object(m)
	if !ok {
		return nil, false
	}

	return v.(*Object), true
}

// object converts the associative arrays within v to objects. Lists become
// []any.
func (w walker) object(v any) (any, bool) {
	switch v.(type) {
	case *Map, []any:
	default:
		return v, true
	}

	k, ok := w.enter(reflect.ValueOf(v))
	if !ok {
		return nil, false
	}
	defer w.leave(k)

	switch a := v.(type) {
	case *Map:
		if !isList(a) {
			o := NewObject()
			for p := a.Oldest(); p != nil; p = p.Next() {
				ev, ok := w.object(p.Value)
				if !ok {
					return nil, false
				}
				o.Set(p.Key, ev)
			}

			return o, true
		}

		out := make([]any, 0, a.Len())
		for p := a.Oldest(); p != nil; p = p.Next() {
			ev, ok := w.object(p.Value)
			if !ok {
				return nil, false
			}
			out = append(out, ev)
		}

		return out, true
	case []any:
		out := make([]any, len(a))
		for i, e := range a {
			if out[i], ok = w.object(e); !ok {
				return nil, false
			}
		}

		return out, true
	}

	return v, true
}
