package juggle

import (
	"fmt"
	"strings"
)

// The built-in casters. Every cross-type step goes through r.delegate so a
// caster loaded over a built-in name takes part in these chains.

func (r *Registry) toBool(v any, tag Tag) Result {
	switch tag {
	case TagBool:
		return Success(v)
	case TagInt:
		return Success(v.(int) != 0)
	case TagFloat:
		return Success(v.(float64) != 0)
	case TagString:
		s := v.(string)
		if isBoolLiteral(s) {
			return Success(strings.EqualFold(s, "true"))
		}
		if isNumeric(s) {
			if i, ok := r.delegate(TypeInt, s).Int(); ok {
				return Success(i != 0)
			}
		}
	case TagArray:
		switch arrayLen(v) {
		case 0:
			return Success(false)
		case 1:
			return r.delegate(TypeBool, firstValue(v))
		}
	case TagObject:
		return r.viaString(TypeBool, v)
	case TagNull:
		return Success(false)
	}

	return Failure
}

func (r *Registry) toInt(v any, tag Tag) Result {
	switch tag {
	case TagBool:
		if v.(bool) {
			return Success(1)
		}
		return Success(0)
	case TagInt:
		return Success(v)
	case TagString:
		s := v.(string)
		if s == "" {
			return Success(0)
		}
		if isNumeric(s) {
			if f, ok := r.delegate(TypeFloat, s).Float(); ok {
				return roundResult(f)
			}
			return Failure
		}
		if isBoolLiteral(s) {
			if b := r.delegate(TypeBool, s); b.OK() {
				return r.delegate(TypeInt, b.Value())
			}
		}
	case TagArray:
		switch arrayLen(v) {
		case 0:
			return Success(0)
		case 1:
			return r.delegate(TypeInt, firstValue(v))
		}
	case TagFloat:
		return roundResult(v.(float64))
	case TagObject:
		return r.viaString(TypeInt, v)
	case TagNull:
		return Success(0)
	}

	return Failure
}

func (r *Registry) toFloat(v any, tag Tag) Result {
	switch tag {
	case TagBool:
		if v.(bool) {
			return Success(1.0)
		}
		return Success(0.0)
	case TagInt:
		return Success(float64(v.(int)))
	case TagString:
		s := v.(string)
		if s == "" {
			return Success(0.0)
		}
		if isNumeric(s) {
			if f, ok := parseNumeric(s); ok {
				return Success(f)
			}
			return Failure
		}
		if isBoolLiteral(s) {
			if b := r.delegate(TypeBool, s); b.OK() {
				return r.delegate(TypeFloat, b.Value())
			}
		}
	case TagArray:
		switch arrayLen(v) {
		case 0:
			return Success(0.0)
		case 1:
			return r.delegate(TypeFloat, firstValue(v))
		}
	case TagFloat:
		return Success(v)
	case TagObject:
		return r.viaString(TypeFloat, v)
	case TagNull:
		return Success(0.0)
	}

	return Failure
}

func (r *Registry) toStr(v any, tag Tag) Result {
	switch tag {
	case TagBool:
		if v.(bool) {
			return Success("true")
		}
		return Success("false")
	case TagInt:
		return Success(formatInt(v.(int)))
	case TagString:
		return Success(v)
	case TagArray:
		switch arrayLen(v) {
		case 0:
			return Success("")
		case 1:
			return r.delegate(TypeStr, firstValue(v))
		}

		var sb strings.Builder
		for _, e := range arrayValues(v) {
			s, ok := r.delegate(TypeStr, e).Str()
			if !ok {
				return Failure
			}
			sb.WriteString(s)
		}

		return Success(sb.String())
	case TagFloat:
		return Success(formatFloat(v.(float64)))
	case TagObject:
		if s, ok := v.(fmt.Stringer); ok {
			return Success(s.String())
		}
		if a := r.delegate(TypeArr, v); a.OK() {
			return r.delegate(TypeStr, a.Value())
		}
	case TagNull:
		return Success("")
	}

	return Failure
}

func (r *Registry) toArr(v any, tag Tag) Result {
	switch tag {
	case TagInt, TagFloat:
		s, ok := r.delegate(TypeStr, v).Str()
		if !ok {
			return Failure
		}

		out := make([]any, 0, len(s))
		for _, c := range s {
			if c >= '0' && c <= '9' {
				out = append(out, int(c-'0'))
			} else {
				out = append(out, string(c))
			}
		}

		return Success(out)
	case TagString:
		s := v.(string)
		out := make([]any, 0, len(s))
		for _, c := range s {
			out = append(out, string(c))
		}

		return Success(out)
	case TagArray:
		return Success(v)
	case TagObject:
		if m, ok := decompose(v); ok {
			return Success(m)
		}
	case TagNull:
		return Success([]any{})
	}

	// booleans never become arrays
	return Failure
}

func (r *Registry) toObj(v any, tag Tag) Result {
	switch tag {
	case TagBool, TagInt, TagString, TagFloat:
		if a := r.delegate(TypeArr, v); a.OK() {
			return r.delegate(TypeObj, a.Value())
		}
	case TagArray:
		if m, ok := v.(*Map); ok && !isList(m) {
			if o, ok := objectFromMap(m); ok {
				return Success(o)
			}
		}
	case TagObject:
		return Success(v)
	case TagNull:
		return Success(NewObject())
	}

	return Failure
}

// viaString converts an object through its string form, or through its array
// form when it has no string form.
func (r *Registry) viaString(target string, v any) Result {
	if s := r.delegate(TypeStr, v); s.OK() {
		return r.delegate(target, s.Value())
	}
	if a := r.delegate(TypeArr, v); a.OK() {
		return r.delegate(target, a.Value())
	}

	return Failure
}

func roundResult(f float64) Result {
	if i, ok := roundToInt(f); ok {
		return Success(i)
	}

	return Failure
}
