package core

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/tmont/argopt/errors"
)

// Enum is implemented by named types whose value is one of a closed,
// ordered set of member names. The stored value is the matched
// member's index within EnumMembers. Member matching is
// case-insensitive; text matching no member leaves the field's
// current value untouched.
type Enum interface {
	EnumMembers() []string
}

var enumType = reflect.TypeOf((*Enum)(nil)).Elem()

// coercibleKind reports whether the binder can populate a scalar
// value of the given type.
func coercibleKind(t reflect.Type) bool {
	if t.Implements(enumType) {
		k := t.Kind()
		return k >= reflect.Int && k <= reflect.Int64
	}
	switch t.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// coerceBool maps raw text to a boolean. It never fails: "1", "true"
// and "yes" (any case) are true, everything else, including empty
// text, is false.
func coerceBool(raw string) bool {
	switch strings.ToLower(raw) {
	case "1", "true", "yes":
		return true
	}
	return false
}

// coerce converts raw into a value of v's type and stores it in v.
// Conversion failures are user-input errors attributed to the named
// field; they leave v unchanged.
func coerce(v reflect.Value, field, raw, delim string) error {
	if v.Type().Implements(enumType) {
		members := v.Interface().(Enum).EnumMembers()
		for i, member := range members {
			if strings.EqualFold(member, raw) {
				v.SetInt(int64(i))
				break
			}
		}
		return nil
	}

	switch v.Kind() {
	case reflect.String:
		v.SetString(raw)
	case reflect.Bool:
		v.SetBool(coerceBool(raw))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, v.Type().Bits())
		if err != nil {
			return errors.NewFormatError(field, raw)
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, v.Type().Bits())
		if err != nil {
			return errors.NewFormatError(field, raw)
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, v.Type().Bits())
		if err != nil {
			return errors.NewFormatError(field, raw)
		}
		v.SetFloat(f)
	case reflect.Slice:
		return coerceSlice(v, field, raw, delim)
	default:
		return errors.NewUnsupportedField(field, v.Type().String())
	}
	return nil
}

// coerceSlice splits raw on the literal delimiter and coerces each
// segment by the element type. If any segment fails, the whole
// assignment fails and no elements are committed.
func coerceSlice(v reflect.Value, field, raw, delim string) error {
	parts := strings.Split(raw, delim)
	out := reflect.MakeSlice(v.Type(), len(parts), len(parts))
	for i, part := range parts {
		if err := coerce(out.Index(i), field, part, ""); err != nil {
			return errors.NewFormatError(field, raw)
		}
	}
	v.Set(out)
	return nil
}
