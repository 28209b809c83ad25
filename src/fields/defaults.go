package fields

import "reflect"

// Default describes a field's default value: either a literal carried in the
// declaration, or a zero-argument producer invoked when the default is
// resolved. The zero Default means the field has no default.
type Default struct {
	value    interface{}
	producer func() interface{}
}

// Literal wraps a plain default value.
func Literal(value interface{}) Default {
	return Default{value: value}
}

// Computed wraps a producer that yields the default value on demand.
func Computed(producer func() interface{}) Default {
	return Default{producer: producer}
}

// Value returns the literal default without invoking a producer. Computed
// defaults have no literal and yield nil.
func (d Default) Value() interface{} {
	return d.value
}

// Resolve yields the default value, invoking the producer for Computed
// defaults.
func (d Default) Resolve() interface{} {
	if d.producer != nil {
		return d.producer()
	}
	return d.value
}

// Falsy reports whether the default is an unset or zero-like literal.
// Computed defaults never count as falsy. Documents consult this as the
// gate for default resolution.
func (d Default) Falsy() bool {
	if d.producer != nil {
		return false
	}
	return falsyValue(d.value)
}

// falsyValue mirrors a loose emptiness test: nil, zero numbers, false,
// empty strings, and empty containers all count as falsy.
func falsyValue(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	default:
		return rv.IsZero()
	}
}
