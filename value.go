package veritest

import (
	"fmt"
	"reflect"
)

// Value is an optional argument value produced by parameter resolution.
// The zero Value is the no-value marker: a resolver deliberately supplied
// nothing. Whether that is legal for a given parameter depends on the
// parameter's declared type, not on the value itself.
type Value struct {
	v       any
	present bool
}

// ValueOf wraps v as a present value. A present nil is still present:
// it carries nil as the payload (e.g. a typed nil pointer).
func ValueOf(v any) Value {
	return Value{v: v, present: true}
}

// NoValue returns the no-value marker.
func NoValue() Value {
	return Value{}
}

// IsPresent reports whether a value was supplied at all.
func (v Value) IsPresent() bool {
	return v.present
}

// Get returns the payload, or nil for the no-value marker.
func (v Value) Get() any {
	return v.v
}

// TypeName returns the runtime type name of the payload, or "none" for the
// no-value marker or a present untyped nil. Used in diagnostics.
func (v Value) TypeName() string {
	if !v.present || v.v == nil {
		return "none"
	}
	return reflect.TypeOf(v.v).String()
}

func (v Value) String() string {
	if !v.present {
		return "<no value>"
	}
	return fmt.Sprintf("%v", v.v)
}
