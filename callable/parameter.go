package callable

import (
	"fmt"
	"reflect"

	"github.com/veritest/veritest"
)

// TypeRef describes a parameter's declared type.
type TypeRef struct {
	rt reflect.Type
}

// TypeFor returns the TypeRef for a compile-time type.
func TypeFor[T any]() TypeRef {
	return TypeRef{rt: reflect.TypeOf((*T)(nil)).Elem()}
}

// TypeOf wraps an already-introspected reflect.Type.
func TypeOf(rt reflect.Type) TypeRef {
	return TypeRef{rt: rt}
}

// Reflect returns the underlying reflect.Type.
func (t TypeRef) Reflect() reflect.Type {
	return t.rt
}

// Name returns the declared type's name for diagnostics.
func (t TypeRef) Name() string {
	if t.rt == nil {
		return "<invalid>"
	}
	return t.rt.String()
}

// Primitive reports whether the declared type cannot hold an absent value.
// Nilable kinds (pointer, interface, slice, map, chan, func) are the
// reference types for which the no-value marker is legal.
func (t TypeRef) Primitive() bool {
	if t.rt == nil {
		return false
	}
	switch t.rt.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return false
	default:
		return true
	}
}

// AssignableFrom reports whether a resolved value is acceptable for this
// declared type. The no-value marker (and a present nil) is acceptable only
// when the type is non-primitive.
func (t TypeRef) AssignableFrom(v veritest.Value) bool {
	if t.rt == nil {
		return false
	}
	if !v.IsPresent() || v.Get() == nil {
		return !t.Primitive()
	}
	return reflect.TypeOf(v.Get()).AssignableTo(t.rt)
}

// Parameter describes one formal parameter of a Callable. The back-reference
// to the enclosing callable is non-owning and used only for diagnostics.
type Parameter struct {
	owner *Callable
	typ   TypeRef
	name  string
	index int
}

// Index returns the parameter's position in the declaration, zero-based.
func (p *Parameter) Index() int {
	return p.index
}

// Name returns the declared parameter name, or "argN" when unknown.
func (p *Parameter) Name() string {
	if p.name == "" {
		return fmt.Sprintf("arg%d", p.index)
	}
	return p.name
}

// Type returns the declared type.
func (p *Parameter) Type() TypeRef {
	return p.typ
}

// Callable returns the enclosing callable.
func (p *Parameter) Callable() *Callable {
	return p.owner
}

// String renders "name type" for diagnostics.
func (p *Parameter) String() string {
	return p.Name() + " " + p.typ.Name()
}
