package callable

import (
	"reflect"
	"strings"

	"github.com/veritest/veritest"
	"github.com/veritest/veritest/errors"
)

// Kind distinguishes what a Callable stands for. Resolution is identical
// for all kinds; the kind only affects which invoker entry points accept
// the callable and how the signature renders.
type Kind int

const (
	KindFunc Kind = iota
	KindConstructor
	KindMethod
)

func (k Kind) String() string {
	switch k {
	case KindConstructor:
		return "constructor"
	case KindMethod:
		return "method"
	default:
		return "func"
	}
}

var errType = reflect.TypeOf((*error)(nil)).Elem()

// Callable describes a constructor or method targeted for dynamic
// invocation with resolved arguments. Immutable once built.
type Callable struct {
	fn       reflect.Value
	recvType reflect.Type
	name     string
	params   []*Parameter
	kind     Kind
}

// Kind returns what the callable stands for.
func (c *Callable) Kind() Kind {
	return c.kind
}

// Name returns the callable's qualified name.
func (c *Callable) Name() string {
	return c.name
}

// Parameters returns the formal parameters in declaration order. The
// receiver of a method is not a parameter; it is the invocation target.
func (c *Callable) Parameters() []*Parameter {
	return c.params
}

// NumParameters returns the number of formal parameters.
func (c *Callable) NumParameters() int {
	return len(c.params)
}

// String renders the full signature for diagnostics, e.g.
// "func (Repo) Find(id int, opts *Options) (*Row, error)".
func (c *Callable) String() string {
	var b strings.Builder
	b.WriteString("func ")
	if c.recvType != nil {
		b.WriteByte('(')
		b.WriteString(c.recvType.String())
		b.WriteString(") ")
	}
	b.WriteString(c.name)
	b.WriteByte('(')
	for i, p := range c.params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteByte(')')

	ft := c.fn.Type()
	switch ft.NumOut() {
	case 0:
	case 1:
		b.WriteByte(' ')
		b.WriteString(ft.Out(0).String())
	default:
		b.WriteString(" (")
		for i := 0; i < ft.NumOut(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(ft.Out(i).String())
		}
		b.WriteByte(')')
	}
	return b.String()
}

// Call invokes the underlying func with the assembled argument vector.
// args must have one slot per formal parameter; absent slots become the
// declared type's zero value. For methods, target supplies the receiver.
//
// A trailing non-nil error result is the callable's own failure and is
// returned verbatim, never reclassified into the resolution taxonomy.
// Otherwise the first result (if any) is returned.
func (c *Callable) Call(target veritest.Value, args []veritest.Value) (any, error) {
	if len(args) != len(c.params) {
		return nil, errors.New(errors.PhaseInvoke, errors.KindInvalidInput).
			Callable(c.String()).
			Detail("argument vector has %d slots, callable declares %d parameters", len(args), len(c.params)).
			Build()
	}

	in := make([]reflect.Value, 0, len(args)+1)

	if c.recvType != nil {
		rv, err := c.receiverValue(target)
		if err != nil {
			return nil, err
		}
		in = append(in, rv)
	}

	for i, a := range args {
		pt := c.params[i].typ.rt
		if !a.IsPresent() || a.Get() == nil {
			in = append(in, reflect.Zero(pt))
			continue
		}
		av := reflect.ValueOf(a.Get())
		if !av.Type().AssignableTo(pt) {
			return nil, errors.New(errors.PhaseInvoke, errors.KindInvalidInput).
				Parameter(c.params[i].String()).
				Callable(c.String()).
				Detail("argument of type [%s] is not assignable", av.Type()).
				Build()
		}
		in = append(in, av)
	}

	out := c.fn.Call(in)

	n := len(out)
	if n > 0 && out[n-1].Type() == errType {
		if !out[n-1].IsNil() {
			return nil, out[n-1].Interface().(error)
		}
		out = out[:n-1]
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0].Interface(), nil
}

func (c *Callable) receiverValue(target veritest.Value) (reflect.Value, error) {
	if !target.IsPresent() || target.Get() == nil {
		return reflect.Zero(c.recvType), nil
	}
	tv := reflect.ValueOf(target.Get())
	if !tv.Type().AssignableTo(c.recvType) {
		return reflect.Value{}, errors.New(errors.PhaseInvoke, errors.KindInvalidInput).
			Callable(c.String()).
			Detail("target of type [%s] is not assignable to receiver [%s]", tv.Type(), c.recvType).
			Build()
	}
	return tv, nil
}
