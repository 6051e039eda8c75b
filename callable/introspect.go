package callable

import (
	"reflect"

	"github.com/veritest/veritest/errors"
)

// Names attaches declared parameter names to a descriptor built by ForFunc,
// ForConstructor or ForMethod. Go reflection does not retain parameter
// names, so the introspection layer supplies them; unnamed parameters
// render as argN.
func (c *Callable) Names(names ...string) *Callable {
	for i, n := range names {
		if i >= len(c.params) {
			break
		}
		c.params[i].name = n
	}
	return c
}

// ForFunc builds a descriptor for a plain (static) func. Every input of fn
// is a formal parameter subject to resolution.
func ForFunc(name string, fn any) (*Callable, error) {
	return describe(name, fn, KindFunc, false)
}

// ForConstructor builds a descriptor for a constructor func. Constructors
// must produce an instance: at least one non-error result is required.
func ForConstructor(name string, fn any) (*Callable, error) {
	c, err := describe(name, fn, KindConstructor, false)
	if err != nil {
		return nil, err
	}
	ft := c.fn.Type()
	if ft.NumOut() == 0 || (ft.NumOut() == 1 && ft.Out(0) == errType) {
		return nil, errors.InvalidInput(errors.PhaseInvoke,
			"constructor must return an instance")
	}
	return c, nil
}

// ForMethod builds a descriptor from a method expression (e.g. Repo.Find).
// The first input is the receiver: it becomes the invocation target, not a
// resolved parameter.
func ForMethod(name string, methodExpr any) (*Callable, error) {
	return describe(name, methodExpr, KindMethod, true)
}

func describe(name string, fn any, kind Kind, hasReceiver bool) (*Callable, error) {
	if name == "" {
		return nil, errors.InvalidInput(errors.PhaseInvoke, "callable name cannot be empty")
	}
	if fn == nil {
		return nil, errors.InvalidInput(errors.PhaseInvoke, "callable func cannot be nil")
	}
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func {
		return nil, errors.New(errors.PhaseInvoke, errors.KindInvalidInput).
			Detail("callable must be a func, got %s", rv.Kind()).
			Build()
	}
	ft := rv.Type()
	if ft.IsVariadic() {
		return nil, errors.InvalidInput(errors.PhaseInvoke,
			"variadic callables are not supported")
	}
	if hasReceiver && ft.NumIn() == 0 {
		return nil, errors.InvalidInput(errors.PhaseInvoke,
			"method expression must declare a receiver")
	}

	c := &Callable{
		fn:   rv,
		name: name,
		kind: kind,
	}

	start := 0
	if hasReceiver {
		c.recvType = ft.In(0)
		start = 1
	}
	for i := start; i < ft.NumIn(); i++ {
		c.params = append(c.params, &Parameter{
			owner: c,
			index: i - start,
			typ:   TypeOf(ft.In(i)),
		})
	}
	return c, nil
}
