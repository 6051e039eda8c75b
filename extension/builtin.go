package extension

import (
	"github.com/veritest/veritest"
	"github.com/veritest/veritest/callable"
)

// Supply returns a resolver claiming every parameter whose declared type
// can hold a value of type T, and resolving it to the fixed value v.
func Supply[T any](v T) Resolver {
	return supplyResolver[T]{value: v}
}

// SupplyFunc returns a resolver like Supply, producing the value on demand
// from the execution context at each resolution.
func SupplyFunc[T any](fn func(ctx *Context) (T, error)) Resolver {
	return funcResolver[T]{fn: fn}
}

type supplyResolver[T any] struct {
	value T
}

func (r supplyResolver[T]) Supports(p *callable.Parameter, _ veritest.Value, _ *Context) bool {
	return claims[T](p)
}

func (r supplyResolver[T]) Resolve(*callable.Parameter, veritest.Value, *Context) (veritest.Value, error) {
	return veritest.ValueOf(r.value), nil
}

type funcResolver[T any] struct {
	fn func(ctx *Context) (T, error)
}

func (r funcResolver[T]) Supports(p *callable.Parameter, _ veritest.Value, _ *Context) bool {
	return claims[T](p)
}

func (r funcResolver[T]) Resolve(_ *callable.Parameter, _ veritest.Value, ctx *Context) (veritest.Value, error) {
	v, err := r.fn(ctx)
	if err != nil {
		return veritest.NoValue(), err
	}
	return veritest.ValueOf(v), nil
}

func claims[T any](p *callable.Parameter) bool {
	return callable.TypeFor[T]().Reflect().AssignableTo(p.Type().Reflect())
}

// RunInfo describes the current run to the callable under invocation.
type RunInfo struct {
	ID   string
	Name string
	Tags []string
}

// RunInfoResolver supplies a *RunInfo built from the execution context for
// parameters declared as *RunInfo.
type RunInfoResolver struct{}

func (RunInfoResolver) Supports(p *callable.Parameter, _ veritest.Value, _ *Context) bool {
	return p.Type().Reflect() == callable.TypeFor[*RunInfo]().Reflect()
}

func (RunInfoResolver) Resolve(_ *callable.Parameter, _ veritest.Value, ctx *Context) (veritest.Value, error) {
	return veritest.ValueOf(&RunInfo{
		ID:   ctx.ID(),
		Name: ctx.Name(),
		Tags: ctx.Tags(),
	}), nil
}
