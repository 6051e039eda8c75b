package invoker

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/veritest/veritest"
	"github.com/veritest/veritest/callable"
	"github.com/veritest/veritest/errors"
	"github.com/veritest/veritest/extension"
)

// Invoker performs dynamic invocation of a described callable, resolving
// every formal parameter through the registered parameter resolvers.
//
// An Invoker is stateless aside from the execution context and registry
// view it was constructed with; independent invocations may run
// concurrently, while a single invocation resolves its parameters strictly
// sequentially, in declaration order.
type Invoker struct {
	ctx    *extension.Context
	source extension.Source
	log    *zap.Logger
}

// Option configures an Invoker.
type Option func(*Invoker)

// WithLogger sets the logger used to trace successful resolutions.
// The default is a nop logger.
func WithLogger(l *zap.Logger) Option {
	return func(iv *Invoker) {
		if l != nil {
			iv.log = l
		}
	}
}

// New creates an Invoker over the given execution context and registry
// view. Both are borrowed for the duration of each invocation.
func New(ctx *extension.Context, source extension.Source, opts ...Option) *Invoker {
	iv := &Invoker{
		ctx:    ctx,
		source: source,
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(iv)
	}
	return iv
}

// Invoke resolves all constructor parameters and constructs a new instance.
func (iv *Invoker) Invoke(ctor *callable.Callable) (any, error) {
	if err := requireKind(ctor, callable.KindConstructor); err != nil {
		return nil, err
	}
	args, err := iv.resolveParameters(ctor, veritest.NoValue(), nil)
	if err != nil {
		return nil, err
	}
	return ctor.Call(veritest.NoValue(), args)
}

// InvokeWithOuter constructs a nested instance: slot 0 is pinned to
// outerInstance without consulting any resolver, and resolution begins at
// slot 1.
func (iv *Invoker) InvokeWithOuter(ctor *callable.Callable, outerInstance any) (any, error) {
	if err := requireKind(ctor, callable.KindConstructor); err != nil {
		return nil, err
	}
	if ctor.NumParameters() == 0 {
		return nil, errors.New(errors.PhaseInvoke, errors.KindInvalidInput).
			Callable(ctor.String()).
			Detail("outer instance supplied but the constructor declares no parameters").
			Build()
	}
	outer := veritest.ValueOf(outerInstance)
	args, err := iv.resolveParameters(ctor, veritest.NoValue(), &outer)
	if err != nil {
		return nil, err
	}
	return ctor.Call(veritest.NoValue(), args)
}

// InvokeStatic invokes a plain func with no target.
func (iv *Invoker) InvokeStatic(fn *callable.Callable) (any, error) {
	if err := requireKind(fn, callable.KindFunc); err != nil {
		return nil, err
	}
	args, err := iv.resolveParameters(fn, veritest.NoValue(), nil)
	if err != nil {
		return nil, err
	}
	return fn.Call(veritest.NoValue(), args)
}

// InvokeMethod invokes a method on target, with the target visible to
// resolvers. target may be a plain value, nil, or already a
// veritest.Value.
func (iv *Invoker) InvokeMethod(m *callable.Callable, target any) (any, error) {
	if err := requireKind(m, callable.KindMethod); err != nil {
		return nil, err
	}
	tv := targetValue(target)
	args, err := iv.resolveParameters(m, tv, nil)
	if err != nil {
		return nil, err
	}
	return m.Call(tv, args)
}

func targetValue(target any) veritest.Value {
	switch t := target.(type) {
	case nil:
		return veritest.NoValue()
	case veritest.Value:
		return t
	default:
		return veritest.ValueOf(t)
	}
}

func requireKind(c *callable.Callable, want callable.Kind) *errors.Error {
	if c == nil {
		return errors.InvalidInput(errors.PhaseInvoke, "callable cannot be nil")
	}
	if c.Kind() != want {
		return errors.New(errors.PhaseInvoke, errors.KindInvalidInput).
			Callable(c.String()).
			Detail("entry point expects a %s, got a %s", want, c.Kind()).
			Build()
	}
	return nil
}

// resolveParameters fills one slot per formal parameter. When outer is
// non-nil it occupies slot 0 unconditionally. Resolution stops at the
// first failure so later resolvers are never invoked needlessly.
func (iv *Invoker) resolveParameters(c *callable.Callable, target veritest.Value, outer *veritest.Value) ([]veritest.Value, error) {
	params := c.Parameters()
	values := make([]veritest.Value, len(params))
	start := 0

	if outer != nil {
		values[0] = *outer
		start = 1
	}

	for i := start; i < len(params); i++ {
		v, err := iv.resolveParameter(params[i], c, target)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// resolveParameter applies the selection rule for a single parameter:
// exactly one registered resolver must claim it. Untyped failures coming
// out of a resolver are wrapped once; an already-typed diagnostic is
// propagated unchanged.
func (iv *Invoker) resolveParameter(p *callable.Parameter, c *callable.Callable, target veritest.Value) (veritest.Value, error) {
	v, err := iv.tryResolve(p, c, target)
	if err == nil {
		return v, nil
	}
	if typed, ok := errors.AsResolution(err); ok {
		return veritest.NoValue(), typed
	}
	return veritest.NoValue(), errors.ResolveFailed(p.String(), c.String(), err)
}

func (iv *Invoker) tryResolve(p *callable.Parameter, c *callable.Callable, target veritest.Value) (_ veritest.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("resolver panic: %v", r)
		}
	}()

	var matches []extension.Resolver
	for _, r := range iv.source.Resolvers() {
		if r.Supports(p, target, iv.ctx) {
			matches = append(matches, r)
		}
	}

	switch len(matches) {
	case 0:
		return veritest.NoValue(), errors.NoResolver(p.String(), c.String())
	case 1:
	default:
		names := make([]string, len(matches))
		for i, r := range matches {
			names[i] = extension.NameOf(r)
		}
		return veritest.NoValue(), errors.Competing(p.String(), c.String(), names)
	}

	resolver := matches[0]
	value, err := resolver.Resolve(p, target, iv.ctx)
	if err != nil {
		return veritest.NoValue(), err
	}

	if verr := validateResolved(p, value, c, resolver); verr != nil {
		return veritest.NoValue(), verr
	}

	iv.log.Debug("resolved parameter",
		zap.String("resolver", extension.NameOf(resolver)),
		zap.String("value_type", value.TypeName()),
		zap.String("parameter", p.String()),
		zap.String("callable", c.String()),
	)
	return value, nil
}
