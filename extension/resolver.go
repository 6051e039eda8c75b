package extension

import (
	"reflect"

	"github.com/veritest/veritest"
	"github.com/veritest/veritest/callable"
)

// Resolver is the capability contract implemented by third-party
// extensions that can supply a value for a specific kind of parameter.
//
// Supports and Resolve receive the invocation target (the no-value marker
// for constructors and static funcs) and the execution context. The core
// treats both operations as opaque, synchronous calls; a resolver may
// mutate the shared context (e.g. caching state).
type Resolver interface {
	// Supports reports whether this resolver can supply a value for p.
	Supports(p *callable.Parameter, target veritest.Value, ctx *Context) bool

	// Resolve produces the value for p. Returning the no-value marker is
	// legal for parameters of non-primitive declared type.
	Resolve(p *callable.Parameter, target veritest.Value, ctx *Context) (veritest.Value, error)
}

// Source is the registry view the invoker consumes: an ordered sequence of
// candidate resolvers. Ordering is the source's responsibility and fixes
// the order competitors are listed in ambiguity diagnostics.
type Source interface {
	Resolvers() []Resolver
}

// NameOf returns the fully-qualified implementation name of a resolver for
// diagnostics, e.g. "github.com/acme/ext.RandomPort".
func NameOf(r Resolver) string {
	if r == nil {
		return "<nil>"
	}
	if n, ok := r.(interface{ ResolverName() string }); ok {
		return n.ResolverName()
	}
	t := reflect.TypeOf(r)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.PkgPath() != "" {
		return t.PkgPath() + "." + t.Name()
	}
	return t.String()
}
