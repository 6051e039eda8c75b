// Package veritest provides the parameter-resolution core of a test
// execution engine: given a described callable (a constructor or method) and
// an ordered set of pluggable parameter resolvers, it decides which single
// resolver is authoritative for each formal parameter, invokes it, validates
// the result against the declared type, and performs the call with the
// assembled arguments.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	veritest/            Root package with the optional Value type
//	├── callable/        Callable and parameter descriptors, introspection
//	├── extension/       Resolver contract, registry, execution context
//	├── invoker/         Per-parameter resolution and dynamic invocation
//	├── engine/          Suite driver running invocations across workers
//	└── errors/          Structured diagnostics for resolution failures
//
// # Quick Start
//
// Describe a callable, register resolvers, invoke:
//
//	reg := extension.NewRegistry()
//	if err := reg.Register(extension.Supply(42)); err != nil {
//	    log.Fatal(err)
//	}
//
//	c, err := callable.ForFunc("greet", func(n int) string {
//	    return fmt.Sprintf("hello %d", n)
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	iv := invoker.New(extension.NewContext("demo"), reg)
//	out, err := iv.InvokeStatic(c)
//	fmt.Println(out, err) // "hello 42" <nil>
//
// # Resolution Rules
//
// Exactly one registered resolver must claim each parameter. Zero matches
// and multiple matches are hard failures carrying the parameter description
// and the callable's full signature; ambiguity is never broken by
// registration order. A resolver may return the no-value marker, which is
// legal only for parameters whose declared type can hold an absent value.
//
// # Thread Safety
//
// Registry and Context are safe for concurrent use across invocations.
// A single invocation resolves its parameters strictly sequentially, in
// declaration order.
package veritest
