// Package callable provides descriptors for constructors and methods
// targeted for dynamic invocation with resolved arguments.
//
// A Callable is an ordered sequence of Parameter descriptors plus the
// underlying func. Descriptors are built by the introspection constructors
// (ForFunc, ForConstructor, ForMethod) and are immutable afterwards; the
// resolution core only consumes them and never performs raw reflection of
// its own.
//
// TypeRef carries the primitive-vs-reference distinction: a primitive type
// is one whose Go kind cannot hold an absent value. The distinction decides
// whether the no-value marker is a legal resolved result for a parameter.
package callable
