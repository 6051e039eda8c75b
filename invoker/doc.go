// Package invoker implements dynamic invocation of described callables
// with per-parameter resolution through pluggable resolvers.
//
// Four entry points (constructor, constructor with outer instance, plain
// func, method on a target) converge on one resolution routine. For each
// formal parameter, in declaration order:
//
//  1. Every registered resolver's Supports predicate is consulted.
//  2. Zero matches fail with a no-resolver diagnostic; more than one fails
//     with a competing-resolvers diagnostic listing every competitor in
//     registration order.
//  3. The single match's Resolve produces the value, which is validated
//     against the declared type before being stored in its argument slot.
//
// Failures raised by a resolver are caught and wrapped once; an
// already-typed diagnostic is never wrapped a second time. Resolution is
// all-or-nothing: the callable runs only after every slot is filled, and
// its own failures pass through verbatim, outside the resolution taxonomy.
package invoker
