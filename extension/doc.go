// Package extension defines the contract between the resolution core and
// pluggable parameter resolvers, and the collaborators the core borrows
// per invocation: the ordered registry view and the execution context.
//
// A Resolver answers two questions: can it supply a value for a parameter
// (Supports), and what is that value (Resolve). The core makes zero
// assumptions about a resolver's internals beyond this contract.
//
// Registry keeps resolvers in registration order; that order is what
// ambiguity diagnostics report. Registries nest, with parent resolvers
// visible (and listed) first.
//
// Context carries a unique run ID, display name, tags, and a hierarchical
// namespaced Store through which resolvers may share state. The core only
// forwards the context, never inspects it.
package extension
