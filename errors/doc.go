// Package errors provides structured diagnostic types for the
// parameter-resolution core.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (error category). The Error type carries the parameter description, the
// callable's full signature, and the identity of the resolver(s) involved,
// so the surrounding engine can surface the message directly in a report.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseResolve, errors.KindResolverFailed).
//		Parameter("n int").
//		Callable("func demo(n int)").
//		Cause(cause).
//		Build()
//
// Or use convenience constructors for the resolution taxonomy:
//
//	err := errors.NoResolver("n int", sig)
//	err := errors.Competing("n int", sig, []string{"pkg.A", "pkg.B"})
//	err := errors.WrongType("pkg.A", "string", "n int", sig, "int")
//
// All errors implement the standard error interface and support
// errors.Is/As. AsResolution detects an already-typed diagnostic anywhere
// in a chain; such diagnostics are never wrapped twice.
package errors
