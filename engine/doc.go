// Package engine runs suites of tests whose parameters are resolved
// through the invoker. It is a thin driver, not a discovery or lifecycle
// system: tests are registered explicitly and executed across a worker
// pool, each under its own child execution context.
//
// A result distinguishes a test that could not run (parameter resolution
// failed) from a test that ran and failed; the surrounding tooling reports
// the two differently.
package engine
