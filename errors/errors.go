package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Phase indicates where in an invocation the error occurred
type Phase string

const (
	PhaseResolve      Phase = "resolve"      // resolver selection and dispatch
	PhaseValidate     Phase = "validate"     // declared-type validation
	PhaseInvoke       Phase = "invoke"       // argument assembly and call setup
	PhaseRegistration Phase = "registration" // resolver registration
	PhaseRun          Phase = "run"          // suite execution
)

// Kind categorizes the error
type Kind string

const (
	KindNoResolver     Kind = "no_resolver"
	KindCompeting      Kind = "competing_resolvers"
	KindResolverFailed Kind = "resolver_failed"
	KindTypeMismatch   Kind = "type_mismatch"
	KindInvalidInput   Kind = "invalid_input"
	KindNotFound       Kind = "not_found"
	KindRegistration   Kind = "registration"
)

// Error is the structured diagnostic type used throughout the library.
// Parameter and Callable carry the textual description and full signature
// the surrounding engine surfaces in its report.
type Error struct {
	Cause     error
	Phase     Phase
	Kind      Kind
	Parameter string
	Callable  string
	Resolver  string
	Resolvers []string
	Detail    string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Resolver != "" {
		b.WriteString(": resolver [")
		b.WriteString(e.Resolver)
		b.WriteByte(']')
	}

	if e.Parameter != "" {
		if e.Resolver != "" {
			b.WriteString(" for")
		} else {
			b.WriteByte(':')
		}
		b.WriteString(" parameter [")
		b.WriteString(e.Parameter)
		b.WriteByte(']')
	}

	if e.Callable != "" {
		b.WriteString(" in [")
		b.WriteString(e.Callable)
		b.WriteByte(']')
	}

	if len(e.Resolvers) > 0 {
		b.WriteString(": ")
		b.WriteString(strings.Join(e.Resolvers, ", "))
	}

	if e.Detail != "" {
		b.WriteString(" - ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// AsResolution returns the typed diagnostic inside err, if any. Resolution
// failures must not be wrapped a second time; callers use this to pass an
// already-typed diagnostic through unchanged.
func AsResolution(err error) (*Error, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Parameter sets the parameter description
func (b *Builder) Parameter(p string) *Builder {
	b.err.Parameter = p
	return b
}

// Callable sets the callable signature
func (b *Builder) Callable(c string) *Builder {
	b.err.Callable = c
	return b
}

// Resolver sets the offending resolver's identity
func (b *Builder) Resolver(r string) *Builder {
	b.err.Resolver = r
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for the resolution taxonomy

// NoResolver is returned when zero registered resolvers claim a parameter.
func NoResolver(parameter, callable string) *Error {
	return &Error{
		Phase:     PhaseResolve,
		Kind:      KindNoResolver,
		Parameter: parameter,
		Callable:  callable,
		Detail:    "no parameter resolver registered",
	}
}

// Competing is returned when more than one resolver claims a parameter.
// The resolvers slice lists every competitor in the order they were
// supplied; ambiguity is never broken silently.
func Competing(parameter, callable string, resolvers []string) *Error {
	return &Error{
		Phase:     PhaseResolve,
		Kind:      KindCompeting,
		Parameter: parameter,
		Callable:  callable,
		Resolvers: resolvers,
		Detail:    fmt.Sprintf("%d competing parameter resolvers", len(resolvers)),
	}
}

// ResolveFailed wraps an unexpected failure raised by a resolver's
// Supports or Resolve call. Already-typed diagnostics must be propagated
// unchanged instead; see AsResolution.
func ResolveFailed(parameter, callable string, cause error) *Error {
	return &Error{
		Phase:     PhaseResolve,
		Kind:      KindResolverFailed,
		Parameter: parameter,
		Callable:  callable,
		Detail:    "failed to resolve parameter",
		Cause:     cause,
	}
}

// MissingPrimitive reports the no-value marker resolved for a parameter
// whose declared type cannot hold an absent value.
func MissingPrimitive(resolver, parameter, callable, typeName string) *Error {
	return &Error{
		Phase:     PhaseValidate,
		Kind:      KindTypeMismatch,
		Resolver:  resolver,
		Parameter: parameter,
		Callable:  callable,
		Detail:    fmt.Sprintf("resolved no value, but a primitive of type [%s] is required", typeName),
	}
}

// WrongType reports a resolved value not assignable to the declared type.
// actualType is the value's runtime type name, or "none".
func WrongType(resolver, actualType, parameter, callable, requiredType string) *Error {
	return &Error{
		Phase:     PhaseValidate,
		Kind:      KindTypeMismatch,
		Resolver:  resolver,
		Parameter: parameter,
		Callable:  callable,
		Detail: fmt.Sprintf("resolved a value of type [%s], but a value assignment compatible with [%s] is required",
			actualType, requiredType),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// Registration creates a resolver registration error
func Registration(resolver string, cause error) *Error {
	return &Error{
		Phase:    PhaseRegistration,
		Kind:     KindRegistration,
		Resolver: resolver,
		Detail:   "register resolver",
		Cause:    cause,
	}
}
