package invoker

import (
	"github.com/veritest/veritest"
	"github.com/veritest/veritest/callable"
	"github.com/veritest/veritest/errors"
	"github.com/veritest/veritest/extension"
)

// validateResolved enforces declared-type compatibility for a resolved
// value. A missing value (the no-value marker, or a present nil) is legal
// only for non-primitive declared types; everything else must be directly
// assignable.
func validateResolved(p *callable.Parameter, v veritest.Value, c *callable.Callable, r extension.Resolver) *errors.Error {
	t := p.Type()
	if t.AssignableFrom(v) {
		return nil
	}

	if (!v.IsPresent() || v.Get() == nil) && t.Primitive() {
		return errors.MissingPrimitive(extension.NameOf(r), p.String(), c.String(), t.Name())
	}
	return errors.WrongType(extension.NameOf(r), v.TypeName(), p.String(), c.String(), t.Name())
}
