package extension

import (
	"github.com/google/uuid"
)

// Context is the execution context forwarded to every resolver call. The
// resolution core never inspects it; resolvers use it to look up run
// information and to share state through the Store.
//
// Context is safe for concurrent use across invocations of different
// callables.
type Context struct {
	parent *Context
	store  *Store
	id     string
	name   string
	tags   []string
}

// NewContext creates a root context with a unique run ID.
func NewContext(name string, tags ...string) *Context {
	return &Context{
		id:    uuid.NewString(),
		name:  name,
		tags:  tags,
		store: newStore(nil),
	}
}

// Child creates a nested context. Its store reads fall back to this
// context's store; writes stay local to the child.
func (c *Context) Child(name string, tags ...string) *Context {
	return &Context{
		parent: c,
		id:     uuid.NewString(),
		name:   name,
		tags:   append(append([]string(nil), c.tags...), tags...),
		store:  newStore(c.store),
	}
}

// ID returns the unique identifier of this context.
func (c *Context) ID() string {
	return c.id
}

// Name returns the display name, typically the test's name.
func (c *Context) Name() string {
	return c.name
}

// Tags returns the tags attached to this context, outermost first.
func (c *Context) Tags() []string {
	return c.tags
}

// Parent returns the enclosing context, or nil at the root.
func (c *Context) Parent() *Context {
	return c.parent
}

// Store returns the hierarchical state store for this context.
func (c *Context) Store() *Store {
	return c.store
}
