package extension

import (
	"strings"
	"testing"

	"github.com/veritest/veritest"
	"github.com/veritest/veritest/callable"
)

type intResolver struct{}

func (intResolver) Supports(p *callable.Parameter, _ veritest.Value, _ *Context) bool {
	return p.Type().Name() == "int"
}

func (intResolver) Resolve(*callable.Parameter, veritest.Value, *Context) (veritest.Value, error) {
	return veritest.ValueOf(42), nil
}

type stringResolver struct{}

func (stringResolver) Supports(p *callable.Parameter, _ veritest.Value, _ *Context) bool {
	return p.Type().Name() == "string"
}

func (stringResolver) Resolve(*callable.Parameter, veritest.Value, *Context) (veritest.Value, error) {
	return veritest.ValueOf("x"), nil
}

func TestRegistry_Order(t *testing.T) {
	reg := NewRegistry()
	for _, r := range []Resolver{intResolver{}, stringResolver{}} {
		if err := reg.Register(r); err != nil {
			t.Fatalf("Register: %v", err)
		}
	}

	got := reg.Resolvers()
	if len(got) != 2 {
		t.Fatalf("Resolvers() returned %d, want 2", len(got))
	}
	if _, ok := got[0].(intResolver); !ok {
		t.Error("registration order not preserved")
	}
}

func TestRegistry_RejectsNil(t *testing.T) {
	if err := NewRegistry().Register(nil); err == nil {
		t.Error("nil resolver should be rejected")
	}
}

func TestRegistry_RejectsDuplicateType(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(intResolver{}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	err := reg.Register(intResolver{})
	if err == nil {
		t.Fatal("duplicate implementation type should be rejected")
	}
	if !strings.Contains(err.Error(), "intResolver") {
		t.Errorf("error %q should name the resolver", err.Error())
	}
}

func TestRegistry_ChildSeesParentFirst(t *testing.T) {
	parent := NewRegistry()
	if err := parent.Register(intResolver{}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	child := parent.NewChild()
	if err := child.Register(stringResolver{}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	got := child.Resolvers()
	if len(got) != 2 {
		t.Fatalf("Resolvers() returned %d, want 2", len(got))
	}
	if _, ok := got[0].(intResolver); !ok {
		t.Error("parent resolvers must come first")
	}
	if len(parent.Resolvers()) != 1 {
		t.Error("child registration leaked into the parent")
	}
}

func TestNameOf(t *testing.T) {
	name := NameOf(intResolver{})
	if !strings.HasSuffix(name, "extension.intResolver") {
		t.Errorf("NameOf() = %q, want fully-qualified type name", name)
	}
	if NameOf(nil) != "<nil>" {
		t.Errorf("NameOf(nil) = %q", NameOf(nil))
	}
	// Pointer and value receivers identify the same implementation.
	if NameOf(&intResolver{}) != name {
		t.Errorf("NameOf(ptr) = %q, want %q", NameOf(&intResolver{}), name)
	}
}
