package callable

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/veritest/veritest"
	"github.com/veritest/veritest/errors"
)

type repo struct {
	prefix string
}

func (r repo) Find(id int) string {
	return fmt.Sprintf("%s%d", r.prefix, id)
}

func TestTypeRef_Primitive(t *testing.T) {
	tests := []struct {
		name      string
		typ       TypeRef
		primitive bool
	}{
		{"int", TypeFor[int](), true},
		{"string", TypeFor[string](), true},
		{"bool", TypeFor[bool](), true},
		{"struct", TypeFor[repo](), true},
		{"array", TypeFor[[2]int](), true},
		{"pointer", TypeFor[*repo](), false},
		{"interface", TypeFor[error](), false},
		{"slice", TypeFor[[]byte](), false},
		{"map", TypeFor[map[string]int](), false},
		{"chan", TypeFor[chan int](), false},
		{"func", TypeFor[func()](), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.Primitive(); got != tt.primitive {
				t.Errorf("Primitive() = %v, want %v", got, tt.primitive)
			}
		})
	}
}

func TestTypeRef_AssignableFrom(t *testing.T) {
	tests := []struct {
		name string
		typ  TypeRef
		val  veritest.Value
		ok   bool
	}{
		{"int to int", TypeFor[int](), veritest.ValueOf(42), true},
		{"string to int", TypeFor[int](), veritest.ValueOf("x"), false},
		{"no value to pointer", TypeFor[*repo](), veritest.NoValue(), true},
		{"no value to int", TypeFor[int](), veritest.NoValue(), false},
		{"present nil to interface", TypeFor[error](), veritest.ValueOf(nil), true},
		{"present nil to string", TypeFor[string](), veritest.ValueOf(nil), false},
		{"concrete to interface", TypeFor[fmt.Stringer](), veritest.ValueOf(strings.NewReplacer()), false},
		{"error impl to error", TypeFor[error](), veritest.ValueOf(fmt.Errorf("x")), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.AssignableFrom(tt.val); got != tt.ok {
				t.Errorf("AssignableFrom(%v) = %v, want %v", tt.val, got, tt.ok)
			}
		})
	}
}

func TestForFunc(t *testing.T) {
	c, err := ForFunc("demo", func(a int, b string) string { return b })
	if err != nil {
		t.Fatalf("ForFunc: %v", err)
	}
	if c.NumParameters() != 2 {
		t.Fatalf("NumParameters() = %d, want 2", c.NumParameters())
	}
	if c.Parameters()[1].Type().Name() != "string" {
		t.Errorf("parameter 1 type = %s", c.Parameters()[1].Type().Name())
	}
	if c.Parameters()[0].Callable() != c {
		t.Error("parameter back-reference does not point at the callable")
	}

	c.Names("a", "b")
	want := "func demo(a int, b string) string"
	if got := c.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestForFunc_Invalid(t *testing.T) {
	tests := []struct {
		name string
		fn   any
	}{
		{"nil", nil},
		{"not a func", 42},
		{"variadic", func(xs ...int) {}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ForFunc("demo", tt.fn); err == nil {
				t.Error("expected an error")
			}
		})
	}

	if _, err := ForFunc("", func() {}); err == nil {
		t.Error("empty name should be rejected")
	}
}

func TestForConstructor(t *testing.T) {
	if _, err := ForConstructor("newRepo", func(prefix string) *repo {
		return &repo{prefix: prefix}
	}); err != nil {
		t.Fatalf("ForConstructor: %v", err)
	}

	// A constructor must produce an instance.
	if _, err := ForConstructor("bad", func() {}); err == nil {
		t.Error("resultless constructor should be rejected")
	}
	if _, err := ForConstructor("bad", func() error { return nil }); err == nil {
		t.Error("error-only constructor should be rejected")
	}
}

func TestForMethod(t *testing.T) {
	c, err := ForMethod("repo.Find", repo.Find)
	if err != nil {
		t.Fatalf("ForMethod: %v", err)
	}
	// The receiver is the target, not a parameter.
	if c.NumParameters() != 1 {
		t.Fatalf("NumParameters() = %d, want 1", c.NumParameters())
	}
	if !strings.Contains(c.String(), "(callable.repo)") {
		t.Errorf("signature %q should render the receiver", c.String())
	}

	if _, err := ForMethod("bad", func() {}); err == nil {
		t.Error("receiverless method expression should be rejected")
	}
}

func TestCall(t *testing.T) {
	c, err := ForFunc("join", func(a int, sep string) string {
		return fmt.Sprintf("%d%s", a, sep)
	})
	if err != nil {
		t.Fatalf("ForFunc: %v", err)
	}

	out, err := c.Call(veritest.NoValue(), []veritest.Value{
		veritest.ValueOf(42), veritest.ValueOf("!"),
	})
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if out != "42!" {
		t.Errorf("Call() = %v, want %q", out, "42!")
	}
}

func TestCall_AbsentSlotBecomesZero(t *testing.T) {
	c, err := ForFunc("probe", func(opts *repo) bool { return opts == nil })
	if err != nil {
		t.Fatalf("ForFunc: %v", err)
	}

	out, err := c.Call(veritest.NoValue(), []veritest.Value{veritest.NoValue()})
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if out != true {
		t.Error("absent slot should invoke with the zero value")
	}
}

func TestCall_MethodTarget(t *testing.T) {
	c, err := ForMethod("repo.Find", repo.Find)
	if err != nil {
		t.Fatalf("ForMethod: %v", err)
	}

	out, err := c.Call(veritest.ValueOf(repo{prefix: "row-"}),
		[]veritest.Value{veritest.ValueOf(7)})
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if out != "row-7" {
		t.Errorf("Call() = %v, want %q", out, "row-7")
	}

	// Wrong target type is an invocation setup error.
	if _, err := c.Call(veritest.ValueOf("not a repo"),
		[]veritest.Value{veritest.ValueOf(7)}); err == nil {
		t.Error("unassignable target should fail")
	}
}

func TestCall_CallableOwnError(t *testing.T) {
	boom := fmt.Errorf("boom")
	c, err := ForFunc("failing", func() (string, error) { return "", boom })
	if err != nil {
		t.Fatalf("ForFunc: %v", err)
	}

	_, err = c.Call(veritest.NoValue(), nil)
	if err != boom {
		t.Fatalf("Call() error = %v, want the callable's own error verbatim", err)
	}
	// Callable-body failures are never reclassified.
	if _, ok := errors.AsResolution(err); ok {
		t.Error("callable failure must not enter the resolution taxonomy")
	}
}

func TestCall_TrailingNilErrorStripped(t *testing.T) {
	c, err := ForFunc("ok", func() (int, error) { return 9, nil })
	if err != nil {
		t.Fatalf("ForFunc: %v", err)
	}

	out, err := c.Call(veritest.NoValue(), nil)
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if out != 9 {
		t.Errorf("Call() = %v, want 9", out)
	}
}

func TestCall_SlotCountMismatch(t *testing.T) {
	c, err := ForFunc("demo", func(a int) {})
	if err != nil {
		t.Fatalf("ForFunc: %v", err)
	}

	_, err = c.Call(veritest.NoValue(), nil)
	if err == nil {
		t.Fatal("short argument vector should fail")
	}
	if e, ok := errors.AsResolution(err); !ok || e.Kind != errors.KindInvalidInput {
		t.Errorf("error = %v, want invalid_input diagnostic", err)
	}
}

func TestParameter_String(t *testing.T) {
	c, err := ForFunc("demo", func(a int, b string) {})
	if err != nil {
		t.Fatalf("ForFunc: %v", err)
	}
	if got := c.Parameters()[1].String(); got != "arg1 string" {
		t.Errorf("unnamed parameter String() = %q", got)
	}
	c.Names("count")
	if got := c.Parameters()[0].String(); got != "count int" {
		t.Errorf("named parameter String() = %q", got)
	}
	if c.Parameters()[0].Index() != 0 || c.Parameters()[1].Index() != 1 {
		t.Error("parameter indexes not in declaration order")
	}
}

func TestTypeOfRoundTrip(t *testing.T) {
	rt := reflect.TypeOf(map[string]int{})
	if TypeOf(rt).Reflect() != rt {
		t.Error("TypeOf should preserve the reflect.Type")
	}
}
