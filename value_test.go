package veritest

import "testing"

func TestValue(t *testing.T) {
	tests := []struct {
		val      Value
		name     string
		typeName string
		str      string
		present  bool
	}{
		{ValueOf(42), "present int", "int", "42", true},
		{ValueOf("x"), "present string", "string", "x", true},
		{ValueOf(nil), "present nil", "none", "<nil>", true},
		{NoValue(), "no value", "none", "<no value>", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.val.IsPresent() != tt.present {
				t.Errorf("IsPresent() = %v, want %v", tt.val.IsPresent(), tt.present)
			}
			if got := tt.val.TypeName(); got != tt.typeName {
				t.Errorf("TypeName() = %q, want %q", got, tt.typeName)
			}
			if got := tt.val.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
		})
	}

	if NoValue().Get() != nil {
		t.Error("the no-value marker must carry no payload")
	}
	if ValueOf(7).Get() != 7 {
		t.Error("ValueOf must preserve the payload")
	}
}
