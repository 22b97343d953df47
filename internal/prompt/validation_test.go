package prompt

import "testing"

func TestValidateNotEmpty(t *testing.T) {
	if err := ValidateNotEmpty("abc"); err != nil {
		t.Errorf("ValidateNotEmpty(abc) = %v", err)
	}
	if err := ValidateNotEmpty(""); err == nil {
		t.Error("ValidateNotEmpty(empty) = nil, want error")
	}
	if err := ValidateNotEmpty("   "); err == nil {
		t.Error("ValidateNotEmpty(whitespace) = nil, want error")
	}
}
