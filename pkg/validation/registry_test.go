package validation

import "testing"

func TestRegistry_RegisterRejectsDuplicates(t *testing.T) {
	r := NewRegistry()

	if err := r.Register(RuleUsername, func(any, string) string { return "" }); err == nil {
		t.Error("expected error registering over a built-in rule")
	}
	if err := r.Register("", func(any, string) string { return "" }); err == nil {
		t.Error("expected error for empty rule name")
	}
	if err := r.Register("custom", nil); err == nil {
		t.Error("expected error for nil rule function")
	}
	if err := r.Register("custom", func(any, string) string { return "" }); err != nil {
		t.Errorf("unexpected error registering new rule: %v", err)
	}
}

func TestBuiltinRules(t *testing.T) {
	tests := []struct {
		rule  CustomRule
		value any
		valid bool
	}{
		{RuleUsername, "steve_2024", true},
		{RuleUsername, "ab", false},
		{RuleUsername, 42, false},
		{RulePassword, "Str0ngPass!word", true},
		{RulePassword, "weak", false},
		{RuleAlphanumeric, "abc123", true},
		{RuleAlphanumeric, "abc-123", false},
		{RulePositiveNumber, 5, true},
		{RulePositiveNumber, "12.5", true},
		{RulePositiveNumber, 0, false},
		{RulePositiveNumber, -1, false},
		{RulePositiveNumber, "abc", false},
		{RuleInteger, 42, true},
		{RuleInteger, "17", true},
		{RuleInteger, 3.5, false},
		{RuleInteger, "abc", false},
	}

	r := NewRegistry()
	for _, tt := range tests {
		fn := r.Lookup(tt.rule)
		if fn == nil {
			t.Fatalf("rule %q not registered", tt.rule)
		}
		msg := fn(tt.value, "field")
		if (msg == "") != tt.valid {
			t.Errorf("%s(%v): got %q, want valid=%v", tt.rule, tt.value, msg, tt.valid)
		}
	}
}
