package validation

import "fmt"

// CustomRule names a registered custom validation function. Using a distinct
// type keeps rule references greppable and makes typos stand out at the call
// site instead of silently matching nothing.
type CustomRule string

// Built-in custom rules.
const (
	RuleUsername       CustomRule = "username"
	RulePassword       CustomRule = "password"
	RuleAlphanumeric   CustomRule = "alphanumeric"
	RulePositiveNumber CustomRule = "positive_number"
	RuleInteger        CustomRule = "integer"
)

// RuleFunc validates a single value. It returns an empty string when the
// value is acceptable, otherwise a human-readable violation message naming
// the field.
type RuleFunc func(value any, field string) string

// Registry maps custom rule names to their implementations. A Registry is
// immutable after construction and safe for concurrent use.
type Registry struct {
	rules map[CustomRule]RuleFunc
}

// NewRegistry returns a registry pre-populated with the built-in rules.
func NewRegistry() *Registry {
	r := &Registry{rules: make(map[CustomRule]RuleFunc)}
	r.rules[RuleUsername] = validateUsername
	r.rules[RulePassword] = validatePassword
	r.rules[RuleAlphanumeric] = validateAlphanumeric
	r.rules[RulePositiveNumber] = validatePositiveNumber
	r.rules[RuleInteger] = validateInteger
	return r
}

// Register adds a custom rule. Registering over an existing name is an error;
// rules are fixed policy, not runtime-swappable behavior.
func (r *Registry) Register(name CustomRule, fn RuleFunc) error {
	if name == "" {
		return fmt.Errorf("rule name cannot be empty")
	}
	if fn == nil {
		return fmt.Errorf("rule %q: function cannot be nil", name)
	}
	if _, exists := r.rules[name]; exists {
		return fmt.Errorf("rule %q is already registered", name)
	}
	r.rules[name] = fn
	return nil
}

// Lookup returns the rule function for a name, or nil if unregistered.
func (r *Registry) Lookup(name CustomRule) RuleFunc {
	return r.rules[name]
}

// defaultRegistry backs the package-level Validate entry points. Handlers
// that need additional rules construct their own Registry and use a
// Validator instance instead.
var defaultRegistry = NewRegistry()

func validateUsername(value any, field string) string {
	s, ok := value.(string)
	if !ok || !usernameRe.MatchString(s) {
		return fmt.Sprintf("%s must be 3-20 characters: letters, numbers, underscore, or hyphen", field)
	}
	return ""
}

func validatePassword(value any, field string) string {
	s, ok := value.(string)
	if !ok || !matchPassword(s) {
		return fmt.Sprintf("%s must be at least 12 characters with uppercase, lowercase, number, and special character", field)
	}
	return ""
}

func validateAlphanumeric(value any, field string) string {
	s, ok := value.(string)
	if !ok || !alphanumericRe.MatchString(s) {
		return fmt.Sprintf("%s must contain only letters and numbers", field)
	}
	return ""
}

func validatePositiveNumber(value any, field string) string {
	n, ok := toNumber(value)
	if !ok || n <= 0 {
		return fmt.Sprintf("%s must be a positive number", field)
	}
	return ""
}

func validateInteger(value any, field string) string {
	n, ok := toNumber(value)
	if !ok || n != float64(int64(n)) {
		return fmt.Sprintf("%s must be an integer", field)
	}
	return ""
}
