package validation

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Validator evaluates input records against schemas using a specific custom
// rule registry. The zero value is not usable; call NewValidator.
type Validator struct {
	registry *Registry
}

// NewValidator creates a validator backed by the given registry. A nil
// registry falls back to the built-in rules.
func NewValidator(registry *Registry) *Validator {
	if registry == nil {
		registry = defaultRegistry
	}
	return &Validator{registry: registry}
}

// Validate checks data against schema using the default options and the
// built-in rule registry.
func Validate(data map[string]any, schema Schema) *Result {
	return NewValidator(nil).Validate(data, schema, DefaultOptions())
}

// Validate checks every schema field against data and returns the accumulated
// per-field errors plus the sanitized record. It never panics and never
// returns a Go error: malformed values are validation failures.
func (v *Validator) Validate(data map[string]any, schema Schema, opts Options) *Result {
	result := &Result{
		Errors:        make(map[string][]string),
		SanitizedData: make(map[string]any),
	}

	if opts.Strict && !opts.AllowUnknown {
		if unknown := unknownFields(data, schema); len(unknown) > 0 {
			result.Errors[UnknownFieldsKey] = []string{
				fmt.Sprintf("unknown fields: %s", strings.Join(unknown, ", ")),
			}
		}
	}

	for field, rule := range schema {
		value, present := data[field]
		empty := !present || value == nil || value == ""

		var errs []string

		if rule.Required && empty {
			errs = append(errs, fmt.Sprintf("%s is required", field))
		}

		// Optional empty fields short-circuit as valid. Required empty
		// fields fall through so all violations surface in one pass.
		if empty && !rule.Required {
			if present && opts.Sanitize {
				result.SanitizedData[field] = value
			}
			continue
		}

		errs = append(errs, v.checkField(field, value, rule)...)

		if len(errs) > 0 {
			result.Errors[field] = errs
			continue
		}
		if opts.Sanitize {
			result.SanitizedData[field] = sanitizeValue(value, rule)
		} else {
			result.SanitizedData[field] = value
		}
	}

	result.IsValid = len(result.Errors) == 0
	return result
}

// checkField runs the type, length, pattern, enum, and custom checks for one
// field. Errors accumulate; no check aborts the rest.
func (v *Validator) checkField(field string, value any, rule Rule) []string {
	var errs []string

	if rule.Type != "" {
		if msg := checkType(field, value, rule.Type); msg != "" {
			errs = append(errs, msg)
		}
	}

	if s, isString := value.(string); isString {
		if rule.MinLength > 0 && len(s) < rule.MinLength {
			errs = append(errs, fmt.Sprintf("%s must be at least %d characters", field, rule.MinLength))
		}
		if rule.MaxLength > 0 && len(s) > rule.MaxLength {
			errs = append(errs, fmt.Sprintf("%s must be no more than %d characters", field, rule.MaxLength))
		}
	}

	if rule.Pattern != "" && !matchPattern(rule.Pattern, stringForm(value)) {
		errs = append(errs, fmt.Sprintf("%s format is invalid", field))
	}

	if len(rule.Enum) > 0 {
		if !contains(rule.Enum, stringForm(value)) {
			errs = append(errs, fmt.Sprintf("%s must be one of: %s", field, strings.Join(rule.Enum, ", ")))
		}
	}

	if rule.Custom != "" {
		errs = append(errs, v.checkCustom(field, value, rule.Custom)...)
	}

	return errs
}

// checkCustom dispatches to the registry. An unregistered rule name fails
// closed: a schema referencing a rule that does not exist must not wave
// values through. A panicking rule is likewise converted into a generic
// failure rather than crashing the request pipeline.
func (v *Validator) checkCustom(field string, value any, name CustomRule) (errs []string) {
	fn := v.registry.Lookup(name)
	if fn == nil {
		return []string{fmt.Sprintf("%s validation failed", field)}
	}

	defer func() {
		if r := recover(); r != nil {
			errs = []string{fmt.Sprintf("%s validation failed", field)}
		}
	}()

	if msg := fn(value, field); msg != "" {
		return []string{msg}
	}
	return nil
}

// checkType verifies the runtime type of value. Number accepts anything
// numerically coercible, including numeric strings; the other scalar types
// are strict.
func checkType(field string, value any, ft FieldType) string {
	switch ft {
	case TypeString:
		if _, ok := value.(string); !ok {
			return fmt.Sprintf("%s must be a string", field)
		}
	case TypeNumber:
		if _, ok := toNumber(value); !ok {
			return fmt.Sprintf("%s must be a number", field)
		}
	case TypeBoolean:
		if _, ok := value.(bool); !ok {
			return fmt.Sprintf("%s must be a boolean", field)
		}
	case TypeEmail:
		if !emailRe.MatchString(stringForm(value)) {
			return fmt.Sprintf("%s must be a valid email", field)
		}
	case TypeURL:
		if !urlRe.MatchString(stringForm(value)) {
			return fmt.Sprintf("%s must be a valid url", field)
		}
	case TypeUUID:
		if !uuidRe.MatchString(stringForm(value)) {
			return fmt.Sprintf("%s must be a valid uuid", field)
		}
	}
	return ""
}

// matchPattern resolves the rule pattern against the named library first,
// then falls back to compiling it as a literal expression. An uncompilable
// literal counts as a mismatch; validation must not panic on a bad schema.
func matchPattern(pattern, s string) bool {
	if m := LookupPattern(pattern); m != nil {
		return m(s)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(s)
}

// unknownFields returns the input keys absent from the schema, sorted so the
// synthetic error message is deterministic.
func unknownFields(data map[string]any, schema Schema) []string {
	var unknown []string
	for key := range data {
		if _, ok := schema[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	return unknown
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// stringForm renders a value the way it would be compared against patterns
// and enums: strings as-is, numbers without a trailing ".0" for whole values.
func stringForm(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case json.Number:
		return v.String()
	default:
		return fmt.Sprintf("%v", value)
	}
}

// toNumber coerces a value to float64. Numeric strings are accepted so that
// form submissions, where everything arrives as a string, validate the same
// as JSON numbers.
func toNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		if strings.TrimSpace(v) == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
