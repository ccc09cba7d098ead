package validation

// FieldType constrains the runtime type of a field value.
type FieldType string

// Recognized field types. Email, URL, and UUID are string values checked
// against the corresponding pattern library matcher. Number accepts anything
// numerically coercible, including numeric strings from form submissions.
const (
	TypeString  FieldType = "string"
	TypeNumber  FieldType = "number"
	TypeBoolean FieldType = "boolean"
	TypeEmail   FieldType = "email"
	TypeURL     FieldType = "url"
	TypeUUID    FieldType = "uuid"
)

// Rule is a declarative constraint attached to one field name.
//
// A rule with Required=false and an empty or absent value short-circuits all
// other checks as valid. All other violations accumulate: a single field can
// report multiple errors in one pass.
type Rule struct {
	// Required rejects missing, nil, or empty-string values.
	Required bool

	// MinLength and MaxLength bound string length. Zero means unset.
	// MaxLength is also the truncation bound applied during sanitization.
	MinLength int
	MaxLength int

	// Pattern is either a named matcher from the pattern library or a
	// literal regular expression source.
	Pattern string

	// Type constrains the runtime type of the value.
	Type FieldType

	// Enum lists the allowed literal values, compared by string form.
	Enum []string

	// Custom names a registered custom validation rule.
	Custom CustomRule
}

// Schema maps field names to their rules. Keys are unique; evaluation order
// does not affect the outcome since each field's errors are independent.
type Schema map[string]Rule

// UnknownFieldsKey is the reserved error-map key under which unknown input
// fields are reported when strict validation is enabled.
const UnknownFieldsKey = "_unknown"

// Result is the outcome of validating one input record against a schema.
type Result struct {
	// IsValid is true iff Errors is empty.
	IsValid bool

	// Errors maps field names to their accumulated violation messages.
	// Unknown-field violations appear once under UnknownFieldsKey.
	Errors map[string][]string

	// SanitizedData contains only the fields that passed validation,
	// sanitized per their rules. When sanitization is disabled it echoes
	// every validated field unmodified.
	SanitizedData map[string]any
}

// Options controls validation behavior.
type Options struct {
	// Strict rejects input keys that are absent from the schema.
	Strict bool

	// AllowUnknown permits unknown keys even under Strict.
	AllowUnknown bool

	// Sanitize populates Result.SanitizedData with cleaned values.
	Sanitize bool
}

// DefaultOptions returns the default validation options: strict, unknown
// fields rejected, sanitization enabled.
func DefaultOptions() Options {
	return Options{
		Strict:       true,
		AllowUnknown: false,
		Sanitize:     true,
	}
}
