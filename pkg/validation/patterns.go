package validation

import "regexp"

// Matcher reports whether a string value has an acceptable shape. All library
// matchers are pure functions over pre-compiled regular expressions and are
// safe for concurrent use.
type Matcher func(s string) bool

// Pre-compiled expressions for common field shapes. These back the named
// matchers below and the custom rule registry.
var (
	// emailRe matches a conventional mailbox@domain address.
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// urlRe matches absolute http or https URLs only.
	urlRe = regexp.MustCompile(`^https?://.+$`)

	// uuidRe matches RFC 4122 UUIDs, versions 1-5, variant 8/9/a/b.
	uuidRe = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[1-5][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

	// usernameRe matches 3-20 characters: letters, digits, underscore, hyphen.
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,20}$`)

	// alphanumericRe matches letters and digits only.
	alphanumericRe = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

	// numericRe matches digits only.
	numericRe = regexp.MustCompile(`^[0-9]+$`)

	// decimalRe matches digits with an optional single fractional part.
	decimalRe = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

	// Password strength components. RE2 has no lookaheads, so the password
	// matcher combines these instead of using a single expression.
	passwordLowerRe   = regexp.MustCompile(`[a-z]`)
	passwordUpperRe   = regexp.MustCompile(`[A-Z]`)
	passwordDigitRe   = regexp.MustCompile(`[0-9]`)
	passwordSpecialRe = regexp.MustCompile(`[@$!%*?&]`)
)

// matchPassword enforces minimum password strength: at least 12 characters
// with one lowercase, one uppercase, one digit, and one special character
// from the fixed set @$!%*?&.
func matchPassword(s string) bool {
	return len(s) >= 12 &&
		passwordLowerRe.MatchString(s) &&
		passwordUpperRe.MatchString(s) &&
		passwordDigitRe.MatchString(s) &&
		passwordSpecialRe.MatchString(s)
}

// patterns maps pattern names to matchers. Rule.Pattern values are resolved
// against this table first; anything else is compiled as a literal regular
// expression.
var patterns = map[string]Matcher{
	"email":        emailRe.MatchString,
	"url":          urlRe.MatchString,
	"uuid":         uuidRe.MatchString,
	"username":     usernameRe.MatchString,
	"password":     matchPassword,
	"alphanumeric": alphanumericRe.MatchString,
	"numeric":      numericRe.MatchString,
	"decimal":      decimalRe.MatchString,
}

// LookupPattern returns the named matcher from the pattern library, or nil if
// the name is not part of the library.
func LookupPattern(name string) Matcher {
	return patterns[name]
}

// PatternNames returns the names of all matchers in the library.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	return names
}
