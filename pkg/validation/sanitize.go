package validation

import "strings"

// angleBrackets strips the characters used to open markup tags. This blunts
// trivial script injection in stored content; it is not a substitute for
// output encoding at render time.
var angleBrackets = strings.NewReplacer("<", "", ">", "")

// sanitizeValue cleans a value that has already passed validation.
//
//   - strings: trim surrounding whitespace, strip angle brackets, then
//     truncate to MaxLength if one is configured
//   - TypeNumber rules: coerce to float64
//   - TypeBoolean rules: coerce via truthiness
//   - everything else passes through unchanged
func sanitizeValue(value any, rule Rule) any {
	if s, ok := value.(string); ok && rule.Type != TypeNumber && rule.Type != TypeBoolean {
		return sanitizeString(s, rule.MaxLength)
	}

	switch rule.Type {
	case TypeNumber:
		if n, ok := toNumber(value); ok {
			return n
		}
		return value
	case TypeBoolean:
		return toBool(value)
	default:
		return value
	}
}

func sanitizeString(s string, maxLength int) string {
	s = strings.TrimSpace(s)
	s = angleBrackets.Replace(s)
	if maxLength > 0 && len(s) > maxLength {
		s = s[:maxLength]
	}
	return s
}

// toBool coerces a value to a boolean using truthiness semantics: nil, false,
// zero, and the empty string are false; everything else is true.
func toBool(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	default:
		if n, ok := toNumber(value); ok {
			return n != 0
		}
		return true
	}
}
