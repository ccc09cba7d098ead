package logging

import (
	"fmt"
	"regexp"
)

// Redactor masks PII in log attribute values. The gateway attributes every
// throttle decision to a client identifier, which is usually an IP address,
// and validation logging can surface submitted email addresses; both are
// masked before reaching the log stream.
type Redactor struct {
	patterns []redactPattern
}

type redactPattern struct {
	name        string
	regex       *regexp.Regexp
	replacement string
}

// NewRedactor creates a Redactor with the built-in patterns.
func NewRedactor() *Redactor {
	return &Redactor{
		patterns: []redactPattern{
			{
				name:        "email",
				regex:       regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`),
				replacement: "***@***",
			},
			{
				name:        "ipv4",
				regex:       regexp.MustCompile(`\b(\d{1,3})\.(?:\d{1,3}\.){2}\d{1,3}\b`),
				replacement: "$1.*.*.*",
			},
			{
				name:        "bearer_token",
				regex:       regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9._-]+`),
				replacement: "Bearer ***",
			},
		},
	}
}

// RedactArgs masks PII in the values of slog key-value pairs. Keys are left
// intact so log queries keep working.
func (r *Redactor) RedactArgs(args ...any) []any {
	redacted := make([]any, len(args))
	for i, arg := range args {
		// Even positions are keys in slog's alternating k/v form.
		if i%2 == 0 {
			redacted[i] = arg
			continue
		}
		redacted[i] = r.redactValue(arg)
	}
	return redacted
}

// RedactString masks PII in a single string.
func (r *Redactor) RedactString(s string) string {
	for _, p := range r.patterns {
		s = p.regex.ReplaceAllString(s, p.replacement)
	}
	return s
}

func (r *Redactor) redactValue(value any) any {
	switch v := value.(type) {
	case string:
		return r.RedactString(v)
	case fmt.Stringer:
		return r.RedactString(v.String())
	case error:
		return r.RedactString(v.Error())
	default:
		return value
	}
}
