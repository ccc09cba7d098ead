package validation

import "testing"

func TestPatterns(t *testing.T) {
	tests := []struct {
		pattern string
		value   string
		match   bool
	}{
		{"email", "player@nordics.example", true},
		{"email", "no-at-sign", false},
		{"email", "two@@signs.example", false},
		{"email", "spaces in@side.example", false},

		{"url", "https://nordics.example/towns", true},
		{"url", "http://nordics.example", true},
		{"url", "ftp://nordics.example", false},
		{"url", "nordics.example", false},

		{"uuid", "123e4567-e89b-12d3-a456-426614174000", true},
		{"uuid", "123e4567-e89b-62d3-a456-426614174000", false}, // version 6
		{"uuid", "123e4567-e89b-12d3-c456-426614174000", false}, // bad variant
		{"uuid", "123E4567-E89B-12D3-A456-426614174000", false}, // uppercase
		{"uuid", "not-a-uuid", false},

		{"username", "steve", true},
		{"username", "a_b-c123", true},
		{"username", "ab", false},
		{"username", "this-name-is-way-too-long-for-us", false},
		{"username", "bad name", false},

		{"password", "Str0ngPass!word", true},
		{"password", "Sh0rt!aA", false},          // under 12 chars
		{"password", "alllowercase1!aaa", false}, // no uppercase
		{"password", "ALLUPPERCASE1!AAA", false}, // no lowercase
		{"password", "NoDigitsHere!!aa", false},
		{"password", "NoSpecials123aaa", false},

		{"alphanumeric", "abc123", true},
		{"alphanumeric", "abc 123", false},
		{"alphanumeric", "", false},

		{"numeric", "0420", true},
		{"numeric", "42.5", false},
		{"numeric", "-42", false},

		{"decimal", "42", true},
		{"decimal", "42.5", true},
		{"decimal", "42.5.1", false},
		{"decimal", ".5", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.value, func(t *testing.T) {
			m := LookupPattern(tt.pattern)
			if m == nil {
				t.Fatalf("pattern %q not in library", tt.pattern)
			}
			if got := m(tt.value); got != tt.match {
				t.Errorf("%s(%q) = %v, want %v", tt.pattern, tt.value, got, tt.match)
			}
		})
	}
}

func TestLookupPattern_Unknown(t *testing.T) {
	if LookupPattern("no-such-pattern") != nil {
		t.Error("expected nil for unknown pattern name")
	}
}

func TestPatternNames_Complete(t *testing.T) {
	want := map[string]bool{
		"email": true, "url": true, "uuid": true, "username": true,
		"password": true, "alphanumeric": true, "numeric": true, "decimal": true,
	}
	names := PatternNames()
	if len(names) != len(want) {
		t.Fatalf("expected %d patterns, got %d: %v", len(want), len(names), names)
	}
	for _, name := range names {
		if !want[name] {
			t.Errorf("unexpected pattern %q", name)
		}
	}
}
