// Package validation provides the schema validation and sanitization engine
// used to vet untrusted payloads before they reach storage.
//
// # Overview
//
// The package has three layers:
//
//   - Pattern library: a fixed set of pre-compiled regular expressions for
//     common field shapes (email, url, uuid, username, password, ...).
//   - Custom rule registry: named validation functions that go beyond what a
//     single regular expression can express (positive numbers, integers, ...).
//   - Validator: given a declarative Schema and an input record, produces a
//     per-field error map and a sanitized output record.
//
// # Basic Usage
//
//	result := validation.Validate(payload, validation.ForumPostSchema())
//	if !result.IsValid {
//	    // result.Errors maps field name -> list of violation messages
//	}
//	store(result.SanitizedData)
//
// Validation never panics and never returns a Go error: malformed input is a
// validation failure, not a fault. All violations for a field are accumulated
// so callers can present them at once.
//
// # Sanitization
//
// Fields that pass validation are copied into Result.SanitizedData after
// sanitization: strings are trimmed, angle brackets are stripped, and values
// are truncated to the rule's MaxLength. Sanitization is advisory hardening
// only; output encoding at render time remains the caller's responsibility.
//
// # Thread Safety
//
// Schemas and the default registry are immutable after construction and safe
// for concurrent use. Validate holds no shared state.
package validation
