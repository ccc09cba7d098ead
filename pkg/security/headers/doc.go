// Package headers composes the security response headers the gateway
// attaches to every protected endpoint: Content-Security-Policy, HSTS,
// Permissions-Policy, and their companion hardening headers.
//
// Composition is pure: each Generate function maps a Config to a header
// value string deterministically, so the same config always yields
// byte-identical output. Applying the headers to a response is a separate
// step (HeaderMap / Apply) so that composition stays testable without any
// HTTP machinery.
//
// Header categories are independent: a disabled category is simply absent
// from the composed set, and composing one category can never prevent the
// others from being set.
package headers
