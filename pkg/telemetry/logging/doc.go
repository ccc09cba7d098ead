// Package logging provides structured logging for the gateway on top of
// log/slog, with optional redaction of player PII (email addresses, client
// IPs) in log fields.
//
// # Usage
//
//	logger, err := logging.New(logging.Config{Level: "info", Format: "json"})
//	if err != nil { ... }
//	logger.Info("request denied", "client_id", id, "remaining", 0)
//
// Redaction applies to attribute values, not message text. The gateway logs
// client identifiers on every throttle decision, so redaction is on by
// default in production configs.
package logging
