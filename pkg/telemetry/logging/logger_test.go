package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New(Config{Level: "loud"}); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestNew_InvalidFormat(t *testing.T) {
	if _, err := New(Config{Format: "xml"}); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestLogger_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("request completed", "status", 200)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if record["msg"] != "request completed" {
		t.Errorf("msg = %v", record["msg"])
	}
	if record["status"] != float64(200) {
		t.Errorf("status = %v", record["status"])
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "warn", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("should be dropped")
	logger.Debug("should be dropped")
	if buf.Len() != 0 {
		t.Errorf("expected below-level records dropped, got %s", buf.String())
	}

	logger.Warn("kept")
	if buf.Len() == 0 {
		t.Error("expected warn record emitted")
	}
}

func TestLogger_RedactsAttributeValues(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "info", RedactPII: true, Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("validation failed", "email", "steve@nordics.example", "client_id", "198.51.100.7")

	out := buf.String()
	if strings.Contains(out, "steve@nordics.example") {
		t.Errorf("email not redacted: %s", out)
	}
	if strings.Contains(out, "198.51.100.7") {
		t.Errorf("client IP not redacted: %s", out)
	}
	if !strings.Contains(out, "198.*.*.*") {
		t.Errorf("expected masked IP form, got %s", out)
	}
}

func TestRedactor_KeysLeftIntact(t *testing.T) {
	r := NewRedactor()
	args := r.RedactArgs("email", "a@b.example")

	if args[0] != "email" {
		t.Errorf("key was modified: %v", args[0])
	}
	if args[1] == "a@b.example" {
		t.Error("value was not redacted")
	}
}

func TestRedactor_BearerToken(t *testing.T) {
	r := NewRedactor()
	got := r.RedactString("authorization: Bearer abc123.def-456")
	if strings.Contains(got, "abc123") {
		t.Errorf("token not redacted: %s", got)
	}
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	child := logger.With("component", "ratelimit")
	child.Info("sweep completed")

	if !strings.Contains(buf.String(), "ratelimit") {
		t.Errorf("expected component field in output: %s", buf.String())
	}
}
