package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/SwineFeather/nordics-gateway/pkg/telemetry/logging"
	"github.com/SwineFeather/nordics-gateway/pkg/validation"
)

func newTestHandlers(t *testing.T) *Handlers {
	t.Helper()

	logger, err := logging.New(logging.Config{Level: "error", Format: "json", Writer: io.Discard})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}
	return New(Options{
		Validator: validation.NewValidator(nil),
		Logger:    logger,
	})
}

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, r)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v\n%s", err, rec.Body.String())
	}
	return body
}

func TestUpdateProfileValid(t *testing.T) {
	h := newTestHandlers(t)

	rec := postJSON(t, h.UpdateProfile, `{
		"username": "erik_dane",
		"email": "erik@example.com",
		"bio": "  Hello <b>world</b>  "
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	body := decodeBody(t, rec)
	profile, ok := body["profile"].(map[string]any)
	if !ok {
		t.Fatalf("profile missing from response: %v", body)
	}
	bio, _ := profile["bio"].(string)
	if strings.ContainsAny(bio, "<>") {
		t.Errorf("bio kept angle brackets: %q", bio)
	}
	if bio != strings.TrimSpace(bio) {
		t.Errorf("bio not trimmed: %q", bio)
	}
	if profile["username"] != "erik_dane" {
		t.Errorf("username = %v", profile["username"])
	}
}

func TestUpdateProfileValidationFailure(t *testing.T) {
	h := newTestHandlers(t)

	rec := postJSON(t, h.UpdateProfile, `{"username": "ab", "email": "not-an-email"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	body := decodeBody(t, rec)
	if body["error"] != "Validation failed" {
		t.Errorf("error = %v", body["error"])
	}
	fields, ok := body["fields"].(map[string]any)
	if !ok {
		t.Fatalf("fields missing: %v", body)
	}
	for _, f := range []string{"username", "email"} {
		if _, present := fields[f]; !present {
			t.Errorf("expected error for field %q, got %v", f, fields)
		}
	}
}

func TestMalformedJSONRejected(t *testing.T) {
	h := newTestHandlers(t)

	rec := postJSON(t, h.UpdateProfile, `{"username": "erik_dane"`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "Invalid request body" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestTrailingJSONRejected(t *testing.T) {
	h := newTestHandlers(t)

	rec := postJSON(t, h.UpdateProfile, `{"username": "erik_dane"} {"again": true}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestOversizedBodyRejected(t *testing.T) {
	logger, err := logging.New(logging.Config{Level: "error", Format: "json", Writer: io.Discard})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}
	h := New(Options{
		Validator:    validation.NewValidator(nil),
		Logger:       logger,
		MaxBodyBytes: 64,
	})

	rec := postJSON(t, h.UpdateProfile, `{"bio": "`+strings.Repeat("x", 200)+`"}`)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want 413", rec.Code)
	}
}

func TestCreatePostAssignsID(t *testing.T) {
	h := newTestHandlers(t)

	rec := postJSON(t, h.CreatePost, `{
		"title": "Server maintenance tonight",
		"content": "The town server restarts at 22:00 UTC.",
		"category_id": "3f2aa6c1-9f14-4a8b-8b6e-1d2c3b4a5f60"
	}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	body := decodeBody(t, rec)
	id, _ := body["id"].(string)
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("id %q is not a UUID: %v", id, err)
	}
	if _, ok := body["post"].(map[string]any); !ok {
		t.Errorf("post missing from response: %v", body)
	}
}

func TestCreatePostRequiresCategoryUUID(t *testing.T) {
	h := newTestHandlers(t)

	rec := postJSON(t, h.CreatePost, `{
		"title": "Hello",
		"content": "World",
		"category_id": "not-a-uuid"
	}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	fields := decodeBody(t, rec)["fields"].(map[string]any)
	if _, ok := fields["category_id"]; !ok {
		t.Errorf("expected category_id error, got %v", fields)
	}
}

func TestCreateCommentRequiresContent(t *testing.T) {
	h := newTestHandlers(t)

	rec := postJSON(t, h.CreateComment, `{}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestRegisterUploadRejectsNegativeSize(t *testing.T) {
	h := newTestHandlers(t)

	rec := postJSON(t, h.RegisterUpload, `{
		"filename": "spawn.png",
		"file_type": "image/png",
		"file_size": -5
	}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	fields := decodeBody(t, rec)["fields"].(map[string]any)
	if _, ok := fields["file_size"]; !ok {
		t.Errorf("expected file_size error, got %v", fields)
	}
}

func TestRegisterUploadValid(t *testing.T) {
	h := newTestHandlers(t)

	rec := postJSON(t, h.RegisterUpload, `{
		"filename": "spawn.png",
		"file_type": "image/png",
		"file_size": 204800
	}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
}

func TestHealth(t *testing.T) {
	h := newTestHandlers(t)

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body := decodeBody(t, rec); body["status"] != "ok" {
		t.Errorf("status = %v", body["status"])
	}
}
