package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/SwineFeather/nordics-gateway/pkg/validation"
)

// decodeJSON reads the request body into a generic JSON object. The body
// is size-bounded, and numbers are decoded as json.Number so that integer
// values survive the round trip into the validator. A false return means
// an error response has already been written.
func (h *Handlers) decodeJSON(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var data map[string]any
	if err := dec.Decode(&data); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{
				"error": "Request body too large",
			})
			return nil, false
		}

		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
		return nil, false
	}

	// A second JSON value after the object is malformed input, not a
	// payload with trailing whitespace.
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
		return nil, false
	}

	return data, true
}

// writeValidationErrors reports per-field validation errors with 400.
func writeValidationErrors(w http.ResponseWriter, result *validation.Result) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"error":  "Validation failed",
		"fields": result.Errors,
	})
}

// writeJSON writes a JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
