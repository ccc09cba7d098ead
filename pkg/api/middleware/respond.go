package middleware

import (
	"encoding/json"
	"net/http"
)

// writeJSONError writes a JSON error body with the given status. Encoding
// errors are ignored; the status line has already been sent.
func writeJSONError(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
