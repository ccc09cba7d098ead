package handlers

import (
	"net/http"

	"github.com/SwineFeather/nordics-gateway/pkg/validation"
)

// UpdateProfile validates a profile update payload against the user
// profile schema and echoes the sanitized result.
func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	data, ok := h.decodeJSON(w, r)
	if !ok {
		return
	}

	result := h.validator.Validate(data, validation.UserProfileSchema(), validation.DefaultOptions())
	h.observeValidation(r, "user_profile", result)

	if !result.IsValid {
		writeValidationErrors(w, result)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"profile": result.SanitizedData,
	})
}
