package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/SwineFeather/nordics-gateway/pkg/validation"
)

// RegisterUpload validates file upload metadata before any storage work
// happens. The actual byte transfer is handled elsewhere; this endpoint
// gates the declared filename, type, and size.
func (h *Handlers) RegisterUpload(w http.ResponseWriter, r *http.Request) {
	data, ok := h.decodeJSON(w, r)
	if !ok {
		return
	}

	result := h.validator.Validate(data, validation.FileUploadSchema(), validation.DefaultOptions())
	h.observeValidation(r, "file_upload", result)

	if !result.IsValid {
		writeValidationErrors(w, result)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"id":     uuid.NewString(),
		"upload": result.SanitizedData,
	})
}
