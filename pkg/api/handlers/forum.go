package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/SwineFeather/nordics-gateway/pkg/validation"
)

// CreatePost validates a forum post payload and, on success, assigns the
// new post an ID and returns the sanitized record.
func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	data, ok := h.decodeJSON(w, r)
	if !ok {
		return
	}

	result := h.validator.Validate(data, validation.ForumPostSchema(), validation.DefaultOptions())
	h.observeValidation(r, "forum_post", result)

	if !result.IsValid {
		writeValidationErrors(w, result)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"id":   uuid.NewString(),
		"post": result.SanitizedData,
	})
}

// CreateComment validates a comment payload and, on success, assigns the
// new comment an ID and returns the sanitized record.
func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	data, ok := h.decodeJSON(w, r)
	if !ok {
		return
	}

	result := h.validator.Validate(data, validation.CommentSchema(), validation.DefaultOptions())
	h.observeValidation(r, "comment", result)

	if !result.IsValid {
		writeValidationErrors(w, result)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"id":      uuid.NewString(),
		"comment": result.SanitizedData,
	})
}
