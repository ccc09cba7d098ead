// Package handlers implements the gateway's JSON API endpoints.
//
// Every mutating endpoint follows the same shape: decode a JSON object,
// run it through the schema validator, and either return the per-field
// errors with status 400 or accept the sanitized payload with status 201.
// Handlers never see unvalidated field values; business logic downstream
// of an accepted request works exclusively on the sanitized copy.
//
// Endpoints:
//
//	POST /api/profile        user profile updates (user_profile schema)
//	POST /api/forum/posts    new forum posts (forum_post schema)
//	POST /api/forum/comments new comments (comment schema)
//	POST /api/uploads        file upload metadata (file_upload schema)
//	GET  /health             liveness probe
package handlers
