package controllers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"blogapi/app/validation"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// sendJSON writes data as a JSON response with the given status.
func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// sendError writes a single-message error body: {"error": "<message>"}.
func sendError(w http.ResponseWriter, status int, message string) {
	sendJSON(w, status, map[string]string{"error": message})
}

// sendValidationErrors writes the field errors as a 400 response in the
// wire format: an array of {"error": "<message>"} objects.
func sendValidationErrors(w http.ResponseWriter, errs []validation.Error) {
	sendJSON(w, http.StatusBadRequest, errs)
}

// sendServerError logs the underlying error and responds with a generic
// 500 body.
func sendServerError(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	sendError(w, http.StatusInternalServerError, "Internal server error.")
}

// parseID validates that a path parameter is a structurally valid
// object identifier (24-char hex) before any repository call. A
// malformed value fails fast with ok=false; callers respond 400.
func parseID(w http.ResponseWriter, raw string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		sendError(w, http.StatusBadRequest, "Invalid path parameter.")
		return primitive.NilObjectID, false
	}
	return id, true
}

// decodeBody decodes a JSON request body into dst, responding 400 on
// malformed input.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid request body.")
		return false
	}
	return true
}
