// Package web holds the JSON response helpers shared by every handler.
package web

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/imdhruv9/uttam-printing/internal/apperr"
)

// ErrorResponse is the body returned for every failed request.
type ErrorResponse struct {
	Status  int      `json:"status"`
	Error   string   `json:"error"`
	Message string   `json:"message"`
	Path    string   `json:"path"`
	Details []string `json:"details,omitempty"`
}

// Respond writes body as JSON with the given status.
func Respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		json.NewEncoder(w).Encode(body)
	}
}

// RespondError translates a typed error into the error body shape.
// Unclassified errors never leak their message to the caller.
func RespondError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	title := "Internal Server Error"
	message := "An unexpected error occurred"
	var details []string

	if e, ok := apperr.As(err); ok {
		switch e.Kind {
		case apperr.KindValidation:
			status, title = http.StatusBadRequest, "Validation Error"
		case apperr.KindNotFound:
			status, title = http.StatusNotFound, "Not Found"
		case apperr.KindAuthentication:
			status, title = http.StatusUnauthorized, "Unauthorized"
		case apperr.KindAuthorization:
			status, title = http.StatusForbidden, "Forbidden"
		case apperr.KindFileStorage:
			// All storage failures surface as 500, matching the
			// documented behavior of the original system.
			status, title = http.StatusInternalServerError, "File Storage Error"
		}
		if e.Kind != apperr.KindUnexpected {
			message = e.Message
			details = e.Details
		}
	}

	if status >= http.StatusInternalServerError {
		zap.S().Errorw("request failed", "path", r.URL.Path, "error", err)
	} else {
		zap.S().Debugw("request rejected", "path", r.URL.Path, "status", status, "error", err)
	}

	Respond(w, status, ErrorResponse{
		Status:  status,
		Error:   title,
		Message: message,
		Path:    r.URL.Path,
		Details: details,
	})
}
