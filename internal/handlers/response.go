package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/theEndless11/news/pkg/apperr"
)

// errorResponse is the failure body shape: a human message plus a
// sanitized error string. Driver details never reach the client.
type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondMessage(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusOK, map[string]string{"message": message})
}

func respondError(w http.ResponseWriter, status int, message string, err error) {
	respondJSON(w, status, errorResponse{
		Message: message,
		Error:   apperr.Message(err),
	})
}

// statusFor maps the error taxonomy to HTTP statuses: storage failures
// are server errors, everything else is the caller's fault.
func statusFor(err error) int {
	if apperr.KindOf(err) == apperr.KindStorage {
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}
