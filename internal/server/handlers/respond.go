package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sorbit-app/sorbit-auth/pkg/api"
)

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(logger *slog.Logger, w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// WriteError writes the uniform {message} error body.
func WriteError(logger *slog.Logger, w http.ResponseWriter, message string, statusCode int) {
	WriteJSON(logger, w, api.ErrorResponse{Message: message}, statusCode)
}
