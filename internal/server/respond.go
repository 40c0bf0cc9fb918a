package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Houeta/empleados-api/internal/lib/logger/sl"
)

// apiError is the tagged failure result of a handler: an HTTP status code
// plus the human-readable detail sent back to the client. Clients always
// receive a JSON body on error.
type apiError struct {
	Status int
	Detail string
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(writer http.ResponseWriter, log *slog.Logger, status int, payload any) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	if err := json.NewEncoder(writer).Encode(payload); err != nil {
		log.Error("Failed to write response", sl.Err(err))
	}
}

func writeError(writer http.ResponseWriter, log *slog.Logger, apiErr *apiError) {
	writeJSON(writer, log, apiErr.Status, errorResponse{Detail: apiErr.Detail})
}

func errMethodNotAllowed(method string) *apiError {
	return &apiError{
		Status: http.StatusMethodNotAllowed,
		Detail: "method " + method + " is not allowed on this route",
	}
}
