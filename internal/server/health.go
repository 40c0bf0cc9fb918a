package server

import (
	"log/slog"
	"net/http"
)

// HealthHandler reports process liveness. It never touches the database:
// orchestration platforms use it to tell "process is running" apart from
// "dependency is reachable", so it must keep answering while the store is down.
type HealthHandler struct {
	log *slog.Logger
}

func NewHealthHandler(log *slog.Logger) *HealthHandler {
	return &HealthHandler{log: log}
}

func (h *HealthHandler) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet {
		writeError(writer, h.log, errMethodNotAllowed(req.Method))
		return
	}

	h.log.DebugContext(req.Context(), "Health check requested")
	writeJSON(writer, h.log, http.StatusOK, map[string]string{"status": "ok"})
}
