package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Houeta/empleados-api/internal/lib/logger/sl"
	"github.com/Houeta/empleados-api/internal/metrics"
	"github.com/Houeta/empleados-api/internal/models"
	"github.com/Houeta/empleados-api/internal/repository"
)

// EmpleadoHandler serves the data endpoints. Each request is a single linear
// acquire, execute, map, respond sequence with no state shared across requests.
type EmpleadoHandler struct {
	log     *slog.Logger
	repo    repository.EmpleadoRepoIface
	metrics *metrics.Metrics
}

func NewEmpleadoHandler(log *slog.Logger, repo repository.EmpleadoRepoIface, mtr *metrics.Metrics) *EmpleadoHandler {
	return &EmpleadoHandler{log: log, repo: repo, metrics: mtr}
}

// empleadoInput is the expected POST body. Pointer fields distinguish a
// missing key from a present-but-empty value.
type empleadoInput struct {
	Nombres  *string `json:"nombres"`
	Telefono *string `json:"telefono"`
}

// GetEmpleados handles GET /get: it returns every empleado ordered by
// identifier ascending, as a JSON array that is empty rather than null when
// the table holds no rows.
func (h *EmpleadoHandler) GetEmpleados(writer http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet {
		h.respondError(writer, req, "get", errMethodNotAllowed(req.Method))
		return
	}

	empleados, apiErr := h.listEmpleados(req.Context())
	if apiErr != nil {
		h.respondError(writer, req, "get", apiErr)
		return
	}

	h.metrics.HTTPRequests.WithLabelValues("get", strconv.Itoa(http.StatusOK)).Inc()
	writeJSON(writer, h.log, http.StatusOK, empleados)
}

// CreateEmpleado handles POST /post: it validates the body before any
// database access, inserts the row, and responds with the stored record
// including its server-assigned identifier.
func (h *EmpleadoHandler) CreateEmpleado(writer http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		h.respondError(writer, req, "post", errMethodNotAllowed(req.Method))
		return
	}

	emp, apiErr := h.createEmpleado(req)
	if apiErr != nil {
		h.respondError(writer, req, "post", apiErr)
		return
	}

	h.metrics.HTTPRequests.WithLabelValues("post", strconv.Itoa(http.StatusCreated)).Inc()
	writeJSON(writer, h.log, http.StatusCreated, emp)
}

func (h *EmpleadoHandler) listEmpleados(ctx context.Context) ([]models.Empleado, *apiError) {
	empleados, err := h.repo.ListEmpleados(ctx)
	if err != nil {
		return nil, &apiError{Status: http.StatusInternalServerError, Detail: "Error DB: " + err.Error()}
	}

	return empleados, nil
}

func (h *EmpleadoHandler) createEmpleado(req *http.Request) (models.Empleado, *apiError) {
	var input empleadoInput
	if err := json.NewDecoder(req.Body).Decode(&input); err != nil {
		return models.Empleado{}, &apiError{
			Status: http.StatusUnprocessableEntity,
			Detail: "invalid request body: " + err.Error(),
		}
	}
	if input.Nombres == nil || *input.Nombres == "" {
		return models.Empleado{}, &apiError{
			Status: http.StatusUnprocessableEntity,
			Detail: "field 'nombres' is required and must be a non-empty string",
		}
	}
	if input.Telefono == nil {
		return models.Empleado{}, &apiError{
			Status: http.StatusUnprocessableEntity,
			Detail: "field 'telefono' is required and must be a string",
		}
	}

	emp, err := h.repo.CreateEmpleado(req.Context(), *input.Nombres, *input.Telefono)
	if err != nil {
		return models.Empleado{}, &apiError{
			Status: http.StatusInternalServerError,
			Detail: "Error insertando: " + err.Error(),
		}
	}

	return emp, nil
}

func (h *EmpleadoHandler) respondError(writer http.ResponseWriter, req *http.Request, handlerName string, apiErr *apiError) {
	if apiErr.Status >= http.StatusInternalServerError {
		h.log.ErrorContext(req.Context(), "Request failed",
			sl.Op(handlerName),
			slog.Int("status", apiErr.Status),
			slog.String("detail", apiErr.Detail),
		)
	} else {
		h.log.WarnContext(req.Context(), "Request rejected",
			sl.Op(handlerName),
			slog.Int("status", apiErr.Status),
			slog.String("detail", apiErr.Detail),
		)
	}

	h.metrics.HTTPRequests.WithLabelValues(handlerName, strconv.Itoa(apiErr.Status)).Inc()
	writeError(writer, h.log, apiErr)
}
