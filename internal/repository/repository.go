package repository

import (
	"context"

	"github.com/Houeta/empleados-api/internal/metrics"
	"github.com/Houeta/empleados-api/internal/models"
)

type Repository struct {
	db      Database
	metrics *metrics.Metrics
}

// EmpleadoRepoIface represents the interface for interacting with empleado data in the repository.
type EmpleadoRepoIface interface {
	EnsureSchema(ctx context.Context) error
	ListEmpleados(ctx context.Context) ([]models.Empleado, error)
	CreateEmpleado(ctx context.Context, nombres, telefono string) (models.Empleado, error)
}

func NewEmpleadoRepository(db Database, mtr *metrics.Metrics) EmpleadoRepoIface {
	return &Repository{db: db, metrics: mtr}
}
