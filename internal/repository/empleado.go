package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Houeta/empleados-api/internal/models"
)

// EnsureSchema creates the empleados table unless it already exists. It is
// idempotent: running it against an existing table is a no-op.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("ensure_schema").Observe(duration)
	}()
	query := `
		CREATE TABLE IF NOT EXISTS empleados (
			id SERIAL PRIMARY KEY,
			nombres TEXT NOT NULL,
			telefono TEXT
		);
	`

	_, err := r.db.Exec(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to create empleados table: %w", err)
	}

	return nil
}

// ListEmpleados retrieves every empleado ordered by identifier ascending.
// An empty table yields an empty slice, never nil.
func (r *Repository) ListEmpleados(ctx context.Context) ([]models.Empleado, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("list_empleados").Observe(duration)
	}()
	query := `SELECT id, nombres, COALESCE(telefono, '') FROM empleados ORDER BY id;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list empleados: %w", err)
	}
	defer rows.Close()

	empleados := make([]models.Empleado, 0)
	for rows.Next() {
		var emp models.Empleado
		if err = rows.Scan(&emp.ID, &emp.Nombres, &emp.Telefono); err != nil {
			return nil, fmt.Errorf("failed to scan empleado row: %w", err)
		}
		empleados = append(empleados, emp)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read empleado rows: %w", err)
	}

	return empleados, nil
}

// CreateEmpleado inserts a new empleado and returns the stored row, including
// the identifier assigned by the database. Both fields are bound as statement
// parameters.
func (r *Repository) CreateEmpleado(ctx context.Context, nombres, telefono string) (models.Empleado, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("create_empleado").Observe(duration)
	}()
	query := `
		INSERT INTO empleados (nombres, telefono)
		VALUES ($1, $2)
		RETURNING id, nombres, telefono;
	`

	var emp models.Empleado
	err := r.db.QueryRow(ctx, query, nombres, telefono).Scan(&emp.ID, &emp.Nombres, &emp.Telefono)
	if err != nil {
		return models.Empleado{}, fmt.Errorf("failed to insert empleado: %w", err)
	}

	return emp, nil
}
