package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/Houeta/empleados-api/internal/metrics"
	"github.com/Houeta/empleados-api/internal/models"
	"github.com/Houeta/empleados-api/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestEmpleadoRepository_Postgres exercises the repository against a real
// PostgreSQL instance: idempotent bootstrap, monotonic identifier assignment
// and list-after-create ordering.
func TestEmpleadoRepository_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("mydb"),
		postgres.WithUsername("myuser"),
		postgres.WithPassword("mypassword"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, testcontainers.TerminateContainer(pgContainer))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	repo := repository.NewEmpleadoRepository(pool, metrics.NewMetrics(prometheus.NewRegistry()))

	// Running the bootstrap twice must not fail or duplicate the table.
	require.NoError(t, repo.EnsureSchema(ctx))
	require.NoError(t, repo.EnsureSchema(ctx))

	empleados, err := repo.ListEmpleados(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empleados)
	assert.Empty(t, empleados)

	first, err := repo.CreateEmpleado(ctx, "Ana", "555")
	require.NoError(t, err)
	assert.Equal(t, models.Empleado{ID: 1, Nombres: "Ana", Telefono: "555"}, first)

	second, err := repo.CreateEmpleado(ctx, "Luis", "")
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)

	empleados, err = repo.ListEmpleados(ctx)
	require.NoError(t, err)
	require.Len(t, empleados, 2)
	assert.Equal(t, []models.Empleado{first, second}, empleados)
}
