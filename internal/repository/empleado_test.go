package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/Houeta/empleados-api/internal/metrics"
	"github.com/Houeta/empleados-api/internal/models"
	"github.com/Houeta/empleados-api/internal/repository"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ensureSchemaQuery = `
		CREATE TABLE IF NOT EXISTS empleados (
			id SERIAL PRIMARY KEY,
			nombres TEXT NOT NULL,
			telefono TEXT
		);
	`

const listEmpleadosQuery = `SELECT id, nombres, COALESCE(telefono, '') FROM empleados ORDER BY id;`

const createEmpleadoQuery = `
		INSERT INTO empleados (nombres, telefono)
		VALUES ($1, $2)
		RETURNING id, nombres, telefono;
	`

func newTestRepo(t *testing.T) (pgxmock.PgxPoolIface, repository.EmpleadoRepoIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(mock.Close)

	return mock, repository.NewEmpleadoRepository(mock, metrics.NewMetrics(prometheus.NewRegistry()))
}

func TestEnsureSchema_Success(t *testing.T) {
	t.Parallel()

	mock, repo := newTestRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(ensureSchemaQuery)).
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))

	err := repo.EnsureSchema(context.Background())

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	t.Parallel()

	mock, repo := newTestRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(ensureSchemaQuery)).
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
	mock.ExpectExec(regexp.QuoteMeta(ensureSchemaQuery)).
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))

	require.NoError(t, repo.EnsureSchema(context.Background()))
	require.NoError(t, repo.EnsureSchema(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchema_ExecError(t *testing.T) {
	t.Parallel()

	mock, repo := newTestRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(ensureSchemaQuery)).
		WillReturnError(assert.AnError)

	err := repo.EnsureSchema(context.Background())

	require.Error(t, err)
	require.EqualError(t, err, "failed to create empleados table: "+assert.AnError.Error())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListEmpleados_Empty(t *testing.T) {
	t.Parallel()

	mock, repo := newTestRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(listEmpleadosQuery)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "nombres", "telefono"}))

	empleados, err := repo.ListEmpleados(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, empleados)
	assert.Empty(t, empleados)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListEmpleados_Success(t *testing.T) {
	t.Parallel()

	mock, repo := newTestRepo(t)

	expectedRows := pgxmock.NewRows([]string{"id", "nombres", "telefono"}).
		AddRow(1, "Ana", "555").
		AddRow(2, "Luis", "")

	mock.ExpectQuery(regexp.QuoteMeta(listEmpleadosQuery)).
		WillReturnRows(expectedRows)

	empleados, err := repo.ListEmpleados(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []models.Empleado{
		{ID: 1, Nombres: "Ana", Telefono: "555"},
		{ID: 2, Nombres: "Luis", Telefono: ""},
	}, empleados)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListEmpleados_QueryError(t *testing.T) {
	t.Parallel()

	mock, repo := newTestRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(listEmpleadosQuery)).
		WillReturnError(assert.AnError)

	empleados, err := repo.ListEmpleados(context.Background())

	require.Error(t, err)
	require.EqualError(t, err, "failed to list empleados: "+assert.AnError.Error())
	assert.Nil(t, empleados)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEmpleado_Success(t *testing.T) {
	t.Parallel()

	mock, repo := newTestRepo(t)

	expEmpleado := models.Empleado{ID: 1, Nombres: "Ana", Telefono: "555"}
	expectedRows := pgxmock.NewRows([]string{"id", "nombres", "telefono"}).
		AddRow(expEmpleado.ID, expEmpleado.Nombres, expEmpleado.Telefono)

	mock.ExpectQuery(regexp.QuoteMeta(createEmpleadoQuery)).
		WithArgs(expEmpleado.Nombres, expEmpleado.Telefono).
		WillReturnRows(expectedRows)

	actualEmpleado, err := repo.CreateEmpleado(context.Background(), expEmpleado.Nombres, expEmpleado.Telefono)

	require.NoError(t, err)
	assert.Equal(t, expEmpleado, actualEmpleado)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEmpleado_QueryError(t *testing.T) {
	t.Parallel()

	mock, repo := newTestRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(createEmpleadoQuery)).
		WithArgs("Ana", "555").
		WillReturnError(assert.AnError)

	actualEmpleado, err := repo.CreateEmpleado(context.Background(), "Ana", "555")

	require.Error(t, err)
	require.EqualError(t, err, "failed to insert empleado: "+assert.AnError.Error())
	assert.Equal(t, models.Empleado{}, actualEmpleado)
	require.NoError(t, mock.ExpectationsWereMet())
}
