package sql

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/modelgen/dialect"
)

func TestConnQuery(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectQuery("SELECT 1").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	drv := OpenDB(dialect.MySQL, db)
	rows := &Rows{}
	require.NoError(t, drv.Query(context.Background(), "SELECT 1", []any{}, rows))
	require.True(t, rows.Next())
	var n int
	require.NoError(t, rows.Scan(&n))
	assert.Equal(t, 1, n)
	require.NoError(t, rows.Close())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConnQueryInvalidTypes(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	drv := OpenDB(dialect.MySQL, db)
	err = drv.Query(context.Background(), "SELECT 1", []any{}, nil)
	assert.ErrorContains(t, err, "invalid type")
	err = drv.Query(context.Background(), "SELECT 1", "not-args", &Rows{})
	assert.ErrorContains(t, err, "expect []any for args")
}

func TestDriverDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	for _, name := range []string{dialect.MySQL, dialect.Postgres, dialect.SQLite} {
		assert.Equal(t, name, OpenDB(name, db).Dialect())
	}
	// Wrapped driver names resolve to their base dialect.
	assert.Equal(t, dialect.MySQL, OpenDB("mysql+telemetry", db).Dialect())
}
