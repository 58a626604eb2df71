package schema

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/modelgen/dialect"
	"github.com/syssam/modelgen/dialect/sql"
)

func TestReaderColumnsMySQL(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectQuery("FROM INFORMATION_SCHEMA.COLUMNS").
		WillReturnRows(sqlmock.NewRows([]string{"TABLE_NAME", "COLUMN_NAME", "COLUMN_TYPE", "IS_PRIMARY"}).
			AddRow("orders", "id", "int(11)", true).
			AddRow("orders", "total", "float(10,2)", false).
			AddRow("users", "id", "int(11)", true))
	rows, err := NewReader(sql.OpenDB(dialect.MySQL, db)).Columns(context.Background(), "")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
	require.Len(t, rows, 3)
	assert.Equal(t, Row{Table: "orders", Field: "id", Type: "int(11)", Primary: true}, rows[0])
	assert.Equal(t, Row{Table: "orders", Field: "total", Type: "float(10,2)"}, rows[1])
	assert.Equal(t, Row{Table: "users", Field: "id", Type: "int(11)", Primary: true}, rows[2])
}

func TestReaderColumnsSchemaRestriction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectQuery("WHERE TABLE_SCHEMA = ").
		WithArgs("shop").
		WillReturnRows(sqlmock.NewRows([]string{"TABLE_NAME", "COLUMN_NAME", "COLUMN_TYPE", "IS_PRIMARY"}).
			AddRow("orders", "id", "int(11)", true))
	rows, err := NewReader(sql.OpenDB(dialect.MySQL, db)).Columns(context.Background(), "shop")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
	require.Len(t, rows, 1)
}

func TestReaderColumnsPostgres(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectQuery("FROM information_schema.columns").
		WithArgs("public").
		WillReturnRows(sqlmock.NewRows([]string{"table_name", "column_name", "data_type", "is_primary"}).
			AddRow("users", "id", "integer", true).
			AddRow("users", "name", "character varying", false).
			AddRow("users", "score", "real", false).
			AddRow("users", "created_at", "timestamp without time zone", false))
	rows, err := NewReader(sql.OpenDB(dialect.Postgres, db)).Columns(context.Background(), "public")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
	require.Len(t, rows, 4)
	assert.True(t, rows[0].Primary)
	// PostgreSQL type names are normalized to the tokens the classifier
	// recognizes; multi-word names keep their known first token.
	assert.Equal(t, "int", rows[0].Type)
	assert.Equal(t, "varchar", rows[1].Type)
	assert.Equal(t, "float", rows[2].Type)
	assert.Equal(t, "timestamp without time zone", rows[3].Type)
}

func TestReaderColumnsSQLite(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectQuery("FROM sqlite_master").
		WillReturnRows(sqlmock.NewRows([]string{"table", "name", "type", "is_primary"}).
			AddRow("users", "id", "INTEGER", true).
			AddRow("users", "name", "TEXT", false))
	rows, err := NewReader(sql.OpenDB(dialect.SQLite, db)).Columns(context.Background(), "")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
	require.Len(t, rows, 2)
	assert.Equal(t, "int", rows[0].Type)
	assert.Equal(t, "TEXT", rows[1].Type)
}

func TestReaderConnectionError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectQuery("FROM INFORMATION_SCHEMA.COLUMNS").
		WillReturnError(errors.New("connection refused"))
	_, err = NewReader(sql.OpenDB(dialect.MySQL, db)).Columns(context.Background(), "")
	require.Error(t, err)
	assert.True(t, IsConnectionError(err))
	assert.Contains(t, err.Error(), "connection refused")
}
