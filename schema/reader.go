package schema

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/syssam/modelgen/dialect"
	"github.com/syssam/modelgen/dialect/sql"
)

// ConnectionError reports that the schema source could not be reached
// or refused the introspection query. It is fatal for the run.
type ConnectionError struct {
	err error
}

// Error returns the error string.
func (e *ConnectionError) Error() string {
	return fmt.Sprintf("schema: cannot read columns: %v", e.err)
}

// Unwrap returns the underlying driver error.
func (e *ConnectionError) Unwrap() error { return e.err }

// IsConnectionError returns true if the error is a ConnectionError.
func IsConnectionError(err error) bool {
	var e *ConnectionError
	return errors.As(err, &e)
}

// Reader queries the information-schema equivalent of the connected
// database for column metadata. Rows come back ordered by table name
// ascending and primary-key flag descending, so that a table's primary
// column is always the first row of its group.
type Reader struct {
	drv dialect.Driver
}

// NewReader returns a Reader backed by the given driver.
func NewReader(drv dialect.Driver) *Reader {
	return &Reader{drv: drv}
}

// mysqlColumns reads from information_schema.COLUMNS. With no schema
// given, the MySQL system schemas are excluded.
const (
	mysqlColumns = `SELECT TABLE_NAME, COLUMN_NAME, COLUMN_TYPE, COLUMN_KEY = 'PRI' AS IS_PRIMARY
FROM INFORMATION_SCHEMA.COLUMNS
WHERE TABLE_SCHEMA NOT IN ('information_schema', 'mysql', 'sys')
ORDER BY TABLE_NAME ASC, IS_PRIMARY DESC, ORDINAL_POSITION ASC`

	mysqlColumnsSchema = `SELECT TABLE_NAME, COLUMN_NAME, COLUMN_TYPE, COLUMN_KEY = 'PRI' AS IS_PRIMARY
FROM INFORMATION_SCHEMA.COLUMNS
WHERE TABLE_SCHEMA = ?
ORDER BY TABLE_NAME ASC, IS_PRIMARY DESC, ORDINAL_POSITION ASC`

	pgColumns = `SELECT c.table_name, c.column_name, c.data_type, COALESCE(pk.is_primary, false) AS is_primary
FROM information_schema.columns AS c
LEFT JOIN (
	SELECT kcu.table_schema, kcu.table_name, kcu.column_name, true AS is_primary
	FROM information_schema.table_constraints AS tc
	JOIN information_schema.key_column_usage AS kcu
		ON tc.constraint_name = kcu.constraint_name AND tc.table_schema = kcu.table_schema
	WHERE tc.constraint_type = 'PRIMARY KEY'
) AS pk ON pk.table_schema = c.table_schema AND pk.table_name = c.table_name AND pk.column_name = c.column_name
WHERE c.table_schema NOT IN ('information_schema', 'pg_catalog')
ORDER BY c.table_name ASC, is_primary DESC, c.ordinal_position ASC`

	pgColumnsSchema = `SELECT c.table_name, c.column_name, c.data_type, COALESCE(pk.is_primary, false) AS is_primary
FROM information_schema.columns AS c
LEFT JOIN (
	SELECT kcu.table_schema, kcu.table_name, kcu.column_name, true AS is_primary
	FROM information_schema.table_constraints AS tc
	JOIN information_schema.key_column_usage AS kcu
		ON tc.constraint_name = kcu.constraint_name AND tc.table_schema = kcu.table_schema
	WHERE tc.constraint_type = 'PRIMARY KEY'
) AS pk ON pk.table_schema = c.table_schema AND pk.table_name = c.table_name AND pk.column_name = c.column_name
WHERE c.table_schema = $1
ORDER BY c.table_name ASC, is_primary DESC, c.ordinal_position ASC`

	// SQLite has no schemas. pragma_table_info reports the declared type
	// and primary-key flag per column.
	sqliteColumns = `SELECT m.name, ti.name, ti.type, ti.pk > 0 AS is_primary
FROM sqlite_master AS m
JOIN pragma_table_info(m.name) AS ti
WHERE m.type = 'table' AND m.name NOT LIKE 'sqlite_%'
ORDER BY m.name ASC, is_primary DESC, ti.cid ASC`
)

// Columns returns the raw column rows of every table visible under the
// connection. A non-empty schemaName restricts introspection to that
// schema only.
func (r *Reader) Columns(ctx context.Context, schemaName string) ([]Row, error) {
	query, args := r.query(schemaName)
	var rows sql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, &ConnectionError{err: err}
	}
	defer rows.Close()
	name := r.drv.Dialect()
	var out []Row
	for rows.Next() {
		var row Row
		if err := rows.Scan(&row.Table, &row.Field, &row.Type, &row.Primary); err != nil {
			return nil, fmt.Errorf("schema: scan column row: %w", err)
		}
		row.Type = normalizeType(name, row.Type)
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, &ConnectionError{err: err}
	}
	return out, nil
}

// typeAliases maps PostgreSQL and SQLite type names onto the MySQL
// tokens the downstream classifier recognizes. Names like "double
// precision" or "timestamp without time zone" need no entry: their
// first word already is a known token.
var typeAliases = map[string]string{
	"integer":           "int",
	"character varying": "varchar",
	"character":         "varchar",
	"real":              "float",
}

func normalizeType(dialectName, raw string) string {
	if dialectName == dialect.MySQL {
		return raw
	}
	if alias, ok := typeAliases[strings.ToLower(raw)]; ok {
		return alias
	}
	return raw
}

func (r *Reader) query(schemaName string) (string, []any) {
	switch r.drv.Dialect() {
	case dialect.Postgres:
		if schemaName != "" {
			return pgColumnsSchema, []any{schemaName}
		}
		return pgColumns, nil
	case dialect.SQLite:
		return sqliteColumns, nil
	default:
		if schemaName != "" {
			return mysqlColumnsSchema, []any{schemaName}
		}
		return mysqlColumns, nil
	}
}
