package dialect

import (
	"context"

	"github.com/rs/zerolog"
)

// Supported dialect names. Each value matches the name the underlying
// database/sql driver registers itself with.
const (
	MySQL    = "mysql"
	Postgres = "postgres"
	SQLite   = "sqlite"
)

// Querier wraps the basic Query method.
type Querier interface {
	// Query executes a query that returns rows, typically a SELECT in SQL.
	// It scans the result into the pointer v. For SQL drivers, it is *dialect/sql.Rows.
	Query(ctx context.Context, query string, args, v any) error
}

// Driver is the interface that wraps the database operations the
// generation pipeline needs: a read-only query surface.
type Driver interface {
	Querier
	// Close closes the underlying connection.
	Close() error
	// Dialect returns the dialect name of the driver.
	Dialect() string
}

// DebugDriver is a driver that logs all driver operations.
type DebugDriver struct {
	Driver
	log zerolog.Logger
}

// Debug gets a driver and a zerolog logger, and returns
// a new debug-driver that prints all outgoing operations.
func Debug(d Driver, log zerolog.Logger) Driver {
	return &DebugDriver{d, log}
}

// Query logs its params and calls the underlying driver Query method.
func (d *DebugDriver) Query(ctx context.Context, query string, args, v any) error {
	d.log.Debug().Str("query", query).Interface("args", args).Msg("driver.Query")
	return d.Driver.Query(ctx, query, args, v)
}
