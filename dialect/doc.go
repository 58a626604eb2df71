// Package dialect provides the database dialect abstraction used by
// the schema reader.
//
// Each supported dialect is identified by a constant string matching
// the name its database/sql driver registers with:
//
//	dialect.MySQL    = "mysql"
//	dialect.Postgres = "postgres"
//	dialect.SQLite   = "sqlite"
//
// The Driver interface wraps the read-only query surface the
// generation pipeline needs. The dialect/sql sub-package implements it
// on top of database/sql, and Debug wraps any Driver with query
// logging.
package dialect
