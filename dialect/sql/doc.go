// Package sql wraps database/sql behind the dialect.Driver interface,
// so the schema reader can run its introspection queries against
// MySQL, PostgreSQL and SQLite through a single entry point.
//
// Opening a connection:
//
//	import (
//	    "github.com/syssam/modelgen/dialect"
//	    "github.com/syssam/modelgen/dialect/sql"
//	)
//
//	drv, err := sql.Open(dialect.MySQL, "user:pass@tcp(localhost:3306)/shop")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer drv.Close()
package sql
