package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/syssam/modelgen/dialect"
	"github.com/syssam/modelgen/dialect/sql"
	"github.com/syssam/modelgen/gen"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	// Flag defaults fall back to the environment, optionally seeded
	// from a .env file, then to hard-coded defaults.
	_ = godotenv.Load()
	var (
		tables     string
		schemaName string
		connection string
		dsn        string
		driverName string
		folder     string
		filename   string
		namespace  string
		stubPath   string
		singular   bool
		overwrite  bool
		timestamps bool
		debug      bool
	)
	cmd := &cobra.Command{
		Use:   "modelgen",
		Short: "Generate model classes from an existing database schema",
		Long: `modelgen introspects a relational database and generates one model
class per table from a stub template: typed @property doc blocks,
fillable fields, attribute casts and date fields, all derived from the
raw column metadata.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dsn == "" {
				return fmt.Errorf("no data source: set --dsn or DB_DSN")
			}
			log := newLogger(debug)
			drv, err := sql.Open(driverName, dsn)
			if err != nil {
				return fmt.Errorf("open %s connection: %w", driverName, err)
			}
			defer drv.Close()
			var d dialect.Driver = drv
			if debug {
				d = dialect.Debug(drv, log)
			}
			opts := &gen.Options{
				Tables:       splitList(tables),
				Whitelist:    splitList(os.Getenv("MODELGEN_WHITELIST")),
				Blacklist:    splitList(os.Getenv("MODELGEN_BLACKLIST")),
				Schema:       schemaName,
				Connection:   connection,
				Folder:       gen.Name(folder),
				Filename:     gen.Name(filename),
				Namespace:    gen.Name(namespace),
				Singular:     singular,
				Overwrite:    overwrite,
				NoTimestamps: timestamps,
				StubPath:     stubPath,
			}
			sum, err := gen.New(d, opts).WithLogger(log).Run(cmd.Context())
			if err != nil {
				return err
			}
			color.New(color.FgCyan).Printf("generated %d models, skipped %d in %s\n",
				sum.Generated, sum.Skipped, sum.Elapsed.Round(time.Millisecond))
			return nil
		},
	}
	cmd.Flags().StringVar(&tables, "table", "", "comma-separated table names or globs to generate")
	cmd.Flags().StringVar(&schemaName, "schema", envOr("DB_SCHEMA", ""), "restrict introspection to this schema")
	cmd.Flags().StringVar(&connection, "connection", "", "connection name emitted into each model")
	cmd.Flags().StringVar(&dsn, "dsn", envOr("DB_DSN", ""), "data source name of the database to introspect")
	cmd.Flags().StringVar(&driverName, "dialect", envOr("DB_DIALECT", dialect.MySQL), "database dialect: mysql, postgres or sqlite")
	cmd.Flags().StringVar(&folder, "folder", envOr("MODELGEN_FOLDER", ""), "output folder for generated models")
	cmd.Flags().StringVar(&filename, "filename", "", "fixed base name for generated files")
	cmd.Flags().StringVar(&namespace, "namespace", envOr("MODELGEN_NAMESPACE", ""), "namespace emitted into generated models")
	cmd.Flags().StringVar(&stubPath, "stub", "", "path to a custom stub template")
	cmd.Flags().BoolVar(&singular, "singular", false, "singularize class names")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "overwrite existing model files")
	cmd.Flags().BoolVar(&timestamps, "timestamps", false, "suppress the timestamps declaration in generated models")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	return cmd
}

func newLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	w := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
		w.TimeFormat = time.RFC3339
	})
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
