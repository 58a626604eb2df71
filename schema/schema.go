// Package schema reads raw column metadata from a database's
// information-schema equivalent and shapes it into per-table records
// for code generation.
package schema

// Column is the raw metadata of a single table column as reported by
// the schema source. Type is the raw type declaration string, e.g.
// "varchar(255)", "int(11)" or "decimal(10,2)".
type Column struct {
	Field string
	Type  string
}

// Row is one record returned by the Reader: a column of a table,
// together with the schema source's primary-key indicator.
type Row struct {
	Table   string
	Field   string
	Type    string
	Primary bool
}

// Table groups the columns of a single table. Columns preserve the
// schema-reported order, which is significant for deterministic output.
// PrimaryKey is empty if the table has no primary key.
type Table struct {
	Name       string
	Columns    []Column
	PrimaryKey string
}

// Aggregate groups reader rows into one Table per distinct table name.
// Tables come back in first-seen order, columns in received order. If
// multiple rows of a table carry the primary flag, the first one wins.
func Aggregate(rows []Row) []*Table {
	var (
		tables []*Table
		byName = make(map[string]*Table)
	)
	for _, r := range rows {
		t, ok := byName[r.Table]
		if !ok {
			t = &Table{Name: r.Table}
			byName[r.Table] = t
			tables = append(tables, t)
		}
		t.Columns = append(t.Columns, Column{Field: r.Field, Type: r.Type})
		if r.Primary && t.PrimaryKey == "" {
			t.PrimaryKey = r.Field
		}
	}
	return tables
}
