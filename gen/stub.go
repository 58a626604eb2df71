package gen

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/syssam/modelgen/schema"
)

//go:embed model.stub
var defaultStub string

// docPadding is added to the longest cast label of a table to align
// the $field token after the @property label on each doc line.
const docPadding = 15

// render substitutes a table's accumulated fragments into the stub.
// Substitution is literal replacement of every placeholder occurrence;
// placeholders missing from the stub are simply not substituted, and
// unknown tokens are left in place.
func (o *Options) render(stub string, t *schema.Table, tgt Target) string {
	var (
		fillable []string
		casts    []string
		dates    []string
		grouped  = make(map[Cast][]string)
		order    []Cast
		longest  int
	)
	for _, c := range t.Columns {
		if c.Field == t.PrimaryKey {
			continue
		}
		fillable = append(fillable, quote(c.Field))
		cast, isDate, ok := classify(c.Type)
		if !ok {
			// Unknown types stay fillable but get no cast entry.
			continue
		}
		casts = append(casts, quote(c.Field)+" => "+quote(string(cast)))
		if isDate {
			dates = append(dates, quote(c.Field))
		}
		if _, seen := grouped[cast]; !seen {
			order = append(order, cast)
		}
		grouped[cast] = append(grouped[cast], c.Field)
		if len(cast) > longest {
			longest = len(cast)
		}
	}
	var doc []string
	for _, cast := range order {
		for _, field := range grouped[cast] {
			doc = append(doc, fmt.Sprintf(" * @property %-*s$%s", longest+docPadding, string(cast), field))
		}
	}
	timestamps := "true"
	if o.NoTimestamps {
		timestamps = "false"
	}
	return strings.NewReplacer(
		"{{connection}}", connectionBlock(o.Connection),
		"{{class}}", tgt.ClassName,
		"{{docblock}}", strings.Join(doc, "\n"),
		"{{table}}", t.Name,
		"{{primaryKey}}", t.PrimaryKey,
		"{{fillable}}", strings.Join(fillable, o.Delimiter),
		"{{hidden}}", "",
		"{{casts}}", strings.Join(casts, o.Delimiter),
		"{{dates}}", strings.Join(dates, o.Delimiter),
		"{{timestamps}}", timestamps,
		"{{namespace}}", namespaceSeparators(tgt.Namespace),
	).Replace(stub)
}

func quote(s string) string {
	return "'" + s + "'"
}

// connectionBlock emits a fully formed $connection declaration when a
// named connection was specified, and nothing otherwise.
func connectionBlock(name string) string {
	if name == "" {
		return ""
	}
	return fmt.Sprintf(`    /**
     * The connection name for the model.
     *
     * @var string
     */
    protected $connection = '%s';

`, name)
}
