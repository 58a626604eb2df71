package gen

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/syssam/modelgen/dialect"
	"github.com/syssam/modelgen/schema"
)

// Generator drives a generation run: read the schema, resolve each
// table's output target, render the stub and write the file. The
// pipeline is strictly sequential in table order.
type Generator struct {
	opts *Options
	drv  dialect.Driver
	log  zerolog.Logger
	out  io.Writer
}

// Summary reports the result of a run.
type Summary struct {
	Generated int
	Skipped   int
	Elapsed   time.Duration
}

// New returns a Generator for the given driver and options.
func New(drv dialect.Driver, opts *Options) *Generator {
	return &Generator{
		opts: opts,
		drv:  drv,
		log:  zerolog.Nop(),
		out:  os.Stdout,
	}
}

// WithLogger sets the logger used for debug output.
func (g *Generator) WithLogger(log zerolog.Logger) *Generator {
	g.log = log
	return g
}

// WithOutput sets the writer progress messages go to.
func (g *Generator) WithOutput(w io.Writer) *Generator {
	g.out = w
	return g
}

// Run executes one generation pass. Failures of any stage are fatal
// for the whole run; files already written remain on disk. A skipped
// table (destination exists, overwrite disabled) is not an error.
func (g *Generator) Run(ctx context.Context) (*Summary, error) {
	start := time.Now()
	if err := g.opts.hydrate(); err != nil {
		return nil, err
	}
	stub, err := g.stub()
	if err != nil {
		return nil, err
	}
	filter, err := schema.NewFilter(g.opts.Whitelist, g.opts.Blacklist, g.opts.Tables)
	if err != nil {
		return nil, err
	}
	if err := g.ensureOutputDir(); err != nil {
		return nil, err
	}
	rows, err := schema.NewReader(g.drv).Columns(ctx, g.opts.Schema)
	if err != nil {
		return nil, err
	}
	tables := schema.Aggregate(filter.Tables(rows))
	g.log.Debug().Int("tables", len(tables)).Msg("schema read")
	sum := &Summary{}
	for _, t := range tables {
		tgt := g.opts.TargetFor(t.Name)
		if !g.opts.Overwrite {
			if _, err := os.Stat(tgt.FilePath); err == nil {
				g.log.Debug().Str("file", tgt.FilePath).Msg("destination exists")
				color.New(color.FgYellow).Fprintf(g.out, "skipped %s (already exists)\n", tgt.FilePath)
				sum.Skipped++
				continue
			}
		}
		if err := os.WriteFile(tgt.FilePath, []byte(g.opts.render(stub, t, tgt)), 0o644); err != nil {
			return nil, &WriteError{Path: tgt.FilePath, err: err}
		}
		color.New(color.FgGreen).Fprintf(g.out, "created %s\n", tgt.FilePath)
		sum.Generated++
	}
	sum.Elapsed = time.Since(start)
	return sum, nil
}

// stub returns the run's stub template: the user template when a path
// was configured, the embedded default otherwise.
func (g *Generator) stub() (string, error) {
	if g.opts.StubPath == "" {
		return defaultStub, nil
	}
	b, err := os.ReadFile(g.opts.StubPath)
	if err != nil {
		return "", &StubError{Path: g.opts.StubPath, err: err}
	}
	return string(b), nil
}

// ensureOutputDir creates the output folder when a literal folder was
// configured and differs from the built-in default. Creation is
// non-recursive: a missing parent is a configuration error.
func (g *Generator) ensureOutputDir() error {
	if g.opts.Folder.IsFunc() || g.opts.defaultFolder {
		return nil
	}
	if _, err := os.Stat(g.opts.folder); err == nil {
		return nil
	}
	if err := os.Mkdir(g.opts.folder, 0o755); err != nil {
		return &DirError{Path: g.opts.folder, err: err}
	}
	return nil
}
