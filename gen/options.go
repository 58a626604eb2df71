// Package gen turns per-table schema records into generated model
// files by literal placeholder substitution into a stub template.
package gen

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Built-in defaults, overridable per run through Options.
const (
	DefaultFolder    = "app/Models"
	DefaultNamespace = `App\Models`
	DefaultDelimiter = ", "
	DefaultExtension = ".php"
)

// NameSource is a naming option that is either a literal value or a
// function computed per table. The zero value is "unset".
type NameSource struct {
	literal string
	fn      func(string) string
}

// Name returns a literal NameSource.
func Name(literal string) NameSource {
	return NameSource{literal: literal}
}

// NameFunc returns a computed NameSource. The argument passed to fn
// depends on the option: the table name for folder and filename, the
// resolved output folder for namespace.
func NameFunc(fn func(string) string) NameSource {
	return NameSource{fn: fn}
}

// IsFunc reports whether the source is computed per table.
func (n NameSource) IsFunc() bool { return n.fn != nil }

// IsSet reports whether the source holds a literal or a function.
func (n NameSource) IsSet() bool { return n.fn != nil || n.literal != "" }

// Resolve returns the literal, or the function applied to arg.
func (n NameSource) Resolve(arg string) string {
	if n.fn != nil {
		return n.fn(arg)
	}
	return n.literal
}

// Options is the immutable configuration snapshot of a generation run.
// It is created once at startup from merged flag, environment and
// default sources, and only backfilled with resolved defaults by
// hydrate.
type Options struct {
	// Tables holds explicitly requested table names or globs. They are
	// merged into the whitelist.
	Tables    []string
	Whitelist []string
	Blacklist []string

	// Schema restricts introspection to a single schema. Empty means
	// every schema visible under the connection minus system schemas.
	Schema string

	// Connection is the named connection emitted into each model as a
	// $connection declaration. Empty emits nothing.
	Connection string

	Folder    NameSource
	Filename  NameSource
	Namespace NameSource

	// Singular converts each class name to its singular form.
	Singular bool
	// Overwrite replaces destination files that already exist.
	Overwrite bool
	// NoTimestamps suppresses timestamps in generated models. Note the
	// inversion: the emitted literal represents "has timestamps".
	NoTimestamps bool

	// Delimiter joins list-valued placeholders. Defaults to ", ".
	Delimiter string
	// Extension of generated files. Defaults to ".php".
	Extension string
	// StubPath points at a user stub template. Empty uses the embedded
	// default stub.
	StubPath string

	folder        string // resolved literal output folder, no trailing separator
	nsFolder      string // folder as configured, for namespace derivation
	defaultFolder bool   // folder was not explicitly configured
}

// hydrate backfills resolved defaults. It runs once at the start of a
// run and performs no I/O.
func (o *Options) hydrate() error {
	if o.Delimiter == "" {
		o.Delimiter = DefaultDelimiter
	}
	if o.Extension == "" {
		o.Extension = DefaultExtension
	}
	if o.Folder.IsFunc() {
		return nil
	}
	lit := o.Folder.literal
	if lit == "" {
		lit = DefaultFolder
		o.defaultFolder = true
	}
	o.nsFolder = lit
	abs, err := filepath.Abs(lit)
	if err != nil {
		return fmt.Errorf("gen: resolve output folder %q: %w", lit, err)
	}
	o.folder = strings.TrimRight(abs, `/\`)
	return nil
}
