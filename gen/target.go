package gen

import "strings"

// Target is the fully resolved output identity of a table, computed
// once before the stub is rendered.
type Target struct {
	ClassName string
	FileName  string
	FilePath  string
	Namespace string
}

// TargetFor resolves the output target of a table. Resolution is pure
// and deterministic given the same options and table name.
//
// Namespace precedence, most to least specific: explicit namespace
// override, folder-derived namespace when a folder was configured,
// built-in default.
func (o *Options) TargetFor(table string) Target {
	base := o.Filename.Resolve(table)
	if base == "" {
		base = Studly(table)
	}
	if o.Singular {
		base = Singular(base)
	}
	folder, nsFolder := o.folder, o.nsFolder
	if o.Folder.IsFunc() {
		folder = strings.TrimRight(o.Folder.Resolve(table), `/\`)
		nsFolder = folder
	}
	var ns string
	switch {
	case o.Namespace.IsFunc():
		ns = o.Namespace.Resolve(folder)
	case o.Namespace.IsSet():
		ns = o.Namespace.Resolve(table)
	case !o.defaultFolder:
		ns = namespaceFor(nsFolder)
	default:
		ns = DefaultNamespace
	}
	return Target{
		ClassName: base,
		FileName:  base + o.Extension,
		FilePath:  folder + "/" + base + o.Extension,
		Namespace: ns,
	}
}
