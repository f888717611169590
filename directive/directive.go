// Package directive finds tupleiter directives in Go source files.
//
// A directive is a line comment of the form
//
//	//tupleiter:iter [name=<ident>] <invocation>
//	//tupleiter:itermut [name=<ident>] <invocation>
//
// where the invocation is parsed by the spec package. The first
// form generates an iterator that yields copies of the tuple's
// elements; the second yields pointers to them.
package directive

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/rogpeppe/tupleiter/spec"
)

const prefix = "//tupleiter:"

// Directive is a single tupleiter directive.
type Directive struct {
	// Pos holds the position of the invocation text.
	Pos token.Position

	// Mutable reports whether the directive was itermut.
	Mutable bool

	// Name holds the name given with name=, if any.
	Name string

	// Text holds the invocation.
	Text string
}

// Spec parses the directive's invocation.
func (d *Directive) Spec() (*spec.Spec, error) {
	return spec.ParseAt(d.Pos, d.Text)
}

// File holds the directives found in one Go source file.
type File struct {
	Filename string

	// Package holds the name from the package clause.
	Package string

	// Imports maps the names by which the file refers
	// to imported packages to their import paths.
	Imports map[string]string

	Directives []*Directive
}

// ParseFile parses the source code of a single Go file and returns
// the directives it contains, in source order. The src argument
// is interpreted as for go/parser.ParseFile.
func ParseFile(fset *token.FileSet, filename string, src any) (*File, error) {
	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return nil, err
	}
	file := &File{
		Filename: filename,
		Package:  f.Name.Name,
		Imports:  make(map[string]string),
	}
	for _, imp := range f.Imports {
		importPath, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			return nil, fmt.Errorf("%v: bad import path %s", fset.Position(imp.Path.Pos()), imp.Path.Value)
		}
		name := path.Base(importPath)
		if imp.Name != nil {
			if imp.Name.Name == "_" || imp.Name.Name == "." {
				continue
			}
			name = imp.Name.Name
		}
		file.Imports[name] = importPath
	}
	for _, cg := range f.Comments {
		for _, c := range cg.List {
			d, err := parseComment(fset, c)
			if err != nil {
				return nil, err
			}
			if d != nil {
				file.Directives = append(file.Directives, d)
			}
		}
	}
	return file, nil
}

// parseComment returns the directive in c, or nil
// if c is not a directive.
func parseComment(fset *token.FileSet, c *ast.Comment) (*Directive, error) {
	rest, ok := strings.CutPrefix(c.Text, prefix)
	if !ok {
		return nil, nil
	}
	pos := fset.Position(c.Slash)
	kind, rest := cutSpace(rest)
	d := &Directive{}
	switch kind {
	case "iter":
	case "itermut":
		d.Mutable = true
	default:
		return nil, fmt.Errorf("%v: unknown directive %q", pos, prefix+kind)
	}
	if arg, ok := strings.CutPrefix(strings.TrimLeft(rest, " \t"), "name="); ok {
		d.Name, rest = cutSpace(arg)
		if !token.IsIdentifier(d.Name) {
			return nil, fmt.Errorf("%v: invalid iterator name %q", pos, d.Name)
		}
	}
	// Point the position at the invocation itself, so that
	// diagnostics from the spec package land on the right column.
	off := len(c.Text) - len(rest)
	pos.Offset += off
	pos.Column += off
	d.Pos = pos
	d.Text = rest
	return d, nil
}

// cutSpace splits s at its first space or tab. The
// separator is left at the start of the second result.
func cutSpace(s string) (string, string) {
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i], s[i:]
	}
	return s, ""
}

// Options controls which files ScanDir reads.
type Options struct {
	// Include holds doublestar patterns matched against
	// file names. A file is read if it matches any of them.
	// If empty, DefaultInclude is used.
	Include []string

	// Exclude holds patterns for files that are skipped
	// even though they match Include. If nil, DefaultExclude
	// is used.
	Exclude []string
}

var (
	DefaultInclude = []string{"*.go"}
	DefaultExclude = []string{"*_test.go"}
)

// Package holds the directives found in one directory.
type Package struct {
	Dir string

	// Name holds the package name shared by the files read.
	Name string

	// Files holds the files that contain directives,
	// sorted by name.
	Files []*File
}

// Len returns the total number of directives in p.
func (p *Package) Len() int {
	n := 0
	for _, f := range p.Files {
		n += len(f.Directives)
	}
	return n
}

// ScanDir reads the Go files in dir selected by opts
// and returns the directives found in them.
// All files read must belong to the same package.
func ScanDir(fset *token.FileSet, dir string, opts Options) (*Package, error) {
	if len(opts.Include) == 0 {
		opts.Include = DefaultInclude
	}
	if opts.Exclude == nil {
		opts.Exclude = DefaultExclude
	}
	for _, pat := range append(opts.Include[:len(opts.Include):len(opts.Include)], opts.Exclude...) {
		if !doublestar.ValidatePattern(pat) {
			return nil, fmt.Errorf("invalid file pattern %q", pat)
		}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	pkg := &Package{
		Dir: dir,
	}
	var first string
	for _, e := range entries {
		if !e.Type().IsRegular() || !selected(e.Name(), opts) {
			continue
		}
		filename := filepath.Join(dir, e.Name())
		f, err := ParseFile(fset, filename, nil)
		if err != nil {
			return nil, err
		}
		if pkg.Name == "" {
			pkg.Name, first = f.Package, filename
		} else if f.Package != pkg.Name {
			return nil, fmt.Errorf("found packages %s (%s) and %s (%s) in %s", pkg.Name, filepath.Base(first), f.Package, e.Name(), dir)
		}
		if len(f.Directives) > 0 {
			pkg.Files = append(pkg.Files, f)
		}
	}
	if pkg.Name == "" {
		return nil, fmt.Errorf("no Go files found in %s", dir)
	}
	return pkg, nil
}

func selected(name string, opts Options) bool {
	if !matchAny(opts.Include, name) {
		return false
	}
	return !matchAny(opts.Exclude, name)
}

func matchAny(patterns []string, name string) bool {
	for _, pat := range patterns {
		// Patterns were validated by ScanDir.
		if ok, _ := doublestar.Match(pat, name); ok {
			return true
		}
	}
	return false
}
