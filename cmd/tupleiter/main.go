// Tupleiter generates iterators over the elements of tuples.
//
// It is usually run by go generate. In its default mode it reads the Go
// files in a directory, looking for directives of the form
//
//	//tupleiter:iter [name=<ident>] <tuple expr>, (<bound> + ...; <arity>)
//	//tupleiter:itermut [name=<ident>] <tuple expr>, (<bound> + ...; <arity>)
//
// and writes the iterators they describe to a single file in the
// same directory. For example:
//
//	//go:generate go run github.com/rogpeppe/tupleiter/cmd/tupleiter
//
//	//tupleiter:iter triple, (Foo; 3)
//	var triple = tuple.New3(A(1), B{2}, A(3))
//
// When an invocation is given as an argument, tupleiter generates
// only that iterator:
//
//	tupleiter -name fooIter -o foo_iter.go 'triple, (Foo; 3)'
//
// Package qualifiers used in bounds are resolved with the imports
// of the file holding the directive, or in the second form, those
// of $GOFILE and the -import flags.
package main

import (
	"errors"
	"flag"
	"fmt"
	"go/token"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/rogpeppe/tupleiter/directive"
	"github.com/rogpeppe/tupleiter/spec"
	"github.com/rogpeppe/tupleiter/synth"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "tupleiter: %v\n", err)
		os.Exit(1)
	}
}

type command struct {
	logger *slog.Logger

	dir     string
	out     string
	include stringsFlag
	exclude stringsFlag
	tuple   string
	field   string
	verbose bool

	// Flags for a single invocation.
	name    string
	mut     bool
	pkg     string
	imports stringsFlag
}

func run(args []string, stderr io.Writer) error {
	var c command
	fs := flag.NewFlagSet("tupleiter", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: tupleiter [flags] [invocation]\n")
		fs.PrintDefaults()
	}
	fs.StringVar(&c.dir, "dir", ".", "directory holding the package")
	fs.StringVar(&c.out, "o", "tupleiter_gen.go", "output file, relative to -dir")
	fs.Var(&c.include, "include", "pattern for files to scan for directives (repeatable)")
	fs.Var(&c.exclude, "exclude", "pattern for files not to scan (repeatable)")
	fs.StringVar(&c.tuple, "tuple", synth.DefaultTuple.Path+"."+synth.DefaultTuple.Prefix, "tuple types, as import path and name prefix")
	fs.StringVar(&c.field, "field", "F", "prefix of the tuple field names")
	fs.BoolVar(&c.verbose, "v", false, "print debugging information")
	fs.StringVar(&c.name, "name", "", "name of the generated type")
	fs.BoolVar(&c.mut, "mut", false, "generate an iterator that yields pointers")
	fs.StringVar(&c.pkg, "pkg", "", "package name of the generated file (default $GOPACKAGE)")
	fs.Var(&c.imports, "import", "import path, or name=path, used by bounds (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	level := slog.LevelInfo
	if c.verbose {
		level = slog.LevelDebug
	}
	c.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: level,
	}))
	tuple, err := synth.ParseTuple(c.tuple)
	if err != nil {
		return err
	}
	if !token.IsIdentifier(c.field) {
		return fmt.Errorf("invalid field prefix %q", c.field)
	}
	switch fs.NArg() {
	case 0:
		if c.name != "" || c.mut || c.pkg != "" || len(c.imports) > 0 {
			return fmt.Errorf("-name, -mut, -pkg and -import need an invocation argument")
		}
		return c.genDirectives(tuple)
	case 1:
		return c.genSingle(fs.Arg(0), tuple)
	default:
		return fmt.Errorf("too many arguments")
	}
}

// genDirectives generates a file holding an iterator for
// every directive in the package in c.dir.
func (c *command) genDirectives(tuple synth.Tuple) error {
	out := c.outPath()
	exclude := []string(c.exclude)
	if exclude == nil {
		exclude = directive.DefaultExclude
	}
	if filepath.Dir(out) == filepath.Clean(c.dir) {
		exclude = append(exclude[:len(exclude):len(exclude)], escapePattern(filepath.Base(out)))
	}
	fset := token.NewFileSet()
	pkg, err := directive.ScanDir(fset, c.dir, directive.Options{
		Include: c.include,
		Exclude: exclude,
	})
	if err != nil {
		return err
	}
	c.logger.Debug("scanned package", "dir", pkg.Dir, "package", pkg.Name, "directives", pkg.Len())
	if pkg.Len() == 0 {
		c.logger.Info("no directives found", "dir", c.dir)
		return nil
	}
	file := &synth.File{
		Package: pkg.Name,
		Imports: make(map[string]string),
	}
	var errs []error
	for _, f := range pkg.Files {
		for _, d := range f.Directives {
			s, err := d.Spec()
			if err == nil {
				err = tuple.Check(s)
			}
			if err != nil {
				errs = append(errs, err)
				continue
			}
			it := synth.Generate(s, synth.Config{
				Name:    d.Name,
				Mutable: d.Mutable,
				Tuple:   tuple,
				Field:   c.field,
			})
			if err := addImports(file.Imports, f.Imports, it); err != nil {
				errs = append(errs, err)
				continue
			}
			c.logger.Debug("generated iterator", "name", it.Name, "pos", s.Pos.String(), "mutable", it.Mutable)
			file.Add(it)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return c.write(out, file)
}

// genSingle generates a file holding the iterator
// for the single invocation src.
func (c *command) genSingle(src string, tuple synth.Tuple) error {
	s, err := spec.Parse(src)
	if err != nil {
		return err
	}
	if err := tuple.Check(s); err != nil {
		return err
	}
	file := &synth.File{
		Package: c.pkg,
		Imports: make(map[string]string),
	}
	if file.Package == "" {
		file.Package = os.Getenv("GOPACKAGE")
	}
	// Bounds may refer to packages imported by the
	// file holding the go:generate comment.
	if gofile := os.Getenv("GOFILE"); gofile != "" {
		f, err := directive.ParseFile(token.NewFileSet(), filepath.Join(c.dir, gofile), nil)
		if err != nil {
			return err
		}
		if file.Package == "" {
			file.Package = f.Package
		}
		for name, p := range f.Imports {
			file.Imports[name] = p
		}
	}
	if file.Package == "" {
		return fmt.Errorf("no package name for generated file; use -pkg")
	}
	for _, imp := range c.imports {
		name, p := parseImport(imp)
		if !token.IsIdentifier(name) {
			return fmt.Errorf("invalid import %q", imp)
		}
		file.Imports[name] = p
	}
	it := synth.Generate(s, synth.Config{
		Name:    c.name,
		Mutable: c.mut,
		Tuple:   tuple,
		Field:   c.field,
	})
	c.logger.Debug("generated iterator", "name", it.Name, "mutable", it.Mutable)
	file.Add(it)
	return c.write(c.outPath(), file)
}

func (c *command) write(out string, file *synth.File) error {
	data, err := file.Bytes()
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, data, 0o666); err != nil {
		return err
	}
	c.logger.Info("wrote iterators", "file", out, "count", file.Len())
	return nil
}

func (c *command) outPath() string {
	if filepath.IsAbs(c.out) {
		return filepath.Clean(c.out)
	}
	return filepath.Join(c.dir, c.out)
}

// addImports adds to imports the import paths, as found in
// fileImports, of the packages used by the bounds of it.
// Qualifiers not found are left for synth.File to report.
func addImports(imports, fileImports map[string]string, it *synth.Iterator) error {
	for _, q := range it.Qualifiers() {
		p, ok := fileImports[q]
		if !ok {
			continue
		}
		if old, ok := imports[q]; ok && old != p {
			return fmt.Errorf("%v: package name %q refers to both %q and %q", it.Spec.Pos, q, old, p)
		}
		imports[q] = p
	}
	return nil
}

// parseImport parses an -import flag value.
func parseImport(s string) (name, importPath string) {
	if name, importPath, ok := strings.Cut(s, "="); ok {
		return name, importPath
	}
	return path.Base(s), s
}

// escapePattern returns a pattern that matches only name.
func escapePattern(name string) string {
	var buf strings.Builder
	for _, r := range name {
		if strings.ContainsRune(`*?[]{}\`, r) {
			buf.WriteByte('\\')
		}
		buf.WriteRune(r)
	}
	return buf.String()
}

type stringsFlag []string

func (f *stringsFlag) String() string {
	return strings.Join(*f, ",")
}

func (f *stringsFlag) Set(s string) error {
	*f = append(*f, s)
	return nil
}
