package synth

import (
	"bytes"
	"fmt"
	"go/format"
	"path"
	"sort"
	"strconv"
)

// File collects generated iterators into a single Go source file.
type File struct {
	// Package holds the package name for the file.
	Package string

	// Imports maps the package names used by bounds
	// to their import paths.
	Imports map[string]string

	iters []*Iterator
}

// Add adds an iterator to the file. Iterators appear
// in the file in the order they were added.
func (f *File) Add(it *Iterator) {
	f.iters = append(f.iters, it)
}

// Len returns the number of iterators added to f.
func (f *File) Len() int {
	return len(f.iters)
}

// Bytes returns the gofmt-formatted contents of the file.
// It fails if a bound refers to a package that is
// not in f.Imports.
func (f *File) Bytes() ([]byte, error) {
	if f.Package == "" {
		return nil, fmt.Errorf("no package name for generated file")
	}
	// paths maps each package name to the import path it refers to.
	paths := make(map[string]string)
	use := func(name, importPath string) error {
		if old, ok := paths[name]; ok && old != importPath {
			return fmt.Errorf("package name %q refers to both %q and %q", name, old, importPath)
		}
		paths[name] = importPath
		return nil
	}
	declared := make(map[string]*Iterator)
	for _, it := range f.iters {
		if prev, ok := declared[it.Name]; ok {
			return nil, fmt.Errorf("%v: iterator %s already generated at %v", it.Spec.Pos, it.Name, prev.Spec.Pos)
		}
		declared[it.Name] = it
		if q := it.Tuple.Qualifier(); q != "" {
			if err := use(q, it.Tuple.Path); err != nil {
				return nil, fmt.Errorf("%v: %v", it.Spec.Pos, err)
			}
		}
		for _, q := range it.Qualifiers() {
			importPath, ok := f.Imports[q]
			if !ok {
				return nil, fmt.Errorf("%v: no import found for package %q used in bounds", it.Spec.Pos, q)
			}
			if err := use(q, importPath); err != nil {
				return nil, fmt.Errorf("%v: %v", it.Spec.Pos, err)
			}
		}
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by tupleiter. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", f.Package)
	if len(paths) > 0 {
		names := make([]string, 0, len(paths))
		for name := range paths {
			names = append(names, name)
		}
		sort.Slice(names, func(i, j int) bool {
			if pi, pj := paths[names[i]], paths[names[j]]; pi != pj {
				return pi < pj
			}
			return names[i] < names[j]
		})
		fmt.Fprintf(&buf, "import (\n")
		for _, name := range names {
			importPath := paths[name]
			if path.Base(importPath) == name {
				fmt.Fprintf(&buf, "\t%s\n", strconv.Quote(importPath))
			} else {
				fmt.Fprintf(&buf, "\t%s %s\n", name, strconv.Quote(importPath))
			}
		}
		fmt.Fprintf(&buf, ")\n\n")
	}
	for _, it := range f.iters {
		buf.Write(it.Src)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("cannot format generated code: %v", err)
	}
	return src, nil
}
