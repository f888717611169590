// Package synth generates Go source for iterators over the
// elements of a tuple, as described by a [spec.Spec].
//
// For the invocation
//
//	tup, (Foo; 3)
//
// it produces a type that holds a pointer to a tuple.T3 and a cursor,
// and whose Next method returns the tuple's elements as Foo values,
// one per call, in field order. The element types of the tuple
// are type parameters, so one generated type serves every
// 3-tuple whose elements implement Foo.
//
// The mutable variant yields pointers to the tuple's fields instead
// of copies of them, so methods with pointer receivers act on the
// tuple itself. When the tuple expression cannot be addressed, such
// as a function call or a map index, the generated Of function copies
// it to a variable first, and the pointers refer to that copy.
package synth

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/token"
	"path"
	"slices"
	"strings"

	"github.com/rogpeppe/tupleiter/spec"
	"github.com/rogpeppe/tupleiter/tuple"
)

// Config holds the parameters of a generated iterator
// that are not part of the invocation itself.
type Config struct {
	// Name holds the name of the generated type.
	// If it is empty, DefaultName is used.
	Name string

	// Mutable selects the variant that yields
	// pointers to the tuple's fields.
	Mutable bool

	// Tuple names the tuple types. The zero value
	// means DefaultTuple.
	Tuple Tuple

	// Field holds the prefix of the tuple's field names;
	// field i is named Field followed by i. If it is
	// empty, "F" is used.
	Field string
}

// Tuple names a family of generic tuple types, one per arity.
type Tuple struct {
	// Path holds the import path of the package defining
	// the types. If it is empty, the types are expected
	// in the package the code is generated into.
	Path string

	// Prefix holds the type name without the arity,
	// such as "T" for tuple.T3.
	Prefix string

	// MaxArity holds the arity of the largest type
	// in the family, or zero if it is not known.
	MaxArity int
}

// DefaultTuple names the types in this module's tuple package.
var DefaultTuple = Tuple{
	Path:     "github.com/rogpeppe/tupleiter/tuple",
	Prefix:   "T",
	MaxArity: tuple.MaxArity,
}

// ParseTuple parses a tuple type family written as
// an import path and a type name prefix separated by a
// final dot, such as "github.com/rogpeppe/tupleiter/tuple.T".
// A value without a dot names types in the current package.
func ParseTuple(s string) (Tuple, error) {
	var t Tuple
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		t.Path, t.Prefix = s[:i], s[i+1:]
	} else {
		t.Prefix = s
	}
	if !token.IsIdentifier(t.Prefix) {
		return Tuple{}, fmt.Errorf("invalid tuple type %q: %q is not an identifier", s, t.Prefix)
	}
	if t.Path == DefaultTuple.Path && t.Prefix == DefaultTuple.Prefix {
		t.MaxArity = DefaultTuple.MaxArity
	}
	return t, nil
}

// Check reports an error if the tuple family has no
// type of the arity given in s.
func (t Tuple) Check(s *spec.Spec) error {
	if t.MaxArity > 0 && s.Count > t.MaxArity {
		return fmt.Errorf("%v: arity %d exceeds that of the largest tuple type %s", s.Pos, s.Count, t.typeName(t.MaxArity))
	}
	return nil
}

func (t Tuple) typeName(n int) string {
	if q := t.Qualifier(); q != "" {
		return fmt.Sprintf("%s.%s%d", q, t.Prefix, n)
	}
	return fmt.Sprintf("%s%d", t.Prefix, n)
}

// Qualifier returns the package name used to refer to the tuple
// types, or the empty string if they are local.
func (t Tuple) Qualifier() string {
	if t.Path == "" {
		return ""
	}
	return path.Base(t.Path)
}

// Iterator holds the generated source for one invocation.
type Iterator struct {
	// Spec holds the invocation the iterator was generated from.
	Spec *spec.Spec

	// Name holds the name of the generated type.
	Name string

	// Mutable reports whether the iterator yields pointers.
	Mutable bool

	// Tuple holds the tuple type family the source refers to.
	Tuple Tuple

	// Src holds the unformatted declarations.
	Src []byte
}

// Qualifiers returns the package names the bounds refer to.
// They must all be imported by the file that holds Src.
func (it *Iterator) Qualifiers() []string {
	var qs []string
	for _, b := range it.Spec.Bounds {
		for _, q := range b.Qualifiers() {
			if !slices.Contains(qs, q) {
				qs = append(qs, q)
			}
		}
	}
	return qs
}

// Generate returns the source of the iterator described by s and cfg.
// It never fails: a tuple expression of the wrong arity or
// elements that do not implement the bounds are reported by the
// compiler when the generated code is built. Use [Tuple.Check]
// to find arities that the tuple family does not provide.
func Generate(s *spec.Spec, cfg Config) *Iterator {
	if cfg.Name == "" {
		cfg.Name = DefaultName(s, cfg.Mutable)
	}
	if cfg.Tuple.Prefix == "" {
		cfg.Tuple = DefaultTuple
	}
	if cfg.Field == "" {
		cfg.Field = "F"
	}
	g := newGenerator(s, cfg)
	g.gen()
	return &Iterator{
		Spec:    s,
		Name:    cfg.Name,
		Mutable: cfg.Mutable,
		Tuple:   cfg.Tuple,
		Src:     g.buf.Bytes(),
	}
}

type generator struct {
	buf  bytes.Buffer
	spec *spec.Spec
	cfg  Config

	// names of generated declarations
	ctor    string
	wrapper string
	item    string
	// elem names the constraint on the pointer type
	// parameters of the mutable variant; elemParam is
	// its own type parameter.
	elem      string
	elemParam string
	// itemDecl is set when item names an interface
	// that must be declared alongside the iterator.
	itemDecl bool

	// tparams holds the element type parameters,
	// pparams their pointer counterparts in the mutable variant.
	tparams []string
	pparams []string

	// local identifiers
	param string
	recv  string
	yield string
	x     string
	ok    string
	v     string
}

func newGenerator(s *spec.Spec, cfg Config) *generator {
	g := &generator{
		spec: s,
		cfg:  cfg,
	}
	taken := s.Idents()
	taken[cfg.Name] = true
	if q := cfg.Tuple.Qualifier(); q != "" {
		taken[q] = true
	}
	for _, id := range []string{"any", "bool", "int", "nil", "true", "false"} {
		taken[id] = true
	}
	g.ctor = fresh(constructorName(cfg.Name), taken)
	if s.ExprText != "_" {
		g.wrapper = fresh(cfg.Name+"Of", taken)
	}
	switch bounds := s.TypeBounds(); len(bounds) {
	case 0:
		g.item = "any"
	case 1:
		g.item = bounds[0].Text
	default:
		g.item = fresh(cfg.Name+"Item", taken)
		g.itemDecl = true
	}
	g.tparams = freshSeq("T", s.Count, taken)
	if cfg.Mutable {
		g.elem = fresh(cfg.Name+"Elem", taken)
		g.elemParam = fresh("T", taken)
		g.pparams = freshSeq("P", s.Count, taken)
	}
	g.param = fresh("t", taken)
	g.recv = fresh("it", taken)
	g.yield = fresh("yield", taken)
	g.x = fresh("x", taken)
	g.ok = fresh("ok", taken)
	g.v = fresh("v", taken)
	return g
}

func (g *generator) printf(format string, args ...any) {
	fmt.Fprintf(&g.buf, format, args...)
}

func (g *generator) gen() {
	if g.itemDecl {
		g.genItem()
	}
	if g.cfg.Mutable {
		g.genElem()
	}
	g.genType()
	g.genConstructor()
	if g.wrapper != "" {
		g.genWrapper()
	}
	g.genNext()
	g.genAll()
}

func (g *generator) genItem() {
	g.printf("// %s is the element type of %s.\n", g.item, g.cfg.Name)
	g.printf("type %s interface {\n", g.item)
	for _, b := range g.spec.TypeBounds() {
		g.printf("\t%s\n", b.Text)
	}
	g.printf("}\n\n")
}

// genElem generates the constraint that ties each pointer type
// parameter to its element type parameter, so that the compiler
// can infer the former from the latter.
func (g *generator) genElem() {
	g.printf("// %s is satisfied by pointers to %s's element types.\n", g.elem, g.cfg.Name)
	g.printf("type %s[%s any] interface {\n", g.elem, g.elemParam)
	g.printf("\t*%s\n", g.elemParam)
	if g.item != "any" {
		g.printf("\t%s\n", g.item)
	}
	g.printf("}\n\n")
}

func (g *generator) genType() {
	s := g.spec
	access := "copies of its elements"
	if g.cfg.Mutable {
		access = "pointers to its elements"
	}
	g.printf("// %s iterates over a %s, yielding %s as %s values.\n", g.cfg.Name, g.tupleName(), access, g.item)
	g.printf("//\n// Generated from: %s\n", oneLine(s.String()))
	g.printf("type %s[%s] struct {\n", g.cfg.Name, g.typeParams())
	g.printf("\tt   *%s\n", g.tupleType())
	g.printf("\tpos int\n")
	g.printf("}\n\n")
}

func (g *generator) genConstructor() {
	g.printf("// %s returns a %s positioned before the first element of %s.\n", g.ctor, g.cfg.Name, g.param)
	g.printf("func %s[%s](%s *%s) *%s {\n", g.ctor, g.typeParams(), g.param, g.tupleType(), g.instance())
	g.printf("\treturn &%s{t: %s}\n", g.instance(), g.param)
	g.printf("}\n\n")
}

// genWrapper generates a function that applies the
// constructor to the address of the tuple expression.
// Its result type is an interface because the element
// types are only known to the compiler.
func (g *generator) genWrapper() {
	text := oneLine(g.spec.ExprText)
	g.printf("// %s returns a %s over %s.\n", g.wrapper, g.cfg.Name, text)
	addressable := isAddressable(g.spec.Expr)
	if !addressable && g.cfg.Mutable {
		g.printf("// It iterates over a copy of %s, so changes made\n", text)
		g.printf("// through the yielded pointers are not seen by %s itself.\n", text)
	}
	g.printf("func %s() interface {\n", g.wrapper)
	g.printf("\tNext() (%s, bool)\n", g.item)
	g.printf("\tAll() func(%s func(%s) bool)\n", g.yield, g.item)
	g.printf("} {\n")
	if addressable {
		g.printf("\treturn %s(&%s)\n", g.ctor, g.spec.ExprText)
	} else {
		g.printf("\t%s := %s\n", g.v, g.spec.ExprText)
		g.printf("\treturn %s(&%s)\n", g.ctor, g.v)
	}
	g.printf("}\n\n")
}

func (g *generator) genNext() {
	n := g.spec.Count
	g.printf("// Next returns the element at the cursor and advances the cursor.\n")
	if n == 1 {
		g.printf("// After the element has been returned, it returns nil, false.\n")
	} else {
		g.printf("// After all %d elements have been returned, it returns nil, false.\n", n)
	}
	g.printf("func (%s *%s) Next() (%s, bool) {\n", g.recv, g.instance(), g.item)
	g.printf("\tswitch %s.pos {\n", g.recv)
	for i := 0; i < n; i++ {
		field := fmt.Sprintf("%s.t.%s%d", g.recv, g.cfg.Field, i)
		g.printf("\tcase %d:\n", i)
		g.printf("\t\t%s.pos++\n", g.recv)
		if g.cfg.Mutable {
			g.printf("\t\treturn %s(&%s), true\n", g.pparams[i], field)
		} else {
			g.printf("\t\treturn %s, true\n", field)
		}
	}
	g.printf("\tdefault:\n")
	g.printf("\t\treturn nil, false\n")
	g.printf("\t}\n")
	g.printf("}\n\n")
}

func (g *generator) genAll() {
	g.printf("// All returns the elements not yet returned by Next.\n")
	g.printf("// Its result can be used as an iter.Seq[%s].\n", g.item)
	g.printf("func (%s *%s) All() func(%s func(%s) bool) {\n", g.recv, g.instance(), g.yield, g.item)
	g.printf("\treturn func(%s func(%s) bool) {\n", g.yield, g.item)
	g.printf("\t\tfor {\n")
	g.printf("\t\t\t%s, %s := %s.Next()\n", g.x, g.ok, g.recv)
	g.printf("\t\t\tif !%s || !%s(%s) {\n", g.ok, g.yield, g.x)
	g.printf("\t\t\t\treturn\n")
	g.printf("\t\t\t}\n")
	g.printf("\t\t}\n")
	g.printf("\t}\n")
	g.printf("}\n\n")
}

// typeParams returns the type parameter list of the generated type.
func (g *generator) typeParams() string {
	ts := strings.Join(g.tparams, ", ")
	if !g.cfg.Mutable {
		return ts + " " + g.item
	}
	var buf strings.Builder
	buf.WriteString(ts)
	buf.WriteString(" any")
	for i, p := range g.pparams {
		fmt.Fprintf(&buf, ", %s %s[%s]", p, g.elem, g.tparams[i])
	}
	return buf.String()
}

// instance returns the generated type instantiated
// with its own type parameters.
func (g *generator) instance() string {
	args := g.tparams
	if g.cfg.Mutable {
		args = append(args[:len(args):len(args)], g.pparams...)
	}
	return fmt.Sprintf("%s[%s]", g.cfg.Name, strings.Join(args, ", "))
}

func (g *generator) tupleName() string {
	return g.cfg.Tuple.typeName(g.spec.Count)
}

func (g *generator) tupleType() string {
	return fmt.Sprintf("%s[%s]", g.tupleName(), strings.Join(g.tparams, ", "))
}

// isAddressable reports whether the address of x can be
// taken directly. Anything else, including index expressions,
// which may index a map, is first copied to a variable.
func isAddressable(x ast.Expr) bool {
	switch x := ast.Unparen(x).(type) {
	case *ast.Ident, *ast.StarExpr, *ast.CompositeLit:
		return true
	case *ast.SelectorExpr:
		// A field of a call result is not addressable.
		return isSelectorChain(x.X)
	}
	return false
}

func isSelectorChain(x ast.Expr) bool {
	switch x := ast.Unparen(x).(type) {
	case *ast.Ident, *ast.StarExpr:
		return true
	case *ast.SelectorExpr:
		return isSelectorChain(x.X)
	}
	return false
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func constructorName(name string) string {
	if token.IsExported(name) {
		return "New" + name
	}
	return "new" + upperFirst(name)
}

// fresh returns name, or name followed by underscores
// if it is already taken, and marks the result as taken.
func fresh(name string, taken map[string]bool) string {
	for taken[name] {
		name += "_"
	}
	taken[name] = true
	return name
}

// freshSeq returns n names made of prefix followed by
// 0 to n-1, none of which are already taken.
func freshSeq(prefix string, n int, taken map[string]bool) []string {
	for {
		names := make([]string, n)
		clash := false
		for i := range names {
			names[i] = fmt.Sprintf("%s%d", prefix, i)
			if taken[names[i]] {
				clash = true
				break
			}
		}
		if !clash {
			for _, name := range names {
				taken[name] = true
			}
			return names
		}
		prefix += "_"
	}
}
