// Package spec parses tupleiter invocations. An invocation names a
// tuple-valued Go expression, the interfaces every element of the
// tuple implements and the tuple's arity:
//
//	expr, (Bound1 + Bound2 + ...; N)
//
// The result is a [Spec], which the synth package turns into Go source.
package spec

import (
	"fmt"
	"go/ast"
	"go/token"
	"slices"
	"strings"
)

// MaxCount is the largest arity accepted by Parse.
const MaxCount = 256

// Spec is a parsed invocation.
type Spec struct {
	// Pos holds the position of the start of the invocation text.
	Pos token.Position

	// Expr holds the tuple expression. It is only checked
	// for syntax; its type is left to the compiler.
	Expr ast.Expr

	// ExprText holds the source text of Expr.
	ExprText string

	// Bounds holds the bounds in the order they were written.
	// It is never empty.
	Bounds []Bound

	// Count holds the arity of the tuple.
	Count int
}

// Bound is one element of a bound list.
type Bound struct {
	// Text holds the normalized source of the bound,
	// for example "io.Reader", "Getter[int]" or "'static".
	Text string

	// Expr holds the type expression. It is nil for lifetime bounds.
	Expr ast.Expr

	// Lifetime reports whether the bound is a lifetime bound
	// such as 'static. Every Go value satisfies a lifetime
	// bound, so they do not constrain the generated code.
	Lifetime bool
}

// TypeBounds returns the bounds that name interface types.
func (s *Spec) TypeBounds() []Bound {
	var bs []Bound
	for _, b := range s.Bounds {
		if !b.Lifetime {
			bs = append(bs, b)
		}
	}
	return bs
}

// Idents returns the set of all identifiers mentioned by the bounds.
func (s *Spec) Idents() map[string]bool {
	ids := make(map[string]bool)
	for _, b := range s.Bounds {
		if b.Expr == nil {
			continue
		}
		ast.Inspect(b.Expr, func(n ast.Node) bool {
			if id, ok := n.(*ast.Ident); ok {
				ids[id.Name] = true
			}
			return true
		})
	}
	return ids
}

// String returns the invocation in canonical form.
func (s *Spec) String() string {
	texts := make([]string, len(s.Bounds))
	for i, b := range s.Bounds {
		texts[i] = b.Text
	}
	return fmt.Sprintf("%s, (%s; %d)", s.ExprText, strings.Join(texts, " + "), s.Count)
}

// Qualifiers returns the package names the bound refers to,
// in order of first appearance.
func (b Bound) Qualifiers() []string {
	if b.Expr == nil {
		return nil
	}
	var qs []string
	ast.Inspect(b.Expr, func(n ast.Node) bool {
		sel, ok := n.(*ast.SelectorExpr)
		if !ok {
			return true
		}
		if id, ok := sel.X.(*ast.Ident); ok && !slices.Contains(qs, id.Name) {
			qs = append(qs, id.Name)
		}
		return false
	})
	return qs
}

// Name returns the unqualified name of the bound's type,
// without any type arguments. For a lifetime bound it
// returns the lifetime name without its quote.
func (b Bound) Name() string {
	if b.Lifetime {
		return strings.TrimPrefix(b.Text, "'")
	}
	return typeName(b.Expr)
}

func typeName(x ast.Expr) string {
	switch x := x.(type) {
	case *ast.Ident:
		return x.Name
	case *ast.SelectorExpr:
		return x.Sel.Name
	case *ast.IndexExpr:
		return typeName(x.X)
	case *ast.IndexListExpr:
		return typeName(x.X)
	}
	return ""
}

// Error describes a malformed invocation.
type Error struct {
	// Pos and End delimit the offending text.
	Pos token.Position
	End token.Position
	Msg string
}

func (e *Error) Error() string {
	return e.Pos.String() + ": " + e.Msg
}
