package spec_test

import (
	"errors"
	"go/token"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/rogpeppe/tupleiter/spec"
)

var parseTests = []struct {
	testName string
	src      string
	expr     string
	bounds   []string
	count    int
}{{
	testName: "Simple",
	src:      "tup, (Foo; 3)",
	expr:     "tup",
	bounds:   []string{"Foo"},
	count:    3,
}, {
	testName: "NoSpaces",
	src:      "tup,(Foo;3)",
	expr:     "tup",
	bounds:   []string{"Foo"},
	count:    3,
}, {
	testName: "SeveralBounds",
	src:      "x.tup, (Foo + io.Reader + Getter[int] + 'static; 4)",
	expr:     "x.tup",
	bounds:   []string{"Foo", "io.Reader", "Getter[int]", "'static"},
	count:    4,
}, {
	testName: "CommaInsideCall",
	src:      "f(a, b), (Foo; 2)",
	expr:     "f(a, b)",
	bounds:   []string{"Foo"},
	count:    2,
}, {
	testName: "CommaInsideString",
	src:      `m[","], (Foo; 1)`,
	expr:     `m[","]`,
	bounds:   []string{"Foo"},
	count:    1,
}, {
	testName: "CompositeLiteral",
	src:      "tuple.T2[A, B]{F0: A(1), F1: B{2}}, (Foo; 2)",
	expr:     "tuple.T2[A, B]{F0: A(1), F1: B{2}}",
	bounds:   []string{"Foo"},
	count:    2,
}, {
	testName: "GenericBoundWithSeveralArgs",
	src:      "tup, (Pair[int, map[string]bool]; 2)",
	expr:     "tup",
	bounds:   []string{"Pair[int, map[string]bool]"},
	count:    2,
}, {
	testName: "HexArity",
	src:      "tup, (Foo; 0x1_0)",
	expr:     "tup",
	bounds:   []string{"Foo"},
	count:    16,
}, {
	testName: "Multiline",
	src:      "tup,\n\t(Foo +\n\tBar; 2)\n",
	expr:     "tup",
	bounds:   []string{"Foo", "Bar"},
	count:    2,
}, {
	testName: "OnlyLifetime",
	src:      "tup, ('a; 1)",
	expr:     "tup",
	bounds:   []string{"'a"},
	count:    1,
}}

func TestParse(t *testing.T) {
	for _, test := range parseTests {
		t.Run(test.testName, func(t *testing.T) {
			s, err := spec.Parse(test.src)
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.Equals(s.ExprText, test.expr))
			qt.Assert(t, qt.IsNotNil(s.Expr))
			var bounds []string
			for _, b := range s.Bounds {
				bounds = append(bounds, b.Text)
			}
			qt.Assert(t, qt.DeepEquals(bounds, test.bounds))
			qt.Assert(t, qt.Equals(s.Count, test.count))
		})
	}
}

var parseErrorTests = []struct {
	testName string
	src      string
	err      string
}{{
	testName: "Empty",
	src:      "",
	err:      `1:1: expected ',' after tuple expression`,
}, {
	testName: "MissingComma",
	src:      "tup (Foo; 3)",
	err:      `1:5: expected ',' after tuple expression`,
}, {
	testName: "MissingCommaBeforeLifetime",
	src:      "tup (Foo + 'static; 3)",
	err:      `1:5: expected ',' after tuple expression`,
}, {
	testName: "MissingCommaAfterCall",
	src:      "f(x) ('a; 3)",
	err:      `1:6: expected ',' after tuple expression`,
}, {
	testName: "UnterminatedRune",
	src:      "'ab, (Foo; 3)",
	err:      `1:1: rune literal not terminated`,
}, {
	testName: "MissingCommaNoBounds",
	src:      "f(x)",
	err:      `1:5: expected ',' after tuple expression`,
}, {
	testName: "MissingExpression",
	src:      ", (Foo; 3)",
	err:      `1:1: missing tuple expression`,
}, {
	testName: "BadExpression",
	src:      "a +, (Foo; 3)",
	err:      `1:4: invalid tuple expression: .*`,
}, {
	testName: "UnbalancedExpression",
	src:      "a), (Foo; 3)",
	err:      `1:2: unexpected \) in tuple expression`,
}, {
	testName: "MissingParens",
	src:      "tup, Foo; 3",
	err:      `1:6: expected '\(' after tuple expression`,
}, {
	testName: "NothingAfterComma",
	src:      "tup,",
	err:      `1:5: expected '\(' after tuple expression`,
}, {
	testName: "Unclosed",
	src:      "tup, (Foo; 3",
	err:      `1:6: unclosed '\('`,
}, {
	testName: "MismatchedBracket",
	src:      "tup, (Foo[int); 3)",
	err:      `1:14: unexpected '\)' in bound list`,
}, {
	testName: "TrailingText",
	src:      "tup, (Foo; 3) extra",
	err:      `1:15: unexpected "extra" after bound list`,
}, {
	testName: "MissingSemicolon",
	src:      "tup, (Foo 3)",
	err:      `1:12: expected ';' and arity after bound list`,
}, {
	testName: "MissingSemicolonAndArity",
	src:      "tup, (Foo)",
	err:      `1:10: expected ';' and arity after bound list`,
}, {
	testName: "EmptyBoundList",
	src:      "tup, (; 3)",
	err:      `1:7: empty bound list`,
}, {
	testName: "EmptyBound",
	src:      "tup, (Foo + ; 3)",
	err:      `1:13: expected bound`,
}, {
	testName: "LeadingPlus",
	src:      "tup, (+ Foo; 3)",
	err:      `1:7: expected bound`,
}, {
	testName: "BoundsNotJoinedByPlus",
	src:      "tup, (Foo Bar; 3)",
	err:      `1:11: malformed bound "Foo Bar": .*`,
}, {
	testName: "BoundNotTypeName",
	src:      "tup, (interface{ M() }; 1)",
	err:      `1:7: bound "interface\{ M\(\) \}" is not an interface type name`,
}, {
	testName: "BadLifetime",
	src:      "tup, ('1; 1)",
	err:      `1:7: malformed lifetime bound "'1"`,
}, {
	testName: "MissingArity",
	src:      "tup, (Foo;)",
	err:      `1:11: missing arity after ';'`,
}, {
	testName: "NegativeArity",
	src:      "tup, (Foo; -1)",
	err:      `1:12: invalid arity "-1": want an unsigned integer literal`,
}, {
	testName: "NonNumericArity",
	src:      "tup, (Foo; three)",
	err:      `1:12: invalid arity "three": want an unsigned integer literal`,
}, {
	testName: "FloatArity",
	src:      "tup, (Foo; 3.0)",
	err:      `1:12: invalid arity "3.0": want an unsigned integer literal`,
}, {
	testName: "ZeroArity",
	src:      "tup, (Foo; 0)",
	err:      `1:12: arity must be at least 1`,
}, {
	testName: "HugeArity",
	src:      "tup, (Foo; 1000)",
	err:      `1:12: arity 1000 exceeds maximum of 256`,
}, {
	testName: "TwoSemicolons",
	src:      "tup, (Foo; 3; 4)",
	err:      `1:12: invalid arity "3; 4": want an unsigned integer literal`,
}}

func TestParseError(t *testing.T) {
	for _, test := range parseErrorTests {
		t.Run(test.testName, func(t *testing.T) {
			s, err := spec.Parse(test.src)
			qt.Assert(t, qt.IsNil(s))
			qt.Assert(t, qt.ErrorMatches(err, test.err))
			var serr *spec.Error
			qt.Assert(t, qt.IsTrue(errors.As(err, &serr)))
		})
	}
}

func TestParseAtPosition(t *testing.T) {
	pos := token.Position{
		Filename: "foo.go",
		Offset:   100,
		Line:     10,
		Column:   5,
	}
	_, err := spec.ParseAt(pos, "tup, (Foo; x)")
	var serr *spec.Error
	qt.Assert(t, qt.ErrorAs(err, &serr))
	qt.Assert(t, qt.Equals(serr.Pos, token.Position{
		Filename: "foo.go",
		Offset:   111,
		Line:     10,
		Column:   16,
	}))
	qt.Assert(t, qt.Equals(serr.End.Column, 17))
	qt.Assert(t, qt.ErrorMatches(err, `foo.go:10:16: invalid arity "x": .*`))
}

func TestParseAtPositionMultiline(t *testing.T) {
	pos := token.Position{
		Filename: "foo.go",
		Line:     3,
		Column:   20,
	}
	_, err := spec.ParseAt(pos, "tup,\n  (Foo; ;)")
	qt.Assert(t, qt.ErrorMatches(err, `foo.go:4:9: invalid arity ";": .*`))
}

func TestSpecString(t *testing.T) {
	s, err := spec.Parse("f(a,b),(Foo+io.Reader+'static;0b11)")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(s.String(), "f(a,b), (Foo + io.Reader + 'static; 3)"))
}

func TestBoundHelpers(t *testing.T) {
	s, err := spec.Parse("tup, (Foo + io.Reader + gen.Getter[time.Duration] + 'static; 2)")
	qt.Assert(t, qt.IsNil(err))

	var names, quals []string
	for _, b := range s.Bounds {
		names = append(names, b.Name())
		quals = append(quals, b.Qualifiers()...)
	}
	qt.Assert(t, qt.DeepEquals(names, []string{"Foo", "Reader", "Getter", "static"}))
	qt.Assert(t, qt.DeepEquals(quals, []string{"io", "gen", "time"}))
	qt.Assert(t, qt.HasLen(s.TypeBounds(), 3))

	ids := s.Idents()
	for _, id := range []string{"Foo", "io", "Reader", "gen", "Getter", "time", "Duration"} {
		qt.Check(t, qt.IsTrue(ids[id]), qt.Commentf("identifier %s", id))
	}
	qt.Assert(t, qt.HasLen(ids, 7))
}
