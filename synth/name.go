package synth

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rogpeppe/tupleiter/spec"
)

// DefaultName returns the name used for an iterator when
// none is given: the bound names joined in camel case followed
// by "Iter", and "Mut" for the mutable variant.
// For example the bounds Foo + io.Reader give fooReaderIter.
func DefaultName(s *spec.Spec, mutable bool) string {
	// A Caser keeps state, so each call gets its own.
	title := cases.Title(language.Und, cases.NoLower)
	var buf strings.Builder
	for _, b := range s.TypeBounds() {
		buf.WriteString(title.String(b.Name()))
	}
	if buf.Len() == 0 {
		buf.WriteString("Any")
	}
	buf.WriteString("Iter")
	if mutable {
		buf.WriteString("Mut")
	}
	return lowerFirst(buf.String())
}

func upperFirst(s string) string {
	return cases.Title(language.Und, cases.NoLower).String(s)
}

// lowerFirst lowers the leading run of upper-case letters in s,
// except the last one when it starts a new word, so that
// HTTPHandlerIter becomes httpHandlerIter.
func lowerFirst(s string) string {
	rs := []rune(s)
	n := 0
	for n < len(rs) && unicode.IsUpper(rs[n]) {
		n++
	}
	if n > 1 && n < len(rs) && unicode.IsLower(rs[n]) {
		n--
	}
	for i := range n {
		rs[i] = unicode.ToLower(rs[i])
	}
	return string(rs)
}
