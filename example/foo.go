// Package example uses iterators generated by tupleiter
// to walk a tuple holding values of different types.
package example

//go:generate go run github.com/rogpeppe/tupleiter/cmd/tupleiter

import (
	"fmt"

	"github.com/rogpeppe/tupleiter/tuple"
)

type Foo interface {
	CallShared() int
	CallMut() int
}

// Incrementer is implemented by pointers to A and B only,
// so it can be used only with itermut.
type Incrementer interface {
	Inc()
}

type A int

func (a A) CallShared() int {
	return int(a)
}

func (a A) CallMut() int {
	return -int(a)
}

func (a *A) Inc() {
	*a++
}

func (a A) String() string {
	return fmt.Sprintf("A(%d)", int(a))
}

type B struct {
	N int
}

func (b B) CallShared() int {
	return b.N
}

func (b B) CallMut() int {
	return -b.N
}

func (b *B) Inc() {
	b.N++
}

func (b B) String() string {
	return fmt.Sprintf("B{%d}", b.N)
}

//tupleiter:iter triple, (Foo; 3)
//tupleiter:itermut triple, (Foo; 3)
//tupleiter:itermut triple, (Incrementer; 3)
//tupleiter:iter name=stringers triple, (fmt.Stringer + 'static; 3)
var triple = tuple.New3(A(1), B{2}, A(3))

// Iterators over any pair whose elements are both Foo
// and fmt.Stringer.
//tupleiter:iter _, (Foo + fmt.Stringer; 2)

//tupleiter:iter name=single _, (Foo; 1)
