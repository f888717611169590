// Package tuple holds generic struct types that hold a
// specific number of values of arbitrary types: T1 holds
// one value, T2 two, and so on up to T9.
//
// The fields of a tuple are named F0, F1 and so on,
// which is the layout that the iterators generated by
// tupleiter expect.
package tuple

//go:generate go run generate.go

// MaxArity holds the number of values in the largest tuple type, T9.
// It must agree with maxArity in generate.go.
const MaxArity = 9
