//go:build ignore

// This program generates tuple.go. Run it with go generate.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
)

// maxArity must agree with MaxArity in doc.go.
const maxArity = 9

func main() {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by generate.go. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package tuple\n")
	for n := 1; n <= maxArity; n++ {
		genTuple(&buf, n)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("cannot format generated code: %v", err)
	}
	if err := os.WriteFile("tuple.go", src, 0o666); err != nil {
		log.Fatal(err)
	}
}

func genTuple(buf *bytes.Buffer, n int) {
	params := make([]string, n)
	args := make([]string, n)
	fields := make([]string, n)
	for i := range params {
		params[i] = fmt.Sprintf("A%d", i)
		args[i] = fmt.Sprintf("a%d A%d", i, i)
		fields[i] = fmt.Sprintf("F%d: a%d", i, i)
	}
	tparams := strings.Join(params, ", ")
	fmt.Fprintf(buf, "\n// T%d holds %d value%s.\n", n, n, plural(n))
	fmt.Fprintf(buf, "type T%d[%s any] struct {\n", n, tparams)
	for i := range params {
		fmt.Fprintf(buf, "\tF%d A%d\n", i, i)
	}
	fmt.Fprintf(buf, "}\n")
	fmt.Fprintf(buf, "\n// New%d returns a T%d holding the given values.\n", n, n)
	fmt.Fprintf(buf, "func New%d[%s any](%s) T%d[%s] {\n", n, tparams, strings.Join(args, ", "), n, tparams)
	fmt.Fprintf(buf, "\treturn T%d[%s]{%s}\n", n, tparams, strings.Join(fields, ", "))
	fmt.Fprintf(buf, "}\n")
	fmt.Fprintf(buf, "\n// Len returns %d.\n", n)
	fmt.Fprintf(buf, "func (T%d[%s]) Len() int {\n\treturn %d\n}\n", n, tparams, n)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
