package spec

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/scanner"
	"go/token"
	"go/types"
	"strconv"
	"strings"
)

// Parse parses an invocation. Error positions are relative
// to the start of src.
func Parse(src string) (*Spec, error) {
	return ParseAt(token.Position{}, src)
}

// ParseAt is like Parse but reports positions relative to pos,
// the position of the start of src within some larger file.
//
// Any returned error is a *Error describing the first
// problem found.
func ParseAt(pos token.Position, src string) (*Spec, error) {
	if pos.Line == 0 {
		pos.Line, pos.Column = 1, 1
	}
	p := &parseState{
		src:  src,
		base: pos,
	}
	return p.parse()
}

type parseState struct {
	src  string
	base token.Position
}

func (p *parseState) parse() (*Spec, error) {
	comma, err := p.exprEnd()
	if err != nil {
		return nil, err
	}
	s := &Spec{
		Pos: p.base,
	}
	if err := p.parseExpr(s, 0, comma); err != nil {
		return nil, err
	}
	open := p.skipSpace(comma + 1)
	if open == len(p.src) || p.src[open] != '(' {
		return nil, p.errorf(open, p.wordEnd(open), "expected '(' after tuple expression")
	}
	closing, err := p.matchParen(open)
	if err != nil {
		return nil, err
	}
	if rest := p.skipSpace(closing + 1); rest < len(p.src) {
		return nil, p.errorf(rest, len(p.src), "unexpected %q after bound list", strings.TrimSpace(p.src[rest:]))
	}
	semis := p.splitTop(open+1, closing, ';')
	if len(semis) == 0 {
		return nil, p.errorf(closing, closing+1, "expected ';' and arity after bound list")
	}
	bounds, err := p.parseBounds(open+1, semis[0])
	if err != nil {
		return nil, err
	}
	s.Bounds = bounds
	count, err := p.parseCount(semis[0]+1, closing)
	if err != nil {
		return nil, err
	}
	s.Count = count
	return s, nil
}

// exprEnd returns the offset of the comma that terminates
// the tuple expression. The scanner takes care of skipping
// commas inside string and rune literals.
func (p *parseState) exprEnd() (int, error) {
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(p.src))
	var scanErr error
	var s scanner.Scanner
	s.Init(file, []byte(p.src), func(pos token.Position, msg string) {
		if scanErr == nil {
			scanErr = p.errorf(pos.Offset, pos.Offset+1, "%s", msg)
		}
	}, 0)
	depth := 0
	// lastOpen holds the offset of the last top-level '('.
	lastOpen := -1
	for {
		pos, tok, lit := s.Scan()
		if scanErr != nil {
			// A lifetime bound is not valid Go, so a bound list
			// with no comma before it fails to scan.
			if p.isBoundList(lastOpen) {
				return 0, p.missingComma(lastOpen)
			}
			return 0, scanErr
		}
		off := file.Offset(pos)
		switch tok {
		case token.EOF:
			if p.isBoundList(lastOpen) {
				return 0, p.missingComma(lastOpen)
			}
			return 0, p.errorf(len(p.src), len(p.src), "expected ',' after tuple expression")
		case token.LPAREN:
			if depth == 0 {
				lastOpen = off
			}
			depth++
		case token.LBRACK, token.LBRACE:
			depth++
		case token.RPAREN, token.RBRACK, token.RBRACE:
			if depth == 0 {
				return 0, p.errorf(off, off+1, "unexpected %s in tuple expression", tok)
			}
			depth--
		case token.COMMA:
			if depth == 0 {
				return off, nil
			}
		case token.ILLEGAL:
			return 0, p.errorf(off, off+len(lit), "illegal character %q in tuple expression", lit)
		}
	}
}

// isBoundList reports whether the parenthesized text
// starting at open looks like a bound list.
func (p *parseState) isBoundList(open int) bool {
	if open <= 0 {
		return false
	}
	closing, err := p.matchParen(open)
	if err != nil {
		return false
	}
	return len(p.splitTop(open+1, closing, ';')) > 0
}

func (p *parseState) missingComma(open int) error {
	return p.errorf(open, open+1, "expected ',' after tuple expression")
}

func (p *parseState) parseExpr(s *Spec, start, end int) error {
	start, end = p.trim(start, end)
	if start == end {
		return p.errorf(start, end, "missing tuple expression")
	}
	text := p.src[start:end]
	x, err := parser.ParseExpr(text)
	if err != nil {
		return p.syntaxError(start, end, "invalid tuple expression", err)
	}
	s.Expr = x
	s.ExprText = text
	return nil
}

func (p *parseState) parseBounds(start, end int) ([]Bound, error) {
	if s, e := p.trim(start, end); s == e {
		return nil, p.errorf(s, e, "empty bound list")
	}
	var bounds []Bound
	for _, sep := range append(p.splitTop(start, end, '+'), end) {
		b, err := p.parseBound(start, sep)
		if err != nil {
			return nil, err
		}
		bounds = append(bounds, b)
		start = sep + 1
	}
	return bounds, nil
}

func (p *parseState) parseBound(start, end int) (Bound, error) {
	start, end = p.trim(start, end)
	if start == end {
		return Bound{}, p.errorf(start, end, "expected bound")
	}
	text := p.src[start:end]
	if name, ok := strings.CutPrefix(text, "'"); ok {
		if !token.IsIdentifier(name) {
			return Bound{}, p.errorf(start, end, "malformed lifetime bound %q", text)
		}
		return Bound{
			Text:     text,
			Lifetime: true,
		}, nil
	}
	x, err := parser.ParseExpr(text)
	if err != nil {
		return Bound{}, p.syntaxError(start, end, fmt.Sprintf("malformed bound %q", text), err)
	}
	if !isTypeName(x) {
		return Bound{}, p.errorf(start, end, "bound %q is not an interface type name", text)
	}
	return Bound{
		Text: types.ExprString(x),
		Expr: x,
	}, nil
}

// isTypeName reports whether x is a possibly qualified,
// possibly instantiated type name.
func isTypeName(x ast.Expr) bool {
	switch x := x.(type) {
	case *ast.Ident:
		return true
	case *ast.SelectorExpr:
		_, ok := x.X.(*ast.Ident)
		return ok
	case *ast.IndexExpr:
		return isTypeName(x.X)
	case *ast.IndexListExpr:
		return isTypeName(x.X)
	}
	return false
}

func (p *parseState) parseCount(start, end int) (int, error) {
	start, end = p.trim(start, end)
	if start == end {
		return 0, p.errorf(start, end, "missing arity after ';'")
	}
	text := p.src[start:end]
	// Base 0 accepts exactly the forms of a Go integer literal,
	// including prefixes and underscores.
	n, err := strconv.ParseUint(text, 0, 64)
	if err != nil {
		return 0, p.errorf(start, end, "invalid arity %q: want an unsigned integer literal", text)
	}
	if n == 0 {
		return 0, p.errorf(start, end, "arity must be at least 1")
	}
	if n > MaxCount {
		return 0, p.errorf(start, end, "arity %d exceeds maximum of %d", n, MaxCount)
	}
	return int(n), nil
}

// matchParen returns the offset of the parenthesis
// closing the one at open.
func (p *parseState) matchParen(open int) (int, error) {
	var stack []byte
	for i := open; i < len(p.src); i++ {
		switch c := p.src[i]; c {
		case '(':
			stack = append(stack, ')')
		case '[':
			stack = append(stack, ']')
		case '{':
			stack = append(stack, '}')
		case ')', ']', '}':
			if c != stack[len(stack)-1] {
				return 0, p.errorf(i, i+1, "unexpected %q in bound list", c)
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return i, nil
			}
		}
	}
	return 0, p.errorf(open, open+1, "unclosed '('")
}

// splitTop returns the offsets of all occurrences of sep in
// src[start:end] that are not nested inside brackets.
// The caller guarantees that the brackets in the range balance.
func (p *parseState) splitTop(start, end int, sep byte) []int {
	var offs []int
	depth := 0
	for i := start; i < end; i++ {
		switch c := p.src[i]; c {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case sep:
			if depth == 0 {
				offs = append(offs, i)
			}
		}
	}
	return offs
}

func (p *parseState) trim(start, end int) (int, int) {
	for start < end && isSpace(p.src[start]) {
		start++
	}
	for end > start && isSpace(p.src[end-1]) {
		end--
	}
	return start, end
}

func (p *parseState) skipSpace(i int) int {
	for i < len(p.src) && isSpace(p.src[i]) {
		i++
	}
	return i
}

// wordEnd returns the end of the run of non-space
// characters starting at i.
func (p *parseState) wordEnd(i int) int {
	for i < len(p.src) && !isSpace(p.src[i]) {
		i++
	}
	return i
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// syntaxError converts an error from go/parser on src[start:end]
// into an *Error pointing into the invocation.
func (p *parseState) syntaxError(start, end int, what string, err error) error {
	var list scanner.ErrorList
	if errors.As(err, &list) && len(list) > 0 {
		off := start + list[0].Pos.Offset
		if off > end {
			off = end
		}
		return p.errorf(off, end, "%s: %s", what, list[0].Msg)
	}
	return p.errorf(start, end, "%s: %v", what, err)
}

func (p *parseState) errorf(start, end int, format string, args ...any) error {
	return &Error{
		Pos: p.position(start),
		End: p.position(end),
		Msg: fmt.Sprintf(format, args...),
	}
}

// position returns the position of the given offset into p.src.
func (p *parseState) position(off int) token.Position {
	pos := p.base
	pos.Offset += off
	prefix := p.src[:off]
	if n := strings.Count(prefix, "\n"); n > 0 {
		pos.Line += n
		pos.Column = off - strings.LastIndexByte(prefix, '\n')
	} else {
		pos.Column += off
	}
	return pos
}
