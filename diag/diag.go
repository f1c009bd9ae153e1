// Package diag locates syntax errors in IQ queries.
//
// The packrat parser in package iq only reports that a query is
// malformed. Check parses the same language with a strict grammar and
// reports where parsing stopped.
package diag

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

type query struct {
	Expr *expr `parser:"@@"`
}

type expr struct {
	Terms []*term `parser:"@@ ( 'or' @@ )*"`
}

type term struct {
	Factors []*notFactor `parser:"@@ ( 'and' @@ )*"`
}

type notFactor struct {
	Not    bool    `parser:"@'not'?"`
	Factor *factor `parser:"@@"`
}

// A group may be left open at the end of the query.
type factor struct {
	Rel   *rel  `parser:"  @@"`
	Group *expr `parser:"| '(' @@ ')'?"`
}

type rel struct {
	Op    string `parser:"@Rel"`
	Class string `parser:"@(Ident | String)"`
}

var iqLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Keyword", Pattern: `(?:and|or|not)\b`},
	{Name: "Ident", Pattern: `[A-Za-z][A-Za-z0-9_]*`},
	{Name: "String", Pattern: `"[^"\r\n]*"?`},
	{Name: "Rel", Pattern: `<=|>=|<|>|=`},
	{Name: "Punct", Pattern: `[()]`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

var parser = participle.MustBuild[query](
	participle.Lexer(iqLexer),
	participle.Elide("Whitespace"),
)

// Error is a located syntax error. Line and Column are 1-based; Column
// counts bytes.
type Error struct {
	Filename string
	Offset   int
	Line     int
	Column   int
	Message  string
}

func (e *Error) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("%s:%d:%d: %s", e.Filename, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// ErrEmpty is returned by Check for an empty or whitespace-only query.
var ErrEmpty = errors.New("empty query")

// Check parses src with the strict grammar. It returns nil for a
// well-formed query, ErrEmpty for a blank one and an *Error otherwise.
func Check(filename, src string) error {
	if strings.TrimLeft(src, " \t\r\n") == "" {
		return ErrEmpty
	}
	_, err := parser.ParseString(filename, src)
	if err == nil {
		return nil
	}
	var perr participle.Error
	if !errors.As(err, &perr) {
		return fmt.Errorf("check query: %w", err)
	}
	pos := perr.Position()
	return &Error{
		Filename: filename,
		Offset:   pos.Offset,
		Line:     pos.Line,
		Column:   pos.Column,
		Message:  perr.Message(),
	}
}
