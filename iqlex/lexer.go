// Package iqlex tokenizes IQ text using the lexical productions of the
// IQ grammar.
package iqlex

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/dhamidi/isgci/iq"
	"golang.org/x/exp/ebnf"
)

const (
	KindEOF   = "EOF"
	KindError = "ERROR"
)

// Position represents a location in a query.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token represents a lexical token with its position.
type Token struct {
	Kind     string
	Literal  string
	Position Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s %s %q", t.Position, t.Kind, t.Literal)
}

// End returns the position just past the token, assuming it does not
// span lines.
func (t Token) End() Position {
	end := t.Position
	end.Offset += len(t.Literal)
	end.Column += len(t.Literal)
	return end
}

// memoKey is used for memoization of match results.
type memoKey struct {
	name   string
	offset int
}

// Lexer tokenizes a query. Whitespace separates tokens and is not
// reported.
type Lexer struct {
	grammar  ebnf.Grammar
	kinds    []string
	input    []byte
	filename string
	pos      int
	line     int
	column   int
	memo     map[memoKey]int  // match length, -1 = no match
	visiting map[memoKey]bool // cycle detection
}

// New creates a lexer over input using the embedded IQ grammar.
func New(input []byte, filename string) (*Lexer, error) {
	g, err := iq.Grammar()
	if err != nil {
		return nil, fmt.Errorf("load grammar: %w", err)
	}
	return &Lexer{
		grammar:  g,
		kinds:    iq.TokenKinds,
		input:    input,
		filename: filename,
		line:     1,
		column:   1,
		memo:     make(map[memoKey]int),
		visiting: make(map[memoKey]bool),
	}, nil
}

// Position returns the current position in the input.
func (l *Lexer) Position() Position {
	return Position{
		Filename: l.filename,
		Offset:   l.pos,
		Line:     l.line,
		Column:   l.column,
	}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) skipWhitespace() {
	for {
		switch l.peek() {
		case ' ', '\t', '\r', '\n':
			l.advance()
		default:
			return
		}
	}
}

// NextToken returns the next token, or a KindEOF token and io.EOF at the
// end of input. Characters that start no token come back one at a time as
// KindError tokens.
func (l *Lexer) NextToken() (Token, error) {
	l.skipWhitespace()
	if l.pos >= len(l.input) {
		return Token{Kind: KindEOF, Position: l.Position()}, io.EOF
	}

	startPos := l.Position()
	startOffset := l.pos

	// Clear memoization cache for each new token (positions change)
	l.memo = make(map[memoKey]int)

	bestKind := ""
	bestLen := 0
	for _, name := range l.kinds {
		l.visiting = make(map[memoKey]bool)
		n := l.matchName(name, startOffset)
		if n > bestLen {
			bestLen = n
			bestKind = name
		}
	}

	if bestLen == 0 {
		_, size := utf8.DecodeRune(l.input[startOffset:])
		for i := 0; i < size; i++ {
			l.advance()
		}
		return Token{Kind: KindError, Literal: string(l.input[startOffset:l.pos]), Position: startPos}, nil
	}

	for i := 0; i < bestLen; i++ {
		l.advance()
	}
	return Token{
		Kind:     bestKind,
		Literal:  string(l.input[startOffset : startOffset+bestLen]),
		Position: startPos,
	}, nil
}

// match attempts to match an expression at the given offset. It returns
// the length of the match, or -1 if the expression does not match.
func (l *Lexer) match(expr ebnf.Expression, offset int) int {
	switch e := expr.(type) {
	case nil:
		return 0

	case *ebnf.Token:
		return l.matchToken(e.String, offset)

	case *ebnf.Range:
		return l.matchRange(e.Begin.String, e.End.String, offset)

	case ebnf.Sequence:
		pos := offset
		for _, item := range e {
			n := l.match(item, pos)
			if n < 0 {
				return -1
			}
			pos += n
		}
		return pos - offset

	case ebnf.Alternative:
		best := -1
		for _, alt := range e {
			if n := l.match(alt, offset); n > best {
				best = n
			}
		}
		return best

	case *ebnf.Repetition:
		pos := offset
		for {
			n := l.match(e.Body, pos)
			if n <= 0 {
				break
			}
			pos += n
		}
		return pos - offset

	case *ebnf.Option:
		if n := l.match(e.Body, offset); n > 0 {
			return n
		}
		return 0

	case *ebnf.Group:
		return l.match(e.Body, offset)

	case *ebnf.Name:
		return l.matchName(e.String, offset)

	default:
		return -1
	}
}

// matchName matches a named production with memoization and cycle
// detection. Lengths of zero count as no match at the token level.
func (l *Lexer) matchName(name string, offset int) int {
	key := memoKey{name: name, offset: offset}

	if result, ok := l.memo[key]; ok {
		return result
	}
	if l.visiting[key] {
		return -1
	}

	prod, ok := l.grammar[name]
	if !ok || prod.Expr == nil {
		l.memo[key] = -1
		return -1
	}

	l.visiting[key] = true
	result := l.match(prod.Expr, offset)
	delete(l.visiting, key)

	l.memo[key] = result
	return result
}

func (l *Lexer) matchToken(s string, offset int) int {
	if offset+len(s) > len(l.input) {
		return -1
	}
	if string(l.input[offset:offset+len(s)]) == s {
		return len(s)
	}
	return -1
}

// matchRange matches one character in a range such as "a" … "z".
func (l *Lexer) matchRange(begin, end string, offset int) int {
	if offset >= len(l.input) {
		return -1
	}
	lo, _ := utf8.DecodeRuneInString(begin)
	hi, _ := utf8.DecodeRuneInString(end)
	r, size := utf8.DecodeRune(l.input[offset:])
	if r == utf8.RuneError && size <= 1 {
		return -1
	}
	if r >= lo && r <= hi {
		return size
	}
	return -1
}

// Tokenize reads all tokens from input. The last token is always
// KindEOF.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err == io.EOF {
			tokens = append(tokens, tok)
			break
		}
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// Tokenize is a shorthand for New followed by Lexer.Tokenize.
func Tokenize(query string) ([]Token, error) {
	l, err := New([]byte(query), "")
	if err != nil {
		return nil, err
	}
	return l.Tokenize()
}
