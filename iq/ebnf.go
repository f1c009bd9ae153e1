package iq

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	"golang.org/x/exp/ebnf"
)

//go:embed iq.ebnf
var grammarSource []byte

// GrammarStart is the start production of the IQ grammar.
const GrammarStart = "Query"

// TokenKinds lists the lexical productions of the grammar that form
// tokens. When two kinds match the same length, the earlier one wins, so
// keywords take precedence over identifiers.
var TokenKinds = []string{"and", "or", "not", "lparen", "rparen", "relop", "identifier", "quoted"}

// GrammarSource returns the IQ grammar in EBNF notation.
func GrammarSource() []byte {
	return bytes.Clone(grammarSource)
}

var loadGrammar = sync.OnceValues(func() (ebnf.Grammar, error) {
	g, err := ebnf.Parse("iq.ebnf", bytes.NewReader(grammarSource))
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	if err := ebnf.Verify(g, GrammarStart); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}
	return g, nil
})

// Grammar returns the parsed and verified IQ grammar. Callers must not
// modify it.
func Grammar() (ebnf.Grammar, error) {
	return loadGrammar()
}
