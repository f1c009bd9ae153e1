package iq

import (
	"bytes"
	"testing"
	"unicode"
)

func TestGrammarVerifies(t *testing.T) {
	g, err := Grammar()
	if err != nil {
		t.Fatalf("Grammar: %v", err)
	}
	if g[GrammarStart] == nil {
		t.Fatalf("start production %s missing", GrammarStart)
	}
	for _, kind := range TokenKinds {
		prod := g[kind]
		if prod == nil {
			t.Errorf("token kind %s has no production", kind)
			continue
		}
		if !unicode.IsLower(rune(kind[0])) {
			t.Errorf("token kind %s is not a lexical production", kind)
		}
	}
}

func TestGrammarSourceIsCopy(t *testing.T) {
	src := GrammarSource()
	src[0] = '#'
	if bytes.Equal(src, GrammarSource()) {
		t.Error("GrammarSource returned the embedded bytes")
	}
}
