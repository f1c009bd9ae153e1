package lsp

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dhamidi/isgci/diag"
	"github.com/dhamidi/isgci/iq"
	"github.com/dhamidi/isgci/iqlex"
)

// Problem is a malformed query in a document. Line is 0-based, columns
// are 0-based byte offsets into the line.
type Problem struct {
	Line     int
	Column   int
	EndCol   int
	Message  string
	Query    string
	Filename string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s:%d:%d: %s", p.Filename, p.Line+1, p.Column+1, p.Message)
}

// Lines splits a query document into lines without their terminators.
func Lines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// IsQueryLine reports whether line holds a query: it is neither blank nor
// a comment starting with comment.
func IsQueryLine(line, comment string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	return comment == "" || !strings.HasPrefix(trimmed, comment)
}

// Analyze parses every query line of a document and returns one Problem
// per malformed query.
func Analyze(filename, text, comment string) []Problem {
	var problems []Problem
	for i, line := range Lines(text) {
		if !IsQueryLine(line, comment) {
			continue
		}
		r := iq.Parse(line, iq.WithName(fmt.Sprintf("%s:%d", filename, i+1)), iq.WithLogger(log))
		if r.State != iq.StateMalformed {
			continue
		}
		problems = append(problems, locate(filename, i, line))
	}
	return problems
}

// locate asks the strict grammar where a malformed query goes wrong. The
// problem spans from there to the end of the line.
func locate(filename string, lineNo int, line string) Problem {
	p := Problem{
		Line:     lineNo,
		EndCol:   len(line),
		Message:  "malformed query",
		Query:    line,
		Filename: filename,
	}
	err := diag.Check(filename, line)
	var derr *diag.Error
	if errors.As(err, &derr) {
		p.Column = derr.Offset
		p.Message = derr.Message
	} else if err == nil {
		log.Warningf("%s:%d: strict grammar accepts malformed query %q", filename, lineNo+1, line)
	}
	if p.Column >= p.EndCol {
		p.Column = max(p.EndCol-1, 0)
	}
	return p
}

// Completion is a suggested insertion.
type Completion struct {
	Label  string
	Detail string
}

var (
	relCompletions = []Completion{
		{Label: "<", Detail: "proper subclass of"},
		{Label: "<=", Detail: "subclass of or equal to"},
		{Label: ">", Detail: "proper superclass of"},
		{Label: ">=", Detail: "superclass of or equal to"},
		{Label: "=", Detail: "equivalent to"},
	}
	notCompletion   = Completion{Label: "not", Detail: "negate the next factor"}
	groupCompletion = Completion{Label: "(", Detail: "start a group"}
	andCompletion   = Completion{Label: "and", Detail: "both operands hold"}
	orCompletion    = Completion{Label: "or", Detail: "either operand holds"}
	closeCompletion = Completion{Label: ")", Detail: "close the group"}
)

// Complete suggests what may follow line[:col].
func Complete(line string, col int) []Completion {
	col = min(max(col, 0), len(line))
	tokens, err := iqlex.Tokenize(line[:col])
	if err != nil {
		log.Errorf("tokenize: %s", err)
		return nil
	}
	tokens = tokens[:len(tokens)-1] // EOF

	// A word touching the cursor is still being typed.
	prefix := ""
	if n := len(tokens); n > 0 {
		last := tokens[n-1]
		if last.End().Offset == col && isWord(last.Kind) {
			prefix = last.Literal
			tokens = tokens[:n-1]
		}
	}

	prev := ""
	depth := 0
	for _, tok := range tokens {
		switch tok.Kind {
		case "lparen":
			depth++
		case "rparen":
			depth--
		}
		prev = tok.Kind
	}

	var candidates []Completion
	switch prev {
	case "", "and", "or", "not", "lparen":
		candidates = append(candidates, relCompletions...)
		if prev != "not" {
			candidates = append(candidates, notCompletion)
		}
		candidates = append(candidates, groupCompletion)
	case "identifier", "quoted", "rparen":
		candidates = append(candidates, andCompletion, orCompletion)
		if depth > 0 {
			candidates = append(candidates, closeCompletion)
		}
	}

	return slices.DeleteFunc(candidates, func(c Completion) bool {
		return !strings.HasPrefix(c.Label, prefix)
	})
}

func isWord(kind string) bool {
	switch kind {
	case "identifier", "and", "or", "not":
		return true
	}
	return false
}
