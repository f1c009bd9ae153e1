package iq

import (
	"github.com/tliron/commonlog"
)

// DefaultMaxDepth is the group nesting limit of a new Parser.
const DefaultMaxDepth = 10000

type Option func(*Parser)

// WithLogger sets the logger used for debug output.
func WithLogger(log commonlog.Logger) Option {
	return func(p *Parser) {
		p.log = log
	}
}

// WithMaxDepth limits how deeply groups may nest. A query nested deeper
// is malformed.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		p.maxDepth = n
	}
}

// WithName names the query source in log output, e.g. a file and line.
func WithName(name string) Option {
	return func(p *Parser) {
		p.name = name
	}
}

// Parser parses IQ text and reports the grammar nodes it recognizes to a
// Builder. A Parser is not safe for concurrent use; use one Parser per
// goroutine.
type Parser struct {
	engine
	b         Builder
	log       commonlog.Logger
	name      string
	maxDepth  int
	depth     int
	active    bool
	malformed bool
	last      Stats
}

// NewParser returns a parser notifying b.
func NewParser(b Builder, opts ...Option) *Parser {
	if b == nil {
		panic("iq: NewParser called with nil Builder")
	}
	p := &Parser{
		b:    b,
		log:  commonlog.GetLogger("isgci.iq"),
		name:     "query",
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Builder returns the builder notified during Parse.
func (p *Parser) Builder() Builder {
	return p.b
}

// Stats returns the work done by the last call to Parse.
func (p *Parser) Stats() Stats {
	return p.last
}

// Malformed reports whether the last call to Parse took the recovery path.
func (p *Parser) Malformed() bool {
	return p.malformed
}

// Parse parses src. It returns false only when src is empty. Any other
// input is accepted: if it is not a well-formed query the builder
// receives OnMalformed, so callers must check for that rather than rely
// on the return value.
func (p *Parser) Parse(src string) bool {
	if p.active {
		panic("iq: Parse called while a parse is in progress")
	}
	p.active = true
	defer func() { p.active = false }()

	if r, ok := p.b.(resetter); ok {
		r.Reset()
	}
	p.malformed = false
	p.depth = 0
	p.reset(src)

	ok := p.top()

	p.last = p.finish()
	p.memo = nil

	switch {
	case !ok:
		p.log.Debugf("%s: empty query", p.name)
	case p.malformed:
		p.log.Debugf("%s: malformed query %q", p.name, src)
	}
	p.log.Debugf("%s: %s", p.name, p.last)
	return ok
}

// State classifies the outcome of a parse.
type State int

const (
	StateWellFormed State = iota
	StateMalformed
	StateEmpty
)

func (s State) String() string {
	switch s {
	case StateWellFormed:
		return "well-formed"
	case StateMalformed:
		return "malformed"
	case StateEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// Result is the outcome of Parse.
type Result struct {
	Query string
	Root  *Node
	State State
	Stats Stats
}

// Parse parses src into a tree using a fresh TreeBuilder.
func Parse(src string, opts ...Option) *Result {
	b := NewTreeBuilder()
	p := NewParser(b, opts...)
	r := &Result{Query: src}
	switch {
	case !p.Parse(src):
		r.State = StateEmpty
	case p.Malformed():
		r.State = StateMalformed
		r.Root = b.Root()
	default:
		r.State = StateWellFormed
		r.Root = b.Root()
	}
	r.Stats = p.Stats()
	return r
}
