package iq

import "fmt"

type ruleID int

const (
	ruleTop ruleID = iota
	ruleWellFormed
	ruleRecover
	ruleExpr
	ruleTerm
	ruleNotFactor
	ruleFactor
	ruleRel
	ruleRelOp
	ruleGraphClass
	ruleIdentifier
	ruleQuotedName
	ruleKeyword
	ruleAnd
	ruleOr
	ruleNot
	ruleLParen
	ruleRParen
	ruleSpace

	numRules
)

var ruleNames = [...]string{
	ruleTop:        "top",
	ruleWellFormed: "wellFormed",
	ruleRecover:    "recover",
	ruleExpr:       "expr",
	ruleTerm:       "term",
	ruleNotFactor:  "notfactor",
	ruleFactor:     "factor",
	ruleRel:        "rel",
	ruleRelOp:      "relOp",
	ruleGraphClass: "graphclass",
	ruleIdentifier: "identifier",
	ruleQuotedName: "quotedName",
	ruleKeyword:    "keyword",
	ruleAnd:        "AND",
	ruleOr:         "OR",
	ruleNot:        "NOT",
	ruleLParen:     "LPAREN",
	ruleRParen:     "RPAREN",
	ruleSpace:      "skipWs",
}

func (r ruleID) String() string {
	if r >= 0 && r < numRules {
		return ruleNames[r]
	}
	return fmt.Sprintf("rule(%d)", int(r))
}

type state uint8

const (
	stateUnknown state = iota
	stateAccepted
	stateRejected
)

type memoKey struct {
	rule ruleID
	pos  int
}

// memoEntry is the cached outcome of one rule at one position. text is
// the semantic value of token rules (operator, unquoted class name).
type memoEntry struct {
	state state
	end   int
	text  string
}

// Stats describes the work done by one parse.
type Stats struct {
	Evaluations int // rule bodies executed
	Hits        int // evaluations answered from the cache
	Entries     int // cache entries at the end of the parse
}

func (s Stats) String() string {
	return fmt.Sprintf("%d evaluations, %d cache hits, %d entries", s.Evaluations, s.Hits, s.Entries)
}

// A ruleBody runs a rule at the current position. It returns the
// semantic text of the match and whether the rule accepted. Bodies issue
// builder notifications only at their tail, once every sub-rule has
// accepted, so a notification fires exactly when the body accepts.
type ruleBody func() (string, bool)

// engine is the packrat core: it evaluates rules at most once per
// position and replays cached outcomes afterwards.
type engine struct {
	sc    scanner
	memo  map[memoKey]memoEntry
	stats Stats
}

func (e *engine) reset(src string) {
	e.sc.reset(src)
	e.memo = make(map[memoKey]memoEntry, len(src)+1)
	e.stats = Stats{}
}

func (e *engine) lookup(key memoKey) memoEntry {
	ent, ok := e.memo[key]
	if !ok {
		return memoEntry{state: stateUnknown}
	}
	return ent
}

// apply runs rule id at the cursor. On acceptance the cursor is left at
// the end of the match; on rejection it is restored.
func (e *engine) apply(id ruleID, body ruleBody) (string, bool) {
	key := memoKey{rule: id, pos: e.sc.pos}
	switch ent := e.lookup(key); ent.state {
	case stateAccepted:
		e.stats.Hits++
		e.sc.pos = ent.end
		return ent.text, true
	case stateRejected:
		e.stats.Hits++
		return "", false
	}

	e.stats.Evaluations++
	start := e.sc.pos
	text, ok := body()
	if !ok {
		e.sc.pos = start
		e.memo[key] = memoEntry{state: stateRejected}
		return "", false
	}
	e.memo[key] = memoEntry{state: stateAccepted, end: e.sc.pos, text: text}
	return text, true
}

// predicate runs rule id as a lookahead: the outcome is cached like any
// other rule but the cursor never moves.
func (e *engine) predicate(id ruleID, body ruleBody) bool {
	key := memoKey{rule: id, pos: e.sc.pos}
	switch ent := e.lookup(key); ent.state {
	case stateAccepted:
		e.stats.Hits++
		return true
	case stateRejected:
		e.stats.Hits++
		return false
	}

	e.stats.Evaluations++
	start := e.sc.pos
	_, ok := body()
	e.sc.pos = start
	if ok {
		e.memo[key] = memoEntry{state: stateAccepted, end: start}
	} else {
		e.memo[key] = memoEntry{state: stateRejected}
	}
	return ok
}

func (e *engine) finish() Stats {
	e.stats.Entries = len(e.memo)
	return e.stats
}
