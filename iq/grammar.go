package iq

// The IQ grammar, loosest to tightest binding:
//
//	top        := skipWs expr EOF | !EOF anyChar* EOF
//	expr       := term (OR term)*
//	term       := notfactor (AND notfactor)*
//	notfactor  := NOT? factor
//	factor     := rel | LPAREN expr (RPAREN | EOF)
//	rel        := relOp graphclass
//	graphclass := identifier | quotedName
//
// Every token rule skips the whitespace that follows it.

func (p *Parser) top() bool {
	_, ok := p.apply(ruleTop, func() (string, bool) {
		if p.wellFormed() || p.recovery() {
			return "", true
		}
		return "", false
	})
	return ok
}

func (p *Parser) wellFormed() bool {
	_, ok := p.apply(ruleWellFormed, func() (string, bool) {
		p.space()
		if !p.expr() {
			return "", false
		}
		return "", p.sc.atEOF()
	})
	return ok
}

// recovery swallows the rest of a non-empty input as garbage.
func (p *Parser) recovery() bool {
	_, ok := p.apply(ruleRecover, func() (string, bool) {
		if p.sc.atEOF() {
			return "", false
		}
		for p.sc.anyChar() {
		}
		p.malformed = true
		p.b.OnMalformed()
		return "", true
	})
	return ok
}

func (p *Parser) expr() bool {
	_, ok := p.apply(ruleExpr, func() (string, bool) {
		if !p.term() {
			return "", false
		}
		n := 1
		for {
			save := p.sc.pos
			if !p.or() {
				break
			}
			if !p.term() {
				p.sc.pos = save
				break
			}
			n++
		}
		if n > 1 {
			p.b.OnFold(OpOr, n)
		}
		return "", true
	})
	return ok
}

func (p *Parser) term() bool {
	_, ok := p.apply(ruleTerm, func() (string, bool) {
		if !p.notFactor() {
			return "", false
		}
		n := 1
		for {
			save := p.sc.pos
			if !p.and() {
				break
			}
			if !p.notFactor() {
				p.sc.pos = save
				break
			}
			n++
		}
		if n > 1 {
			p.b.OnFold(OpAnd, n)
		}
		return "", true
	})
	return ok
}

func (p *Parser) notFactor() bool {
	_, ok := p.apply(ruleNotFactor, func() (string, bool) {
		negated := p.not()
		if !p.factor() {
			return "", false
		}
		if negated {
			p.b.OnNot()
		}
		return "", true
	})
	return ok
}

func (p *Parser) factor() bool {
	_, ok := p.apply(ruleFactor, func() (string, bool) {
		if p.rel() {
			return "", true
		}
		if !p.lparen() || p.depth >= p.maxDepth {
			return "", false
		}
		p.depth++
		ok := p.expr()
		p.depth--
		if !ok {
			return "", false
		}
		// A missing closing parenthesis is tolerated at end of input.
		if !p.rparen() && !p.sc.atEOF() {
			return "", false
		}
		p.b.OnGrouped()
		return "", true
	})
	return ok
}

func (p *Parser) rel() bool {
	_, ok := p.apply(ruleRel, func() (string, bool) {
		op, ok := p.relOp()
		if !ok {
			return "", false
		}
		class, ok := p.graphClass()
		if !ok {
			return "", false
		}
		p.b.OnAtom(RelOp(op), class)
		return "", true
	})
	return ok
}

func (p *Parser) relOp() (string, bool) {
	return p.apply(ruleRelOp, func() (string, bool) {
		for _, op := range relOps {
			if p.sc.literal(string(op)) {
				p.space()
				return string(op), true
			}
		}
		return "", false
	})
}

func (p *Parser) graphClass() (string, bool) {
	return p.apply(ruleGraphClass, func() (string, bool) {
		name, ok := p.identifier()
		if !ok {
			name, ok = p.quotedName()
		}
		if !ok {
			return "", false
		}
		p.space()
		return name, true
	})
}

func (p *Parser) identifier() (string, bool) {
	return p.apply(ruleIdentifier, func() (string, bool) {
		if p.keywordAhead() {
			return "", false
		}
		start := p.sc.pos
		if !p.sc.oneOf(letters) {
			return "", false
		}
		for p.sc.oneOf(identChars) {
		}
		return p.sc.src[start:p.sc.pos], true
	})
}

// quotedName accepts a name in double quotes. The closing quote may be
// missing when the line or the input ends first.
func (p *Parser) quotedName() (string, bool) {
	return p.apply(ruleQuotedName, func() (string, bool) {
		if !p.sc.literal(`"`) {
			return "", false
		}
		start := p.sc.pos
		for p.sc.notAhead(`"`) && p.sc.noneOf(lineEnds) {
		}
		name := p.sc.src[start:p.sc.pos]
		if p.sc.lookahead('"') {
			p.sc.pos++
		}
		return name, true
	})
}

func (p *Parser) keywordAhead() bool {
	return p.predicate(ruleKeyword, func() (string, bool) {
		return "", p.and() || p.or() || p.not()
	})
}

func (p *Parser) and() bool { return p.keyword(ruleAnd, "and") }
func (p *Parser) or() bool  { return p.keyword(ruleOr, "or") }
func (p *Parser) not() bool { return p.keyword(ruleNot, "not") }

// keyword matches word unless an identifier character follows it, so
// "andromeda" is never read as "and" "romeda".
func (p *Parser) keyword(id ruleID, word string) bool {
	_, ok := p.apply(id, func() (string, bool) {
		if !p.sc.literal(word) || p.sc.lookaheadSet(identChars) {
			return "", false
		}
		p.space()
		return word, true
	})
	return ok
}

func (p *Parser) lparen() bool { return p.punct(ruleLParen, "(") }
func (p *Parser) rparen() bool { return p.punct(ruleRParen, ")") }

func (p *Parser) punct(id ruleID, tok string) bool {
	_, ok := p.apply(id, func() (string, bool) {
		if !p.sc.literal(tok) {
			return "", false
		}
		p.space()
		return tok, true
	})
	return ok
}

// space skips whitespace; it always accepts.
func (p *Parser) space() {
	p.apply(ruleSpace, func() (string, bool) {
		start := p.sc.pos
		for p.sc.oneOf(whitespace) {
		}
		if p.sc.pos > start {
			p.b.OnSpace(start, p.sc.pos)
		}
		return "", true
	})
}
