package iq

import "strings"

const (
	whitespace = " \t\r\n"
	letters    = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	identChars = letters + "0123456789_"
	lineEnds   = "\r\n"
)

// scanner is a cursor over the query text. Every primitive leaves the
// cursor untouched when it does not match.
type scanner struct {
	src string
	pos int
}

func (s *scanner) reset(src string) {
	s.src = src
	s.pos = 0
}

func (s *scanner) atEOF() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) literal(tok string) bool {
	if !strings.HasPrefix(s.src[s.pos:], tok) {
		return false
	}
	s.pos += len(tok)
	return true
}

func (s *scanner) oneOf(set string) bool {
	if s.atEOF() || strings.IndexByte(set, s.src[s.pos]) < 0 {
		return false
	}
	s.pos++
	return true
}

func (s *scanner) noneOf(set string) bool {
	if s.atEOF() || strings.IndexByte(set, s.src[s.pos]) >= 0 {
		return false
	}
	s.pos++
	return true
}

func (s *scanner) anyChar() bool {
	if s.atEOF() {
		return false
	}
	s.pos++
	return true
}

func (s *scanner) lookahead(c byte) bool {
	return !s.atEOF() && s.src[s.pos] == c
}

// lookaheadSet reports whether the next byte is in set.
func (s *scanner) lookaheadSet(set string) bool {
	return !s.atEOF() && strings.IndexByte(set, s.src[s.pos]) >= 0
}

func (s *scanner) notAhead(tok string) bool {
	return !strings.HasPrefix(s.src[s.pos:], tok)
}
