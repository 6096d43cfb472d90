package lexer

import (
	"fmt"
	"strings"

	"perlhq/critic/pkg/ptree"
)

// Error describes a lexical or structural problem in the source text.
type Error struct {
	Loc ptree.Location
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Loc, e.Msg)
}

// token is a single lexical unit with its source position.
type token struct {
	kind ptree.Kind
	text string
	loc  ptree.Location
}

// scanner walks the source text left to right and produces tokens.
type scanner struct {
	src  string
	file string
	pos  int
	line int
	col  int
}

func newScanner(file, src string) *scanner {
	return &scanner{src: src, file: file, line: 1, col: 1}
}

func (s *scanner) location() ptree.Location {
	return ptree.Location{File: s.file, Line: s.line, Column: s.col}
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}
	return s.src[s.pos]
}

func (s *scanner) peekAt(offset int) byte {
	if s.pos+offset >= len(s.src) {
		return 0
	}
	return s.src[s.pos+offset]
}

// advance consumes n bytes, tracking line and column.
func (s *scanner) advance(n int) string {
	start := s.pos
	for i := 0; i < n && s.pos < len(s.src); i++ {
		if s.src[s.pos] == '\n' {
			s.line++
			s.col = 1
		} else {
			s.col++
		}
		s.pos++
	}
	return s.src[start:s.pos]
}

// multiCharOperators are matched longest-first before single-byte operators.
var multiCharOperators = []string{
	"<=>", "**=", "||=", "&&=", "//=",
	"=~", "!~", "==", "!=", "<=", ">=", "=>", "->",
	"++", "--", "**", "||", "&&", "//", "..",
	"+=", "-=", "*=", "/=", ".=", "x=", "<<", ">>",
}

func isWordByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

func isWordStart(c byte) bool {
	return isWordByte(c) && !(c >= '0' && c <= '9')
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// scan tokenizes the whole source, cosmetic tokens included.
func (s *scanner) scan() []token {
	var toks []token
	for !s.eof() {
		loc := s.location()
		c := s.peek()

		switch {
		case isSpaceByte(c):
			n := 0
			for s.pos+n < len(s.src) && isSpaceByte(s.src[s.pos+n]) {
				n++
			}
			toks = append(toks, token{ptree.KindWhitespace, s.advance(n), loc})

		case c == '#':
			n := 0
			for s.pos+n < len(s.src) && s.src[s.pos+n] != '\n' {
				n++
			}
			toks = append(toks, token{ptree.KindComment, s.advance(n), loc})

		case isWordStart(c):
			n := 1
			for s.pos+n < len(s.src) && isWordByte(s.src[s.pos+n]) {
				n++
			}
			toks = append(toks, token{ptree.KindWord, s.advance(n), loc})

		case c >= '0' && c <= '9':
			n := 1
			seenDot := false
			for s.pos+n < len(s.src) {
				b := s.src[s.pos+n]
				if b == '.' && !seenDot && s.peekAt(n+1) != '.' {
					seenDot = true
					n++
					continue
				}
				if !(b >= '0' && b <= '9') && b != '_' {
					break
				}
				n++
			}
			toks = append(toks, token{ptree.KindNumber, s.advance(n), loc})

		case c == '$' || c == '@' || c == '%' || c == '&':
			if isWordStart(s.peekAt(1)) || s.peekAt(1) == '_' {
				n := 2
				for s.pos+n < len(s.src) && isWordByte(s.src[s.pos+n]) {
					n++
				}
				toks = append(toks, token{ptree.KindSymbol, s.advance(n), loc})
			} else {
				toks = append(toks, token{ptree.KindOperator, s.advance(1), loc})
			}

		case c == '\'' || c == '"':
			toks = append(toks, token{ptree.KindQuote, s.scanQuote(), loc})

		case c == '<':
			if text, ok := s.tryAngleLiteral(); ok {
				toks = append(toks, token{ptree.KindReadline, text, loc})
			} else {
				toks = append(toks, s.scanOperator(loc))
			}

		case strings.IndexByte(";{}()[]", c) >= 0:
			toks = append(toks, token{ptree.KindStructure, s.advance(1), loc})

		default:
			toks = append(toks, s.scanOperator(loc))
		}
	}
	return toks
}

// scanQuote consumes a single- or double-quoted string, honoring backslash
// escapes. An unterminated string runs to end of input.
func (s *scanner) scanQuote() string {
	quote := s.peek()
	n := 1
	for s.pos+n < len(s.src) {
		b := s.src[s.pos+n]
		if b == '\\' {
			n += 2
			continue
		}
		n++
		if b == quote {
			break
		}
	}
	return s.advance(n)
}

// tryAngleLiteral attempts to consume a single-token angle-bracket literal
// starting at "<". It succeeds only when the bracket closes over a run of
// handle or glob characters with no intervening whitespace; otherwise the
// "<" is left for the operator scanner, reproducing Perl's own
// mis-tokenization of spaced forms like "< $fh >".
func (s *scanner) tryAngleLiteral() (string, bool) {
	n := 1
	for s.pos+n < len(s.src) {
		b := s.src[s.pos+n]
		if b == '>' {
			return s.advance(n + 1), true
		}
		if !isAngleInteriorByte(b) {
			return "", false
		}
		n++
	}
	return "", false
}

// isAngleInteriorByte reports whether b may appear inside a single-token
// angle literal: handle names, scalar handles, and glob patterns.
func isAngleInteriorByte(b byte) bool {
	if isWordByte(b) {
		return true
	}
	switch b {
	case '$', '*', '?', '.', '-', ':', '/', '\\', '[', ']':
		return true
	}
	return false
}

func (s *scanner) scanOperator(loc ptree.Location) token {
	for _, op := range multiCharOperators {
		if strings.HasPrefix(s.src[s.pos:], op) {
			return token{ptree.KindOperator, s.advance(len(op)), loc}
		}
	}
	return token{ptree.KindOperator, s.advance(1), loc}
}
