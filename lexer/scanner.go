// Package lexer implements a lazy, allocation-free scanner: it produces one
// token at a time on demand from a borrowed source string.
package lexer

import (
	"strconv"

	"nilan/token"
)

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isAlpha(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isAlphaNumeric(b byte) bool {
	return isAlpha(b) || isDigit(b)
}

// Scanner is a lazy token iterator over an immutable source string. It
// performs no heap allocation per token; lexemes are slices into source.
type Scanner struct {
	source  string
	start   token.Location
	current token.Location
}

// New constructs a Scanner over source. source must outlive every Token
// produced by this Scanner, since lexemes slice directly into it.
func New(source string) *Scanner {
	loc := token.Location{Offset: 0, Line: 1, Column: 1}
	return &Scanner{source: source, start: loc, current: loc}
}

func (s *Scanner) isAtEnd() bool {
	return s.current.Offset >= len(s.source)
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current.Offset]
}

func (s *Scanner) peekNext() byte {
	if s.current.Offset+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current.Offset+1]
}

// advance consumes one byte and returns it, updating location tracking.
func (s *Scanner) advance() byte {
	b := s.source[s.current.Offset]
	s.current.Offset++
	if b == '\n' {
		s.current.Line++
		s.current.Column = 1
	} else {
		s.current.Column++
	}
	return b
}

// match consumes the next byte if it equals expected, returning whether it did.
func (s *Scanner) match(expected byte) bool {
	if s.isAtEnd() || s.source[s.current.Offset] != expected {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) skipWhitespaceAndComments() {
	for {
		switch s.peek() {
		case ' ', '\r', '\t', '\n':
			s.advance()
		case '/':
			if s.peekNext() == '/' {
				for s.peek() != '\n' && !s.isAtEnd() {
					s.advance()
				}
			} else {
				return
			}
		default:
			return
		}
	}
}

func (s *Scanner) makeToken(kind token.Kind) token.Token {
	return token.Token{
		Kind:   kind,
		Lexeme: s.source[s.start.Offset:s.current.Offset],
		Start:  s.start,
		End:    s.current,
	}
}

// NextToken returns the next token in the stream. Once the source is
// exhausted it returns an Eof token indefinitely.
func (s *Scanner) NextToken() token.Token {
	s.skipWhitespaceAndComments()
	s.start = s.current

	if s.isAtEnd() {
		return s.makeToken(token.Eof)
	}

	b := s.advance()

	switch {
	case isAlpha(b):
		return s.identifier()
	case isDigit(b):
		return s.number()
	}

	switch b {
	case '(':
		return s.makeToken(token.LeftParen)
	case ')':
		return s.makeToken(token.RightParen)
	case '{':
		return s.makeToken(token.LeftBrace)
	case '}':
		return s.makeToken(token.RightBrace)
	case ';':
		return s.makeToken(token.Semicolon)
	case ',':
		return s.makeToken(token.Comma)
	case '.':
		return s.makeToken(token.Dot)
	case '-':
		return s.makeToken(token.Minus)
	case '+':
		return s.makeToken(token.Plus)
	case '/':
		return s.makeToken(token.Slash)
	case '*':
		return s.makeToken(token.Star)
	case '!':
		if s.match('=') {
			return s.makeToken(token.BangEqual)
		}
		return s.makeToken(token.Bang)
	case '=':
		if s.match('=') {
			return s.makeToken(token.EqualEqual)
		}
		return s.makeToken(token.Equal)
	case '<':
		if s.match('=') {
			return s.makeToken(token.LessEqual)
		}
		return s.makeToken(token.Less)
	case '>':
		if s.match('=') {
			return s.makeToken(token.GreaterEqual)
		}
		return s.makeToken(token.Greater)
	case '"':
		return s.string()
	}

	return s.invalidRun()
}

// string scans a string literal. The opening quote has already been
// consumed. \n inside the string is permitted and advances the line
// counter. An unterminated string at end-of-input yields ErrorUnterminatedString,
// anchored at the literal's start location for diagnostics.
func (s *Scanner) string() token.Token {
	for s.peek() != '"' && !s.isAtEnd() {
		s.advance()
	}

	if s.isAtEnd() {
		return token.Token{
			Kind:   token.ErrorUnterminatedString,
			Lexeme: s.source[s.start.Offset:s.current.Offset],
			Start:  s.start,
			End:    s.current,
		}
	}

	s.advance() // closing quote
	return s.makeToken(token.String)
}

// number scans one or more decimal digits, optionally followed by '.' and
// one or more digits. A trailing '.' not followed by a digit is not
// consumed as part of the number.
func (s *Scanner) number() token.Token {
	for isDigit(s.peek()) {
		s.advance()
	}

	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance() // consume '.'
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	return s.makeToken(token.Number)
}

func (s *Scanner) identifier() token.Token {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}

	lexeme := s.source[s.start.Offset:s.current.Offset]
	if kind, ok := token.Keywords[lexeme]; ok {
		return s.makeToken(kind)
	}
	return s.makeToken(token.Identifier)
}

// invalidRun consumes bytes that start no valid lexeme until the next byte
// that does start a valid lexeme (or the run hits whitespace/EOF), and
// reports the whole run as a single InvalidLexeme error token.
func (s *Scanner) invalidRun() token.Token {
	for !s.isAtEnd() {
		b := s.peek()
		if b == ' ' || b == '\r' || b == '\t' || b == '\n' {
			break
		}
		if isAlpha(b) || isDigit(b) || isValidLexemeStart(b) {
			break
		}
		s.advance()
	}
	return token.Token{
		Kind:   token.ErrorInvalidLexeme,
		Lexeme: s.source[s.start.Offset:s.current.Offset],
		Start:  s.start,
		End:    s.current,
	}
}

func isValidLexemeStart(b byte) bool {
	switch b {
	case '(', ')', '{', '}', ';', ',', '.', '-', '+', '/', '*',
		'!', '=', '<', '>', '"':
		return true
	}
	return false
}

// ParseNumberLiteral parses a scanned Number token's lexeme as an IEEE-754
// double. Reported separately from the scanner so the compiler can attach
// its own InvalidNumberLiteral diagnostic on failure.
func ParseNumberLiteral(lexeme string) (float64, error) {
	return strconv.ParseFloat(lexeme, 64)
}
