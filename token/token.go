// Package token defines the lexical tokens produced by the scanner and
// consumed by the compiler.
package token

import "fmt"

// Kind tags the lexical category of a Token.
type Kind int

const (
	// Single-character tokens.
	LeftParen Kind = iota
	RightParen
	LeftBrace
	RightBrace
	Comma
	Semicolon
	Dot
	Minus
	Plus
	Slash
	Star

	// One or two character tokens.
	Bang
	BangEqual
	Equal
	EqualEqual
	Greater
	GreaterEqual
	Less
	LessEqual

	// Literals.
	Identifier
	String
	Number

	// Keywords.
	And
	Class
	Else
	False
	For
	Fun
	If
	Nil
	Or
	Print
	Return
	Super
	This
	True
	Var
	While

	// Terminal kinds.
	ErrorUnterminatedString
	ErrorInvalidLexeme
	Eof
)

var kindNames = map[Kind]string{
	LeftParen:               "(",
	RightParen:              ")",
	LeftBrace:               "{",
	RightBrace:              "}",
	Comma:                   ",",
	Semicolon:               ";",
	Dot:                     ".",
	Minus:                   "-",
	Plus:                    "+",
	Slash:                   "/",
	Star:                    "*",
	Bang:                    "!",
	BangEqual:               "!=",
	Equal:                   "=",
	EqualEqual:              "==",
	Greater:                 ">",
	GreaterEqual:            ">=",
	Less:                    "<",
	LessEqual:               "<=",
	Identifier:              "IDENTIFIER",
	String:                  "STRING",
	Number:                  "NUMBER",
	And:                     "and",
	Class:                   "class",
	Else:                    "else",
	False:                   "false",
	For:                     "for",
	Fun:                     "fun",
	If:                      "if",
	Nil:                     "nil",
	Or:                      "or",
	Print:                   "print",
	Return:                  "return",
	Super:                   "super",
	This:                    "this",
	True:                    "true",
	Var:                     "var",
	While:                   "while",
	ErrorUnterminatedString: "ERROR(UnterminatedString)",
	ErrorInvalidLexeme:      "ERROR(InvalidLexeme)",
	Eof:                     "EOF",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Keywords maps reserved identifiers to their keyword Kind.
var Keywords = map[string]Kind{
	"and":    And,
	"class":  Class,
	"else":   Else,
	"false":  False,
	"for":    For,
	"fun":    Fun,
	"if":     If,
	"nil":    Nil,
	"or":     Or,
	"print":  Print,
	"return": Return,
	"super":  Super,
	"this":   This,
	"true":   True,
	"var":    Var,
	"while":  While,
}

// Location identifies a byte position in source text by offset, line and
// column. Advanced one byte at a time; a byte of '\n' resets the column and
// increments the line.
type Location struct {
	Offset int
	Line   int
	Column int
}

// EOFLocation is the zero Location, available as a sentinel. The scanner
// does not use it: its Eof tokens carry the real end-of-input location.
var EOFLocation = Location{}

// Token is a value-typed record. Lexeme borrows a slice of the source
// string the scanner was constructed with; it never owns storage, so a
// Token must not outlive that source string.
type Token struct {
	Kind   Kind
	Lexeme string
	Start  Location
	End    Location
}

func (t Token) String() string {
	return fmt.Sprintf("Token{%s %q %d:%d}", t.Kind, t.Lexeme, t.Start.Line, t.Start.Column)
}
