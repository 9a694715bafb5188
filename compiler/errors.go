package compiler

import "fmt"

// SyntaxError is reported for any malformed input the compiler can recover
// from well enough to keep scanning for further errors: unexpected tokens,
// unterminated strings, malformed number literals, and the like.
type SyntaxError struct {
	Line    int
	Message string
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("💥 SyntaxError [line %d]: %s", e.Line, e.Message)
}

// DeveloperError marks something the compiler itself does not handle
// rather than malformed input: a `var` declaration, which this core parses
// but never binds (see varDeclaration), or an internal invariant violation.
// It carries no source line.
type DeveloperError struct {
	Message string
}

func (e DeveloperError) Error() string {
	return fmt.Sprintf("🤖 DeveloperError: %s", e.Message)
}
