package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nilan/token"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "and", token.And.String())
	assert.Equal(t, "EOF", token.Eof.String())
	assert.Contains(t, token.Kind(9999).String(), "Kind(9999)")
}

func TestKeywordsTable(t *testing.T) {
	kind, ok := token.Keywords["print"]
	require.True(t, ok)
	assert.Equal(t, token.Print, kind)

	_, ok = token.Keywords["notakeyword"]
	assert.False(t, ok)
}

func TestTokenString(t *testing.T) {
	tok := token.Token{
		Kind:   token.Number,
		Lexeme: "42",
		Start:  token.Location{Offset: 0, Line: 1, Column: 1},
		End:    token.Location{Offset: 2, Line: 1, Column: 3},
	}
	assert.Contains(t, tok.String(), "42")
	assert.Contains(t, tok.String(), "1:1")
}
