package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nilan/compiler"
	"nilan/heap"
	"nilan/lexer"
	"nilan/vm"
)

// interpret runs source end to end exactly the way runFile does, used to
// verify the end-to-end scenarios from spec.md's testable properties.
func interpret(t *testing.T, source string) (string, []error, error) {
	t.Helper()
	h := heap.New()
	c := compiler.New(lexer.New(source), h)
	compiled, compileErrs := c.Compile()
	if len(compileErrs) > 0 {
		return "", compileErrs, nil
	}

	var out strings.Builder
	runErr := vm.New(compiled, h).Run(&out)
	return strings.TrimRight(out.String(), "\n"), nil, runErr
}

func TestEndToEndScenarios(t *testing.T) {
	// Each input is the literal scenario string from spec.md §8, unmodified
	// (no appended ';') — the Epilogue accepts a bare expression followed
	// directly by end-of-input.
	out, compileErrs, runErr := interpret(t, "1 + 2 * 3")
	require.Empty(t, compileErrs)
	require.NoError(t, runErr)
	assert.Equal(t, "Number(7.0)", out)

	out, compileErrs, runErr = interpret(t, "(1 + 2) * 3")
	require.Empty(t, compileErrs)
	require.NoError(t, runErr)
	assert.Equal(t, "Number(9.0)", out)

	out, compileErrs, runErr = interpret(t, "!nil == true")
	require.Empty(t, compileErrs)
	require.NoError(t, runErr)
	assert.Equal(t, "Bool(true)", out)

	out, compileErrs, runErr = interpret(t, `"foo" + "bar"`)
	require.Empty(t, compileErrs)
	require.NoError(t, runErr)
	assert.Equal(t, "foobar", out)

	_, compileErrs, runErr = interpret(t, `1 + "x"`)
	require.Empty(t, compileErrs)
	require.Error(t, runErr)
	assert.IsType(t, vm.RuntimeError{}, runErr)

	_, compileErrs, _ = interpret(t, `"abc`)
	require.NotEmpty(t, compileErrs)
	assert.IsType(t, compiler.SyntaxError{}, compileErrs[0])
}

func TestPrecedenceAndAssociativity(t *testing.T) {
	cases := map[string]string{
		"1 - 2 - 3;": "Number(-4.0)",
		"2 + 3 * 4;": "Number(14.0)",
		"-(-1);":     "Number(1.0)",
		"!!true;":    "Bool(true)",
	}
	for source, want := range cases {
		out, compileErrs, runErr := interpret(t, source)
		require.Empty(t, compileErrs, source)
		require.NoError(t, runErr, source)
		assert.Equal(t, want, out, source)
	}
}
