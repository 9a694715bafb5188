package vm_test

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

func run(t *testing.T, source string) (string, error) {
	t.Helper()
	h := heap.New()
	c := compiler.New(lexer.New(source), h)
	compiled, errs := c.Compile()
	require.Empty(t, errs)

	var out strings.Builder
	machine := vm.New(compiled, h)
	err := machine.Run(&out)
	return strings.TrimRight(out.String(), "\n"), err
}

func TestRunArithmetic(t *testing.T) {
	out, err := run(t, "1 + 2 * 3;")
	require.NoError(t, err)
	assert.Equal(t, "Number(7.0)", out)
}

func TestRunGroupingOverridesPrecedence(t *testing.T) {
	out, err := run(t, "(1 + 2) * 3;")
	require.NoError(t, err)
	assert.Equal(t, "Number(9.0)", out)
}

func TestRunStringConcatenation(t *testing.T) {
	out, err := run(t, `"foo" + "bar";`)
	require.NoError(t, err)
	assert.Equal(t, "foobar", out)
}

func TestRunNotNilEqualsTrue(t *testing.T) {
	out, err := run(t, "!nil == true;")
	require.NoError(t, err)
	assert.Equal(t, "Bool(true)", out)
}

func TestRunComparisonAndEquality(t *testing.T) {
	cases := map[string]string{
		"1 < 2;":        "Bool(true)",
		"1 > 2;":        "Bool(false)",
		"1 <= 1;":       "Bool(true)",
		"2 >= 3;":       "Bool(false)",
		"1 == 1;":       "Bool(true)",
		"1 != 1;":       "Bool(false)",
		`"a" == "a";`:    "Bool(true)",
	}
	for source, want := range cases {
		out, err := run(t, source)
		require.NoError(t, err, source)
		assert.Equal(t, want, out, source)
	}
}

func TestRunFalseyRules(t *testing.T) {
	cases := map[string]string{
		"!nil;":   "Bool(true)",
		"!false;": "Bool(true)",
		"!true;":  "Bool(false)",
		"!0;":     "Bool(false)",
		`!"";`:    "Bool(false)",
	}
	for source, want := range cases {
		out, err := run(t, source)
		require.NoError(t, err, source)
		assert.Equal(t, want, out, source)
	}
}

func TestRunNegateTypeErrorIsRuntimeError(t *testing.T) {
	_, err := run(t, `-"a";`)
	require.Error(t, err)
	assert.IsType(t, vm.RuntimeError{}, err)
}

func TestRunAddTypeMismatchIsRuntimeError(t *testing.T) {
	_, err := run(t, `1 + "a";`)
	require.Error(t, err)
	assert.IsType(t, vm.RuntimeError{}, err)
}

func TestRunDivideByZeroProducesSignedInfinity(t *testing.T) {
	out, err := run(t, "5/0;")
	require.NoError(t, err)
	assert.Equal(t, "Number(inf)", out)

	out, err = run(t, "-5/0;")
	require.NoError(t, err)
	assert.Equal(t, "Number(-inf)", out)
}

func TestRuntimeErrorReportsSourceLine(t *testing.T) {
	// The OpAdd instruction is emitted at the '+' operator's own line (1),
	// even though its right operand spans onto line 2.
	_, err := run(t, "1 +\n\"a\";")
	require.Error(t, err)
	rtErr, ok := err.(vm.RuntimeError)
	require.True(t, ok)
	assert.Equal(t, 1, rtErr.Line)
}
