package disasm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nilan/compiler"
	"nilan/disasm"
	"nilan/heap"
	"nilan/lexer"
)

func TestDisassembleIncludesHeaderAndOpcodes(t *testing.T) {
	h := heap.New()
	c := compiler.New(lexer.New("1 + 2;"), h)
	compiled, errs := c.Compile()
	require.Empty(t, errs)

	out := disasm.Disassemble(compiled, h, "test chunk")
	assert.Contains(t, out, "== test chunk ==")
	assert.Contains(t, out, "OP_CONSTANT")
	assert.Contains(t, out, "OP_ADD")
	assert.Contains(t, out, "OP_RETURN")
}

func TestDisassembleRunLengthCompressesLineColumn(t *testing.T) {
	h := heap.New()
	c := compiler.New(lexer.New("1 + 2;"), h)
	compiled, errs := c.Compile()
	require.Empty(t, errs)

	out := disasm.Disassemble(compiled, h, "chunk")
	// every instruction after the first on the same line prints '|' in
	// place of the repeated line number
	assert.Contains(t, out, "   | ")
}

func TestDisassembleShowsConstantValue(t *testing.T) {
	h := heap.New()
	c := compiler.New(lexer.New(`"hi";`), h)
	compiled, errs := c.Compile()
	require.Empty(t, errs)

	out := disasm.Disassemble(compiled, h, "chunk")
	assert.Contains(t, out, "'hi'")
}
