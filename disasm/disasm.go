// Package disasm implements a pure, side-effect-free bytecode
// pretty-printer. Grounded on original_source/src/debug.rs's
// `==name==` header / `%04d` offset / blank-vs-linenumber column
// conventions, and on the teacher's ASTCompiler.DiassembleBytecode.
package disasm

import (
	"fmt"
	"strings"

	"nilan/chunk"
	"nilan/heap"
)

// Disassemble renders every instruction in c as human-readable text under
// a "== name ==" header, one instruction per line. h is used only to
// render string constant contents; a nil h is safe as long as c holds no
// string constants.
func Disassemble(c *chunk.Chunk, h *heap.Heap, name string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "== %s ==\n", name)

	offset := 0
	for offset < len(c.Code) {
		offset = disassembleInstruction(&b, c, h, offset)
	}
	return b.String()
}

// disassembleInstruction writes one instruction at offset and returns the
// offset of the next instruction.
func disassembleInstruction(b *strings.Builder, c *chunk.Chunk, h *heap.Heap, offset int) int {
	fmt.Fprintf(b, "%04d ", offset)

	line := c.GetLine(offset)
	if offset > 0 && line == c.GetLine(offset-1) {
		fmt.Fprint(b, "   | ")
	} else {
		fmt.Fprintf(b, "%4d ", line)
	}

	op := chunk.OpCode(c.Code[offset])
	switch op {
	case chunk.OpConstant:
		return constantInstruction(b, c, h, op, offset)
	default:
		return simpleInstruction(b, op, offset)
	}
}

// DisassembleInstructionAt renders the single instruction at offset,
// exported for the VM's trace build to print alongside the live stack.
func DisassembleInstructionAt(c *chunk.Chunk, h *heap.Heap, offset int) string {
	var b strings.Builder
	disassembleInstruction(&b, c, h, offset)
	return b.String()
}

func simpleInstruction(b *strings.Builder, op chunk.OpCode, offset int) int {
	fmt.Fprintf(b, "%s\n", op)
	return offset + 1
}

func constantInstruction(b *strings.Builder, c *chunk.Chunk, h *heap.Heap, op chunk.OpCode, offset int) int {
	index := c.ReadConstantIndex(offset)
	fmt.Fprintf(b, "%-16s %4d '%s'\n", op, index, c.Constants[index].Display(h))
	return offset + 3
}
