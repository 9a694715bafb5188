//go:build trace

package vm

import (
	"fmt"
	"os"
	"strings"

	"nilan/disasm"
)

func init() {
	TraceExecution = true
}

// traceBefore prints the live stack and the instruction about to execute,
// mirroring the original's debug_trace_execution cargo feature.
func (vm *VM) traceBefore(opcodeOffset int) {
	var stack strings.Builder
	stack.WriteString("          ")
	for _, v := range vm.stack {
		fmt.Fprintf(&stack, "[ %s ]", v.Display(vm.heap))
	}
	fmt.Fprintln(os.Stderr, stack.String())

	fmt.Fprint(os.Stderr, disasm.DisassembleInstructionAt(vm.chunk, vm.heap, opcodeOffset))
}
