package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"nilan/compiler"
	"nilan/disasm"
	"nilan/heap"
	"nilan/lexer"
)

// disasmCmd compiles a file and prints its disassembly without running
// it, grounded on the teacher's emitBytecodeCmd (cmd_emit_bytecode.go).
type disasmCmd struct{}

func (*disasmCmd) Name() string     { return "disasm" }
func (*disasmCmd) Synopsis() string { return "Compile a script and print its disassembled bytecode" }
func (*disasmCmd) Usage() string {
	return "nilan disasm <file>\n"
}
func (*disasmCmd) SetFlags(*flag.FlagSet) {}

func (*disasmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "💥 file not provided")
		return subcommands.ExitUsageError
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "💥 failed to read file: %v\n", err)
		return subcommands.ExitFailure
	}

	h := heap.New()
	c := compiler.New(lexer.New(string(data)), h)
	compiled, errs := c.Compile()
	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e)
		}
		return subcommands.ExitFailure
	}

	fmt.Print(disasm.Disassemble(compiled, h, args[0]))
	return subcommands.ExitSuccess
}
