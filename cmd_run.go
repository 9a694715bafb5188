package main

import (
	"fmt"
	"os"

	"nilan/compiler"
	"nilan/heap"
	"nilan/lexer"
	"nilan/vm"
)

// runFile reads and runs a single script, exiting non-zero on a read,
// compile, or runtime failure. Grounded on the teacher's runCmd.Execute
// (cmd_run.go) without the subcommands wrapper, per SPEC_FULL's
// one-positional-arg CLI contract.
func runFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "💥 failed to read file: %v\n", err)
		os.Exit(74)
	}

	h := heap.New()
	c := compiler.New(lexer.New(string(data)), h)
	compiled, errs := c.Compile()
	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e)
		}
		os.Exit(65)
	}

	machine := vm.New(compiled, h)
	if err := machine.Run(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(70)
	}
}
