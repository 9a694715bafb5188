package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// Nilan's primary entry point takes exactly one optional positional
// argument: a script path to run, or nothing to start the REPL. The
// "disasm" debug verb is a secondary surface registered with
// google/subcommands (the teacher's own verb-per-command library, here
// kept to exactly one verb), following the teacher's cmd_emit_bytecode.go
// pattern, kept separate from the one-positional-arg script/REPL contract.
func main() {
	if len(os.Args) > 1 && os.Args[1] == "disasm" {
		runDisasmSubcommand()
		return
	}

	switch len(os.Args) {
	case 1:
		runREPL()
	case 2:
		runFile(os.Args[1])
	default:
		fmt.Fprintln(os.Stderr, "usage: nilan [script]  |  nilan disasm <script>")
		os.Exit(64)
	}
}

func runDisasmSubcommand() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(&disasmCmd{}, "")
	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}
