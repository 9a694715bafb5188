package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"nilan/compiler"
	"nilan/heap"
	"nilan/lexer"
	"nilan/token"
	"nilan/vm"
)

// runREPL starts an interactive session. Grounded on the teacher's
// cmd_repl_compiled.go: multi-line continuation buffering driven by
// isInputReady, one heap reused across evaluations (with a fresh VM for
// each) so string interning persists line to line, `chzyer/readline` promoted from the
// teacher's unused indirect dependency to do line editing and history.
func runREPL() {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          ">>> ",
		HistoryFile:     "",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Println("💥 failed to start REPL:", err)
		return
	}
	defer rl.Close()

	fmt.Println("Welcome to Nilan!")
	h := heap.New()
	var buffer strings.Builder

	for {
		if buffer.Len() == 0 {
			rl.SetPrompt(">>> ")
		} else {
			rl.SetPrompt("... ")
		}

		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			return
		}
		if err == io.EOF {
			return
		}
		if strings.TrimSpace(line) == "exit" && buffer.Len() == 0 {
			return
		}

		if buffer.Len() > 0 {
			buffer.WriteString("\n")
		}
		buffer.WriteString(line)
		source := buffer.String()

		if !isInputReady(source) {
			continue
		}

		c := compiler.New(lexer.New(source), h)
		compiled, errs := c.Compile()
		if len(errs) > 0 {
			for _, e := range errs {
				fmt.Println(e)
			}
			buffer.Reset()
			continue
		}

		machine := vm.New(compiled, h)
		if runtimeErr := machine.Run(rl.Stdout()); runtimeErr != nil {
			fmt.Println(runtimeErr)
		}
		buffer.Reset()
	}
}

// isInputReady pre-scans source (without invoking the compiler) to decide
// whether the REPL should evaluate now or wait for another line: open
// parens/braces, or a trailing token that obviously expects a right-hand
// side, mean the statement isn't finished yet.
func isInputReady(source string) bool {
	scanner := lexer.New(source)

	parenBalance, braceBalance := 0, 0
	var last token.Token
	hasToken := false

	for {
		tok := scanner.NextToken()
		if tok.Kind == token.Eof {
			break
		}
		switch tok.Kind {
		case token.LeftParen:
			parenBalance++
		case token.RightParen:
			parenBalance--
		case token.LeftBrace:
			braceBalance++
		case token.RightBrace:
			braceBalance--
		}
		last = tok
		hasToken = true
	}

	if parenBalance > 0 || braceBalance > 0 {
		return false
	}
	if !hasToken {
		return true
	}

	switch last.Kind {
	case token.Equal, token.Plus, token.Minus, token.Star, token.Slash,
		token.Bang, token.EqualEqual, token.BangEqual,
		token.Less, token.LessEqual, token.Greater, token.GreaterEqual,
		token.Comma, token.LeftParen, token.LeftBrace,
		token.And, token.Or, token.Print, token.Var, token.If, token.Else,
		token.While, token.For, token.Fun, token.Return,
		token.ErrorUnterminatedString:
		return false
	}
	return true
}
