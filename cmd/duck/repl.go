package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/term"

	"nickandperla.net/duck/pkg/duck"
)

const historySeedLimit = 200

func printBanner() {
	fmt.Println(`duck REPL (type "exit" or Ctrl+D to quit)`)
}

func runREPL(rt *duck.Runtime, cfg Config) {
	if !cfg.NoBanner {
		printBanner()
	}

	if term.IsTerminal(int(os.Stdin.Fd())) && liner.TerminalSupported() {
		runLineREPL(rt, cfg)
		return
	}
	runBasicREPL(rt, cfg)
}

// runLineREPL drives the line-editing loop on a real terminal.
func runLineREPL(rt *duck.Runtime, cfg Config) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	seedHistory(ln, rt)

	for {
		line, err := ln.Prompt(cfg.Prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		if strings.EqualFold(input, "exit") {
			return
		}

		ln.AppendHistory(input)

		out, err := rt.Eval(input)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		fmt.Println(out)
	}
}

// seedHistory replays recent exchanges into the line editor, oldest first.
func seedHistory(ln *liner.State, rt *duck.Runtime) {
	hist := rt.History()
	if hist == nil {
		return
	}
	entries, err := hist.Recent(historySeedLimit)
	if err != nil {
		return
	}
	for i := len(entries) - 1; i >= 0; i-- {
		ln.AppendHistory(entries[i].Input)
	}
}

// runBasicREPL handles terminals without line editing support.
func runBasicREPL(rt *duck.Runtime, cfg Config) {
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Print(cfg.Prompt)

		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		if strings.EqualFold(input, "exit") {
			return
		}

		out, err := rt.Eval(input)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		fmt.Println(out)
	}
}
