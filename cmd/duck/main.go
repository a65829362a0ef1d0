// Command duck is the duck interpreter CLI.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"nickandperla.net/duck/internal/stdlib"
	"nickandperla.net/duck/pkg/duck"
)

func main() {
	var (
		evalStr    = flag.String("e", "", "Evaluate duck expression and exit")
		file       = flag.String("f", "", "Execute duck source file")
		dbPath     = flag.String("db", "", "SQLite history database path")
		noHistory  = flag.Bool("no-history", false, "Disable REPL history persistence")
		configPath = flag.String("config", "", "Config file path")
		serveAddr  = flag.String("serve", "", "Serve the eval endpoint on this address")
		primer     = flag.Bool("primer", false, "Print the language primer and exit")
	)

	flag.Parse()

	if *primer {
		fmt.Print(stdlib.Primer)
		return
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg.applyFlags(*dbPath, *serveAddr)

	switch {
	case *evalStr != "":
		printResult(duck.New().Eval(*evalStr))

	case *file != "":
		printResult(duck.New().EvalFile(*file))

	case cfg.Listen != "":
		if err := serve(cfg.Listen); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case !term.IsTerminal(int(os.Stdin.Fd())):
		// Piped input: evaluate the whole stream, print the last value.
		printResult(duck.New().EvalReader(os.Stdin))

	default:
		var opts []duck.Option
		if !*noHistory {
			opts = append(opts, duck.WithSQLiteHistory(cfg.History))
		}
		rt := duck.New(opts...)
		defer rt.Close()
		runREPL(rt, cfg)
	}
}

func printResult(out string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(out)
}
