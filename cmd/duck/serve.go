package main

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"nickandperla.net/duck/pkg/duck"
)

// serve exposes one-shot evaluation over HTTP. Each request evaluates in
// a fresh runtime so callers cannot observe each other's bindings.
func serve(addr string) error {
	log.Printf("duck listening on %s", addr)
	return http.ListenAndServe(addr, newMux())
}

func newMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/repl/eval", handleEval)
	mux.HandleFunc("/", handleIndex)
	return mux
}

func handleIndex(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintln(w, "duck eval service. POST an expression to /repl/eval.")
}

func handleEval(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("eval request body read failed: %v", err)
		http.Error(w, "cannot read request body", http.StatusBadRequest)
		return
	}

	rt := duck.New(duck.WithOutput(os.Stdout))
	out, err := rt.Eval(string(body))
	if err != nil {
		// Evaluation failures are part of the exchange, not transport
		// errors, so they still travel as a 200.
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(w, out)
}
