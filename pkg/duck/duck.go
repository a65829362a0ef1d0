// Package duck provides the public API for the duck interpreter.
package duck

import (
	"io"
	"os"

	"nickandperla.net/duck/internal/eval"
	"nickandperla.net/duck/internal/store"
)

// Runtime is one duck interpreter instance: a fresh global environment
// holding only the built-ins, plus optional session-history journaling.
// Independently constructed Runtimes share nothing.
type Runtime struct {
	interp *eval.Interp
	hist   store.Store
	out    io.Writer
}

// New creates a new duck runtime with the given options.
func New(opts ...Option) *Runtime {
	r := &Runtime{out: os.Stdout}
	for _, opt := range opts {
		opt(r)
	}
	r.interp = eval.New(eval.WithOutput(r.out))
	return r
}

// Eval evaluates the first expression in input against the Runtime's
// long-lived environment and returns its printed form. Failure is
// signalled only through the error return. When a history store is
// configured the exchange is journaled, best-effort.
func (r *Runtime) Eval(input string) (string, error) {
	v, err := r.interp.Eval(input)
	if err != nil {
		r.record(input, "Error: "+err.Error(), true)
		return "", err
	}
	out := v.String()
	r.record(input, out, false)
	return out, nil
}

// EvalValue is Eval for embedders that inspect results structurally: it
// returns the value itself and records no history.
func (r *Runtime) EvalValue(input string) (Value, error) {
	return r.interp.Eval(input)
}

// EvalReader evaluates every expression in reader in order against the
// same environment and returns the printed form of the last result.
func (r *Runtime) EvalReader(reader io.Reader) (string, error) {
	v, err := r.interp.EvalReader(reader)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

// EvalFile evaluates a duck source file.
func (r *Runtime) EvalFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return r.EvalReader(f)
}

// History returns the configured history store, or nil.
func (r *Runtime) History() store.Store {
	return r.hist
}

// Close releases the history store if one is configured.
func (r *Runtime) Close() error {
	if r.hist != nil {
		return r.hist.Close()
	}
	return nil
}

func (r *Runtime) record(input, output string, isErr bool) {
	if r.hist == nil {
		return
	}
	r.hist.Append(input, output, isErr)
}
