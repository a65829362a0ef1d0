// Package eval implements the duck evaluator.
package eval

import (
	"errors"
	"fmt"
	"io"
	"os"

	"nickandperla.net/duck/internal/reader"
	"nickandperla.net/duck/internal/scanner"
	"nickandperla.net/duck/internal/value"
)

// Interp evaluates duck expressions against a single global environment
// created at construction. Two Interps never share state.
type Interp struct {
	global *value.Env
	out    io.Writer
}

// Option configures an Interp.
type Option func(*Interp)

// WithOutput sets the writer that print writes to. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(in *Interp) { in.out = w }
}

// New creates an interpreter with a fresh global environment holding only
// the built-ins.
func New(opts ...Option) *Interp {
	in := &Interp{out: os.Stdout}
	for _, opt := range opts {
		opt(in)
	}
	in.global = value.NewEnv(nil)
	in.installBuiltins(in.global)
	return in
}

// Eval parses the first expression in src and evaluates it. Trailing source
// text is ignored.
func (in *Interp) Eval(src string) (value.Value, error) {
	expr, err := reader.ReadString(src)
	if err != nil {
		return nil, err
	}
	return in.eval(expr, in.global)
}

// EvalReader evaluates every expression in r in order against the global
// environment and returns the last result. An empty stream is a syntax
// error.
func (in *Interp) EvalReader(r io.Reader) (value.Value, error) {
	s := scanner.New(r)
	var last value.Value
	for {
		expr, err := reader.Read(s)
		if err != nil {
			return nil, err
		}
		last, err = in.eval(expr, in.global)
		if err != nil {
			return nil, err
		}
		if _, err := s.Peek(); errors.Is(err, io.EOF) {
			return last, nil
		}
	}
}

// eval dispatches on the expression's variant. Symbols resolve through the
// environment chain; atoms and functions are self-evaluating; the empty
// list evaluates to itself; any other list is a call.
func (in *Interp) eval(expr value.Value, env *value.Env) (value.Value, error) {
	switch v := expr.(type) {
	case value.Symbol:
		return env.Get(string(v))
	case value.Number, value.String, value.Boolean, *value.Function:
		return expr, nil
	case *value.List:
		if len(v.Items) == 0 {
			return v, nil
		}
		return in.evalCall(v, env)
	default:
		return nil, fmt.Errorf("cannot evaluate: %s", expr)
	}
}

// evalCall applies the head of a non-empty list to its operands. A special
// form receives the operands unevaluated; every other callable receives
// them evaluated left to right.
func (in *Interp) evalCall(form *value.List, env *value.Env) (value.Value, error) {
	head := form.Items[0]
	rest := form.Items[1:]

	sym, ok := head.(value.Symbol)
	if !ok {
		// The head is itself an expression; only a user function may
		// come out of it.
		callee, err := in.eval(head, env)
		if err != nil {
			return nil, err
		}
		fn, ok := callee.(*value.Function)
		if !ok {
			return nil, &ApplyError{Msg: "not callable: " + callee.String()}
		}
		args, err := in.evalArgs(rest, env)
		if err != nil {
			return nil, err
		}
		return in.applyFunction(fn, args)
	}

	callee, err := env.Get(string(sym))
	if err != nil {
		return nil, err
	}
	switch c := callee.(type) {
	case *value.SpecialForm:
		return c.Fn(rest, env)
	case *value.NativeFunc:
		args, err := in.evalArgs(rest, env)
		if err != nil {
			return nil, err
		}
		return c.Fn(args, env)
	case *value.Function:
		args, err := in.evalArgs(rest, env)
		if err != nil {
			return nil, err
		}
		return in.applyFunction(c, args)
	default:
		return nil, &ApplyError{Msg: "not callable: " + callee.String()}
	}
}

func (in *Interp) evalArgs(forms []value.Value, env *value.Env) ([]value.Value, error) {
	args := make([]value.Value, len(forms))
	for i, f := range forms {
		v, err := in.eval(f, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

// applyFunction calls a user closure: strict arity, positional binding in a
// fresh child of the captured environment, body forms in order, last value
// wins.
func (in *Interp) applyFunction(fn *value.Function, args []value.Value) (value.Value, error) {
	params := fn.Params.Items
	if len(args) != len(params) {
		return nil, &ArgumentError{Msg: fmt.Sprintf("function expects %d arguments, got %d", len(params), len(args))}
	}
	env := value.NewEnv(fn.Env)
	for i, p := range params {
		// makeFunction only admits symbol parameters.
		env.Define(string(p.(value.Symbol)), args[i])
	}
	var result value.Value
	for _, form := range fn.Body {
		var err error
		result, err = in.eval(form, env)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}
