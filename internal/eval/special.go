// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package eval

import (
	"nickandperla.net/duck/internal/value"
)

// Special forms receive their operands unevaluated; each decides what to
// evaluate and in which environment.

func (in *Interp) formAnd(args []value.Value, env *value.Env) (value.Value, error) {
	var result value.Value = value.Boolean(true)
	for _, form := range args {
		v, err := in.eval(form, env)
		if err != nil {
			return nil, err
		}
		result = v
		if !value.Truthy(result) {
			return result, nil
		}
	}
	return result, nil
}

func (in *Interp) formOr(args []value.Value, env *value.Env) (value.Value, error) {
	for _, form := range args {
		v, err := in.eval(form, env)
		if err != nil {
			return nil, err
		}
		if value.Truthy(v) {
			return v, nil
		}
	}
	return value.Boolean(false), nil
}

func (in *Interp) formIf(args []value.Value, env *value.Env) (value.Value, error) {
	if len(args) < 2 || len(args) > 3 {
		return nil, &ArgumentError{Msg: "if requires two or three arguments"}
	}
	cond, err := in.eval(args[0], env)
	if err != nil {
		return nil, err
	}
	if value.Truthy(cond) {
		return in.eval(args[1], env)
	}
	if len(args) == 3 {
		return in.eval(args[2], env)
	}
	return value.Boolean(false), nil
}

func (in *Interp) formCond(args []value.Value, env *value.Env) (value.Value, error) {
	for _, clause := range args {
		cl, ok := clause.(*value.List)
		if !ok {
			return nil, &ArgumentError{Msg: "cond clauses must be lists"}
		}
		if len(cl.Items) == 0 {
			return nil, &ArgumentError{Msg: "cond clauses must not be empty"}
		}
		test, err := in.eval(cl.Items[0], env)
		if err != nil {
			return nil, err
		}
		if !value.Truthy(test) {
			continue
		}
		// A bare condition clause yields the condition value itself.
		result := test
		for _, form := range cl.Items[1:] {
			result, err = in.eval(form, env)
			if err != nil {
				return nil, err
			}
		}
		return result, nil
	}
	return value.Boolean(false), nil
}

func (in *Interp) formDefvar(args []value.Value, env *value.Env) (value.Value, error) {
	name, v, err := in.bindingPair("defvar", args, env)
	if err != nil {
		return nil, err
	}
	env.Define(name, v)
	return v, nil
}

func (in *Interp) formSetq(args []value.Value, env *value.Env) (value.Value, error) {
	name, v, err := in.bindingPair("setq", args, env)
	if err != nil {
		return nil, err
	}
	if err := env.Set(name, v); err != nil {
		return nil, err
	}
	return v, nil
}

// bindingPair validates a (name expr) operand pair and evaluates the
// expression in the caller's environment.
func (in *Interp) bindingPair(op string, args []value.Value, env *value.Env) (string, value.Value, error) {
	if len(args) != 2 {
		return "", nil, &ArgumentError{Msg: op + " requires exactly two arguments"}
	}
	sym, ok := args[0].(value.Symbol)
	if !ok {
		return "", nil, &ArgumentError{Msg: "the first argument to " + op + " must be a symbol"}
	}
	v, err := in.eval(args[1], env)
	if err != nil {
		return "", nil, err
	}
	return string(sym), v, nil
}

func (in *Interp) formDefun(args []value.Value, env *value.Env) (value.Value, error) {
	if len(args) < 3 {
		return nil, &ArgumentError{Msg: "defun requires a name, a parameter list, and a body"}
	}
	name, ok := args[0].(value.Symbol)
	if !ok {
		return nil, &ArgumentError{Msg: "the first argument to defun must be a symbol"}
	}
	fn, err := makeFunction("defun", args[1], args[2:], env)
	if err != nil {
		return nil, err
	}
	env.Define(string(name), fn)
	return name, nil
}

func (in *Interp) formLambda(args []value.Value, env *value.Env) (value.Value, error) {
	if len(args) < 2 {
		return nil, &ArgumentError{Msg: "lambda requires a parameter list and a body"}
	}
	fn, err := makeFunction("lambda", args[0], args[1:], env)
	if err != nil {
		return nil, err
	}
	return fn, nil
}

// makeFunction builds a closure over the defining environment. The
// parameter list is validated here, when the closure is built, not at call
// time.
func makeFunction(op string, params value.Value, body []value.Value, env *value.Env) (*value.Function, error) {
	pl, ok := params.(*value.List)
	if !ok {
		return nil, &ArgumentError{Msg: op + " requires a parameter list"}
	}
	for _, p := range pl.Items {
		if _, ok := p.(value.Symbol); !ok {
			return nil, &ArgumentError{Msg: "function parameters must be symbols"}
		}
	}
	return &value.Function{Params: pl, Body: body, Env: env}, nil
}
