// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package eval

import (
	"fmt"

	"nickandperla.net/duck/internal/value"
)

// defineNative registers a named native function.
func defineNative(env *value.Env, name string, fn value.HostFunc) {
	env.Define(name, &value.NativeFunc{Name: name, Fn: fn})
}

// defineSpecial registers a named special form.
func defineSpecial(env *value.Env, name string, fn value.HostFunc) {
	env.Define(name, &value.SpecialForm{Name: name, Fn: fn})
}

// installBuiltins populates a fresh global environment with the primitive
// set and the nil/t constants.
func (in *Interp) installBuiltins(env *value.Env) {
	env.Define("nil", value.Boolean(false))
	env.Define("t", value.Boolean(true))

	defineNative(env, "+", primAdd)
	defineNative(env, "-", primSub)
	defineNative(env, "*", primMul)
	defineNative(env, "/", primDiv)
	defineNative(env, "=", primNumEq)
	defineNative(env, "<", primLess)
	defineNative(env, ">", primGreater)
	defineNative(env, "list", primList)
	defineNative(env, "car", primCar)
	defineNative(env, "cdr", primCdr)
	defineNative(env, "cons", primCons)
	defineNative(env, "not", primNot)
	defineNative(env, "print", in.primPrint)

	defineSpecial(env, "and", in.formAnd)
	defineSpecial(env, "or", in.formOr)
	defineSpecial(env, "if", in.formIf)
	defineSpecial(env, "cond", in.formCond)
	defineSpecial(env, "defvar", in.formDefvar)
	defineSpecial(env, "setq", in.formSetq)
	defineSpecial(env, "defun", in.formDefun)
	defineSpecial(env, "lambda", in.formLambda)
}

// numbers coerces evaluated arguments for op, failing on any non-number.
func numbers(op string, args []value.Value) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		n, ok := a.(value.Number)
		if !ok {
			return nil, &ArgumentError{Msg: op + " requires numeric arguments"}
		}
		out[i] = float64(n)
	}
	return out, nil
}

func primAdd(args []value.Value, _ *value.Env) (value.Value, error) {
	nums, err := numbers("+", args)
	if err != nil {
		return nil, err
	}
	sum := 0.0
	for _, n := range nums {
		sum += n
	}
	return value.Number(sum), nil
}

func primSub(args []value.Value, _ *value.Env) (value.Value, error) {
	if len(args) == 0 {
		return nil, &ArgumentError{Msg: "- requires at least one argument"}
	}
	nums, err := numbers("-", args)
	if err != nil {
		return nil, err
	}
	if len(nums) == 1 {
		return value.Number(-nums[0]), nil
	}
	acc := nums[0]
	for _, n := range nums[1:] {
		acc -= n
	}
	return value.Number(acc), nil
}

func primMul(args []value.Value, _ *value.Env) (value.Value, error) {
	nums, err := numbers("*", args)
	if err != nil {
		return nil, err
	}
	product := 1.0
	for _, n := range nums {
		product *= n
	}
	return value.Number(product), nil
}

func primDiv(args []value.Value, _ *value.Env) (value.Value, error) {
	if len(args) == 0 {
		return nil, &ArgumentError{Msg: "/ requires at least one argument"}
	}
	nums, err := numbers("/", args)
	if err != nil {
		return nil, err
	}
	if len(nums) == 1 {
		if nums[0] == 0 {
			return nil, &DivisionByZeroError{}
		}
		return value.Number(1 / nums[0]), nil
	}
	acc := nums[0]
	for _, n := range nums[1:] {
		if n == 0 {
			return nil, &DivisionByZeroError{}
		}
		acc /= n
	}
	return value.Number(acc), nil
}

func primNumEq(args []value.Value, _ *value.Env) (value.Value, error) {
	return compareChain("=", args, func(a, b float64) bool { return a == b })
}

func primLess(args []value.Value, _ *value.Env) (value.Value, error) {
	return compareChain("<", args, func(a, b float64) bool { return a < b })
}

func primGreater(args []value.Value, _ *value.Env) (value.Value, error) {
	return compareChain(">", args, func(a, b float64) bool { return a > b })
}

// compareChain applies cmp to every adjacent pair, so (< 1 2 3) tests the
// full chain.
func compareChain(op string, args []value.Value, cmp func(a, b float64) bool) (value.Value, error) {
	if len(args) < 2 {
		return nil, &ArgumentError{Msg: op + " requires at least two arguments"}
	}
	nums, err := numbers(op, args)
	if err != nil {
		return nil, err
	}
	for i := 0; i+1 < len(nums); i++ {
		if !cmp(nums[i], nums[i+1]) {
			return value.Boolean(false), nil
		}
	}
	return value.Boolean(true), nil
}

func primList(args []value.Value, _ *value.Env) (value.Value, error) {
	items := make([]value.Value, len(args))
	copy(items, args)
	return &value.List{Items: items}, nil
}

// oneList checks for exactly one list argument.
func oneList(op string, args []value.Value) (*value.List, error) {
	if len(args) != 1 {
		return nil, &ArgumentError{Msg: op + " requires exactly one argument"}
	}
	l, ok := args[0].(*value.List)
	if !ok {
		return nil, &ArgumentError{Msg: op + " requires a list argument"}
	}
	return l, nil
}

func primCar(args []value.Value, _ *value.Env) (value.Value, error) {
	l, err := oneList("car", args)
	if err != nil {
		return nil, err
	}
	if len(l.Items) == 0 {
		return value.Boolean(false), nil
	}
	return l.Items[0], nil
}

func primCdr(args []value.Value, _ *value.Env) (value.Value, error) {
	l, err := oneList("cdr", args)
	if err != nil {
		return nil, err
	}
	if len(l.Items) <= 1 {
		return value.NewList(), nil
	}
	items := make([]value.Value, len(l.Items)-1)
	copy(items, l.Items[1:])
	return &value.List{Items: items}, nil
}

func primCons(args []value.Value, _ *value.Env) (value.Value, error) {
	if len(args) != 2 {
		return nil, &ArgumentError{Msg: "cons requires exactly two arguments"}
	}
	tail, ok := args[1].(*value.List)
	if !ok {
		return nil, &ArgumentError{Msg: "the second argument to cons must be a list"}
	}
	items := make([]value.Value, 0, len(tail.Items)+1)
	items = append(items, args[0])
	items = append(items, tail.Items...)
	return &value.List{Items: items}, nil
}

func primNot(args []value.Value, _ *value.Env) (value.Value, error) {
	if len(args) != 1 {
		return nil, &ArgumentError{Msg: "not requires exactly one argument"}
	}
	if b, ok := args[0].(value.Boolean); ok {
		return value.Boolean(!bool(b)), nil
	}
	return value.Boolean(false), nil
}

// primPrint writes each argument followed by a space, then a newline. It
// returns the last argument, or false when called with none.
func (in *Interp) primPrint(args []value.Value, _ *value.Env) (value.Value, error) {
	for _, a := range args {
		fmt.Fprintf(in.out, "%s ", a)
	}
	fmt.Fprint(in.out, "\n")
	if len(args) == 0 {
		return value.Boolean(false), nil
	}
	return args[len(args)-1], nil
}
