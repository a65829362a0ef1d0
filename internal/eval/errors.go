// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package eval

// ArgumentError reports wrong arity or a wrong operand type for a
// primitive, a special form, or a function call.
type ArgumentError struct {
	Msg string
}

func (e *ArgumentError) Error() string { return e.Msg }

// ApplyError reports an attempt to call a value that is not callable.
type ApplyError struct {
	Msg string
}

func (e *ApplyError) Error() string { return e.Msg }

// DivisionByZeroError reports a zero divisor passed to /.
type DivisionByZeroError struct{}

func (e *DivisionByZeroError) Error() string { return "division by zero" }
