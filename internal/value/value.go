// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package value defines duck runtime values and environments.
package value

import (
	"math"
	"strconv"
	"strings"
)

// Value is the interface all duck runtime values implement.
type Value interface {
	// String returns the printed representation of the value.
	String() string
}

// Symbol is an identifier.
type Symbol string

func (s Symbol) String() string { return string(s) }

// Number is an IEEE 754 double.
type Number float64

// String prints integer-valued numbers without a decimal point and
// everything else in standard decimal notation.
func (n Number) String() string {
	f := float64(n)
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// String is immutable text. The printed form wraps the text in double
// quotes; no escaping is applied.
type String string

func (s String) String() string { return `"` + string(s) + `"` }

// Boolean is the single true/false pair. The false value doubles as nil.
type Boolean bool

func (b Boolean) String() string {
	if b {
		return "t"
	}
	return "nil"
}

// List is an ordered, mutable sequence of values. It serves both as program
// syntax and as runtime data. The empty list is a value of its own, distinct
// from nil.
type List struct {
	Items []Value
}

// NewList creates a list holding the given items.
func NewList(items ...Value) *List {
	return &List{Items: items}
}

func (l *List) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	for i, item := range l.Items {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(item.String())
	}
	sb.WriteString(")")
	return sb.String()
}

// Function is a user-defined closure: a parameter list, one or more body
// forms, and the environment where it was defined. The environment reference
// is live, not a snapshot; later mutation of a binding in the defining scope
// is visible through it.
type Function struct {
	Params *List
	Body   []Value
	Env    *Env
}

func (f *Function) String() string {
	body := &List{Items: f.Body}
	return "#<FUNCTION " + f.Params.String() + " " + body.String() + ">"
}

// HostFunc is the signature shared by native functions and special forms.
type HostFunc func(args []Value, env *Env) (Value, error)

// NativeFunc is a named host procedure. Its arguments arrive already
// evaluated.
type NativeFunc struct {
	Name string
	Fn   HostFunc
}

func (f *NativeFunc) String() string { return "#<NATIVE-FUNCTION " + f.Name + ">" }

// SpecialForm is a named host procedure that receives its operand
// expressions unevaluated and controls its own evaluation order.
type SpecialForm struct {
	Name string
	Fn   HostFunc
}

func (f *SpecialForm) String() string { return "#<SPECIAL-FORM " + f.Name + ">" }

// Truthy reports whether v counts as true in a conditional. Only the
// canonical false/nil value is falsy; every other value, including numeric
// zero, the empty string, and the empty list, is truthy.
func Truthy(v Value) bool {
	if b, ok := v.(Boolean); ok {
		return bool(b)
	}
	return true
}
