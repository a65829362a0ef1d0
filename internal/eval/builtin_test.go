package eval

import (
	"errors"
	"testing"
)

func TestListConstruction(t *testing.T) {
	tests := []struct{ src, want string }{
		{"(list)", "()"},
		{"(list 1 2 3)", "(1 2 3)"},
		{`(list 1 (list 2 t) "x")`, `(1 (2 t) "x")`},
	}
	in := New()
	for _, tt := range tests {
		if got := evalStr(t, in, tt.src); got != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.src, tt.want, got)
		}
	}
}

func TestCar(t *testing.T) {
	in := New()
	if got := evalStr(t, in, "(car (list))"); got != "nil" {
		t.Errorf("(car (list)) expected nil, got %s", got)
	}
	if got := evalStr(t, in, "(car (list 1 2))"); got != "1" {
		t.Errorf("(car (list 1 2)) expected 1, got %s", got)
	}
	if got := evalStr(t, in, "(car (list (list 1)))"); got != "(1)" {
		t.Errorf("expected (1), got %s", got)
	}
}

func TestCdr(t *testing.T) {
	tests := []struct{ src, want string }{
		{"(cdr (list))", "()"},
		{"(cdr (list 1))", "()"},
		{"(cdr (list 1 2 3))", "(2 3)"},
	}
	in := New()
	for _, tt := range tests {
		if got := evalStr(t, in, tt.src); got != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.src, tt.want, got)
		}
	}
}

func TestCons(t *testing.T) {
	in := New()
	if got := evalStr(t, in, "(cons 1 (list 2 3))"); got != "(1 2 3)" {
		t.Errorf("expected (1 2 3), got %s", got)
	}
	if got := evalStr(t, in, "(cons 1 (list))"); got != "(1)" {
		t.Errorf("expected (1), got %s", got)
	}
	var argErr *ArgumentError
	if _, err := in.Eval("(cons 1 2)"); !errors.As(err, &argErr) {
		t.Errorf("non-list tail: expected ArgumentError, got %v", err)
	}
	if _, err := in.Eval("(cons 1)"); !errors.As(err, &argErr) {
		t.Errorf("one argument: expected ArgumentError, got %v", err)
	}
}

func TestConsDoesNotMutateTail(t *testing.T) {
	in := New()
	evalStr(t, in, "(defvar tail (list 2 3))")
	evalStr(t, in, "(cons 1 tail)")
	if got := evalStr(t, in, "tail"); got != "(2 3)" {
		t.Errorf("cons must copy, tail became %s", got)
	}
}

func TestNot(t *testing.T) {
	tests := []struct{ src, want string }{
		{"(not nil)", "t"},
		{"(not t)", "nil"},
		{"(not 0)", "nil"},
		{"(not (list))", "nil"},
		{`(not "")`, "nil"},
	}
	in := New()
	for _, tt := range tests {
		if got := evalStr(t, in, tt.src); got != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.src, tt.want, got)
		}
	}
	var argErr *ArgumentError
	if _, err := in.Eval("(not)"); !errors.As(err, &argErr) {
		t.Errorf("(not): expected ArgumentError, got %v", err)
	}
	if _, err := in.Eval("(not 1 2)"); !errors.As(err, &argErr) {
		t.Errorf("(not 1 2): expected ArgumentError, got %v", err)
	}
}

func TestNumericTypeChecks(t *testing.T) {
	in := New()
	var argErr *ArgumentError
	for _, src := range []string{`(+ 1 "x")`, "(- t)", "(* (list) 2)", "(/ 1 nil)", "(< 1 t)", `(= "a" "a")`} {
		if _, err := in.Eval(src); !errors.As(err, &argErr) {
			t.Errorf("%s: expected ArgumentError, got %v", src, err)
		}
	}
}

func TestArityChecks(t *testing.T) {
	in := New()
	var argErr *ArgumentError
	for _, src := range []string{"(-)", "(/)", "(= 1)", "(< 1)", "(> 1)", "(car)", "(car (list 1) (list 2))", "(cdr 5)"} {
		if _, err := in.Eval(src); !errors.As(err, &argErr) {
			t.Errorf("%s: expected ArgumentError, got %v", src, err)
		}
	}
}
