// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package scanner

import (
	"errors"
	"io"
	"reflect"
	"testing"
)

func collect(t *testing.T, src string) []string {
	t.Helper()
	s := NewFromString(src)
	var toks []string
	for {
		tok, err := s.Next()
		if errors.Is(err, io.EOF) {
			return toks
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		toks = append(toks, tok)
	}
}

func TestTokenizesParenthesesStandalone(t *testing.T) {
	got := collect(t, "(+ 1 2)")
	want := []string{"(", "+", "1", "2", ")"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestAtomIsMaximalRun(t *testing.T) {
	got := collect(t, "foo-bar?1   second\tthird\nfourth")
	want := []string{"foo-bar?1", "second", "third", "fourth"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestAtomEndsAtParenthesis(t *testing.T) {
	got := collect(t, "(car(cdr x))")
	want := []string{"(", "car", "(", "cdr", "x", ")", ")"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestQuotedStringWithSpacesSplits(t *testing.T) {
	// Strings are not special at this stage; interior spaces split the
	// token. The reader inherits this limitation.
	got := collect(t, `(print "a b")`)
	want := []string{"(", "print", `"a`, `b"`, ")", ")"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestEmptyInput(t *testing.T) {
	if got := collect(t, ""); len(got) != 0 {
		t.Errorf("expected no tokens, got %v", got)
	}
	if got := collect(t, " \t\n "); len(got) != 0 {
		t.Errorf("expected no tokens for whitespace, got %v", got)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	s := NewFromString("(a)")
	tok, err := s.Peek()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok != "(" {
		t.Errorf("expected '(', got %q", tok)
	}
	tok, err = s.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok != "(" {
		t.Errorf("Next after Peek should repeat the token, got %q", tok)
	}
	tok, _ = s.Next()
	if tok != "a" {
		t.Errorf("expected 'a', got %q", tok)
	}
}

func TestPeekAtEOF(t *testing.T) {
	s := NewFromString("x")
	if _, err := s.Next(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.Peek(); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF, got %v", err)
	}
}
