// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package reader parses duck tokens into value trees.
package reader

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"nickandperla.net/duck/internal/scanner"
	"nickandperla.net/duck/internal/value"
)

// SyntaxError reports malformed input encountered while parsing.
type SyntaxError struct {
	Msg string
}

func (e *SyntaxError) Error() string { return e.Msg }

// Read consumes tokens from s and returns exactly one expression. Trailing
// tokens stay in the scanner, so callers may invoke Read repeatedly to
// parse a sequence.
func Read(s *scanner.Scanner) (value.Value, error) {
	tok, err := s.Next()
	if errors.Is(err, io.EOF) {
		return nil, &SyntaxError{Msg: "unexpected end of input"}
	}
	if err != nil {
		return nil, err
	}
	return parse(tok, s)
}

// ReadString parses the first expression in src.
func ReadString(src string) (value.Value, error) {
	return Read(scanner.NewFromString(src))
}

func parse(tok string, s *scanner.Scanner) (value.Value, error) {
	switch tok {
	case "(":
		return parseList(s)
	case ")":
		return nil, &SyntaxError{Msg: "unexpected closing paren"}
	default:
		return atom(tok), nil
	}
}

func parseList(s *scanner.Scanner) (value.Value, error) {
	list := value.NewList()
	for {
		tok, err := s.Next()
		if errors.Is(err, io.EOF) {
			return nil, &SyntaxError{Msg: "unclosed parenthesis"}
		}
		if err != nil {
			return nil, err
		}
		if tok == ")" {
			return list, nil
		}
		item, err := parse(tok, s)
		if err != nil {
			return nil, err
		}
		list.Items = append(list.Items, item)
	}
}

// atom resolves a single token: number first, then a quote-delimited
// string, then the nil/t constants, then a symbol.
func atom(tok string) value.Value {
	if n, err := strconv.ParseFloat(tok, 64); err == nil {
		return value.Number(n)
	}
	if len(tok) >= 2 && strings.HasPrefix(tok, `"`) && strings.HasSuffix(tok, `"`) {
		return value.String(tok[1 : len(tok)-1])
	}
	switch tok {
	case "nil":
		return value.Boolean(false)
	case "t":
		return value.Boolean(true)
	}
	return value.Symbol(tok)
}
