// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package scanner provides a streaming tokenizer for duck source text.
package scanner

import (
	"bufio"
	"io"
	"strings"
	"unicode"
)

// Scanner tokenizes duck input rune-by-rune. Parentheses are always
// standalone tokens; any maximal run of non-whitespace, non-parenthesis
// characters is one token. Double quotes get no special treatment at this
// stage, so a quoted string containing spaces arrives as several tokens.
type Scanner struct {
	reader *bufio.Reader
	buf    strings.Builder
	peeked *string
}

// New creates a new Scanner from an io.Reader.
func New(r io.Reader) *Scanner {
	return &Scanner{reader: bufio.NewReader(r)}
}

// NewFromString creates a new Scanner from a string.
func NewFromString(s string) *Scanner {
	return New(strings.NewReader(s))
}

// Peek returns the next token without consuming it.
func (s *Scanner) Peek() (string, error) {
	if s.peeked != nil {
		return *s.peeked, nil
	}
	tok, err := s.Next()
	if err != nil {
		return "", err
	}
	s.peeked = &tok
	return tok, nil
}

// Next returns the next token from the input. It reports io.EOF once the
// input is exhausted.
func (s *Scanner) Next() (string, error) {
	if s.peeked != nil {
		tok := *s.peeked
		s.peeked = nil
		return tok, nil
	}

	s.buf.Reset()

	for {
		r, _, err := s.reader.ReadRune()
		if err == io.EOF {
			if s.buf.Len() > 0 {
				return s.buf.String(), nil
			}
			return "", io.EOF
		}
		if err != nil {
			return "", err
		}

		if unicode.IsSpace(r) {
			if s.buf.Len() > 0 {
				return s.buf.String(), nil
			}
			continue
		}

		if r == '(' || r == ')' {
			// An accumulated atom ends here; put the paren back for
			// the next call.
			if s.buf.Len() > 0 {
				s.reader.UnreadRune()
				return s.buf.String(), nil
			}
			return string(r), nil
		}

		s.buf.WriteRune(r)
	}
}
