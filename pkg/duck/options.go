// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package duck

import (
	"io"

	"nickandperla.net/duck/internal/eval"
	"nickandperla.net/duck/internal/reader"
	"nickandperla.net/duck/internal/store"
	"nickandperla.net/duck/internal/value"
)

// Option configures a Runtime.
type Option func(*Runtime)

// WithOutput sets the writer that print writes to. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(r *Runtime) { r.out = w }
}

// WithSQLiteHistory configures persistent session history at the given
// path. An empty path or an opening failure leaves history disabled.
func WithSQLiteHistory(path string) Option {
	return func(r *Runtime) {
		if path == "" {
			return
		}
		s, err := store.NewSQLite(path)
		if err == nil {
			r.hist = s
		}
	}
}

// WithMemoryHistory configures an in-memory history store (for testing).
func WithMemoryHistory() Option {
	return func(r *Runtime) {
		r.hist = store.NewMemory()
	}
}

// Value is a duck runtime value.
type Value = value.Value

// Store is the session-history interface.
type Store = store.Store

// Entry is one recorded history exchange.
type Entry = store.Entry

// Error types callers can match with errors.As.
type (
	SyntaxError         = reader.SyntaxError
	UnboundSymbolError  = value.UnboundSymbolError
	ArgumentError       = eval.ArgumentError
	ApplyError          = eval.ApplyError
	DivisionByZeroError = eval.DivisionByZeroError
)
