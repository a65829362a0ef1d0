// Package store persists duck REPL session history.
package store

import "time"

// Entry is one recorded REPL exchange.
type Entry struct {
	ID     int64
	Stamp  string
	Input  string
	Output string
	IsErr  bool
}

// Store is the interface for session history persistence.
type Store interface {
	// Append records one exchange. output holds the printed result, or
	// the rendered error text when isErr is set.
	Append(input, output string, isErr bool) error
	// Recent returns up to limit entries, newest first. limit <= 0
	// returns all entries.
	Recent(limit int) ([]Entry, error)
	// Close releases resources.
	Close() error
}

// nowStamp returns the UTC timestamp format shared by both stores.
func nowStamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
