// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package value

// UnboundSymbolError reports a lookup or assignment of a name with no
// binding anywhere in the environment chain.
type UnboundSymbolError struct {
	Name string
}

func (e *UnboundSymbolError) Error() string {
	return "unbound symbol: " + e.Name
}

// Env maps names to values. Each environment optionally references a
// parent; lookups walk the chain outward, so the nearest binding wins.
// References only ever point from child to parent.
type Env struct {
	table  map[string]Value
	parent *Env
}

// NewEnv creates an environment. parent may be nil for a root environment.
func NewEnv(parent *Env) *Env {
	return &Env{
		table:  make(map[string]Value),
		parent: parent,
	}
}

// Define creates or overwrites a binding in this environment, shadowing any
// binding of the same name in an ancestor.
func (e *Env) Define(name string, v Value) {
	e.table[name] = v
}

// Get returns the nearest binding for name.
func (e *Env) Get(name string) (Value, error) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.table[name]; ok {
			return v, nil
		}
	}
	return nil, &UnboundSymbolError{Name: name}
}

// Has reports whether name is bound in this environment or any ancestor.
func (e *Env) Has(name string) bool {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.table[name]; ok {
			return true
		}
	}
	return false
}

// Set mutates the nearest existing binding for name. Unlike Define it never
// creates a binding; assigning an unbound name is an error.
func (e *Env) Set(name string, v Value) error {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.table[name]; ok {
			env.table[name] = v
			return nil
		}
	}
	return &UnboundSymbolError{Name: name}
}
