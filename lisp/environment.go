//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

//
// Environment (Scope): a frame of name->value bindings with an optional
// parent link. Lookup walks the parent chain; Define always writes to
// the current frame; Set walks the chain to find an existing binding.
//

// Environment is one frame of the lexical scope chain.
type Environment struct {
	vars   map[Symbol]interface{}
	parent *Environment
}

// NewEnvironment constructs an empty frame with the given parent, which
// may be nil for a top-level (global) environment.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{
		vars:   make(map[Symbol]interface{}),
		parent: parent,
	}
}

// Define installs or overwrites a binding in this frame only, shadowing
// any binding of the same name in an outer frame.
func (e *Environment) Define(name Symbol, value interface{}) {
	e.vars[name] = value
}

// Find walks this frame and its ancestors looking for name, returning
// the bound value and true if found.
func (e *Environment) Find(name Symbol) (interface{}, bool) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Set walks this frame and its ancestors for an existing binding of
// name and assigns value there. It returns an Error of KindName if no
// such binding exists anywhere in the chain; no frame is modified in
// that case.
func (e *Environment) Set(name Symbol, value interface{}) *Error {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.vars[name]; ok {
			env.vars[name] = value
			return nil
		}
	}
	return nameErrorf("unbound variable in set!: %s", name)
}
