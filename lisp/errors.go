//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

import "fmt"

// Kind identifies the category of failure raised while tokenizing,
// parsing, or evaluating a program.
type Kind int

// The three error kinds surfaced to callers of Run.
const (
	_ Kind = iota
	KindSyntax
	KindName
	KindRuntime
)

// String returns the canonical name of the error kind.
func (k Kind) String() string {
	switch k {
	case KindSyntax:
		return "syntax"
	case KindName:
		return "name"
	case KindRuntime:
		return "runtime"
	}
	return "unknown"
}

// Error reports a tokenizer, parser, or evaluator failure. It implements
// the error interface and carries the Kind so that callers can
// distinguish syntax, name, and runtime failures without parsing the
// message text.
type Error struct {
	Kind    Kind
	Message string
}

// NewError constructs an Error of the given kind with a formatted
// message.
func NewError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{kind, fmt.Sprintf(format, args...)}
}

// Error returns the string representation of the error, in the form
// "kind: message".
func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Message
}

// syntaxErrorf is a convenience constructor for KindSyntax errors.
func syntaxErrorf(format string, args ...interface{}) *Error {
	return NewError(KindSyntax, format, args...)
}

// nameErrorf is a convenience constructor for KindName errors.
func nameErrorf(format string, args ...interface{}) *Error {
	return NewError(KindName, format, args...)
}

// runtimeErrorf is a convenience constructor for KindRuntime errors.
func runtimeErrorf(format string, args ...interface{}) *Error {
	return NewError(KindRuntime, format, args...)
}
