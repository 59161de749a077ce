//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

//
// The value model shared by syntax, data, and evaluation results. A
// program value is always one of: int64 (Integer), bool (Boolean),
// Symbol, EmptyList, *Pair, *Builtin, SpecialForm, or *Procedure.
//

// Symbol represents a variable or procedure name. It is distinct from
// string so that the evaluator can tell a quoted identifier apart from
// literal text (the language has no string type at all).
type Symbol string

// emptyListType is the type of the single distinguished empty-list
// value. It is not a *Pair with nil fields — invariant (b) in the value
// model requires EmptyList to be its own case.
type emptyListType struct{}

// EmptyList is the one value denoting the empty list, printed as "()".
var EmptyList = emptyListType{}

// Pair is a mutable two-field cell. Car and Cdr are plain interface{}
// values; Cdr is EmptyList to terminate a proper list, another *Pair to
// continue one, or anything else to form a dotted pair. Pair is always
// handled through a pointer so that set-car!/set-cdr! mutations are
// visible through every alias, per invariant (c).
type Pair struct {
	Car interface{}
	Cdr interface{}
}

// NewPair constructs a Pair with the given car and cdr.
func NewPair(car, cdr interface{}) *Pair {
	return &Pair{car, cdr}
}

// IsProperList reports whether p terminates in EmptyList by following Cdr
// links, with no Pair repeated (a defensive bound against a mutated
// cyclic cdr chain created via set-cdr!).
func (p *Pair) IsProperList() bool {
	seen := make(map[*Pair]bool)
	var cur interface{} = p
	for {
		switch v := cur.(type) {
		case emptyListType:
			return true
		case *Pair:
			if seen[v] {
				return false
			}
			seen[v] = true
			cur = v.Cdr
		default:
			return false
		}
	}
}

// listElements walks a proper list, returning its elements in order. It
// returns a syntax error if the chain does not terminate in EmptyList.
func listElements(v interface{}) ([]interface{}, *Error) {
	var elems []interface{}
	cur := v
	for {
		switch t := cur.(type) {
		case emptyListType:
			return elems, nil
		case *Pair:
			elems = append(elems, t.Car)
			cur = t.Cdr
		default:
			return nil, syntaxErrorf("improper list where proper list expected")
		}
	}
}

// NewList constructs a proper list from the given elements.
func NewList(elems ...interface{}) interface{} {
	var result interface{} = EmptyList
	for i := len(elems) - 1; i >= 0; i-- {
		result = NewPair(elems[i], result)
	}
	return result
}

// BuiltinFunc is the signature implemented by every built-in procedure:
// it receives the already-evaluated argument vector and returns a result
// or an Error.
type BuiltinFunc func(args []interface{}) (interface{}, *Error)

// Builtin is a named, host-implemented procedure.
type Builtin struct {
	Name string
	Fn   BuiltinFunc
}

// FormTag identifies which special form a SpecialForm value represents.
// The evaluator dispatches on this tag by identity, never by evaluating
// or applying the SpecialForm value itself.
type FormTag int

// The special forms named in spec §4.4.
const (
	_ FormTag = iota
	FormQuote
	FormIf
	FormDefine
	FormSet
	FormSetCar
	FormSetCdr
	FormAnd
	FormOr
	FormLambda
)

// formNames maps each FormTag to its canonical printed name.
var formNames = map[FormTag]string{
	FormQuote:  "quote",
	FormIf:     "if",
	FormDefine: "define",
	FormSet:    "set!",
	FormSetCar: "set-car!",
	FormSetCdr: "set-cdr!",
	FormAnd:    "and",
	FormOr:     "or",
	FormLambda: "lambda",
}

// SpecialForm is the sentinel value bound to a special form's name in the
// initial environment. It is never applied like a procedure; the
// evaluator recognizes it by identity before falling back to general
// application.
type SpecialForm struct {
	Tag FormTag
}

// Name returns the canonical printed name of the special form.
func (s SpecialForm) Name() string {
	return formNames[s.Tag]
}

// Procedure is a user-defined, closure-capturing callable created by
// lambda (directly, or via the define sugar). Per invariant (d) it
// retains the environment in effect at creation; each call extends that
// environment with a fresh frame rather than mutating it.
type Procedure struct {
	Params []Symbol
	Body   []interface{}
	Env    *Environment
}
