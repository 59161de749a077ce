//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

//
// Interpreter façade: wires the tokenizer, parser, evaluator, and
// serializer together, constructing the initial environment populated
// with built-ins and special forms (spec §6).
//

// Interpreter holds one persistent global environment. Successive calls
// to Run share that environment, so definitions accumulate across
// calls.
type Interpreter struct {
	global *Environment
}

// NewInterpreter constructs an Interpreter with a fresh global
// environment populated with every built-in and special form named in
// spec §4.4-§4.5.
func NewInterpreter() *Interpreter {
	env := NewEnvironment(nil)
	for _, b := range builtinTable {
		fn := b.fn
		env.Define(Symbol(b.name), &Builtin{Name: b.name, Fn: fn})
	}
	for tag, name := range formNames {
		env.Define(Symbol(name), SpecialForm{Tag: tag})
	}
	return &Interpreter{global: env}
}

// Run parses and evaluates a single program and returns its serialized
// result, per spec §6. On failure it returns the partially-constructed
// text's zero value and an *Error identifying the syntax, name, or
// runtime failure; no partial effect of a failed define or set! is
// retained, since those only mutate the environment after their value
// expression evaluates successfully.
func (in *Interpreter) Run(source string) (string, error) {
	datum, err := ParseProgram(source)
	if err != nil {
		return "", err
	}
	result, err := Eval(datum, in.global)
	if err != nil {
		return "", err
	}
	text, err := Serialize(result)
	if err != nil {
		return "", err
	}
	return text, nil
}

// Run is a convenience entry point that evaluates source against a
// brand-new Interpreter, matching spec §6's single-invocation
// run(source) -> text contract exactly.
func Run(source string) (string, error) {
	return NewInterpreter().Run(source)
}
