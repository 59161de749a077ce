//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

//
// Evaluator: recursively reduces a value tree under an environment,
// dispatching special forms before general application, per spec §4.3
// and §4.4.
//

// Eval reduces expr under env, following the dispatch rules of spec
// §4.3: self-evaluating values return unchanged, symbols resolve
// through env, and pairs are treated as application.
func Eval(expr interface{}, env *Environment) (interface{}, *Error) {
	switch t := expr.(type) {
	case int64, bool, *Builtin, SpecialForm, *Procedure, emptyListType:
		return expr, nil
	case Symbol:
		v, ok := env.Find(t)
		if !ok {
			return nil, nameErrorf("unbound variable: %s", t)
		}
		return v, nil
	case *Pair:
		return evalPair(t, env)
	default:
		return nil, runtimeErrorf("cannot evaluate value of type %T", expr)
	}
}

// evalPair treats p as an application: its car is evaluated to obtain
// an operator, which is either a special form (which decides what to
// evaluate) or a callable applied to the fully-evaluated argument
// vector.
func evalPair(p *Pair, env *Environment) (interface{}, *Error) {
	op, err := Eval(p.Car, env)
	if err != nil {
		return nil, err
	}
	if sf, ok := op.(SpecialForm); ok {
		return evalSpecialForm(sf, p.Cdr, env)
	}
	args, err := evalArgs(p.Cdr, env)
	if err != nil {
		return nil, err
	}
	switch callee := op.(type) {
	case *Builtin:
		return callee.Fn(args)
	case *Procedure:
		return applyProcedure(callee, args)
	default:
		return nil, runtimeErrorf("operator expected, value is not applicable")
	}
}

// evalArgs evaluates each element of an argument-list chain left to
// right, producing the argument vector for application.
func evalArgs(rest interface{}, env *Environment) ([]interface{}, *Error) {
	var args []interface{}
	cur := rest
	for {
		switch t := cur.(type) {
		case emptyListType:
			return args, nil
		case *Pair:
			v, err := Eval(t.Car, env)
			if err != nil {
				return nil, err
			}
			args = append(args, v)
			cur = t.Cdr
		default:
			return nil, syntaxErrorf("argument list does not terminate in ()")
		}
	}
}

// applyProcedure invokes a user-defined Procedure: arity must match
// exactly, a fresh frame is created over the captured environment, and
// the body is evaluated in order with the value of the last expression
// returned.
func applyProcedure(proc *Procedure, args []interface{}) (interface{}, *Error) {
	if len(args) != len(proc.Params) {
		return nil, runtimeErrorf("procedure expects %d argument(s), got %d", len(proc.Params), len(args))
	}
	callEnv := NewEnvironment(proc.Env)
	for i, param := range proc.Params {
		callEnv.Define(param, args[i])
	}
	var result interface{} = EmptyList
	var err *Error
	for _, expr := range proc.Body {
		result, err = Eval(expr, callEnv)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// evalSpecialForm dispatches to the handler for the given form tag. Each
// handler receives the unevaluated operand tail and chooses what to
// evaluate, per spec §4.4.
func evalSpecialForm(sf SpecialForm, rest interface{}, env *Environment) (interface{}, *Error) {
	switch sf.Tag {
	case FormQuote:
		return evalQuote(rest)
	case FormIf:
		return evalIf(rest, env)
	case FormDefine:
		return evalDefine(rest, env)
	case FormSet:
		return evalSet(rest, env)
	case FormSetCar:
		return evalSetCarCdr(rest, env, true)
	case FormSetCdr:
		return evalSetCarCdr(rest, env, false)
	case FormAnd:
		return evalAnd(rest, env)
	case FormOr:
		return evalOr(rest, env)
	case FormLambda:
		return evalLambda(rest, env)
	}
	return nil, runtimeErrorf("unimplemented special form %v", sf)
}

// isTruthy reports whether v is treated as true by if/and/or: every
// value except the boolean #f is true.
func isTruthy(v interface{}) bool {
	b, isBool := v.(bool)
	return !isBool || b
}

// evalQuote implements (quote datum): exactly one operand, returned
// unevaluated.
func evalQuote(rest interface{}) (interface{}, *Error) {
	elems, err := listElements(rest)
	if err != nil {
		return nil, syntaxErrorf("quote: %s", err.Message)
	}
	if len(elems) != 1 {
		return nil, syntaxErrorf("quote requires exactly one operand")
	}
	return elems[0], nil
}

// evalIf implements (if test then) / (if test then else).
func evalIf(rest interface{}, env *Environment) (interface{}, *Error) {
	elems, err := listElements(rest)
	if err != nil {
		return nil, syntaxErrorf("if: %s", err.Message)
	}
	if len(elems) != 2 && len(elems) != 3 {
		return nil, syntaxErrorf("if requires a test and one or two branches")
	}
	test, err := Eval(elems[0], env)
	if err != nil {
		return nil, err
	}
	if isTruthy(test) {
		return Eval(elems[1], env)
	}
	if len(elems) == 3 {
		return Eval(elems[2], env)
	}
	return EmptyList, nil
}

// evalDefine implements (define name expr) and the procedure-definition
// sugar (define (name p1 ... pk) body...).
func evalDefine(rest interface{}, env *Environment) (interface{}, *Error) {
	elems, err := listElements(rest)
	if err != nil {
		return nil, syntaxErrorf("define: %s", err.Message)
	}
	if len(elems) < 2 {
		return nil, syntaxErrorf("define requires a name and a value")
	}
	if sig, ok := elems[0].(*Pair); ok {
		name, ok := sig.Car.(Symbol)
		if !ok {
			return nil, nameErrorf("procedure name in define must be a symbol")
		}
		proc, err := makeLambda(sig.Cdr, elems[1:], env)
		if err != nil {
			return nil, err
		}
		env.Define(name, proc)
		return EmptyList, nil
	}
	name, ok := elems[0].(Symbol)
	if !ok {
		return nil, syntaxErrorf("define requires a symbol or a procedure signature")
	}
	if len(elems) != 2 {
		return nil, syntaxErrorf("define requires exactly one value expression")
	}
	val, err := Eval(elems[1], env)
	if err != nil {
		return nil, err
	}
	env.Define(name, val)
	return EmptyList, nil
}

// evalSet implements (set! name expr).
func evalSet(rest interface{}, env *Environment) (interface{}, *Error) {
	elems, err := listElements(rest)
	if err != nil {
		return nil, syntaxErrorf("set!: %s", err.Message)
	}
	if len(elems) != 2 {
		return nil, syntaxErrorf("set! requires a name and a value")
	}
	name, ok := elems[0].(Symbol)
	if !ok {
		return nil, syntaxErrorf("set! target must be a symbol")
	}
	val, err := Eval(elems[1], env)
	if err != nil {
		return nil, err
	}
	if serr := env.Set(name, val); serr != nil {
		return nil, serr
	}
	return val, nil
}

// evalSetCarCdr implements (set-car! pair expr) and (set-cdr! pair expr).
func evalSetCarCdr(rest interface{}, env *Environment, isCar bool) (interface{}, *Error) {
	name := "set-cdr!"
	if isCar {
		name = "set-car!"
	}
	elems, err := listElements(rest)
	if err != nil {
		return nil, syntaxErrorf("%s: %s", name, err.Message)
	}
	if len(elems) != 2 {
		return nil, syntaxErrorf("%s requires a pair and a value", name)
	}
	target, err := Eval(elems[0], env)
	if err != nil {
		return nil, err
	}
	val, err := Eval(elems[1], env)
	if err != nil {
		return nil, err
	}
	p, ok := target.(*Pair)
	if !ok {
		return nil, runtimeErrorf("%s requires a pair", name)
	}
	if isCar {
		p.Car = val
	} else {
		p.Cdr = val
	}
	return EmptyList, nil
}

// evalAnd implements short-circuit (and e1 ... en).
func evalAnd(rest interface{}, env *Environment) (interface{}, *Error) {
	elems, err := listElements(rest)
	if err != nil {
		return nil, syntaxErrorf("and: %s", err.Message)
	}
	var result interface{} = true
	for _, expr := range elems {
		result, err = Eval(expr, env)
		if err != nil {
			return nil, err
		}
		if b, ok := result.(bool); ok && !b {
			return false, nil
		}
	}
	return result, nil
}

// evalOr implements short-circuit (or e1 ... en).
func evalOr(rest interface{}, env *Environment) (interface{}, *Error) {
	elems, err := listElements(rest)
	if err != nil {
		return nil, syntaxErrorf("or: %s", err.Message)
	}
	for _, expr := range elems {
		result, err := Eval(expr, env)
		if err != nil {
			return nil, err
		}
		if isTruthy(result) {
			return result, nil
		}
	}
	return false, nil
}

// evalLambda implements (lambda (p1 ... pk) body1 body2 ...).
func evalLambda(rest interface{}, env *Environment) (interface{}, *Error) {
	elems, err := listElements(rest)
	if err != nil {
		return nil, syntaxErrorf("lambda: %s", err.Message)
	}
	if len(elems) < 2 {
		return nil, syntaxErrorf("lambda requires a parameter list and a non-empty body")
	}
	return makeLambda(elems[0], elems[1:], env)
}

// makeLambda constructs a Procedure capturing env, validating that
// params is a proper list of symbols (possibly repeated — the last
// binding wins) and that body is non-empty.
func makeLambda(params interface{}, body []interface{}, env *Environment) (interface{}, *Error) {
	if len(body) == 0 {
		return nil, syntaxErrorf("lambda body must not be empty")
	}
	paramElems, err := listElements(params)
	if err != nil {
		return nil, syntaxErrorf("lambda parameters must be a proper list")
	}
	syms := make([]Symbol, len(paramElems))
	for i, p := range paramElems {
		sym, ok := p.(Symbol)
		if !ok {
			return nil, nameErrorf("lambda parameter must be a symbol")
		}
		syms[i] = sym
	}
	return &Procedure{Params: syms, Body: body, Env: env}, nil
}
