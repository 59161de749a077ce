//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

//
// Built-in procedures, per spec §4.5. Each applies to an already
// evaluated argument vector and reports a runtime error on arity or
// type mismatch.
//

// builtinTable lists every built-in by its canonical name.
var builtinTable = []struct {
	name string
	fn   BuiltinFunc
}{
	{"+", builtinAdd},
	{"-", builtinSub},
	{"*", builtinMul},
	{"/", builtinDiv},
	{"abs", builtinAbs},
	{"min", builtinMin},
	{"max", builtinMax},
	{"=", builtinNumEq},
	{"<", builtinLt},
	{">", builtinGt},
	{"<=", builtinLe},
	{">=", builtinGe},
	{"not", builtinNot},
	{"number?", builtinIsNumber},
	{"boolean?", builtinIsBoolean},
	{"symbol?", builtinIsSymbol},
	{"pair?", builtinIsPair},
	{"null?", builtinIsNull},
	{"list?", builtinIsList},
	{"cons", builtinCons},
	{"car", builtinCar},
	{"cdr", builtinCdr},
	{"list", builtinList},
	{"list-ref", builtinListRef},
	{"list-tail", builtinListTail},
}

// requireInts converts args to a slice of int64, raising a runtime
// error naming the offending built-in if any argument is not an
// Integer.
func requireInts(name string, args []interface{}) ([]int64, *Error) {
	ints := make([]int64, len(args))
	for i, a := range args {
		n, ok := a.(int64)
		if !ok {
			return nil, runtimeErrorf("%s: argument %d is not an integer", name, i+1)
		}
		ints[i] = n
	}
	return ints, nil
}

func builtinAdd(args []interface{}) (interface{}, *Error) {
	ints, err := requireInts("+", args)
	if err != nil {
		return nil, err
	}
	var sum int64
	for _, n := range ints {
		sum += n
	}
	return sum, nil
}

func builtinSub(args []interface{}) (interface{}, *Error) {
	if len(args) < 1 {
		return nil, runtimeErrorf("-: requires at least 1 argument")
	}
	ints, err := requireInts("-", args)
	if err != nil {
		return nil, err
	}
	acc := ints[0]
	for _, n := range ints[1:] {
		acc -= n
	}
	return acc, nil
}

func builtinMul(args []interface{}) (interface{}, *Error) {
	ints, err := requireInts("*", args)
	if err != nil {
		return nil, err
	}
	var prod int64 = 1
	for _, n := range ints {
		prod *= n
	}
	return prod, nil
}

func builtinDiv(args []interface{}) (interface{}, *Error) {
	if len(args) < 1 {
		return nil, runtimeErrorf("/: requires at least 1 argument")
	}
	ints, err := requireInts("/", args)
	if err != nil {
		return nil, err
	}
	acc := ints[0]
	for _, n := range ints[1:] {
		if n == 0 {
			return nil, runtimeErrorf("/: division by zero")
		}
		acc /= n
	}
	return acc, nil
}

func builtinAbs(args []interface{}) (interface{}, *Error) {
	if len(args) != 1 {
		return nil, runtimeErrorf("abs: requires exactly 1 argument")
	}
	ints, err := requireInts("abs", args)
	if err != nil {
		return nil, err
	}
	n := ints[0]
	if n < 0 {
		return -n, nil
	}
	return n, nil
}

func builtinMin(args []interface{}) (interface{}, *Error) {
	if len(args) < 1 {
		return nil, runtimeErrorf("min: requires at least 1 argument")
	}
	ints, err := requireInts("min", args)
	if err != nil {
		return nil, err
	}
	m := ints[0]
	for _, n := range ints[1:] {
		if n < m {
			m = n
		}
	}
	return m, nil
}

func builtinMax(args []interface{}) (interface{}, *Error) {
	if len(args) < 1 {
		return nil, runtimeErrorf("max: requires at least 1 argument")
	}
	ints, err := requireInts("max", args)
	if err != nil {
		return nil, err
	}
	m := ints[0]
	for _, n := range ints[1:] {
		if n > m {
			m = n
		}
	}
	return m, nil
}

// chainCompare applies cmp pairwise to consecutive elements of args,
// returning #t if every comparison holds (vacuously true for 0 or 1
// arguments).
func chainCompare(name string, args []interface{}, cmp func(a, b int64) bool) (interface{}, *Error) {
	ints, err := requireInts(name, args)
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(ints); i++ {
		if !cmp(ints[i-1], ints[i]) {
			return false, nil
		}
	}
	return true, nil
}

func builtinNumEq(args []interface{}) (interface{}, *Error) {
	return chainCompare("=", args, func(a, b int64) bool { return a == b })
}

func builtinLt(args []interface{}) (interface{}, *Error) {
	return chainCompare("<", args, func(a, b int64) bool { return a < b })
}

func builtinGt(args []interface{}) (interface{}, *Error) {
	return chainCompare(">", args, func(a, b int64) bool { return a > b })
}

func builtinLe(args []interface{}) (interface{}, *Error) {
	return chainCompare("<=", args, func(a, b int64) bool { return a <= b })
}

func builtinGe(args []interface{}) (interface{}, *Error) {
	return chainCompare(">=", args, func(a, b int64) bool { return a >= b })
}

func builtinNot(args []interface{}) (interface{}, *Error) {
	if len(args) != 1 {
		return nil, runtimeErrorf("not: requires exactly 1 argument")
	}
	b, ok := args[0].(bool)
	return ok && !b, nil
}

func builtinIsNumber(args []interface{}) (interface{}, *Error) {
	if len(args) != 1 {
		return nil, runtimeErrorf("number?: requires exactly 1 argument")
	}
	_, ok := args[0].(int64)
	return ok, nil
}

func builtinIsBoolean(args []interface{}) (interface{}, *Error) {
	if len(args) != 1 {
		return nil, runtimeErrorf("boolean?: requires exactly 1 argument")
	}
	_, ok := args[0].(bool)
	return ok, nil
}

func builtinIsSymbol(args []interface{}) (interface{}, *Error) {
	if len(args) != 1 {
		return nil, runtimeErrorf("symbol?: requires exactly 1 argument")
	}
	_, ok := args[0].(Symbol)
	return ok, nil
}

func builtinIsPair(args []interface{}) (interface{}, *Error) {
	if len(args) != 1 {
		return nil, runtimeErrorf("pair?: requires exactly 1 argument")
	}
	_, ok := args[0].(*Pair)
	return ok, nil
}

func builtinIsNull(args []interface{}) (interface{}, *Error) {
	if len(args) != 1 {
		return nil, runtimeErrorf("null?: requires exactly 1 argument")
	}
	_, ok := args[0].(emptyListType)
	return ok, nil
}

func builtinIsList(args []interface{}) (interface{}, *Error) {
	if len(args) != 1 {
		return nil, runtimeErrorf("list?: requires exactly 1 argument")
	}
	switch t := args[0].(type) {
	case emptyListType:
		return true, nil
	case *Pair:
		return t.IsProperList(), nil
	default:
		return false, nil
	}
}

func builtinCons(args []interface{}) (interface{}, *Error) {
	if len(args) != 2 {
		return nil, runtimeErrorf("cons: requires exactly 2 arguments")
	}
	return NewPair(args[0], args[1]), nil
}

func builtinCar(args []interface{}) (interface{}, *Error) {
	if len(args) != 1 {
		return nil, runtimeErrorf("car: requires exactly 1 argument")
	}
	if _, ok := args[0].(emptyListType); ok {
		return nil, runtimeErrorf("car: cannot take the car of the empty list")
	}
	p, ok := args[0].(*Pair)
	if !ok {
		return nil, runtimeErrorf("car: requires a pair")
	}
	return p.Car, nil
}

func builtinCdr(args []interface{}) (interface{}, *Error) {
	if len(args) != 1 {
		return nil, runtimeErrorf("cdr: requires exactly 1 argument")
	}
	if _, ok := args[0].(emptyListType); ok {
		return nil, runtimeErrorf("cdr: cannot take the cdr of the empty list")
	}
	p, ok := args[0].(*Pair)
	if !ok {
		return nil, runtimeErrorf("cdr: requires a pair")
	}
	return p.Cdr, nil
}

func builtinList(args []interface{}) (interface{}, *Error) {
	return NewList(args...), nil
}

// nthPair walks n cdr links from a required starting pair, used by
// list-ref and list-tail.
func nthPair(name string, start interface{}, n int64) (*Pair, *Error) {
	if n < 0 {
		return nil, runtimeErrorf("%s: index must be non-negative", name)
	}
	p, ok := start.(*Pair)
	if !ok {
		return nil, runtimeErrorf("%s: requires a pair", name)
	}
	for i := int64(0); i < n; i++ {
		next, ok := p.Cdr.(*Pair)
		if !ok {
			return nil, runtimeErrorf("%s: index out of range", name)
		}
		p = next
	}
	return p, nil
}

func builtinListRef(args []interface{}) (interface{}, *Error) {
	if len(args) != 2 {
		return nil, runtimeErrorf("list-ref: requires exactly 2 arguments")
	}
	n, ok := args[1].(int64)
	if !ok {
		return nil, runtimeErrorf("list-ref: index must be an integer")
	}
	p, err := nthPair("list-ref", args[0], n)
	if err != nil {
		return nil, err
	}
	return p.Car, nil
}

func builtinListTail(args []interface{}) (interface{}, *Error) {
	if len(args) != 2 {
		return nil, runtimeErrorf("list-tail: requires exactly 2 arguments")
	}
	n, ok := args[1].(int64)
	if !ok {
		return nil, runtimeErrorf("list-tail: index must be an integer")
	}
	if n == 0 {
		if _, ok := args[0].(*Pair); !ok {
			return nil, runtimeErrorf("list-tail: requires a pair")
		}
		return args[0], nil
	}
	p, err := nthPair("list-tail", args[0], n-1)
	if err != nil {
		return nil, err
	}
	return p.Cdr, nil
}
