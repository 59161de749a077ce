//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinArithmetic(t *testing.T) {
	cases := []struct {
		source string
		want   string
	}{
		{"(+ 1 2 3)", "6"},
		{"(+)", "0"},
		{"(* 2 3 4)", "24"},
		{"(*)", "1"},
		{"(- 10 3 2)", "5"},
		{"(- 10)", "10"},
		{"(/ 100 5 2)", "10"},
		{"(/ 10)", "10"},
		{"(abs -5)", "5"},
		{"(abs 5)", "5"},
		{"(min 3 1 2)", "1"},
		{"(max 3 1 2)", "3"},
	}
	for _, c := range cases {
		got, err := Run(c.source)
		require.Nil(t, err, c.source)
		assert.Equal(t, c.want, got, c.source)
	}
}

func TestBuiltinDivisionByZeroIsRuntime(t *testing.T) {
	_, err := Run("(/ 1 0)")
	require.NotNil(t, err)
	assert.Equal(t, KindRuntime, err.(*Error).Kind)
}

func TestBuiltinComparisonsChain(t *testing.T) {
	cases := []struct {
		source string
		want   string
	}{
		{"(< 1 2 3)", "#t"},
		{"(< 1 3 2)", "#f"},
		{"(= 1 1 1)", "#t"},
		{"(>= 3 3 2)", "#t"},
		{"(< )", "#t"},
		{"(< 1)", "#t"},
	}
	for _, c := range cases {
		got, err := Run(c.source)
		require.Nil(t, err, c.source)
		assert.Equal(t, c.want, got, c.source)
	}
}

func TestBuiltinTypePredicates(t *testing.T) {
	cases := []struct {
		source string
		want   string
	}{
		{"(number? 1)", "#t"},
		{"(number? #t)", "#f"},
		{"(boolean? #f)", "#t"},
		{"(symbol? (quote x))", "#t"},
		{"(pair? (cons 1 2))", "#t"},
		{"(pair? (list))", "#f"},
		{"(null? (list))", "#t"},
		{"(not #f)", "#t"},
		{"(not 0)", "#f"},
	}
	for _, c := range cases {
		got, err := Run(c.source)
		require.Nil(t, err, c.source)
		assert.Equal(t, c.want, got, c.source)
	}
}

func TestBuiltinArityErrorsAreRuntime(t *testing.T) {
	cases := []string{"(abs)", "(abs 1 2)", "(cons 1)", "(car)", "(car 1 2)"}
	for _, source := range cases {
		_, err := Run(source)
		require.NotNil(t, err, source)
		assert.Equal(t, KindRuntime, err.(*Error).Kind, source)
	}
}

func TestBuiltinTypeErrorsAreRuntime(t *testing.T) {
	cases := []string{"(+ 1 #t)", "(car 1)", "(list-ref (list 1) 5)"}
	for _, source := range cases {
		_, err := Run(source)
		require.NotNil(t, err, source)
		assert.Equal(t, KindRuntime, err.(*Error).Kind, source)
	}
}

func TestBuiltinListRefAndTail(t *testing.T) {
	got, err := Run("(list-ref (list 10 20 30) 1)")
	require.Nil(t, err)
	assert.Equal(t, "20", got)
	got, err = Run("(list-tail (list 10 20 30) 1)")
	require.Nil(t, err)
	assert.Equal(t, "(20 30)", got)
}
