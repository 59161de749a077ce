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

func TestParseProgramEmptyInputIsSyntaxError(t *testing.T) {
	_, err := ParseProgram("")
	require.NotNil(t, err)
	assert.Equal(t, KindSyntax, err.Kind)
}

func TestParseProgramInteger(t *testing.T) {
	v, err := ParseProgram("42")
	require.Nil(t, err)
	assert.Equal(t, int64(42), v)
}

func TestParseProgramEmptyList(t *testing.T) {
	v, err := ParseProgram("()")
	require.Nil(t, err)
	assert.Equal(t, EmptyList, v)
}

func TestParseProgramProperList(t *testing.T) {
	v, err := ParseProgram("(1 2 3)")
	require.Nil(t, err)
	p, ok := v.(*Pair)
	require.True(t, ok)
	assert.True(t, p.IsProperList())
	elems, eerr := listElements(p)
	require.Nil(t, eerr)
	assert.Equal(t, []interface{}{int64(1), int64(2), int64(3)}, elems)
}

func TestParseProgramDottedPair(t *testing.T) {
	v, err := ParseProgram("(1 . 2)")
	require.Nil(t, err)
	p, ok := v.(*Pair)
	require.True(t, ok)
	assert.Equal(t, int64(1), p.Car)
	assert.Equal(t, int64(2), p.Cdr)
	assert.False(t, p.IsProperList())
}

func TestParseProgramQuoteSugar(t *testing.T) {
	v, err := ParseProgram("'x")
	require.Nil(t, err)
	p, ok := v.(*Pair)
	require.True(t, ok)
	assert.Equal(t, Symbol("quote"), p.Car)
}

func TestParseProgramUnmatchedCloseIsSyntaxError(t *testing.T) {
	_, err := ParseProgram(")")
	require.NotNil(t, err)
	assert.Equal(t, KindSyntax, err.Kind)
}

func TestParseProgramTrailingInputIsSyntaxError(t *testing.T) {
	_, err := ParseProgram("1 2")
	require.NotNil(t, err)
	assert.Equal(t, KindSyntax, err.Kind)
}

func TestParseProgramDanglingDotIsSyntaxError(t *testing.T) {
	_, err := ParseProgram("(1 .)")
	require.NotNil(t, err)
	assert.Equal(t, KindSyntax, err.Kind)
}

func TestParseProgramDanglingQuoteIsSyntaxError(t *testing.T) {
	_, err := ParseProgram("'")
	require.NotNil(t, err)
	assert.Equal(t, KindSyntax, err.Kind)
}
