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

func collectTokens(t *testing.T, source string) []token {
	t.Helper()
	var toks []token
	for tok := range lex(source) {
		toks = append(toks, tok)
	}
	return toks
}

func TestLexPunctuation(t *testing.T) {
	toks := collectTokens(t, "( ) ' .")
	require.Len(t, toks, 5)
	assert.Equal(t, tokenOpen, toks[0].kind)
	assert.Equal(t, tokenClose, toks[1].kind)
	assert.Equal(t, tokenQuote, toks[2].kind)
	assert.Equal(t, tokenDot, toks[3].kind)
	assert.Equal(t, tokenEOF, toks[4].kind)
}

func TestLexSignedIntegers(t *testing.T) {
	toks := collectTokens(t, "42 -7 +3")
	require.Len(t, toks, 4)
	for i, want := range []string{"42", "-7", "+3"} {
		assert.Equal(t, tokenInteger, toks[i].kind)
		assert.Equal(t, want, toks[i].text)
	}
}

func TestLexBareSignIsSymbol(t *testing.T) {
	toks := collectTokens(t, "+ -")
	require.Len(t, toks, 3)
	assert.Equal(t, tokenSymbol, toks[0].kind)
	assert.Equal(t, tokenSymbol, toks[1].kind)
}

func TestLexBooleans(t *testing.T) {
	toks := collectTokens(t, "#t #f")
	require.Len(t, toks, 3)
	assert.Equal(t, tokenBool, toks[0].kind)
	assert.Equal(t, tokenBool, toks[1].kind)
}

func TestLexSymbols(t *testing.T) {
	toks := collectTokens(t, "list-ref list? set! <= car2")
	require.Len(t, toks, 6)
	for _, tok := range toks[:5] {
		assert.Equal(t, tokenSymbol, tok.kind)
	}
}

func TestLexMalformedNumberIsSyntaxError(t *testing.T) {
	toks := collectTokens(t, "1abc")
	require.NotEmpty(t, toks)
	assert.Equal(t, tokenError, toks[len(toks)-1].kind)
}

func TestLexUnexpectedCharacter(t *testing.T) {
	toks := collectTokens(t, "@")
	require.NotEmpty(t, toks)
	assert.Equal(t, tokenError, toks[0].kind)
}
