//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextFormLengthAtom(t *testing.T) {
	n := NextFormLength("42 rest")
	assert.Equal(t, "42", "42 rest"[:n])
}

func TestNextFormLengthList(t *testing.T) {
	source := "(define x 1) (define y 2)"
	n := NextFormLength(source)
	assert.Equal(t, "(define x 1)", source[:n])
}

func TestNextFormLengthNestedList(t *testing.T) {
	source := "(define (f x) (+ x 1)) (f 2)"
	n := NextFormLength(source)
	assert.Equal(t, "(define (f x) (+ x 1))", source[:n])
}

func TestNextFormLengthQuotedForm(t *testing.T) {
	source := "'(a b) tail"
	n := NextFormLength(source)
	assert.Equal(t, "'(a b)", source[:n])
}

func TestNextFormLengthSkipsLeadingWhitespace(t *testing.T) {
	source := "   \n  99 leftover"
	n := NextFormLength(source)
	assert.Equal(t, 2, n)
}

func TestNextFormLengthUnmatchedCloseIsUndetermined(t *testing.T) {
	n := NextFormLength(")")
	assert.Equal(t, -1, n)
}

func TestNextFormLengthUnterminatedListIsUndetermined(t *testing.T) {
	n := NextFormLength("(1 2")
	assert.Equal(t, -1, n)
}
