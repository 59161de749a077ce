//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

// cursor adapts the tokenizer's channel of tokens into the peek/advance/
// at-end interface the parser is specified against (spec §4.1's "output:
// a resettable cursor over tokens"). It buffers exactly one token ahead
// of the channel so Peek never consumes.
type cursor struct {
	ch      chan token
	current token
	primed  bool
}

// newCursor wraps the token channel produced by lex.
func newCursor(ch chan token) *cursor {
	return &cursor{ch: ch}
}

// fill ensures current holds the next undelivered token.
func (c *cursor) fill() {
	if !c.primed {
		t, ok := <-c.ch
		if !ok {
			c.current = token{kind: tokenEOF}
		} else {
			c.current = t
		}
		c.primed = true
	}
}

// Peek returns the current token without consuming it.
func (c *cursor) Peek() token {
	c.fill()
	return c.current
}

// Advance consumes and returns the current token, arranging for the
// next call to Peek or Advance to see the following one.
func (c *cursor) Advance() token {
	c.fill()
	t := c.current
	c.primed = false
	return t
}

// AtEnd reports whether the cursor has reached the end of the token
// stream.
func (c *cursor) AtEnd() bool {
	return c.Peek().kind == tokenEOF
}

// drain discards any tokens left on the channel until the lexer
// goroutine closes it. A cursor abandoned before reaching tokenEOF (a
// syntax error mid-parse, or trailing input after a complete datum)
// would otherwise leave lexStart blocked forever trying to emit into
// the unbuffered channel; callers that construct a cursor should defer
// drain to let that goroutine run to completion regardless of how
// parsing ends.
func (c *cursor) drain() {
	for range c.ch {
	}
}
