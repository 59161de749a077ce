//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

import (
	"strconv"
	"strings"
)

// Serialize renders a value as text per spec §4.6. Attempting to
// serialize a Procedure is a syntax failure, since the language never
// requires printing one.
func Serialize(v interface{}) (string, *Error) {
	var buf strings.Builder
	if err := serializeBuffer(v, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func serializeBuffer(v interface{}, buf *strings.Builder) *Error {
	switch t := v.(type) {
	case int64:
		buf.WriteString(strconv.FormatInt(t, 10))
	case bool:
		if t {
			buf.WriteString("#t")
		} else {
			buf.WriteString("#f")
		}
	case Symbol:
		buf.WriteString(string(t))
	case emptyListType:
		buf.WriteString("()")
	case *Pair:
		return serializePair(t, buf)
	case *Builtin:
		buf.WriteString(t.Name)
	case SpecialForm:
		buf.WriteString(t.Name())
	case *Procedure:
		return syntaxErrorf("cannot serialize a procedure")
	default:
		return runtimeErrorf("cannot serialize value of type %T", v)
	}
	return nil
}

// serializePair walks the cdr chain of a pair, writing proper-list
// elements separated by a space and, if the chain ends in a non-list
// terminator, a " . " before that dotted tail.
func serializePair(p *Pair, buf *strings.Builder) *Error {
	buf.WriteString("(")
	if err := serializeBuffer(p.Car, buf); err != nil {
		return err
	}
	cur := p.Cdr
	for {
		switch t := cur.(type) {
		case emptyListType:
			buf.WriteString(")")
			return nil
		case *Pair:
			buf.WriteString(" ")
			if err := serializeBuffer(t.Car, buf); err != nil {
				return err
			}
			cur = t.Cdr
		default:
			buf.WriteString(" . ")
			if err := serializeBuffer(cur, buf); err != nil {
				return err
			}
			buf.WriteString(")")
			return nil
		}
	}
}
