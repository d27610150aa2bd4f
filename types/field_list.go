// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package types

import (
	"github.com/benbjohnson/immutable"

	"github.com/wdamron/stipe/bdd"
)

var emptyList = immutable.NewList()

// Field is a labeled component of a record type.
type Field[V bdd.Atom[V], B bdd.Atom[B], L bdd.Atom[L], N bdd.Atom[N]] struct {
	Label L
	Type  *bdd.Node[Type[V, B, L, N]]
}

func (f Field[V, B, L, N]) Compare(other Field[V, B, L, N]) int {
	if c := f.Label.Compare(other.Label); c != 0 {
		return c
	}
	return bdd.Compare(f.Type, other.Type)
}

// FieldList is an immutable list of record fields, in insertion order.
type FieldList[V bdd.Atom[V], B bdd.Atom[B], L bdd.Atom[L], N bdd.Atom[N]] struct {
	l *immutable.List
}

func NewFieldList[V bdd.Atom[V], B bdd.Atom[B], L bdd.Atom[L], N bdd.Atom[N]](fields ...Field[V, B, L, N]) FieldList[V, B, L, N] {
	b := immutable.NewListBuilder(emptyList)
	for _, f := range fields {
		b.Append(f)
	}
	return FieldList[V, B, L, N]{b.List()}
}

func (l FieldList[V, B, L, N]) Len() int {
	if l.l == nil {
		return 0
	}
	return l.l.Len()
}

func (l FieldList[V, B, L, N]) Get(i int) Field[V, B, L, N] { return l.l.Get(i).(Field[V, B, L, N]) }

// Lookup returns the first field with the given label.
func (l FieldList[V, B, L, N]) Lookup(label L) (Field[V, B, L, N], bool) {
	var found Field[V, B, L, N]
	ok := false
	l.Range(func(_ int, f Field[V, B, L, N]) bool {
		if f.Label.Compare(label) == 0 {
			found, ok = f, true
			return false
		}
		return true
	})
	return found, ok
}

// Append returns a new list with f added at the end. The receiver is not modified.
func (l FieldList[V, B, L, N]) Append(f Field[V, B, L, N]) FieldList[V, B, L, N] {
	imm := l.l
	if imm == nil {
		imm = emptyList
	}
	return FieldList[V, B, L, N]{imm.Append(f)}
}

// If f returns false, iteration will be stopped.
func (l FieldList[V, B, L, N]) Range(f func(int, Field[V, B, L, N]) bool) {
	if l.l == nil {
		return
	}
	iter := l.l.Iterator()
	for !iter.Done() {
		i, v := iter.Next()
		if !f(i, v.(Field[V, B, L, N])) {
			return
		}
	}
}

// Compare orders lists lexicographically; a list orders before any longer list it prefixes.
func (l FieldList[V, B, L, N]) Compare(other FieldList[V, B, L, N]) int {
	n, m := l.Len(), other.Len()
	for i := 0; i < n && i < m; i++ {
		if c := l.Get(i).Compare(other.Get(i)); c != 0 {
			return c
		}
	}
	return compareLen(n, m)
}

// ArgList is an immutable list of type arguments.
type ArgList[V bdd.Atom[V], B bdd.Atom[B], L bdd.Atom[L], N bdd.Atom[N]] struct {
	l *immutable.List
}

func NewArgList[V bdd.Atom[V], B bdd.Atom[B], L bdd.Atom[L], N bdd.Atom[N]](args ...*bdd.Node[Type[V, B, L, N]]) ArgList[V, B, L, N] {
	b := immutable.NewListBuilder(emptyList)
	for _, t := range args {
		b.Append(t)
	}
	return ArgList[V, B, L, N]{b.List()}
}

func (l ArgList[V, B, L, N]) Len() int {
	if l.l == nil {
		return 0
	}
	return l.l.Len()
}

func (l ArgList[V, B, L, N]) Get(i int) *bdd.Node[Type[V, B, L, N]] {
	return l.l.Get(i).(*bdd.Node[Type[V, B, L, N]])
}

// If f returns false, iteration will be stopped.
func (l ArgList[V, B, L, N]) Range(f func(int, *bdd.Node[Type[V, B, L, N]]) bool) {
	if l.l == nil {
		return
	}
	iter := l.l.Iterator()
	for !iter.Done() {
		i, v := iter.Next()
		if !f(i, v.(*bdd.Node[Type[V, B, L, N]])) {
			return
		}
	}
}

// Compare orders lists lexicographically; a list orders before any longer list it prefixes.
func (l ArgList[V, B, L, N]) Compare(other ArgList[V, B, L, N]) int {
	n, m := l.Len(), other.Len()
	for i := 0; i < n && i < m; i++ {
		if c := bdd.Compare(l.Get(i), other.Get(i)); c != 0 {
			return c
		}
	}
	return compareLen(n, m)
}

func compareLen(n, m int) int {
	switch {
	case n < m:
		return -1
	case n > m:
		return 1
	}
	return 0
}
