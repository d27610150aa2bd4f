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
	"strings"
	"sync"

	"github.com/wdamron/stipe/bdd"
)

var printerPool = sync.Pool{
	New: func() interface{} { return &typePrinter{} },
}

type typePrinter struct {
	sb    strings.Builder
	first bool
}

func newTypePrinter() *typePrinter { return printerPool.Get().(*typePrinter) }

func (p *typePrinter) Release() {
	p.sb.Reset()
	p.first = false
	printerPool.Put(p)
}

func (p *typePrinter) done() string {
	s := p.sb.String()
	p.Release()
	return s
}

// Write a dimension of a type, unless the dimension is empty.
func (p *typePrinter) dimension(name string, empty bool, s interface{ String() string }) {
	if empty {
		return
	}
	if !p.first {
		p.sb.WriteString(", ")
	}
	p.first = false
	p.sb.WriteString(name)
	p.sb.WriteString(": ")
	p.sb.WriteString(s.String())
}

// String returns a debug representation listing the non-empty dimensions of t:
// `{basics: int, arrows: ...}`. A type with every dimension empty prints as `{}`.
func (t Type[V, B, L, N]) String() string {
	p := newTypePrinter()
	p.first = true
	p.sb.WriteByte('{')
	p.dimension("vars", t.Vars.IsBottom(), t.Vars)
	p.dimension("basics", t.Basics.IsBottom(), t.Basics)
	p.dimension("products", t.Products.IsBottom(), t.Products)
	p.dimension("arrows", t.Arrows.IsBottom(), t.Arrows)
	p.dimension("records", t.Records.IsBottom(), t.Records)
	p.dimension("refs", t.Refs.IsBottom(), t.Refs)
	p.sb.WriteByte('}')
	return p.done()
}

func (p Product[V, B, L, N]) String() string {
	tp := newTypePrinter()
	tp.sb.WriteByte('(')
	tp.sb.WriteString(p.Left.String())
	tp.sb.WriteString(", ")
	tp.sb.WriteString(p.Right.String())
	tp.sb.WriteByte(')')
	return tp.done()
}

func (a Arrow[V, B, L, N]) String() string {
	p := newTypePrinter()
	p.sb.WriteByte('(')
	p.sb.WriteString(a.Domain.String())
	p.sb.WriteString(" -> ")
	p.sb.WriteString(a.Codomain.String())
	p.sb.WriteByte(')')
	return p.done()
}

func (f Field[V, B, L, N]) String() string {
	return f.Label.String() + " : " + f.Type.String()
}

func (r Record[V, B, L, N]) String() string {
	p := newTypePrinter()
	p.sb.WriteByte('{')
	r.Fields.Range(func(i int, f Field[V, B, L, N]) bool {
		if i > 0 {
			p.sb.WriteString(", ")
		}
		p.sb.WriteString(f.String())
		return true
	})
	if r.Openness == Open {
		if r.Fields.Len() > 0 {
			p.sb.WriteString(", ")
		}
		p.sb.WriteString("..")
	}
	p.sb.WriteByte('}')
	return p.done()
}

func (r Reference[V, B, L, N]) String() string {
	if r.Args.Len() == 0 {
		return r.Name.String()
	}
	p := newTypePrinter()
	p.sb.WriteString(r.Name.String())
	p.sb.WriteByte('[')
	r.Args.Range(func(i int, t *bdd.Node[Type[V, B, L, N]]) bool {
		if i > 0 {
			p.sb.WriteString(", ")
		}
		p.sb.WriteString(t.String())
		return true
	})
	p.sb.WriteByte(']')
	return p.done()
}
