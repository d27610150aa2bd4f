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

package bdd

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} { return &printer{} },
}

type printer struct {
	sb strings.Builder
}

func newPrinter() *printer { return printerPool.Get().(*printer) }

func (p *printer) Release() {
	p.sb.Reset()
	printerPool.Put(p)
}

// String returns a debug representation of d. Shared nodes are printed once per reference,
// so the output may be much larger than the diagram; see Dump.
func (d *Node[T]) String() string {
	p := newPrinter()
	writeNode(p, d)
	s := p.sb.String()
	p.Release()
	return s
}

func writeAtom[T any](p *printer, atom T) {
	if s, ok := any(atom).(fmt.Stringer); ok {
		p.sb.WriteString(s.String())
		return
	}
	fmt.Fprint(&p.sb, atom)
}

func writeNode[T any](p *printer, d *Node[T]) {
	switch d.kind {
	case Top:
		p.sb.WriteString("Top")
		return
	case Bottom:
		p.sb.WriteString("Bottom")
		return
	}
	if d.pos.kind == Top && d.lazy.kind == Bottom && d.neg.kind == Bottom {
		writeAtom(p, d.atom)
		return
	}
	p.sb.WriteByte('(')
	writeAtom(p, d.atom)
	p.sb.WriteString(" ? ")
	writeNode(p, d.pos)
	p.sb.WriteString(" : ")
	writeNode(p, d.lazy)
	p.sb.WriteString(" : ")
	writeNode(p, d.neg)
	p.sb.WriteByte(')')
}

// Dump returns a listing of the decision nodes reachable from d, one per line and bottom-up,
// where each node refers to its children by sequence number:
//
//	#5 = y ? Top : Bottom : Bottom
//	#6 = x ? Top : #5 : Bottom
func Dump[T any](d *Node[T]) string {
	p := newPrinter()
	for _, n := range Nodes(d) {
		if n.kind != Decision {
			continue
		}
		p.sb.WriteString(ref(n))
		p.sb.WriteString(" = ")
		writeAtom(p, n.atom)
		p.sb.WriteString(" ? ")
		p.sb.WriteString(ref(n.pos))
		p.sb.WriteString(" : ")
		p.sb.WriteString(ref(n.lazy))
		p.sb.WriteString(" : ")
		p.sb.WriteString(ref(n.neg))
		p.sb.WriteByte('\n')
	}
	if d.kind != Decision {
		p.sb.WriteString(d.kind.String())
		p.sb.WriteByte('\n')
	}
	s := p.sb.String()
	p.Release()
	return s
}

func ref[T any](d *Node[T]) string {
	if d.kind != Decision {
		return d.kind.String()
	}
	return "#" + strconv.FormatUint(uint64(d.seq), 10)
}
