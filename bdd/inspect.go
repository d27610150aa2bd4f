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
	"github.com/hashicorp/go-set/v3"
)

// MapAtoms replaces every atom of d with f(atom), allocating the result in dst. The shape of d
// is preserved, including nodes shared within d.
//
// The result keeps atoms in increasing order only if f preserves the order of the atoms in d.
func MapAtoms[T Atom[T], U Atom[U]](dst *Store[U], d *Node[T], f func(T) U) *Node[U] {
	m := atomMapper[T, U]{dst: dst, f: f, seen: make(map[*Node[T]]*Node[U])}
	return m.mapNode(d)
}

type atomMapper[T Atom[T], U Atom[U]] struct {
	dst  *Store[U]
	f    func(T) U
	seen map[*Node[T]]*Node[U]
}

func (m *atomMapper[T, U]) mapNode(d *Node[T]) *Node[U] {
	switch d.kind {
	case Top:
		return m.dst.top
	case Bottom:
		return m.dst.bottom
	}
	if mapped, ok := m.seen[d]; ok {
		return mapped
	}
	atom := m.f(d.atom)
	mapped := m.dst.node(atom, m.mapNode(d.pos), m.mapNode(d.lazy), m.mapNode(d.neg))
	m.seen[d] = mapped
	return mapped
}

// Eval reports whether the valuation satisfies d, where valuation decides each atom.
func Eval[T any](d *Node[T], valuation func(T) bool) bool {
	for {
		switch d.kind {
		case Top:
			return true
		case Bottom:
			return false
		}
		if Eval(d.lazy, valuation) {
			return true
		}
		if valuation(d.atom) {
			d = d.pos
		} else {
			d = d.neg
		}
	}
}

// Support returns the distinct atoms mentioned by d, in increasing order.
func Support[T Atom[T]](d *Node[T]) []T {
	atoms := set.NewTreeSet[T](func(a, b T) int { return a.Compare(b) })
	visit(d, set.New[*Node[T]](0), func(n *Node[T]) {
		if n.kind == Decision {
			atoms.Insert(n.atom)
		}
	})
	return atoms.Slice()
}

// Nodes returns the distinct nodes reachable from d (including leaves), ordered bottom-up:
// every node appears after all of its children.
func Nodes[T any](d *Node[T]) []*Node[T] {
	var nodes []*Node[T]
	visit(d, set.New[*Node[T]](0), func(n *Node[T]) { nodes = append(nodes, n) })
	return nodes
}

// Count returns the number of distinct decision nodes reachable from d.
func Count[T any](d *Node[T]) int {
	n := 0
	visit(d, set.New[*Node[T]](0), func(node *Node[T]) {
		if node.kind == Decision {
			n++
		}
	})
	return n
}

func visit[T any](d *Node[T], seen *set.Set[*Node[T]], f func(*Node[T])) {
	if !seen.Insert(d) {
		return
	}
	if d.kind == Decision {
		visit(d.pos, seen, f)
		visit(d.lazy, seen, f)
		visit(d.neg, seen, f)
	}
	f(d)
}
