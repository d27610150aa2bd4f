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
	"github.com/wdamron/stipe/internal/arena"
)

// Store allocates the diagrams of one atom type within an arena. Combinators never mutate
// their operands; every new node is allocated from the store.
//
// A store cannot be used concurrently. The diagrams it returns may be shared read-only.
type Store[T Atom[T]] struct {
	pool   *arena.Pool[Node[T]]
	top    *Node[T]
	bottom *Node[T]
}

// Create a new store of diagrams within a.
func NewStore[T Atom[T]](a *arena.Arena) *Store[T] {
	s := &Store[T]{pool: arena.NewPool[Node[T]](a)}
	s.bottom = s.leaf(Bottom)
	s.top = s.leaf(Top)
	return s
}

// Arena returns the arena which owns the store's nodes.
func (s *Store[T]) Arena() *arena.Arena { return s.pool.Arena() }

func (s *Store[T]) leaf(kind Kind) *Node[T] {
	d, seq := s.pool.Alloc()
	d.kind, d.seq = kind, seq
	return d
}

func (s *Store[T]) node(atom T, pos, lazy, neg *Node[T]) *Node[T] {
	d, seq := s.pool.Alloc()
	d.kind, d.seq = Decision, seq
	d.atom, d.pos, d.lazy, d.neg = atom, pos, lazy, neg
	return d
}

// Top returns the universal diagram.
func (s *Store[T]) Top() *Node[T] { return s.top }

// Bottom returns the empty diagram.
func (s *Store[T]) Bottom() *Node[T] { return s.bottom }

// Atom returns the diagram selecting exactly a: (a, Top, Bottom, Bottom).
func (s *Store[T]) Atom(a T) *Node[T] {
	return s.node(a, s.top, s.bottom, s.bottom)
}

// Not returns the complement of d.
//
// A node without a pending lazy union is complemented branch-wise. Otherwise the lazy union is
// first absorbed into both branches, since ¬(a∧p ∨ u ∨ ¬a∧n) = a∧¬(p∨u) ∨ ¬a∧¬(n∨u).
func (s *Store[T]) Not(d *Node[T]) *Node[T] {
	switch d.kind {
	case Top:
		return s.bottom
	case Bottom:
		return s.top
	}
	if d.lazy.kind == Bottom {
		return s.node(d.atom, s.Not(d.pos), d.lazy, s.Not(d.neg))
	}
	return s.simplify(d.atom,
		s.Not(s.Union(d.pos, d.lazy)),
		s.bottom,
		s.Not(s.Union(d.neg, d.lazy)))
}

// Union returns the union of a and b.
//
// When the top atoms differ, the diagram with the greater atom is deferred into the lazy edge
// of the node with the smaller atom instead of being distributed into both of its branches.
func (s *Store[T]) Union(a, b *Node[T]) *Node[T] {
	switch {
	case a.kind == Top || b.kind == Top:
		return s.top
	case b.kind == Bottom:
		return a
	case a.kind == Bottom:
		return b
	}
	switch c := a.atom.Compare(b.atom); {
	case c == 0:
		return s.node(a.atom,
			s.Union(a.pos, b.pos),
			s.Union(a.lazy, b.lazy),
			s.Union(a.neg, b.neg))
	case c < 0:
		return s.node(a.atom, a.pos, s.Union(a.lazy, b), a.neg)
	default:
		return s.node(b.atom, b.pos, s.Union(a, b.lazy), b.neg)
	}
}

// Inter returns the intersection of a and b.
func (s *Store[T]) Inter(a, b *Node[T]) *Node[T] {
	switch {
	case a.kind == Bottom || b.kind == Bottom:
		return s.bottom
	case b.kind == Top:
		return a
	case a.kind == Top:
		return b
	}
	switch c := a.atom.Compare(b.atom); {
	case c == 0:
		return s.simplify(a.atom,
			s.Inter(s.Union(a.pos, a.lazy), s.Union(b.pos, b.lazy)),
			s.bottom,
			s.Inter(s.Union(a.neg, a.lazy), s.Union(b.neg, b.lazy)))
	case c < 0:
		return s.simplify(a.atom,
			s.Inter(s.Union(a.pos, a.lazy), b),
			s.bottom,
			s.Inter(s.Union(a.neg, a.lazy), b))
	default:
		return s.simplify(b.atom,
			s.Inter(a, s.Union(b.pos, b.lazy)),
			s.bottom,
			s.Inter(a, s.Union(b.neg, b.lazy)))
	}
}

// Diff returns the difference a \ b.
func (s *Store[T]) Diff(a, b *Node[T]) *Node[T] {
	switch {
	case b.kind == Top || a.kind == Bottom:
		return s.bottom
	case b.kind == Bottom:
		return a
	case a.kind == Top:
		return s.Not(b)
	}
	switch c := a.atom.Compare(b.atom); {
	case c == 0:
		return s.simplify(a.atom,
			s.Diff(s.Union(a.pos, a.lazy), s.Union(b.pos, b.lazy)),
			s.bottom,
			s.Diff(s.Union(a.neg, a.lazy), s.Union(b.neg, b.lazy)))
	case c < 0:
		return s.simplify(a.atom,
			s.Diff(s.Union(a.pos, a.lazy), b),
			s.bottom,
			s.Diff(s.Union(a.neg, a.lazy), b))
	default:
		return s.simplify(b.atom,
			s.Diff(a, s.Union(b.pos, b.lazy)),
			s.bottom,
			s.Diff(a, s.Union(b.neg, b.lazy)))
	}
}

// simplify builds the node (atom, pos, lazy, neg) produced by an intersection or difference,
// collapsing it when the atom is irrelevant or the lazy union is universal. Unions never pass
// through here.
func (s *Store[T]) simplify(atom T, pos, lazy, neg *Node[T]) *Node[T] {
	if Equal(pos, neg) {
		return s.Union(pos, lazy)
	}
	if lazy.kind == Top {
		return lazy
	}
	return s.node(atom, pos, lazy, neg)
}

// UnionAll folds Union over ds from the left. The union of no diagrams is Bottom.
func (s *Store[T]) UnionAll(ds ...*Node[T]) *Node[T] {
	if len(ds) == 0 {
		return s.bottom
	}
	acc := ds[0]
	for _, d := range ds[1:] {
		acc = s.Union(acc, d)
	}
	return acc
}

// InterAll folds Inter over ds from the left. The intersection of no diagrams is Top.
func (s *Store[T]) InterAll(ds ...*Node[T]) *Node[T] {
	if len(ds) == 0 {
		return s.top
	}
	acc := ds[0]
	for _, d := range ds[1:] {
		acc = s.Inter(acc, d)
	}
	return acc
}
