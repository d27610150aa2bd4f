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

// bdd provides persistent ternary decision diagrams over a totally-ordered atom type.
//
// A diagram is either Top (the universal set), Bottom (the empty set), or a decision node
// (atom, pos, lazy, neg) which denotes (atom ∧ pos) ∨ lazy ∨ (¬atom ∧ neg). The lazy edge
// holds a union which has not yet been resolved against the node's atom; it is absorbed into
// pos and neg once an intersection or difference reaches the node.
//
// Atoms strictly increase along every edge of a diagram, and diagrams are never mutated after
// construction. Nodes are allocated from a Store, and a node only refers to nodes which were
// allocated before it.
package bdd

// Atom is the capability required of a decision variable: a consistent total order and a
// debug representation.
//
// Compare must return a negative number when the receiver orders before other, zero when the
// two are equal, and a positive number otherwise.
type Atom[T any] interface {
	Compare(other T) int
	String() string
}

// Kind identifies the constructor of a diagram node.
type Kind uint8

const (
	Bottom Kind = iota
	Top
	Decision
)

func (k Kind) String() string {
	switch k {
	case Bottom:
		return "Bottom"
	case Top:
		return "Top"
	case Decision:
		return "Decision"
	}
	return "Invalid"
}

// Node is an immutable diagram node. The zero value is not a valid node; nodes are created
// through a Store.
type Node[T any] struct {
	atom T
	pos  *Node[T]
	lazy *Node[T]
	neg  *Node[T]
	seq  uint32
	kind Kind
}

func (d *Node[T]) Kind() Kind       { return d.kind }
func (d *Node[T]) IsTop() bool      { return d.kind == Top }
func (d *Node[T]) IsBottom() bool   { return d.kind == Bottom }
func (d *Node[T]) IsDecision() bool { return d.kind == Decision }

// Atom returns the decision variable of a decision node. Leaves return the zero value.
func (d *Node[T]) Atom() T { return d.atom }

// Pos returns the branch taken when the atom holds, or nil for leaves.
func (d *Node[T]) Pos() *Node[T] { return d.pos }

// Lazy returns the deferred union of the node, or nil for leaves.
func (d *Node[T]) Lazy() *Node[T] { return d.lazy }

// Neg returns the branch taken when the atom does not hold, or nil for leaves.
func (d *Node[T]) Neg() *Node[T] { return d.neg }

// Seq returns the allocation sequence number of the node within its arena. A node's children
// always have smaller sequence numbers than the node itself.
func (d *Node[T]) Seq() uint32 { return d.seq }

// Compare orders diagrams structurally: Bottom < Top < decision nodes, and decision nodes by
// atom, then pos, lazy and neg.
func Compare[T Atom[T]](a, b *Node[T]) int {
	if a == b {
		return 0
	}
	if a.kind != b.kind {
		if a.kind < b.kind {
			return -1
		}
		return 1
	}
	if a.kind != Decision {
		return 0
	}
	if c := a.atom.Compare(b.atom); c != 0 {
		return c
	}
	if c := Compare(a.pos, b.pos); c != 0 {
		return c
	}
	if c := Compare(a.lazy, b.lazy); c != 0 {
		return c
	}
	return Compare(a.neg, b.neg)
}

// Equal reports whether two diagrams are structurally identical.
func Equal[T Atom[T]](a, b *Node[T]) bool {
	if a == b {
		return true
	}
	if a.kind != b.kind {
		return false
	}
	if a.kind != Decision {
		return true
	}
	return a.atom.Compare(b.atom) == 0 && Equal(a.pos, b.pos) && Equal(a.lazy, b.lazy) && Equal(a.neg, b.neg)
}
