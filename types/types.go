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

// types provides the connectives of the type algebra and the Type aggregate which combines them.
//
// Each connective (Product, Arrow, Record, Reference) is an atom which may be used as a decision
// variable within a diagram. Connectives refer to their components through diagrams over Type,
// so types and connectives are mutually recursive.
package types

import (
	"github.com/wdamron/stipe/bdd"
)

// Type is a semantic type, represented as a direct sum over six independent dimensions. The
// set of values described by a type is the union of the sets described by each dimension.
//
// V, B, L and N are supplied by the embedder: type variables, basic types, record labels and
// nominal type names.
//
// The zero value is not a valid type; types are created through a context.
type Type[V bdd.Atom[V], B bdd.Atom[B], L bdd.Atom[L], N bdd.Atom[N]] struct {
	Vars     *bdd.Node[V]
	Basics   *bdd.Node[B]
	Products *bdd.Node[Product[V, B, L, N]]
	Arrows   *bdd.Node[Arrow[V, B, L, N]]
	Records  *bdd.Node[Record[V, B, L, N]]
	Refs     *bdd.Node[Reference[V, B, L, N]]
}

// Compare orders types lexicographically by dimension.
func (t Type[V, B, L, N]) Compare(other Type[V, B, L, N]) int {
	if c := bdd.Compare(t.Vars, other.Vars); c != 0 {
		return c
	}
	if c := bdd.Compare(t.Basics, other.Basics); c != 0 {
		return c
	}
	if c := bdd.Compare(t.Products, other.Products); c != 0 {
		return c
	}
	if c := bdd.Compare(t.Arrows, other.Arrows); c != 0 {
		return c
	}
	if c := bdd.Compare(t.Records, other.Records); c != 0 {
		return c
	}
	return bdd.Compare(t.Refs, other.Refs)
}

// IsBottom reports whether every dimension of t is the Bottom leaf.
func (t Type[V, B, L, N]) IsBottom() bool {
	return t.Vars.IsBottom() && t.Basics.IsBottom() && t.Products.IsBottom() &&
		t.Arrows.IsBottom() && t.Records.IsBottom() && t.Refs.IsBottom()
}

// IsTop reports whether every dimension of t is the Top leaf.
func (t Type[V, B, L, N]) IsTop() bool {
	return t.Vars.IsTop() && t.Basics.IsTop() && t.Products.IsTop() &&
		t.Arrows.IsTop() && t.Records.IsTop() && t.Refs.IsTop()
}

// Product type: `(l, r)`
type Product[V bdd.Atom[V], B bdd.Atom[B], L bdd.Atom[L], N bdd.Atom[N]] struct {
	Left, Right *bdd.Node[Type[V, B, L, N]]
}

func (p Product[V, B, L, N]) Compare(other Product[V, B, L, N]) int {
	if c := bdd.Compare(p.Left, other.Left); c != 0 {
		return c
	}
	return bdd.Compare(p.Right, other.Right)
}

// Function type: `d -> c`
type Arrow[V bdd.Atom[V], B bdd.Atom[B], L bdd.Atom[L], N bdd.Atom[N]] struct {
	Domain, Codomain *bdd.Node[Type[V, B, L, N]]
}

func (a Arrow[V, B, L, N]) Compare(other Arrow[V, B, L, N]) int {
	if c := bdd.Compare(a.Domain, other.Domain); c != 0 {
		return c
	}
	return bdd.Compare(a.Codomain, other.Codomain)
}

// Openness determines whether a record admits labels which it does not list.
type Openness uint8

const (
	// Unlisted labels are present with an unconstrained type.
	Open Openness = iota
	// Unlisted labels are forbidden.
	Closed
)

func (o Openness) Compare(other Openness) int {
	switch {
	case o < other:
		return -1
	case o > other:
		return 1
	}
	return 0
}

func (o Openness) String() string {
	if o == Open {
		return "open"
	}
	return "closed"
}

// Record type: `{a : _, b : _}` or `{a : _, b : _, ..}`
//
// Fields are kept in insertion order and are not required to be sorted by label.
type Record[V bdd.Atom[V], B bdd.Atom[B], L bdd.Atom[L], N bdd.Atom[N]] struct {
	Fields   FieldList[V, B, L, N]
	Openness Openness
}

// Create a record type with the given fields.
func NewRecord[V bdd.Atom[V], B bdd.Atom[B], L bdd.Atom[L], N bdd.Atom[N]](open Openness, fields ...Field[V, B, L, N]) Record[V, B, L, N] {
	return Record[V, B, L, N]{Fields: NewFieldList(fields...), Openness: open}
}

func (r Record[V, B, L, N]) Compare(other Record[V, B, L, N]) int {
	if c := r.Fields.Compare(other.Fields); c != 0 {
		return c
	}
	return r.Openness.Compare(other.Openness)
}

// Type application of a nominal type: `list[int]`
type Reference[V bdd.Atom[V], B bdd.Atom[B], L bdd.Atom[L], N bdd.Atom[N]] struct {
	Name N
	Args ArgList[V, B, L, N]
}

// Create a reference to the named type, applied to args.
func NewReference[V bdd.Atom[V], B bdd.Atom[B], L bdd.Atom[L], N bdd.Atom[N]](name N, args ...*bdd.Node[Type[V, B, L, N]]) Reference[V, B, L, N] {
	return Reference[V, B, L, N]{Name: name, Args: NewArgList(args...)}
}

func (r Reference[V, B, L, N]) Compare(other Reference[V, B, L, N]) int {
	if c := r.Name.Compare(other.Name); c != 0 {
		return c
	}
	return r.Args.Compare(other.Args)
}
