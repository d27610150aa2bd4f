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

package stipe

import (
	"github.com/wdamron/stipe/bdd"
	"github.com/wdamron/stipe/types"
)

// EmptyType returns the type with every dimension empty.
func (c *Context[V, B, L, N]) EmptyType() types.Type[V, B, L, N] {
	return types.Type[V, B, L, N]{
		Vars:     c.vars.Bottom(),
		Basics:   c.basics.Bottom(),
		Products: c.products.Bottom(),
		Arrows:   c.arrows.Bottom(),
		Records:  c.records.Bottom(),
		Refs:     c.refs.Bottom(),
	}
}

// AnyType returns the universal type, with every dimension universal.
func (c *Context[V, B, L, N]) AnyType() types.Type[V, B, L, N] {
	return types.Type[V, B, L, N]{
		Vars:     c.vars.Top(),
		Basics:   c.basics.Top(),
		Products: c.products.Top(),
		Arrows:   c.arrows.Top(),
		Records:  c.records.Top(),
		Refs:     c.refs.Top(),
	}
}

// Types populated by a single dimension:

func (c *Context[V, B, L, N]) FromVars(d *bdd.Node[V]) types.Type[V, B, L, N] {
	t := c.EmptyType()
	t.Vars = d
	return t
}

func (c *Context[V, B, L, N]) FromBasics(d *bdd.Node[B]) types.Type[V, B, L, N] {
	t := c.EmptyType()
	t.Basics = d
	return t
}

func (c *Context[V, B, L, N]) FromProducts(d *bdd.Node[types.Product[V, B, L, N]]) types.Type[V, B, L, N] {
	t := c.EmptyType()
	t.Products = d
	return t
}

func (c *Context[V, B, L, N]) FromArrows(d *bdd.Node[types.Arrow[V, B, L, N]]) types.Type[V, B, L, N] {
	t := c.EmptyType()
	t.Arrows = d
	return t
}

func (c *Context[V, B, L, N]) FromRecords(d *bdd.Node[types.Record[V, B, L, N]]) types.Type[V, B, L, N] {
	t := c.EmptyType()
	t.Records = d
	return t
}

func (c *Context[V, B, L, N]) FromRefs(d *bdd.Node[types.Reference[V, B, L, N]]) types.Type[V, B, L, N] {
	t := c.EmptyType()
	t.Refs = d
	return t
}

// Embed returns the diagram selecting exactly t, for use as a component of a connective.
func (c *Context[V, B, L, N]) Embed(t types.Type[V, B, L, N]) *bdd.Node[types.Type[V, B, L, N]] {
	return c.tys.Atom(t)
}

// Re-embed a dimension's diagram as a diagram over types, replacing each atom with the type
// populated only by that atom. The shape of the diagram is preserved.

func (c *Context[V, B, L, N]) EmbedVars(d *bdd.Node[V]) *bdd.Node[types.Type[V, B, L, N]] {
	return embed(c, c.vars, d, c.FromVars)
}

func (c *Context[V, B, L, N]) EmbedBasics(d *bdd.Node[B]) *bdd.Node[types.Type[V, B, L, N]] {
	return embed(c, c.basics, d, c.FromBasics)
}

func (c *Context[V, B, L, N]) EmbedProducts(d *bdd.Node[types.Product[V, B, L, N]]) *bdd.Node[types.Type[V, B, L, N]] {
	return embed(c, c.products, d, c.FromProducts)
}

func (c *Context[V, B, L, N]) EmbedArrows(d *bdd.Node[types.Arrow[V, B, L, N]]) *bdd.Node[types.Type[V, B, L, N]] {
	return embed(c, c.arrows, d, c.FromArrows)
}

func (c *Context[V, B, L, N]) EmbedRecords(d *bdd.Node[types.Record[V, B, L, N]]) *bdd.Node[types.Type[V, B, L, N]] {
	return embed(c, c.records, d, c.FromRecords)
}

func (c *Context[V, B, L, N]) EmbedRefs(d *bdd.Node[types.Reference[V, B, L, N]]) *bdd.Node[types.Type[V, B, L, N]] {
	return embed(c, c.refs, d, c.FromRefs)
}

func embed[T bdd.Atom[T], V bdd.Atom[V], B bdd.Atom[B], L bdd.Atom[L], N bdd.Atom[N]](
	c *Context[V, B, L, N],
	s *bdd.Store[T],
	d *bdd.Node[T],
	lift func(*bdd.Node[T]) types.Type[V, B, L, N],
) *bdd.Node[types.Type[V, B, L, N]] {
	return bdd.MapAtoms(c.tys, d, func(atom T) types.Type[V, B, L, N] { return lift(s.Atom(atom)) })
}

// Combinators over whole types, applied to each dimension independently:

// TypeUnion returns the union of ts; the union of no types is EmptyType.
func (c *Context[V, B, L, N]) TypeUnion(ts ...types.Type[V, B, L, N]) types.Type[V, B, L, N] {
	acc := c.EmptyType()
	if len(ts) > 0 {
		acc, ts = ts[0], ts[1:]
	}
	for _, t := range ts {
		acc = types.Type[V, B, L, N]{
			Vars:     c.vars.Union(acc.Vars, t.Vars),
			Basics:   c.basics.Union(acc.Basics, t.Basics),
			Products: c.products.Union(acc.Products, t.Products),
			Arrows:   c.arrows.Union(acc.Arrows, t.Arrows),
			Records:  c.records.Union(acc.Records, t.Records),
			Refs:     c.refs.Union(acc.Refs, t.Refs),
		}
	}
	return acc
}

// TypeInter returns the intersection of ts; the intersection of no types is AnyType.
func (c *Context[V, B, L, N]) TypeInter(ts ...types.Type[V, B, L, N]) types.Type[V, B, L, N] {
	acc := c.AnyType()
	if len(ts) > 0 {
		acc, ts = ts[0], ts[1:]
	}
	for _, t := range ts {
		acc = types.Type[V, B, L, N]{
			Vars:     c.vars.Inter(acc.Vars, t.Vars),
			Basics:   c.basics.Inter(acc.Basics, t.Basics),
			Products: c.products.Inter(acc.Products, t.Products),
			Arrows:   c.arrows.Inter(acc.Arrows, t.Arrows),
			Records:  c.records.Inter(acc.Records, t.Records),
			Refs:     c.refs.Inter(acc.Refs, t.Refs),
		}
	}
	return acc
}

// TypeDiff returns the difference a \ b.
func (c *Context[V, B, L, N]) TypeDiff(a, b types.Type[V, B, L, N]) types.Type[V, B, L, N] {
	return types.Type[V, B, L, N]{
		Vars:     c.vars.Diff(a.Vars, b.Vars),
		Basics:   c.basics.Diff(a.Basics, b.Basics),
		Products: c.products.Diff(a.Products, b.Products),
		Arrows:   c.arrows.Diff(a.Arrows, b.Arrows),
		Records:  c.records.Diff(a.Records, b.Records),
		Refs:     c.refs.Diff(a.Refs, b.Refs),
	}
}

// TypeNot returns the complement of t with respect to AnyType.
func (c *Context[V, B, L, N]) TypeNot(t types.Type[V, B, L, N]) types.Type[V, B, L, N] {
	return c.TypeDiff(c.AnyType(), t)
}
