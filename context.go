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
	"log/slog"

	"github.com/wdamron/stipe/bdd"
	"github.com/wdamron/stipe/internal/arena"
	"github.com/wdamron/stipe/types"
)

// Context owns the arena in which every diagram and type of an embedding is allocated, and
// provides smart constructors for atoms, connectives and their Boolean combinations.
//
// V, B, L and N are the embedder's type variables, basic types, record labels and nominal type
// names. Each must provide a consistent total order and a debug representation.
//
// A context cannot be used concurrently. The diagrams and types it returns are immutable, and
// must not be used after the context is released.
type Context[V bdd.Atom[V], B bdd.Atom[B], L bdd.Atom[L], N bdd.Atom[N]] struct {
	config Config
	arena  *arena.Arena

	vars     *bdd.Store[V]
	basics   *bdd.Store[B]
	products *bdd.Store[types.Product[V, B, L, N]]
	arrows   *bdd.Store[types.Arrow[V, B, L, N]]
	records  *bdd.Store[types.Record[V, B, L, N]]
	refs     *bdd.Store[types.Reference[V, B, L, N]]
	tys      *bdd.Store[types.Type[V, B, L, N]]
}

// Stats summarizes the allocations of a context.
type Stats struct {
	Nodes   int
	Regions int
}

// Create a new context with its own arena.
func New[V bdd.Atom[V], B bdd.Atom[B], L bdd.Atom[L], N bdd.Atom[N]](opts ...Option) *Context[V, B, L, N] {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(config)
	}
	config.Validate()

	a := arena.New(config.RegionSize, config.MaxNodes, config.Logger)
	c := &Context[V, B, L, N]{
		config:   *config,
		arena:    a,
		vars:     bdd.NewStore[V](a),
		basics:   bdd.NewStore[B](a),
		products: bdd.NewStore[types.Product[V, B, L, N]](a),
		arrows:   bdd.NewStore[types.Arrow[V, B, L, N]](a),
		records:  bdd.NewStore[types.Record[V, B, L, N]](a),
		refs:     bdd.NewStore[types.Reference[V, B, L, N]](a),
		tys:      bdd.NewStore[types.Type[V, B, L, N]](a),
	}
	config.Logger.Debug("context: created", "region_size", config.RegionSize, "max_nodes", config.MaxNodes)
	return c
}

func (c *Context[V, B, L, N]) Config() Config       { return c.config }
func (c *Context[V, B, L, N]) Logger() *slog.Logger { return c.config.Logger }

// Stats returns the number of nodes and regions allocated by the context.
func (c *Context[V, B, L, N]) Stats() Stats {
	return Stats{Nodes: c.arena.Nodes(), Regions: c.arena.Regions()}
}

// Release drops the context's arena. Nothing allocated by the context may be used afterwards,
// and any further construction panics with arena.ErrReleased.
func (c *Context[V, B, L, N]) Release() error { return c.arena.Release() }

// Stores for each dimension, and for diagrams over whole types.

func (c *Context[V, B, L, N]) Vars() *bdd.Store[V]                             { return c.vars }
func (c *Context[V, B, L, N]) Basics() *bdd.Store[B]                           { return c.basics }
func (c *Context[V, B, L, N]) Products() *bdd.Store[types.Product[V, B, L, N]] { return c.products }
func (c *Context[V, B, L, N]) Arrows() *bdd.Store[types.Arrow[V, B, L, N]]     { return c.arrows }
func (c *Context[V, B, L, N]) Records() *bdd.Store[types.Record[V, B, L, N]]   { return c.records }
func (c *Context[V, B, L, N]) Refs() *bdd.Store[types.Reference[V, B, L, N]]   { return c.refs }
func (c *Context[V, B, L, N]) Types() *bdd.Store[types.Type[V, B, L, N]]       { return c.tys }

// Atoms and connectives:

// Top returns the universal diagram over types.
func (c *Context[V, B, L, N]) Top() *bdd.Node[types.Type[V, B, L, N]] { return c.tys.Top() }

// Bottom returns the empty diagram over types.
func (c *Context[V, B, L, N]) Bottom() *bdd.Node[types.Type[V, B, L, N]] { return c.tys.Bottom() }

// Type variable: `'a`
func (c *Context[V, B, L, N]) Var(v V) *bdd.Node[V] { return c.vars.Atom(v) }

// Basic type: `int`, `bool`, etc
func (c *Context[V, B, L, N]) Basic(b B) *bdd.Node[B] { return c.basics.Atom(b) }

// Product type: `(l, r)`
func (c *Context[V, B, L, N]) Product(l, r *bdd.Node[types.Type[V, B, L, N]]) *bdd.Node[types.Product[V, B, L, N]] {
	return c.products.Atom(types.Product[V, B, L, N]{Left: l, Right: r})
}

// Function type: `l -> r`
func (c *Context[V, B, L, N]) Arrow(l, r *bdd.Node[types.Type[V, B, L, N]]) *bdd.Node[types.Arrow[V, B, L, N]] {
	return c.arrows.Atom(types.Arrow[V, B, L, N]{Domain: l, Codomain: r})
}

// Record type: `{a : _, b : _}`, or `{a : _, b : _, ..}` when open.
func (c *Context[V, B, L, N]) Record(open types.Openness, fields ...types.Field[V, B, L, N]) *bdd.Node[types.Record[V, B, L, N]] {
	return c.records.Atom(types.NewRecord(open, fields...))
}

// Field returns a record field with the given label and type.
func (c *Context[V, B, L, N]) Field(label L, t *bdd.Node[types.Type[V, B, L, N]]) types.Field[V, B, L, N] {
	return types.Field[V, B, L, N]{Label: label, Type: t}
}

// Nominal type application: `list[int]`
func (c *Context[V, B, L, N]) Reference(name N, args ...*bdd.Node[types.Type[V, B, L, N]]) *bdd.Node[types.Reference[V, B, L, N]] {
	return c.refs.Atom(types.NewReference(name, args...))
}

// Boolean combinators over diagrams of types. Diagrams of the other dimensions are combined
// through their stores.

// Not returns the complement of d.
func (c *Context[V, B, L, N]) Not(d *bdd.Node[types.Type[V, B, L, N]]) *bdd.Node[types.Type[V, B, L, N]] {
	return c.tys.Not(d)
}

// Union returns the union of ds; the union of no diagrams is Bottom.
func (c *Context[V, B, L, N]) Union(ds ...*bdd.Node[types.Type[V, B, L, N]]) *bdd.Node[types.Type[V, B, L, N]] {
	return c.tys.UnionAll(ds...)
}

// Inter returns the intersection of ds; the intersection of no diagrams is Top.
func (c *Context[V, B, L, N]) Inter(ds ...*bdd.Node[types.Type[V, B, L, N]]) *bdd.Node[types.Type[V, B, L, N]] {
	return c.tys.InterAll(ds...)
}

// Diff returns the difference a \ b.
func (c *Context[V, B, L, N]) Diff(a, b *bdd.Node[types.Type[V, B, L, N]]) *bdd.Node[types.Type[V, B, L, N]] {
	return c.tys.Diff(a, b)
}
