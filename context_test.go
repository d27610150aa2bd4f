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

package stipe_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/stipe"
	"github.com/wdamron/stipe/bdd"
	. "github.com/wdamron/stipe/construct"
	"github.com/wdamron/stipe/internal/arena"
	"github.com/wdamron/stipe/types"
)

func TestBasicDeMorgan(t *testing.T) {
	ctx := NewContext()
	basics := ctx.Basics()
	i, b := ctx.Basic(Int), ctx.Basic(Boolean)

	lhs := basics.InterAll(i, basics.Not(b))
	rhs := basics.Not(basics.UnionAll(basics.Not(i), b))

	require.True(t, bdd.Equal(lhs, rhs), "%s != %s", lhs, rhs)
	assert.False(t, bdd.Equal(lhs, basics.Bottom()))
	assert.False(t, bdd.Equal(lhs, i))
	assert.Equal(t, "(int ? (bool ? Bottom : Bottom : Top) : Bottom : Bottom)", lhs.String())
}

func TestTypeIndependence(t *testing.T) {
	ctx := NewContext()
	ti := ctx.FromBasics(ctx.Basic(Int))
	tb := ctx.FromBasics(ctx.Basic(Boolean))

	for _, ty := range []Type{ctx.TypeUnion(ti, tb), ctx.TypeDiff(ti, tb), ctx.TypeInter(ti, tb)} {
		assert.True(t, ty.Vars.IsBottom())
		assert.True(t, ty.Products.IsBottom())
		assert.True(t, ty.Arrows.IsBottom())
		assert.True(t, ty.Records.IsBottom())
		assert.True(t, ty.Refs.IsBottom())
	}

	basics := ctx.Basics()
	assert.True(t, bdd.Equal(basics.Union(ti.Basics, tb.Basics), ctx.TypeUnion(ti, tb).Basics))
	assert.True(t, bdd.Equal(basics.Diff(ti.Basics, tb.Basics), ctx.TypeDiff(ti, tb).Basics))
	assert.Equal(t, "{basics: (int ? Top : bool : Bottom)}", ctx.TypeUnion(ti, tb).String())
}

func TestEmptyAndAny(t *testing.T) {
	ctx := NewContext()
	empty, all := ctx.EmptyType(), ctx.AnyType()

	assert.True(t, empty.IsBottom())
	assert.False(t, empty.IsTop())
	assert.True(t, all.IsTop())
	assert.Equal(t, "{}", empty.String())

	assert.True(t, ctx.TypeNot(empty).IsTop())
	assert.True(t, ctx.TypeNot(all).IsBottom())
	assert.True(t, ctx.TypeUnion().IsBottom())
	assert.True(t, ctx.TypeInter().IsTop())

	ti := ctx.FromBasics(ctx.Basic(Int))
	assert.Equal(t, 0, ti.Compare(ctx.TypeUnion(ti)))
	assert.Equal(t, 0, ti.Compare(ctx.TypeInter(ti, all)))
	assert.Equal(t, 0, ti.Compare(ctx.TypeUnion(empty, ti)))

	nti := ctx.TypeNot(ti)
	assert.True(t, nti.Vars.IsTop())
	assert.True(t, nti.Arrows.IsTop())
	assert.Equal(t, "(int ? Bottom : Bottom : Top)", nti.Basics.String())
	assert.True(t, ctx.TypeInter(ti, nti).IsBottom())
}

func TestTypeDiagrams(t *testing.T) {
	ctx := NewContext()

	assert.True(t, ctx.Union().IsBottom())
	assert.True(t, ctx.Inter().IsTop())
	assert.True(t, ctx.Not(ctx.Top()).IsBottom())

	u := ctx.Union(TInt(ctx), TBool(ctx))
	assert.Equal(t, "({basics: int} ? Top : {basics: bool} : Bottom)", u.String())
	assert.True(t, bdd.Equal(u, ctx.Union(TBool(ctx), TInt(ctx))))

	d := ctx.Diff(u, TBool(ctx))
	assert.Equal(t, "({basics: int} ? ({basics: bool} ? Bottom : Bottom : Top) : Bottom : Bottom)", d.String())
	assert.True(t, bdd.Equal(d, ctx.Inter(u, ctx.Not(TBool(ctx)))))
	assert.True(t, ctx.Diff(u, ctx.Top()).IsBottom())
}

func TestEmbedBasics(t *testing.T) {
	ctx := NewContext()
	basics := ctx.Basics()
	d := basics.Union(ctx.Basic(Int), ctx.Basic(Boolean))

	e := ctx.EmbedBasics(d)
	assert.Equal(t, "({basics: int} ? Top : {basics: bool} : Bottom)", e.String())
	assert.Equal(t, bdd.Count(d), bdd.Count(e))
	require.Len(t, bdd.Support(e), 2)
	assert.Equal(t, 0, bdd.Support(e)[0].Compare(ctx.FromBasics(ctx.Basic(Int))))

	assert.True(t, bdd.Equal(ctx.Union(TInt(ctx), TBool(ctx)), e))
	assert.True(t, ctx.EmbedBasics(basics.Top()).IsTop())
}

func TestConnectives(t *testing.T) {
	ctx := NewContext()
	i, b := TInt(ctx), TBool(ctx)

	assert.Equal(t, "({basics: int}, {basics: bool})", ctx.Product(i, b).String())
	assert.Equal(t, "({basics: int} -> {basics: bool})", ctx.Arrow(i, b).String())
	assert.Equal(t, "list[{basics: int}]", ctx.Reference("list", i).String())
	assert.Equal(t, "unit", ctx.Reference("unit").String())

	closed := ctx.Record(types.Closed, ctx.Field("b", b), ctx.Field("a", i))
	assert.Equal(t, "{b : {basics: bool}, a : {basics: int}}", closed.String())
	assert.Equal(t, "{..}", ctx.Record(types.Open).String())
	assert.Equal(t, "{a : {basics: int}, ..}", ctx.Record(types.Open, ctx.Field("a", i)).String())

	assert.Equal(t, "{products: ({basics: int}, {basics: bool})}", ctx.FromProducts(ctx.Product(i, b)).String())
	assert.Equal(t, "{vars: 'a}", ctx.FromVars(ctx.Var("a")).String())

	// Connectives with equal components are equal atoms:
	p1, p2 := ctx.Product(i, b), ctx.Product(TInt(ctx), TBool(ctx))
	assert.True(t, bdd.Equal(p1, p2))
	products := ctx.Products()
	assert.True(t, bdd.Equal(p1, products.Union(p1, p2)))
	assert.True(t, products.Diff(p1, p2).IsBottom())

	// (int, bool) and (bool, int) are distinct atoms, ordered by their components:
	p3 := ctx.Product(b, i)
	u := products.Union(p3, p1)
	require.True(t, u.IsDecision())
	assert.Equal(t, 0, u.Atom().Compare(p1.Atom()))
	assert.True(t, bdd.Equal(p3, u.Lazy()))
}

func TestNestedTypes(t *testing.T) {
	ctx := NewContext()

	// ('a -> 'a) ∧ (int -> int), as the arrow dimension of a type:
	a := TVar(ctx, "a")
	arrows := ctx.Arrows().InterAll(ctx.Arrow(a, a), ctx.Arrow(TInt(ctx), TInt(ctx)))
	ty := ctx.FromArrows(arrows)
	require.True(t, ty.Arrows.IsDecision())
	assert.Len(t, bdd.Support(ty.Arrows), 2)
	assert.True(t, ty.Basics.IsBottom())

	list := TRef(ctx, "list", TProduct(ctx, TInt(ctx), TRecord(ctx, LabelType("x", TBool(ctx)))))
	assert.Equal(t, "{refs: list[{products: ({basics: int}, {records: {x : {basics: bool}}})}]}", list.Atom().String())
	assert.Equal(t, "{records: {..}}", TOpenRecord(ctx).Atom().String())
	assert.Equal(t, "{arrows: ({vars: 'a} -> {basics: int})}", TArrow(ctx, a, TInt(ctx)).Atom().String())
}

func TestRelease(t *testing.T) {
	ctx := NewContext()
	ctx.Basic(Int)

	require.NoError(t, ctx.Release())
	assert.ErrorIs(t, ctx.Release(), arena.ErrReleased)
	assert.Equal(t, 0, ctx.Stats().Regions)
	require.PanicsWithValue(t, arena.ErrReleased, func() { ctx.Basic(Boolean) })
}

func TestMaxNodes(t *testing.T) {
	// Each of the seven stores allocates its two leaves up front.
	ctx := NewContext(stipe.WithMaxNodes(16))
	assert.Equal(t, 14, ctx.Stats().Nodes)

	ctx.Basic(Int)
	ctx.Basic(Boolean)
	require.PanicsWithValue(t, arena.ErrExhausted, func() { ctx.Var("a") })
}

func TestStats(t *testing.T) {
	ctx := NewContext(stipe.WithRegionSize(4))
	assert.Equal(t, stipe.Stats{Nodes: 14, Regions: 7}, ctx.Stats())

	ctx.Basic(Int)
	ctx.Basic(Boolean)
	ctx.Basic(Float)
	assert.Equal(t, stipe.Stats{Nodes: 17, Regions: 8}, ctx.Stats())
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ctx := NewContext(stipe.WithLogger(logger), stipe.WithRegionSize(2))
	assert.Same(t, logger, ctx.Logger())
	assert.Contains(t, buf.String(), "arena: new region")
	assert.Contains(t, buf.String(), "context: created")

	require.NoError(t, ctx.Release())
	assert.Contains(t, buf.String(), "arena: released")
}

func TestConfig(t *testing.T) {
	c := &stipe.Config{RegionSize: -1, MaxNodes: -5}
	require.NoError(t, c.Validate())
	assert.Equal(t, arena.DefaultRegionSize, c.RegionSize)
	assert.Equal(t, 0, c.MaxNodes)
	assert.NotNil(t, c.Logger)

	ctx := NewContext(stipe.WithRegionSize(0), stipe.WithMaxNodes(100))
	assert.Equal(t, arena.DefaultRegionSize, ctx.Config().RegionSize)
	assert.Equal(t, 100, ctx.Config().MaxNodes)
}
