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

package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/stipe/bdd"
	. "github.com/wdamron/stipe/construct"
	"github.com/wdamron/stipe/types"
)

type (
	fieldList = types.FieldList[Var, Basic, Label, Name]
	argList   = types.ArgList[Var, Basic, Label, Name]
	record    = types.Record[Var, Basic, Label, Name]
	reference = types.Reference[Var, Basic, Label, Name]
	product   = types.Product[Var, Basic, Label, Name]
	arrow     = types.Arrow[Var, Basic, Label, Name]
)

func TestOpenness(t *testing.T) {
	assert.Equal(t, -1, types.Open.Compare(types.Closed))
	assert.Equal(t, 1, types.Closed.Compare(types.Open))
	assert.Equal(t, 0, types.Closed.Compare(types.Closed))
	assert.Equal(t, "open", types.Open.String())
	assert.Equal(t, "closed", types.Closed.String())
}

func TestFieldList(t *testing.T) {
	ctx := NewContext()
	fa, fb := LabelType("a", TInt(ctx)), LabelType("b", TBool(ctx))

	var zero fieldList
	assert.Equal(t, 0, zero.Len())
	_, ok := zero.Lookup("a")
	assert.False(t, ok)
	zero.Range(func(int, Field) bool {
		t.Fatal("range over empty list")
		return true
	})
	assert.Equal(t, 1, zero.Append(fa).Len())
	assert.Equal(t, 0, zero.Len())

	l1 := types.NewFieldList(fb)
	l2 := l1.Append(fa)
	assert.Equal(t, 1, l1.Len())
	require.Equal(t, 2, l2.Len())
	assert.Equal(t, Label("b"), l2.Get(0).Label)
	assert.Equal(t, Label("a"), l2.Get(1).Label)

	f, ok := l2.Lookup("a")
	require.True(t, ok)
	assert.Same(t, fa.Type, f.Type)
	_, ok = l1.Lookup("a")
	assert.False(t, ok)

	// The first field with a label wins:
	l3 := l2.Append(LabelType("b", TInt(ctx)))
	f, _ = l3.Lookup("b")
	assert.Same(t, fb.Type, f.Type)

	visited := 0
	l3.Range(func(i int, _ Field) bool {
		visited++
		return i < 1
	})
	assert.Equal(t, 2, visited)
}

func TestListOrdering(t *testing.T) {
	ctx := NewContext()
	fa, fb := LabelType("a", TInt(ctx)), LabelType("b", TBool(ctx))

	assert.Equal(t, -1, fa.Compare(fb))
	assert.Equal(t, 0, fa.Compare(LabelType("a", TInt(ctx))))
	assert.Equal(t, -1, LabelType("a", TInt(ctx)).Compare(LabelType("a", TBool(ctx))))

	assert.Equal(t, -1, types.NewFieldList(fa).Compare(types.NewFieldList(fa, fb)))
	assert.Equal(t, 1, types.NewFieldList(fb).Compare(types.NewFieldList(fa, fb)))
	assert.Equal(t, 0, fieldList{}.Compare(types.NewFieldList[Var, Basic, Label, Name]()))

	i, b := TInt(ctx), TBool(ctx)
	args := types.NewArgList(i, b)
	require.Equal(t, 2, args.Len())
	assert.Same(t, b, args.Get(1))
	assert.Equal(t, -1, argList{}.Compare(args))
	assert.Equal(t, -1, types.NewArgList(i, b).Compare(types.NewArgList(b, i)))
	assert.Equal(t, 0, types.NewArgList(i, b).Compare(types.NewArgList(TInt(ctx), TBool(ctx))))
}

func TestConnectiveOrdering(t *testing.T) {
	ctx := NewContext()
	i, b := TInt(ctx), TBool(ctx)

	assert.Equal(t, -1, product{Left: i, Right: b}.Compare(product{Left: b, Right: i}))
	assert.Equal(t, 1, product{Left: i, Right: b}.Compare(product{Left: i, Right: i}))
	assert.Equal(t, -1, arrow{Domain: i, Codomain: i}.Compare(arrow{Domain: i, Codomain: b}))

	fields := []Field{LabelType("a", i)}
	open, closed := types.NewRecord(types.Open, fields...), types.NewRecord(types.Closed, fields...)
	assert.Equal(t, -1, open.Compare(closed))
	assert.Equal(t, 0, closed.Compare(record{Fields: types.NewFieldList(fields...), Openness: types.Closed}))
	// Fields are compared before openness:
	assert.Equal(t, -1, types.NewRecord[Var, Basic, Label, Name](types.Closed).Compare(open))

	list := types.NewReference[Var, Basic, Label, Name]("list")
	assert.Equal(t, -1, list.Compare(types.NewReference[Var, Basic, Label, Name]("map")))
	assert.Equal(t, -1, list.Compare(types.NewReference("list", i)))
	assert.Equal(t, -1, types.NewReference("list", i).Compare(types.NewReference("list", b)))
	assert.Equal(t, 0, reference{Name: "list"}.Compare(list))
}

func TestTypeOrdering(t *testing.T) {
	ctx := NewContext()
	empty := ctx.EmptyType()
	ti := ctx.FromBasics(ctx.Basic(Int))
	tb := ctx.FromBasics(ctx.Basic(Boolean))
	ta := ctx.FromVars(ctx.Var("a"))

	assert.Equal(t, -1, empty.Compare(ti))
	assert.Equal(t, -1, ti.Compare(tb))
	assert.Equal(t, 1, ta.Compare(ti))
	assert.Equal(t, 0, ti.Compare(ctx.FromBasics(ctx.Basic(Int))))
	assert.Equal(t, 1, ctx.AnyType().Compare(empty))
}

func TestTypeLeaves(t *testing.T) {
	ctx := NewContext()
	ti := ctx.FromBasics(ctx.Basic(Int))

	assert.True(t, ctx.EmptyType().IsBottom())
	assert.True(t, ctx.AnyType().IsTop())
	assert.False(t, ti.IsBottom())
	assert.False(t, ti.IsTop())

	ti.Vars = ctx.Vars().Top()
	assert.False(t, ti.IsTop())
}

func TestPrinting(t *testing.T) {
	ctx := NewContext()
	i, b := TInt(ctx), TBool(ctx)

	assert.Equal(t, "{}", ctx.EmptyType().String())
	assert.Equal(t, "{vars: Top, basics: Top, products: Top, arrows: Top, records: Top, refs: Top}", ctx.AnyType().String())

	ty := ctx.TypeUnion(ctx.FromBasics(ctx.Basic(Int)), ctx.FromVars(ctx.Var("a")))
	assert.Equal(t, "{vars: 'a, basics: int}", ty.String())

	assert.Equal(t, "({basics: int}, {basics: bool})", product{Left: i, Right: b}.String())
	assert.Equal(t, "({basics: int} -> Top)", arrow{Domain: i, Codomain: ctx.Top()}.String())
	assert.Equal(t, "x : {basics: int}", LabelType("x", i).String())
	assert.Equal(t, "{}", types.NewRecord[Var, Basic, Label, Name](types.Closed).String())
	assert.Equal(t, "{x : {basics: int}, y : Bottom, ..}",
		types.NewRecord(types.Open, LabelType("x", i), LabelType("y", ctx.Bottom())).String())
	assert.Equal(t, "map[{basics: int}, {basics: bool}]", types.NewReference("map", i, b).String())

	// Nested diagrams print inline:
	u := ctx.Union(i, b)
	assert.Equal(t, "(({basics: int} ? Top : {basics: bool} : Bottom), Bottom)", product{Left: u, Right: ctx.Bottom()}.String())
	assert.Equal(t, 2, bdd.Count(u))
}
