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

// construct provides a ready-made embedding of the type algebra, along with shorthand
// constructors for building whole types.
//
// Type variables, record labels and type names are strings ordered lexically. Basic types are
// a fixed enumeration ordered by declaration.
package construct

import (
	"strconv"
	"strings"

	"github.com/wdamron/stipe"
	"github.com/wdamron/stipe/bdd"
	"github.com/wdamron/stipe/types"
)

// Type variable: `'a`
type Var string

func (v Var) Compare(other Var) int { return strings.Compare(string(v), string(other)) }
func (v Var) String() string        { return "'" + string(v) }

// Basic type
type Basic uint8

const (
	Int Basic = iota
	Boolean
	Float
	Text
	Unit
)

var basicNames = [...]string{
	Int:     "int",
	Boolean: "bool",
	Float:   "float",
	Text:    "string",
	Unit:    "unit",
}

func (b Basic) Compare(other Basic) int {
	switch {
	case b < other:
		return -1
	case b > other:
		return 1
	}
	return 0
}

func (b Basic) String() string {
	if int(b) < len(basicNames) {
		return basicNames[b]
	}
	return "basic#" + strconv.Itoa(int(b))
}

// Record label
type Label string

func (l Label) Compare(other Label) int { return strings.Compare(string(l), string(other)) }
func (l Label) String() string          { return string(l) }

// Nominal type name
type Name string

func (n Name) Compare(other Name) int { return strings.Compare(string(n), string(other)) }
func (n Name) String() string         { return string(n) }

type (
	Context = stipe.Context[Var, Basic, Label, Name]
	Type    = types.Type[Var, Basic, Label, Name]
	Field   = types.Field[Var, Basic, Label, Name]
	Diagram = *bdd.Node[Type]
)

// Create a new context for the embedding.
func NewContext(opts ...stipe.Option) *Context {
	return stipe.New[Var, Basic, Label, Name](opts...)
}

// Types

// Type variable: `'a`
func TVar(ctx *Context, name string) Diagram {
	return ctx.EmbedVars(ctx.Var(Var(name)))
}

// Basic type: `int`, `bool`, etc
func TBasic(ctx *Context, b Basic) Diagram {
	return ctx.EmbedBasics(ctx.Basic(b))
}

func TInt(ctx *Context) Diagram  { return TBasic(ctx, Int) }
func TBool(ctx *Context) Diagram { return TBasic(ctx, Boolean) }

// Product type: `(l, r)`
func TProduct(ctx *Context, l, r Diagram) Diagram {
	return ctx.EmbedProducts(ctx.Product(l, r))
}

// Function type: `d -> c`
func TArrow(ctx *Context, d, c Diagram) Diagram {
	return ctx.EmbedArrows(ctx.Arrow(d, c))
}

// Closed record type: `{a : _, b : _}`
func TRecord(ctx *Context, fields ...Field) Diagram {
	return ctx.EmbedRecords(ctx.Record(types.Closed, fields...))
}

// Open record type: `{a : _, b : _, ..}`
func TOpenRecord(ctx *Context, fields ...Field) Diagram {
	return ctx.EmbedRecords(ctx.Record(types.Open, fields...))
}

// Record field: `a : _`
func LabelType(label string, t Diagram) Field {
	return Field{Label: Label(label), Type: t}
}

// Type application: `list[int]`
func TRef(ctx *Context, name string, args ...Diagram) Diagram {
	return ctx.EmbedRefs(ctx.Reference(Name(name), args...))
}
