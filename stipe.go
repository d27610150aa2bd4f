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

// stipe provides the representational core of a semantic-subtyping type algebra.
//
// Types are built from type variables, basic types, products, arrows, records and nominal
// references, and combined with union, intersection, difference and complement. Every type is
// a direct sum of six independent decision diagrams, one per kind of connective. Atoms are kept
// in increasing order along every path of a diagram, and unions are deferred until an
// intersection or difference forces them.
//
// All diagrams are allocated by a Context, which owns a single arena. Diagrams are immutable
// once returned and remain valid until the context is released.
//
//
// Supported Features:
//
//   * Ternary decision diagrams with lazy unions
//   * Union, intersection, difference and complement over any atom type
//   * Products, arrows, open and closed records, and nominal type applications
//   * Structure-preserving atom maps for re-embedding diagrams between dimensions
//   * Embedder-defined type variables, basic types, labels and type names
//
//
// Links:
//
// Covariance and Contravariance: a fresh look at an old issue (Castagna, 2020): https://arxiv.org/abs/1809.01427
//
// CDuce: https://www.cduce.org
package stipe
