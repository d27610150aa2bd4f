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

// arena provides region-based allocation for values whose lifetimes end together.
//
// An Arena owns any number of typed pools. Each pool hands out pointers into fixed-size
// regions which are never moved or reused, so a pointer stays valid for as long as the
// arena is reachable. Nothing is freed individually: releasing the arena drops every
// region of every pool at once.
package arena

import (
	"errors"
	"io"
	"log/slog"
)

const DefaultRegionSize = 1024

var (
	// ErrExhausted is raised (by panic) when an allocation would exceed the arena's node limit.
	ErrExhausted = errors.New("arena exhausted")
	// ErrReleased is raised (by panic) when allocating from an arena which has been released.
	ErrReleased = errors.New("arena has already been released")
)

type Flags uint32

const (
	FlagReleased Flags = 1 << iota
	FlagLimited
)

func (f Flags) Released() bool { return f&FlagReleased != 0 }
func (f Flags) Limited() bool  { return f&FlagLimited != 0 }

// Arena tracks the regions of a group of pools.
//
// An arena cannot be used concurrently.
type Arena struct {
	regionSize int
	maxNodes   int
	nodes      int
	regions    int
	flags      Flags
	pools      []releaser
	logger     *slog.Logger
}

type releaser interface {
	release() int
}

// Create a new arena. Each pool region will hold regionSize values. If maxNodes is positive,
// allocating more than maxNodes values (across all pools) panics with ErrExhausted.
func New(regionSize, maxNodes int, logger *slog.Logger) *Arena {
	if regionSize <= 0 {
		regionSize = DefaultRegionSize
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	a := &Arena{regionSize: regionSize, logger: logger}
	if maxNodes > 0 {
		a.maxNodes, a.flags = maxNodes, FlagLimited
	}
	return a
}

func (a *Arena) Flags() Flags    { return a.flags }
func (a *Arena) Released() bool  { return a.flags.Released() }
func (a *Arena) Nodes() int      { return a.nodes }
func (a *Arena) Regions() int    { return a.regions }
func (a *Arena) RegionSize() int { return a.regionSize }

// Release drops the regions of every pool in the arena. Values allocated from the arena must
// not be used after release.
func (a *Arena) Release() error {
	if a.flags.Released() {
		return ErrReleased
	}
	dropped := 0
	for _, p := range a.pools {
		dropped += p.release()
	}
	a.logger.Debug("arena: released", "nodes", a.nodes, "regions", dropped)
	a.pools, a.regions, a.flags = nil, 0, a.flags|FlagReleased
	return nil
}

// next reserves a sequence number for a new value. Sequence numbers start at 1 and increase
// monotonically across all pools of the arena.
func (a *Arena) next() uint32 {
	if a.flags.Released() {
		panic(ErrReleased)
	}
	if a.flags.Limited() && a.nodes >= a.maxNodes {
		a.logger.Error("arena: exhausted", "nodes", a.nodes, "limit", a.maxNodes)
		panic(ErrExhausted)
	}
	a.nodes++
	return uint32(a.nodes)
}

// Pool allocates values of a single type within an arena.
type Pool[T any] struct {
	arena   *Arena
	regions [][]T
	cur     []T
}

// Create a new pool of values within a.
func NewPool[T any](a *Arena) *Pool[T] {
	if a.flags.Released() {
		panic(ErrReleased)
	}
	p := &Pool[T]{arena: a}
	a.pools = append(a.pools, p)
	return p
}

func (p *Pool[T]) Arena() *Arena { return p.arena }
func (p *Pool[T]) Regions() int  { return len(p.regions) }

// Alloc returns a pointer to a new zero value along with its sequence number within the arena.
func (p *Pool[T]) Alloc() (*T, uint32) {
	a := p.arena
	seq := a.next()
	if len(p.cur) == cap(p.cur) {
		p.cur = make([]T, 0, a.regionSize)
		p.regions = append(p.regions, p.cur)
		a.regions++
		a.logger.Debug("arena: new region", "regions", a.regions, "nodes", a.nodes)
	}
	p.cur = p.cur[:len(p.cur)+1]
	return &p.cur[len(p.cur)-1], seq
}

func (p *Pool[T]) release() int {
	n := len(p.regions)
	p.regions, p.cur = nil, nil
	return n
}
