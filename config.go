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
	"io"
	"log/slog"

	"github.com/wdamron/stipe/internal/arena"
)

// Config controls the arena of a context.
type Config struct {
	// RegionSize is the number of nodes allocated at once for each atom type.
	RegionSize int
	// MaxNodes bounds the number of nodes a context may allocate. Exceeding the bound is fatal.
	// Zero disables the bound.
	MaxNodes int
	// Logger receives debug events for arena growth and release.
	Logger *slog.Logger
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		RegionSize: arena.DefaultRegionSize,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Validate replaces out-of-range settings with defaults.
func (c *Config) Validate() error {
	if c.RegionSize < 1 {
		c.RegionSize = arena.DefaultRegionSize
	}
	if c.MaxNodes < 0 {
		c.MaxNodes = 0
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return nil
}

// Option is a function that modifies Config.
type Option func(*Config)

// WithRegionSize sets the number of nodes allocated at once for each atom type.
func WithRegionSize(n int) Option {
	return func(c *Config) {
		c.RegionSize = n
	}
}

// WithMaxNodes bounds the number of nodes a context may allocate.
func WithMaxNodes(n int) Option {
	return func(c *Config) {
		c.MaxNodes = n
	}
}

// WithLogger sets the logger for arena events.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}
