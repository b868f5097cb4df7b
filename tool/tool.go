// Copyright 2019 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package tool implements introspection commands for keys: comparing and
// sorting them under a registered Comparer, and encoding, decoding and
// matching edge keys.
package tool

import (
	"github.com/cockroachdb/errors"
	"github.com/graphkv/keyview/internal/base"
	"github.com/graphkv/keyview/internal/invariants"
	"github.com/spf13/cobra"
)

// Comparer exports the base.Comparer type.
type Comparer = base.Comparer

// Logger exports the base.Logger type.
type Logger = base.Logger

// T is the container for all of the introspection tools.
type T struct {
	Commands  []*cobra.Command
	keys      *keysT
	edge      *edgeT
	comparers map[string]*Comparer
	logger    Logger
}

// Option configures a T.
type Option func(*T)

// WithLogger sets the logger used to report problems with individual keys.
// The default logs through the standard library log package.
func WithLogger(l Logger) Option {
	return func(t *T) {
		t.logger = l
	}
}

// New creates a new introspection tool.
func New(opts ...Option) *T {
	t := &T{
		comparers: make(map[string]*Comparer),
		logger:    base.DefaultLogger{},
	}
	for _, opt := range opts {
		opt(t)
	}

	t.RegisterComparer(base.DefaultComparer)
	t.RegisterComparer(base.EdgeComparer)

	t.keys = newKeys(t)
	t.edge = newEdge(t)
	t.Commands = []*cobra.Command{
		t.keys.Compare,
		t.keys.Sort,
		t.keys.Separator,
		t.edge.Root,
	}
	return t
}

// RegisterComparer registers a comparer for use by the introspection tools.
func (t *T) RegisterComparer(c *Comparer) {
	c = c.EnsureDefaults()
	t.comparers[c.Name] = c
}

func (t *T) comparer(name string) (*Comparer, error) {
	c, ok := t.comparers[name]
	if !ok {
		return nil, errors.Errorf("unknown comparer %q", name)
	}
	if invariants.Enabled {
		ac := base.MakeAssertComparer(*c)
		return &ac, nil
	}
	return c, nil
}
