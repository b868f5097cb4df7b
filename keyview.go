// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package keyview provides non-owning views over byte keys and the orderings
// storage engines and sorted containers build on.
//
// A ByteSpan refers to bytes owned elsewhere and orders them
// lexicographically. An EdgeKey is a directed graph edge (source,
// destination) with its own textual encoding; edge keys order numerically and
// treat the destination WildcardDestination as matching any destination under
// Equal. DefaultComparer and EdgeComparer apply the two orderings to raw
// []byte keys.
package keyview // import "github.com/graphkv/keyview"

import "github.com/graphkv/keyview/internal/base"

// ByteSpan exports the base.ByteSpan type.
type ByteSpan = base.ByteSpan

// EdgeKey exports the base.EdgeKey type.
type EdgeKey = base.EdgeKey

// Comparer exports the base.Comparer type.
type Comparer = base.Comparer

// Logger exports the base.Logger type.
type Logger = base.Logger

// DefaultLogger exports the base.DefaultLogger type.
type DefaultLogger = base.DefaultLogger

// WildcardDestination is the EdgeKey destination that matches any destination
// under EdgeKey.Equal.
const WildcardDestination = base.WildcardDestination

// DefaultComparer orders keys bytewise, like ByteSpan.Compare.
var DefaultComparer = base.DefaultComparer

// EdgeComparer orders encoded edge keys numerically, like EdgeKey.Compare.
var EdgeComparer = base.EdgeComparer

// ErrInvalidEdgeKey marks errors from decoding bytes that are not an encoded
// EdgeKey.
var ErrInvalidEdgeKey = base.ErrInvalidEdgeKey

// MakeByteSpan returns a span referring to all of b.
func MakeByteSpan(b []byte) ByteSpan {
	return base.MakeByteSpan(b)
}

// MakeByteSpanN returns a span referring to b[0:n]. It panics if n is out of
// range.
func MakeByteSpanN(b []byte, n int) ByteSpan {
	return base.MakeByteSpanN(b, n)
}

// ByteSpanFromString returns a span referring to the bytes of s without
// copying them.
func ByteSpanFromString(s string) ByteSpan {
	return base.ByteSpanFromString(s)
}

// ByteSpanFromCString returns a span referring to the bytes of b before the
// first NUL byte.
func ByteSpanFromCString(b []byte) ByteSpan {
	return base.ByteSpanFromCString(b)
}

// MakeEdgeKey constructs the edge key for the edge from src to dst.
func MakeEdgeKey(src, dst int64) EdgeKey {
	return base.MakeEdgeKey(src, dst)
}

// DecodeEdgeKey decodes an encoded edge key.
func DecodeEdgeKey(b []byte) (EdgeKey, error) {
	return base.DecodeEdgeKey(b)
}

// ParseEdgeKey decodes an edge key from its string encoding.
func ParseEdgeKey(s string) (EdgeKey, error) {
	return base.ParseEdgeKey(s)
}

// IsInvalidEdgeKeyError returns true if err is the result of decoding
// something that is not an encoded edge key.
func IsInvalidEdgeKeyError(err error) bool {
	return base.IsInvalidEdgeKeyError(err)
}

// CheckComparer verifies that c defines a consistent total order over keys.
func CheckComparer(c *Comparer, keys [][]byte) error {
	return base.CheckComparer(c, keys)
}
