// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package base defines the fundamental key types of keyview: the ByteSpan
// view over borrowed bytes, the EdgeKey composite key, and the Comparers
// that order them.
//
// # Byte spans
//
// A ByteSpan refers to bytes that something else owns: a buffer, a string,
// a memory-mapped file. Byte spans order lexicographically (bytes.Compare):
// the first differing byte decides, and if one span is a prefix of the other
// the shorter one sorts first. DefaultComparer implements the same order over
// raw []byte keys, so a structure keyed by ByteSpan.Data() and ordered by
// DefaultComparer iterates in ByteSpan.Compare order.
//
// Out-of-range accesses (At, RemovePrefix) are programming errors and panic
// with an assertion failure; they are never clamped.
//
// # Edge keys
//
// An EdgeKey is a (source, destination) pair with its own "<src>|<dst>"
// encoding. Edge keys order numerically, which differs from the bytewise order
// of their encodings. EdgeComparer applies the numeric order to encoded keys.
//
// EdgeKey.Equal treats WildcardDestination (-1) as matching any destination.
// That rule is only used for equality; ordering and EdgeComparer never apply
// it.
package base
