// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package base

import (
	"bytes"
	"cmp"
	"math"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"github.com/graphkv/keyview/internal/invariants"
)

// WildcardDestination is the destination value that matches any destination
// when two edge keys are tested for equality. It has no special meaning for
// ordering.
const WildcardDestination int64 = -1

// edgeKeySeparator separates the source from the destination in the encoded
// form of an EdgeKey.
const edgeKeySeparator = '|'

// EdgeKey identifies a directed edge (source, destination) of a graph.
//
// An EdgeKey carries its own textual encoding "<source>|<destination>", which
// is built once at construction and never modified, so that the key can be
// handed to consumers that work on byte spans (see Span). Ordering does not
// use that encoding: edge keys order numerically by source, then by
// destination.
//
// The zero value has source 0, destination 0 and an empty encoding.
type EdgeKey struct {
	src int64
	dst int64
	enc string
}

// MakeEdgeKey constructs the edge key for the edge from src to dst.
func MakeEdgeKey(src, dst int64) EdgeKey {
	return EdgeKey{src: src, dst: dst, enc: encodeEdgeKey(src, dst)}
}

func encodeEdgeKey(src, dst int64) string {
	var buf [2*20 + 1]byte
	b := strconv.AppendInt(buf[:0], src, 10)
	b = append(b, edgeKeySeparator)
	b = strconv.AppendInt(b, dst, 10)
	return string(b)
}

// Source returns the source of the edge.
func (k EdgeKey) Source() int64 { return k.src }

// Destination returns the destination of the edge.
func (k EdgeKey) Destination() int64 { return k.dst }

// IsWildcard returns true if the destination is WildcardDestination.
func (k EdgeKey) IsWildcard() bool { return k.dst == WildcardDestination }

// Encoded returns the textual encoding of the key. It is empty for the zero
// EdgeKey.
func (k EdgeKey) Encoded() string { return k.enc }

// Span returns a ByteSpan referring to the key's own encoding. The span stays
// valid for as long as it is reachable; it does not depend on k.
func (k EdgeKey) Span() ByteSpan {
	if invariants.Enabled && k.enc != "" && k.enc != encodeEdgeKey(k.src, k.dst) {
		panic(errors.AssertionFailedf("edge key encoding %q does not match (%d, %d)", k.enc, k.src, k.dst))
	}
	return ByteSpanFromString(k.enc)
}

// Compare returns -1, 0, or +1 depending on whether k is less than, equal to
// or greater than o. Keys are ordered by source and then by destination,
// numerically; the textual encoding plays no part, so (9, 0) sorts before
// (10, 0) even though "9|0" > "10|0" bytewise. WildcardDestination is compared
// as the plain value -1.
func (k EdgeKey) Compare(o EdgeKey) int {
	if c := cmp.Compare(k.src, o.src); c != 0 {
		return c
	}
	return cmp.Compare(k.dst, o.dst)
}

// Equal returns true if k and o have the same source and either the same
// destination or at least one of them has the WildcardDestination.
//
// Note that this is not an equivalence relation: (1, -1) equals both (1, 2)
// and (1, 3) while those two are not equal to each other. Lookups such as
// "any edge leaving source 1" rely on exactly this behavior. Equal does not
// agree with Compare when a wildcard is involved.
func (k EdgeKey) Equal(o EdgeKey) bool {
	return k.src == o.src &&
		(k.dst == o.dst || k.dst == WildcardDestination || o.dst == WildcardDestination)
}

// String returns the textual encoding of the key, or "0|0" for the zero key.
func (k EdgeKey) String() string {
	if k.enc == "" {
		return encodeEdgeKey(k.src, k.dst)
	}
	return k.enc
}

// SafeFormat implements redact.SafeFormatter. Edge keys consist of integers
// only and are always safe to print.
func (k EdgeKey) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("%d|%d", redact.SafeInt(k.src), redact.SafeInt(k.dst))
}

// DecodeEdgeKey decodes the textual encoding of an edge key. Only encodings
// produced by MakeEdgeKey are accepted: both halves must be base 10 integers
// without a sign prefix other than '-', without leading zeros and without
// surrounding whitespace. The returned key owns a copy of the encoding.
func DecodeEdgeKey(b []byte) (EdgeKey, error) {
	i := bytes.IndexByte(b, edgeKeySeparator)
	if i < 0 {
		return EdgeKey{}, errors.Mark(
			errors.Newf("edge key %q: missing separator %q", b, edgeKeySeparator), ErrInvalidEdgeKey)
	}
	src, err := decodeEdgeKeyComponent(b[:i])
	if err != nil {
		return EdgeKey{}, errors.Wrapf(err, "edge key %q: source", b)
	}
	dst, err := decodeEdgeKeyComponent(b[i+1:])
	if err != nil {
		return EdgeKey{}, errors.Wrapf(err, "edge key %q: destination", b)
	}
	return EdgeKey{src: src, dst: dst, enc: string(b)}, nil
}

// ParseEdgeKey is like DecodeEdgeKey, for strings.
func ParseEdgeKey(s string) (EdgeKey, error) {
	return DecodeEdgeKey(ByteSpanFromString(s).Data())
}

func decodeEdgeKeyComponent(b []byte) (int64, error) {
	v, ok := parseCanonicalInt(b)
	if !ok {
		return 0, errors.Mark(errors.Newf("invalid integer %q", b), ErrInvalidEdgeKey)
	}
	return v, nil
}

// parseCanonicalInt parses b as the output of strconv.FormatInt(v, 10).
func parseCanonicalInt(b []byte) (int64, bool) {
	neg := len(b) > 0 && b[0] == '-'
	if neg {
		b = b[1:]
	}
	// 19 digits cannot overflow a uint64.
	if len(b) == 0 || len(b) > 19 {
		return 0, false
	}
	if b[0] == '0' && (len(b) > 1 || neg) {
		return 0, false
	}
	var u uint64
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, false
		}
		u = u*10 + uint64(c-'0')
	}
	if neg {
		if u > 1<<63 {
			return 0, false
		}
		return int64(-u), true
	}
	if u > math.MaxInt64 {
		return 0, false
	}
	return int64(u), true
}

// decodeEdgeKeyNoCopy is like DecodeEdgeKey but only returns the integers. It
// does not allocate.
func decodeEdgeKeyNoCopy(b []byte) (src, dst int64, ok bool) {
	i := bytes.IndexByte(b, edgeKeySeparator)
	if i < 0 {
		return 0, 0, false
	}
	if src, ok = parseCanonicalInt(b[:i]); !ok {
		return 0, 0, false
	}
	if dst, ok = parseCanonicalInt(b[i+1:]); !ok {
		return 0, 0, false
	}
	return src, dst, true
}
