// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package base

import (
	"bytes"
	"unsafe"

	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// emptyBytes is the representation every empty span points at.
var emptyBytes = []byte{}

// ByteSpan is a view of a contiguous run of bytes owned by someone else. It
// never allocates, copies or frees the bytes it refers to: the caller must
// ensure that the backing storage outlives every ByteSpan derived from it and
// is not modified while a ByteSpan refers to it.
//
// The zero value is the empty span. Copying a ByteSpan copies the view, not
// the bytes.
//
// Any number of goroutines may call the read-only methods on the same
// ByteSpan concurrently. Clear and RemovePrefix modify the view itself and
// require that no other goroutine reads or writes the same ByteSpan value at
// the same time.
type ByteSpan struct {
	// data always has cap(data) == len(data), so that appending to a slice
	// obtained from the span reallocates instead of writing past the end of
	// the span into the borrowed storage.
	data []byte
}

// MakeByteSpan returns a span referring to b[0:len(b)].
func MakeByteSpan(b []byte) ByteSpan {
	if len(b) == 0 {
		return ByteSpan{data: emptyBytes}
	}
	return ByteSpan{data: b[:len(b):len(b)]}
}

// MakeByteSpanN returns a span referring to b[0:n].
//
// REQUIRES: 0 <= n <= len(b)
func MakeByteSpanN(b []byte, n int) ByteSpan {
	if n < 0 || n > len(b) {
		panic(errors.AssertionFailedf("span length %d out of range [0, %d]", n, len(b)))
	}
	return MakeByteSpan(b[:n])
}

// ByteSpanFromString returns a span referring to the bytes of s. No copy is
// made; since strings are immutable the span stays valid for as long as s is
// reachable.
func ByteSpanFromString(s string) ByteSpan {
	if len(s) == 0 {
		return ByteSpan{data: emptyBytes}
	}
	return ByteSpan{data: unsafe.Slice(unsafe.StringData(s), len(s))}
}

// ByteSpanFromCString returns a span referring to the bytes of b up to, but
// not including, the first NUL byte. If b contains no NUL byte the span covers
// all of b.
func ByteSpanFromCString(b []byte) ByteSpan {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return MakeByteSpan(b)
}

// Data returns the referenced bytes. The caller must not modify them, and
// must not use the returned slice after the backing storage has been freed or
// reused.
func (s ByteSpan) Data() []byte {
	if s.data == nil {
		return emptyBytes
	}
	return s.data
}

// Len returns the length of the referenced data in bytes.
func (s ByteSpan) Len() int {
	return len(s.data)
}

// Empty returns true iff the span has length zero.
func (s ByteSpan) Empty() bool {
	return len(s.data) == 0
}

// At returns the n-th byte of the span.
//
// REQUIRES: 0 <= n < Len(). Violating this is a programming error and panics.
func (s ByteSpan) At(n int) byte {
	if n < 0 || n >= len(s.data) {
		panic(errors.AssertionFailedf("span index %d out of range [0, %d)", n, len(s.data)))
	}
	return s.data[n]
}

// Clear changes the span to refer to an empty array. The storage previously
// referenced is unaffected.
func (s *ByteSpan) Clear() {
	s.data = emptyBytes
}

// RemovePrefix drops the first n bytes from the span.
//
// REQUIRES: 0 <= n <= Len(). Violating this is a programming error and
// panics.
func (s *ByteSpan) RemovePrefix(n int) {
	if n < 0 || n > len(s.data) {
		panic(errors.AssertionFailedf("cannot remove prefix of %d bytes from span of length %d", n, len(s.data)))
	}
	if n == len(s.data) {
		s.data = emptyBytes
		return
	}
	s.data = s.data[n:]
}

// String returns a copy of the referenced data.
func (s ByteSpan) String() string {
	return string(s.data)
}

// Clone returns a copy of the referenced data that the caller owns, or nil
// for an empty span.
func (s ByteSpan) Clone() []byte {
	if len(s.data) == 0 {
		return nil
	}
	return append([]byte(nil), s.data...)
}

// Compare returns -1, 0, or +1 depending on whether s is less than, equal to
// or greater than o in lexicographic byte order. When one span is a prefix of
// the other, the shorter one sorts first.
//
// This is the order every sorted structure keyed by ByteSpans relies on, and
// agrees with DefaultComparer.Compare.
func (s ByteSpan) Compare(o ByteSpan) int {
	return bytes.Compare(s.data, o.data)
}

// Equal returns true iff s and o have the same length and the same bytes.
func (s ByteSpan) Equal(o ByteSpan) bool {
	return bytes.Equal(s.data, o.data)
}

// HasPrefix returns true iff p is a prefix of s.
func (s ByteSpan) HasPrefix(p ByteSpan) bool {
	return len(s.data) >= len(p.data) && bytes.Equal(s.data[:len(p.data)], p.data)
}

// Hash returns the xxhash64 of the referenced bytes. Equal spans hash equally.
func (s ByteSpan) Hash() uint64 {
	return xxhash.Sum64(s.data)
}

// SafeFormat implements redact.SafeFormatter. The referenced bytes are user
// data and are marked as unsafe.
func (s ByteSpan) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Print(FormatBytes(s.data))
}
