// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package base

import (
	"bytes"
	"cmp"
	"encoding/binary"
	"fmt"
	"math"
	"slices"
	"strconv"
	"unicode/utf8"

	"github.com/cockroachdb/crlib/crbytes"
	"github.com/cockroachdb/errors"
	"github.com/graphkv/keyview/internal/invariants"
)

// Compare returns -1, 0, or +1 depending on whether a is 'less than', 'equal
// to' or 'greater than' b.
//
// Compare must define a strict total order: the two arguments may only be
// equal if Equal(a, b) is true.
type Compare func(a, b []byte) int

// Equal returns true if a and b are equivalent.
//
// For a given Compare, Equal(a,b)=true iff Compare(a,b)=0; that is, Equal is a
// (potentially faster) specialization of Compare.
type Equal func(a, b []byte) bool

// AbbreviatedKey returns a fixed length prefix of a user key such that
//
//	AbbreviatedKey(a) < AbbreviatedKey(b) implies a < b, and
//	AbbreviatedKey(a) > AbbreviatedKey(b) implies a > b.
//
// If AbbreviatedKey(a) == AbbreviatedKey(b), an additional comparison is
// required to determine if the two keys are actually equal.
type AbbreviatedKey func(key []byte) uint64

// FormatKey returns a formatter for the user key.
type FormatKey func(key []byte) fmt.Formatter

// DefaultFormatter is the default implementation of user key formatting:
// non-ASCII data is formatted as escaped hexadecimal values.
var DefaultFormatter FormatKey = func(key []byte) fmt.Formatter {
	return FormatBytes(key)
}

// Separator is used to shorten keys that only serve as boundaries between
// other keys. A trivial implementation is `return append(dst, a...)`.
//
// Given keys a, b for which Compare(a, b) < 0, Separator produces a key k such
// that:
//
// 1. Compare(a, k) <= 0, and
// 2. Compare(k, b) < 0.
//
// For example, if a and b are the []byte equivalents of the strings "black" and
// "blue", then the function may append "blb" to dst.
type Separator func(dst, a, b []byte) []byte

// Successor appends to dst a shortened key k given a key a such that
// Compare(a, k) <= 0. A simple implementation may return a unchanged.
// The appended key k must be valid to pass to Compare.
type Successor func(dst, a []byte) []byte

// Comparer defines a total ordering over the space of []byte keys: a 'less
// than' relationship.
type Comparer struct {
	// The following must always be specified.
	Compare        Compare
	AbbreviatedKey AbbreviatedKey
	Separator      Separator
	Successor      Successor

	// Equal defaults to using Compare() == 0 if it is not specified.
	Equal Equal
	// FormatKey defaults to the DefaultFormatter if it is not specified.
	FormatKey FormatKey

	// Name is the name of the comparer. Keys ordered by one comparer must not
	// be interpreted with another.
	Name string
}

// EnsureDefaults ensures that all non-optional fields are set.
//
// If c is nil, returns DefaultComparer.
//
// If any fields need to be set, returns a modified copy of c.
func (c *Comparer) EnsureDefaults() *Comparer {
	if c == nil {
		return DefaultComparer
	}
	if c.Compare == nil || c.AbbreviatedKey == nil || c.Separator == nil || c.Successor == nil || c.Name == "" {
		panic("invalid Comparer: mandatory field not set")
	}
	if c.Equal != nil && c.FormatKey != nil {
		return c
	}
	n := &Comparer{}
	*n = *c
	if n.Equal == nil {
		n.Equal = func(a, b []byte) bool {
			return n.Compare(a, b) == 0
		}
	}
	if n.FormatKey == nil {
		n.FormatKey = DefaultFormatter
	}
	return n
}

// DefaultComparer is the default implementation of the Comparer interface.
// It uses the natural ordering, consistent with bytes.Compare and
// ByteSpan.Compare.
var DefaultComparer = &Comparer{
	Compare: bytes.Compare,
	Equal:   bytes.Equal,

	AbbreviatedKey: func(key []byte) uint64 {
		if len(key) >= 8 {
			return binary.BigEndian.Uint64(key)
		}
		var v uint64
		for _, b := range key {
			v <<= 8
			v |= uint64(b)
		}
		return v << uint(8*(8-len(key)))
	},

	FormatKey: DefaultFormatter,

	Separator: func(dst, a, b []byte) []byte {
		i, n := SharedPrefixLen(a, b), len(dst)
		dst = append(dst, a...)

		min := len(a)
		if min > len(b) {
			min = len(b)
		}
		if i >= min {
			// Do not shorten if one string is a prefix of the other.
			return dst
		}

		if a[i] >= b[i] {
			// b is smaller than a or a is already the shortest possible.
			return dst
		}

		if i < len(b)-1 || a[i]+1 < b[i] {
			i += n
			invariants.CheckBounds(i, len(dst))
			dst[i]++
			return dst[:i+1]
		}

		i += n + 1
		for ; i < len(dst); i++ {
			if dst[i] != 0xff {
				dst[i]++
				return dst[:i+1]
			}
		}
		return dst
	},

	Successor: func(dst, a []byte) (ret []byte) {
		for i := 0; i < len(a); i++ {
			if a[i] != 0xff {
				dst = append(dst, a[:i+1]...)
				dst[len(dst)-1]++
				return dst
			}
		}
		// a is a run of 0xffs, leave it alone.
		return append(dst, a...)
	},

	// This name is part of the C++ Level-DB implementation's default file
	// format, and should not be changed.
	Name: "leveldb.BytewiseComparator",
}

// EdgeComparer orders keys holding EdgeKey encodings the way EdgeKey.Compare
// orders the keys themselves: numerically by source, then by destination.
//
// Keys that are not canonical edge key encodings sort after every edge key,
// bytewise among themselves, so that the order stays total over arbitrary
// input. Since every edge key has exactly one encoding, Equal is bytes.Equal.
// In particular EdgeComparer does not apply the wildcard rule of
// EdgeKey.Equal; a comparer's Equal has to agree with its Compare.
var EdgeComparer = &Comparer{
	Compare: compareEdgeKeys,
	Equal:   bytes.Equal,

	AbbreviatedKey: func(key []byte) uint64 {
		src, _, ok := decodeEdgeKeyNoCopy(key)
		if !ok {
			return math.MaxUint64
		}
		// Flip the sign bit so that unsigned order matches signed order.
		return uint64(src) ^ (1 << 63)
	},

	FormatKey: DefaultFormatter,

	// Edge keys have no shorter representation that still decodes.
	Separator: func(dst, a, b []byte) []byte {
		return append(dst, a...)
	},
	Successor: func(dst, a []byte) []byte {
		return append(dst, a...)
	},

	Name: "keyview.EdgeComparator",
}

func compareEdgeKeys(a, b []byte) int {
	aSrc, aDst, aOK := decodeEdgeKeyNoCopy(a)
	bSrc, bDst, bOK := decodeEdgeKeyNoCopy(b)
	switch {
	case aOK && bOK:
		if c := cmp.Compare(aSrc, bSrc); c != 0 {
			return c
		}
		return cmp.Compare(aDst, bDst)
	case aOK:
		return -1
	case bOK:
		return +1
	default:
		return bytes.Compare(a, b)
	}
}

// SharedPrefixLen returns the largest i such that a[:i] equals b[:i].
// This function can be useful in implementing the Comparer interface.
func SharedPrefixLen(a, b []byte) int {
	return crbytes.CommonPrefix(a, b)
}

// MinUserKey returns the smaller of two user keys. If one of the keys is nil,
// the other one is returned.
func MinUserKey(cmp Compare, a, b []byte) []byte {
	if a != nil && (b == nil || cmp(a, b) < 0) {
		return a
	}
	return b
}

// FormatBytes formats a byte slice using hexadecimal escapes for non-ASCII
// data.
type FormatBytes []byte

const lowerhex = "0123456789abcdef"

// Format implements the fmt.Formatter interface.
func (p FormatBytes) Format(s fmt.State, c rune) {
	buf := make([]byte, 0, len(p))
	for _, b := range p {
		if b < utf8.RuneSelf && strconv.IsPrint(rune(b)) {
			buf = append(buf, b)
			continue
		}
		buf = append(buf, `\x`...)
		buf = append(buf, lowerhex[b>>4])
		buf = append(buf, lowerhex[b&0xF])
	}
	s.Write(buf)
}

// MakeAssertComparer creates a Comparer that is the same with the given
// Comparer except that it asserts that the Compare, Equal and AbbreviatedKey
// functions adhere to their specifications.
func MakeAssertComparer(c Comparer) Comparer {
	return Comparer{
		Compare: func(a []byte, b []byte) int {
			res := c.Compare(a, b)
			if rev := c.Compare(b, a); rev != -res {
				panic(AssertionFailedf("%s: Compare(%s, %s)=%d but Compare(%s, %s)=%d",
					c.Name, c.FormatKey(a), c.FormatKey(b), res, c.FormatKey(b), c.FormatKey(a), rev))
			}
			ak, bk := c.AbbreviatedKey(a), c.AbbreviatedKey(b)
			if (ak < bk && res >= 0) || (ak > bk && res <= 0) {
				panic(AssertionFailedf("%s: AbbreviatedKey(%s)=%x, AbbreviatedKey(%s)=%x inconsistent with Compare=%d",
					c.Name, c.FormatKey(a), ak, c.FormatKey(b), bk, res))
			}
			return res
		},

		Equal: func(a []byte, b []byte) bool {
			eq := c.Equal(a, b)
			// Verify that Equal is consistent with Compare.
			if expected := c.Compare(a, b); eq != (expected == 0) {
				panic("Compare and Equal are not consistent")
			}
			return eq
		},

		AbbreviatedKey: c.AbbreviatedKey,
		Separator:      c.Separator,
		Successor:      c.Successor,
		FormatKey:      c.FormatKey,
		Name:           c.Name,
	}
}

// CheckComparer is a mini test suite that verifies a comparer implementation
// against a list of keys. It is recommended that the list contains at least
// one pair of keys that compare equal, and keys that are prefixes of others.
func CheckComparer(c *Comparer, keys [][]byte) error {
	c = c.EnsureDefaults()
	keys = slices.Clone(keys)
	slices.SortFunc(keys, c.Compare)

	for i, a := range keys {
		for j, b := range keys {
			res := c.Compare(a, b)
			if rev := c.Compare(b, a); rev != -res {
				return errors.Errorf("Compare(%s, %s)=%d, but Compare(%s, %s)=%d",
					c.FormatKey(a), c.FormatKey(b), res, c.FormatKey(b), c.FormatKey(a), rev)
			}
			if res < -1 || res > 1 {
				return errors.Errorf("Compare(%s, %s)=%d, expected -1, 0 or +1", c.FormatKey(a), c.FormatKey(b), res)
			}
			if (res == 0) != c.Equal(a, b) {
				return errors.Errorf("Equal(%s, %s) doesn't agree with Compare", c.FormatKey(a), c.FormatKey(b))
			}
			// The keys are sorted, so any inversion is a transitivity violation.
			if i < j && res > 0 {
				return errors.Errorf("Compare(%s, %s)=%d, expected <= 0 (not transitive)", c.FormatKey(a), c.FormatKey(b), res)
			}
			ak, bk := c.AbbreviatedKey(a), c.AbbreviatedKey(b)
			if (ak < bk && res >= 0) || (ak > bk && res <= 0) {
				return errors.Errorf("AbbreviatedKey(%s)=%x, AbbreviatedKey(%s)=%x, but Compare=%d",
					c.FormatKey(a), ak, c.FormatKey(b), bk, res)
			}
			if res < 0 {
				sep := c.Separator(nil, a, b)
				if c.Compare(a, sep) > 0 || c.Compare(sep, b) >= 0 {
					return errors.Errorf("Separator(%s, %s)=%s, expected it to be in [a, b)",
						c.FormatKey(a), c.FormatKey(b), c.FormatKey(sep))
				}
			}
		}
		if succ := c.Successor(nil, a); c.Compare(a, succ) > 0 {
			return errors.Errorf("Successor(%s)=%s, expected it to be >= the key", c.FormatKey(a), c.FormatKey(succ))
		}
	}
	return nil
}
