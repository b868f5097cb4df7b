// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package base

import (
	"math"
	"math/rand/v2"
	"slices"
	"strconv"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"github.com/kr/pretty"
	"github.com/stretchr/testify/require"
)

func TestEdgeKeyZeroValue(t *testing.T) {
	var k EdgeKey
	require.Equal(t, int64(0), k.Source())
	require.Equal(t, int64(0), k.Destination())
	require.Equal(t, "", k.Encoded())
	require.True(t, k.Span().Empty())
	require.Equal(t, "0|0", k.String())
	require.Equal(t, 0, k.Compare(MakeEdgeKey(0, 0)))
	require.True(t, k.Equal(MakeEdgeKey(0, 0)))
}

func TestEdgeKeyEncoding(t *testing.T) {
	k := MakeEdgeKey(10, 2)
	require.Equal(t, int64(10), k.Source())
	require.Equal(t, int64(2), k.Destination())
	require.Equal(t, "10|2", k.Encoded())
	require.Equal(t, "10|2", k.Span().String())
	require.Equal(t, "10|2", k.String())

	require.Equal(t, "1|-1", MakeEdgeKey(1, WildcardDestination).Encoded())
	require.Equal(t, "-5|0", MakeEdgeKey(-5, 0).Encoded())

	// The span of a copy refers to the same immutable encoding and stays
	// valid on its own.
	span := func() ByteSpan { return MakeEdgeKey(123, 456).Span() }()
	require.Equal(t, "123|456", span.String())
}

func TestEdgeKeyCompare(t *testing.T) {
	require.Less(t, MakeEdgeKey(1, 5).Compare(MakeEdgeKey(2, 0)), 0)
	require.Less(t, MakeEdgeKey(3, 2).Compare(MakeEdgeKey(3, 5)), 0)
	require.Equal(t, 0, MakeEdgeKey(3, 5).Compare(MakeEdgeKey(3, 5)))
	require.Greater(t, MakeEdgeKey(2, 0).Compare(MakeEdgeKey(1, 5)), 0)

	// Numeric, not textual: 9 sorts before 10 although "9|0" > "10|0".
	nine, ten := MakeEdgeKey(9, 0), MakeEdgeKey(10, 0)
	require.Less(t, nine.Compare(ten), 0)
	require.Greater(t, nine.Span().Compare(ten.Span()), 0)

	// The wildcard is an ordinary value for ordering purposes.
	require.Less(t, MakeEdgeKey(1, WildcardDestination).Compare(MakeEdgeKey(1, 0)), 0)
	require.Less(t, MakeEdgeKey(math.MinInt64, 0).Compare(MakeEdgeKey(math.MaxInt64, 0)), 0)
}

func TestEdgeKeyEqual(t *testing.T) {
	testCases := []struct {
		a, b EdgeKey
		want bool
	}{
		{MakeEdgeKey(1, 7), MakeEdgeKey(1, 7), true},
		{MakeEdgeKey(1, -1), MakeEdgeKey(1, 7), true},
		{MakeEdgeKey(1, 7), MakeEdgeKey(1, -1), true},
		{MakeEdgeKey(1, -1), MakeEdgeKey(1, -1), true},
		{MakeEdgeKey(1, 7), MakeEdgeKey(2, 7), false},
		{MakeEdgeKey(1, 7), MakeEdgeKey(1, 8), false},
		{MakeEdgeKey(1, -1), MakeEdgeKey(2, 7), false},
		{MakeEdgeKey(1, -1), MakeEdgeKey(2, -1), false},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.want, tc.a.Equal(tc.b), "%s == %s", tc.a, tc.b)
	}

	// Not transitive: the wildcard matches both concrete destinations, which
	// do not match each other.
	w, a, b := MakeEdgeKey(1, -1), MakeEdgeKey(1, 2), MakeEdgeKey(1, 3)
	require.True(t, w.Equal(a))
	require.True(t, w.Equal(b))
	require.False(t, a.Equal(b))
	// And not consistent with Compare.
	require.NotEqual(t, 0, w.Compare(a))
}

func TestEdgeKeyDecode(t *testing.T) {
	for _, k := range []EdgeKey{
		MakeEdgeKey(0, 0),
		MakeEdgeKey(10, 2),
		MakeEdgeKey(1, WildcardDestination),
		MakeEdgeKey(-42, 17),
		MakeEdgeKey(math.MaxInt64, math.MinInt64),
	} {
		got, err := DecodeEdgeKey([]byte(k.Encoded()))
		require.NoError(t, err)
		if diff := pretty.Diff(k, got); diff != nil {
			t.Fatalf("%s: decoded key differs: %v", k, diff)
		}
		got, err = ParseEdgeKey(k.Encoded())
		require.NoError(t, err)
		require.Equal(t, k, got)
	}

	for _, s := range []string{
		"",
		"|",
		"1",
		"1|",
		"|1",
		"01|2",
		"1|02",
		"-0|1",
		"+1|2",
		" 1|2",
		"1|2 ",
		"1|2|3",
		"a|b",
		"9223372036854775808|0",
		"0|-9223372036854775809",
		"99999999999999999999|0",
	} {
		_, err := ParseEdgeKey(s)
		require.Error(t, err, "%q", s)
		require.True(t, IsInvalidEdgeKeyError(err), "%q: %v", s, err)
		require.True(t, errors.Is(err, ErrInvalidEdgeKey))
	}
}

func TestEdgeKeyDecodeCopies(t *testing.T) {
	buf := []byte("3|4")
	k, err := DecodeEdgeKey(buf)
	require.NoError(t, err)
	buf[0] = '5'
	require.Equal(t, "3|4", k.Encoded())
}

func TestEdgeKeySafeFormat(t *testing.T) {
	k := MakeEdgeKey(10, -1)
	require.Equal(t, "10|-1", string(redact.Sprint(k)))
	require.Equal(t, "10|-1", string(redact.Sprint(k).Redact()))
}

func TestEdgeKeySortRandomized(t *testing.T) {
	seed := uint64(time.Now().UnixNano())
	t.Logf("seed: %d", seed)
	rng := rand.New(rand.NewPCG(0, seed))

	keys := make([]EdgeKey, 500)
	encoded := make([][]byte, len(keys))
	for i := range keys {
		keys[i] = MakeEdgeKey(rng.Int64N(200)-100, rng.Int64N(200)-100)
		encoded[i] = []byte(keys[i].Encoded())
	}
	slices.SortFunc(keys, EdgeKey.Compare)
	slices.SortFunc(encoded, EdgeComparer.Compare)
	for i := range keys {
		require.Equal(t, keys[i].Encoded(), string(encoded[i]))
		if i > 0 {
			prev := keys[i-1]
			require.True(t, prev.Source() < keys[i].Source() ||
				(prev.Source() == keys[i].Source() && prev.Destination() <= keys[i].Destination()))
		}
	}
}

func TestParseCanonicalInt(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 9, 10, -10, math.MaxInt64, math.MinInt64, 1234567890} {
		s := strconv.FormatInt(v, 10)
		got, ok := parseCanonicalInt([]byte(s))
		require.True(t, ok, s)
		require.Equal(t, v, got)
	}
	for _, s := range []string{"", "-", "00", "-0", "+5", "1a", "9223372036854775808", "-9223372036854775809"} {
		_, ok := parseCanonicalInt([]byte(s))
		require.False(t, ok, s)
	}
}
