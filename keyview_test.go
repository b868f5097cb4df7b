// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package keyview

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/errors"
	"github.com/graphkv/keyview/internal/strparse"
	"github.com/stretchr/testify/require"
)

// catchAssertion runs fn and reports whether it panicked with an assertion
// failure. Any other panic is re-raised.
func catchAssertion(fn func()) (failed bool) {
	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(error); ok && errors.HasAssertionFailure(err) {
				failed = true
				return
			}
			panic(r)
		}
	}()
	fn()
	return false
}

func TestByteSpanDataDriven(t *testing.T) {
	datadriven.RunTest(t, "testdata/byte_span", func(t *testing.T, td *datadriven.TestData) string {
		var buf strings.Builder
		for _, line := range strings.Split(td.Input, "\n") {
			p := strparse.MakeParser("", line)
			switch td.Cmd {
			case "compare":
				a, b := p.ByteSpan(), p.ByteSpan()
				fmt.Fprintf(&buf, "%q vs %q: compare=%+d equal=%t has-prefix=%t\n",
					a, b, a.Compare(b), a.Equal(b), a.HasPrefix(b))

			case "at":
				s, i := p.ByteSpan(), p.Int()
				var c byte
				if catchAssertion(func() { c = s.At(i) }) {
					fmt.Fprintf(&buf, "%q[%d]: assertion failure\n", s, i)
				} else {
					fmt.Fprintf(&buf, "%q[%d] = %q\n", s, i, c)
				}

			case "remove-prefix":
				s, n := p.ByteSpan(), p.Int()
				orig := s
				if catchAssertion(func() { s.RemovePrefix(n) }) {
					fmt.Fprintf(&buf, "%q remove %d: assertion failure\n", orig, n)
				} else {
					fmt.Fprintf(&buf, "%q remove %d: %q len=%d\n", orig, n, s, s.Len())
				}

			case "clear":
				s := p.ByteSpan()
				orig := s
				s.Clear()
				fmt.Fprintf(&buf, "%q clear: %q len=%d empty=%t\n", orig, s, s.Len(), s.Empty())

			case "cstring":
				s := p.ByteSpan()
				c := ByteSpanFromCString(s.Data())
				fmt.Fprintf(&buf, "%q: %q len=%d\n", s, c, c.Len())

			default:
				return fmt.Sprintf("unrecognized command %q", td.Cmd)
			}
		}
		return buf.String()
	})
}

func TestEdgeKeyDataDriven(t *testing.T) {
	datadriven.RunTest(t, "testdata/edge_key", func(t *testing.T, td *datadriven.TestData) string {
		var buf strings.Builder
		switch td.Cmd {
		case "compare":
			for _, line := range strings.Split(td.Input, "\n") {
				p := strparse.MakeParser("(),", line)
				a, b := p.EdgeKey(), p.EdgeKey()
				fmt.Fprintf(&buf, "%s vs %s: compare=%+d equal=%t encoded-compare=%+d\n",
					a, b, a.Compare(b), a.Equal(b), a.Span().Compare(b.Span()))
			}
			return buf.String()

		case "sort":
			var keys []EdgeKey
			var encoded [][]byte
			p := strparse.MakeParser("(),", td.Input)
			for !p.Done() {
				k := p.EdgeKey()
				keys = append(keys, k)
				encoded = append(encoded, []byte(k.Encoded()))
			}
			slices.SortFunc(keys, EdgeKey.Compare)
			slices.SortFunc(encoded, EdgeComparer.Compare)
			for i := range keys {
				if keys[i].Encoded() != string(encoded[i]) {
					td.Fatalf(t, "EdgeComparer order differs at %d: %s vs %s", i, keys[i], encoded[i])
				}
				fmt.Fprintf(&buf, "%s\n", keys[i])
			}
			return buf.String()

		case "decode":
			for _, line := range strings.Split(td.Input, "\n") {
				k, err := ParseEdgeKey(line)
				if err != nil {
					fmt.Fprintf(&buf, "%q: invalid edge key\n", line)
					continue
				}
				fmt.Fprintf(&buf, "%q: source=%d destination=%d wildcard=%t\n",
					line, k.Source(), k.Destination(), k.IsWildcard())
			}
			return buf.String()

		default:
			return fmt.Sprintf("unrecognized command %q", td.Cmd)
		}
	})
}

func TestExportedAPI(t *testing.T) {
	hello, he := ByteSpanFromString("hello"), MakeByteSpan([]byte("he"))
	require.Equal(t, +1, hello.Compare(he))
	require.True(t, hello.HasPrefix(he))
	require.False(t, hello.Equal(he))
	require.Equal(t, "hel", MakeByteSpanN([]byte("hello"), 3).String())

	k := MakeEdgeKey(10, 2)
	require.Equal(t, "10|2", k.Span().String())
	d, err := DecodeEdgeKey(k.Span().Data())
	require.NoError(t, err)
	require.Equal(t, k, d)
	require.True(t, MakeEdgeKey(10, WildcardDestination).Equal(k))

	_, err = ParseEdgeKey("10-2")
	require.True(t, IsInvalidEdgeKeyError(err))
	require.True(t, errors.Is(err, ErrInvalidEdgeKey))

	require.NoError(t, CheckComparer(DefaultComparer, [][]byte{[]byte("a"), []byte("ab"), nil}))
	require.NoError(t, CheckComparer(EdgeComparer, [][]byte{[]byte("9|1"), []byte("10|1"), []byte("x")}))
	var _ Logger = DefaultLogger{}
}
