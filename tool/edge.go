// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/graphkv/keyview/internal/base"
	"github.com/spf13/cobra"
)

// edgeT implements edge key introspection tools.
type edgeT struct {
	Root   *cobra.Command
	Encode *cobra.Command
	Decode *cobra.Command
	Match  *cobra.Command

	t *T
}

func newEdge(t *T) *edgeT {
	e := &edgeT{t: t}

	e.Root = &cobra.Command{
		Use:   "edge",
		Short: "edge key introspection tools",
	}
	e.Encode = &cobra.Command{
		Use:   "encode <source> <destination>",
		Short: "print the encoding of an edge key",
		Args:  cobra.ExactArgs(2),
		RunE:  e.runEncode,
	}
	e.Decode = &cobra.Command{
		Use:   "decode <key>...",
		Short: "decode edge keys",
		Long: `
Decode each argument as an edge key and print its source and destination, or
the reason it is not a valid edge key.
`,
		Args: cobra.MinimumNArgs(1),
		RunE: e.runDecode,
	}
	e.Match = &cobra.Command{
		Use:   "match <pattern> [<key>...]",
		Short: "print the edge keys equal to a pattern",
		Long: `
Print the keys that are equal to the pattern edge key. A pattern with the
destination -1 matches every key with the same source. Keys are read from the
arguments or, if there are none, one per line from stdin.
`,
		Args: cobra.MinimumNArgs(1),
		RunE: e.runMatch,
	}
	e.Root.AddCommand(e.Encode, e.Decode, e.Match)
	return e
}

func (e *edgeT) runEncode(cmd *cobra.Command, args []string) error {
	src, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return errors.Wrapf(err, "invalid source %q", args[0])
	}
	dst, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return errors.Wrapf(err, "invalid destination %q", args[1])
	}
	fmt.Fprintf(stdout, "%s\n", base.MakeEdgeKey(src, dst).Encoded())
	return nil
}

func (e *edgeT) runDecode(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		k, err := base.ParseEdgeKey(arg)
		if err != nil {
			fmt.Fprintf(stdout, "%s: %v\n", arg, err)
			continue
		}
		fmt.Fprintf(stdout, "%s: source=%d destination=%d", arg, k.Source(), k.Destination())
		if k.IsWildcard() {
			fmt.Fprintf(stdout, " (wildcard)")
		}
		fmt.Fprintln(stdout)
	}
	return nil
}

func (e *edgeT) runMatch(cmd *cobra.Command, args []string) error {
	pattern, err := base.ParseEdgeKey(args[0])
	if err != nil {
		return err
	}
	keys, err := readKeys(args[1:])
	if err != nil {
		return err
	}
	for _, key := range keys {
		k, err := base.DecodeEdgeKey(key)
		if err != nil {
			e.t.logger.Errorf("skipping %s: %v", base.FormatBytes(key), err)
			continue
		}
		if pattern.Equal(k) {
			fmt.Fprintf(stdout, "%s\n", k)
		}
	}
	return nil
}
