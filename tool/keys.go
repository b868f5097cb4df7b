// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"fmt"
	"slices"

	"github.com/graphkv/keyview/internal/base"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// keysT implements commands that operate on arbitrary keys.
type keysT struct {
	Compare   *cobra.Command
	Sort      *cobra.Command
	Separator *cobra.Command

	t *T

	// Flags.
	comparerName string
	unique       bool
	table        bool
}

func newKeys(t *T) *keysT {
	k := &keysT{t: t}

	k.Compare = &cobra.Command{
		Use:   "compare <key> <key>",
		Short: "compare two keys",
		Long: `
Compare two keys using the comparer named by --comparer and print the result of
the comparison, whether the keys are equal, and whether the second key is a
prefix of the first. With the edge comparer, also print whether the keys are
equal under the wildcard rule of edge keys.

Keys prefixed with "hex:" are hex decoded; the prefix "raw:" can be used to
pass keys that start with "hex:".
`,
		Args: cobra.ExactArgs(2),
		RunE: k.runCompare,
	}
	k.Sort = &cobra.Command{
		Use:   "sort [<key>...]",
		Short: "sort keys",
		Long: `
Sort keys using the comparer named by --comparer. Keys are read from the
arguments or, if there are none, one per line from stdin.
`,
		RunE: k.runSort,
	}

	k.Separator = &cobra.Command{
		Use:   "separator <key> <key>",
		Short: "print the shortened keys a comparer derives from two keys",
		Long: `
Order two keys using the comparer named by --comparer and print the smaller
one, the shortest separator the comparer finds between them, and the
successor of each key.
`,
		Args: cobra.ExactArgs(2),
		RunE: k.runSeparator,
	}

	for _, cmd := range []*cobra.Command{k.Compare, k.Sort, k.Separator} {
		cmd.Flags().StringVar(
			&k.comparerName, "comparer", base.DefaultComparer.Name, "comparer name")
	}
	k.Sort.Flags().BoolVar(
		&k.unique, "unique", false, "drop keys equal to the preceding key")
	k.Sort.Flags().BoolVar(
		&k.table, "table", false, "print abbreviated keys and hashes in a table")
	return k
}

func (k *keysT) runCompare(cmd *cobra.Command, args []string) error {
	c, err := k.t.comparer(k.comparerName)
	if err != nil {
		return err
	}
	a, err := parseKey(args[0])
	if err != nil {
		return err
	}
	b, err := parseKey(args[1])
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "compare(%s, %s) = %+d\n", c.FormatKey(a), c.FormatKey(b), c.Compare(a, b))
	fmt.Fprintf(stdout, "equal: %t\n", c.Equal(a, b))
	fmt.Fprintf(stdout, "has-prefix: %t\n", base.MakeByteSpan(a).HasPrefix(base.MakeByteSpan(b)))
	if c.Name == base.EdgeComparer.Name {
		ae, aErr := base.DecodeEdgeKey(a)
		be, bErr := base.DecodeEdgeKey(b)
		if aErr == nil && bErr == nil {
			fmt.Fprintf(stdout, "edge-equal: %t\n", ae.Equal(be))
		}
	}
	return nil
}

func (k *keysT) runSort(cmd *cobra.Command, args []string) error {
	c, err := k.t.comparer(k.comparerName)
	if err != nil {
		return err
	}
	keys, err := readKeys(args)
	if err != nil {
		return err
	}
	if c.Name == base.EdgeComparer.Name {
		for _, key := range keys {
			if _, err := base.DecodeEdgeKey(key); err != nil {
				k.t.logger.Infof("%s: sorting after all edge keys: %v", c.FormatKey(key), err)
			}
		}
	}

	slices.SortStableFunc(keys, c.Compare)
	if k.unique {
		keys = slices.CompactFunc(keys, c.Equal)
	}

	if k.table {
		tbl := tablewriter.NewWriter(stdout)
		tbl.SetHeader([]string{"Key", "Abbreviated", "Hash"})
		for _, key := range keys {
			tbl.Append([]string{
				fmt.Sprint(c.FormatKey(key)),
				fmt.Sprintf("%016x", c.AbbreviatedKey(key)),
				fmt.Sprintf("%016x", base.MakeByteSpan(key).Hash()),
			})
		}
		tbl.Render()
		return nil
	}
	for _, key := range keys {
		fmt.Fprintf(stdout, "%s\n", c.FormatKey(key))
	}
	return nil
}

func (k *keysT) runSeparator(cmd *cobra.Command, args []string) error {
	c, err := k.t.comparer(k.comparerName)
	if err != nil {
		return err
	}
	a, err := parseKey(args[0])
	if err != nil {
		return err
	}
	b, err := parseKey(args[1])
	if err != nil {
		return err
	}

	lo := base.MinUserKey(c.Compare, a, b)
	hi := a
	if c.Compare(lo, a) == 0 {
		hi = b
	}
	fmt.Fprintf(stdout, "min: %s\n", c.FormatKey(lo))
	if c.Compare(lo, hi) == 0 {
		fmt.Fprintf(stdout, "separator(%s, %s): keys are equal\n", c.FormatKey(lo), c.FormatKey(hi))
	} else {
		sep := c.Separator(nil, lo, hi)
		fmt.Fprintf(stdout, "separator(%s, %s) = %s\n", c.FormatKey(lo), c.FormatKey(hi), c.FormatKey(sep))
	}
	for _, key := range [][]byte{lo, hi} {
		fmt.Fprintf(stdout, "successor(%s) = %s\n", c.FormatKey(key), c.FormatKey(c.Successor(nil, key)))
	}
	return nil
}
