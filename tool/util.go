// Copyright 2019 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"bufio"
	"encoding/hex"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
)

var stdout = io.Writer(os.Stdout)
var stdin = io.Reader(os.Stdin)

// parseKey decodes a key given on the command line. Keys prefixed with "hex:"
// are hex decoded, keys prefixed with "raw:" are taken verbatim after the
// prefix, and anything else is taken verbatim.
func parseKey(v string) ([]byte, error) {
	switch {
	case strings.HasPrefix(v, "hex:"):
		b, err := hex.DecodeString(strings.TrimPrefix(v, "hex:"))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid hex key %q", v)
		}
		return b, nil

	case strings.HasPrefix(v, "raw:"):
		return []byte(strings.TrimPrefix(v, "raw:")), nil

	default:
		return []byte(v), nil
	}
}

// readKeys parses the keys in args, or, if there are none, one key per line
// read from stdin.
func readKeys(args []string) ([][]byte, error) {
	if len(args) == 0 {
		s := bufio.NewScanner(stdin)
		for s.Scan() {
			if line := s.Text(); line != "" {
				args = append(args, line)
			}
		}
		if err := s.Err(); err != nil {
			return nil, errors.Wrap(err, "reading keys")
		}
	}
	keys := make([][]byte, 0, len(args))
	for _, arg := range args {
		k, err := parseKey(arg)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}
