// Copyright 2011 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package base

import "github.com/cockroachdb/errors"

// ErrInvalidEdgeKey marks errors returned when decoding bytes that are not
// the encoding of an EdgeKey.
var ErrInvalidEdgeKey = errors.New("keyview: invalid edge key")

// IsInvalidEdgeKeyError returns true if err indicates that a key could not be
// decoded as an EdgeKey.
func IsInvalidEdgeKeyError(err error) bool {
	return errors.Is(err, ErrInvalidEdgeKey)
}

// AssertionFailedf creates an assertion error. It should only be used when it
// indicates a bug.
func AssertionFailedf(format string, args ...interface{}) error {
	return errors.AssertionFailedf(format, args...)
}
