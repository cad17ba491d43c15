// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Find - true if the key is in the tree
func Find(tree Tree, key int) bool {
	n, ok := asNode("find", tree)
	if !ok {
		return false
	}

	switch {
	case key == n.key:
		return true
	case key < n.key:
		return Find(n.left, key)
	default:
		return Find(n.right, key)
	}
}

// Min - the lowest key in the tree
func Min(tree Tree) (int, error) {
	n, ok := asNode("min", tree)
	if !ok {
		return 0, fault.ErrEmptyTreeAccess
	}
	for {
		l, ok := asNode("min", n.left)
		if !ok {
			return n.key, nil
		}
		n = l
	}
}

// Max - the highest key in the tree
func Max(tree Tree) (int, error) {
	n, ok := asNode("max", tree)
	if !ok {
		return 0, fault.ErrEmptyTreeAccess
	}
	for {
		r, ok := asNode("max", n.right)
		if !ok {
			return n.key, nil
		}
		n = r
	}
}
