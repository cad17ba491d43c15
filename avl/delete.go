// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Delete - remove a key from the tree
//
// returns the new root; the tree passed in is unchanged.  If the key
// is not present the result is fault.ErrEmptyTreeAccess and the
// original tree.
func Delete(tree Tree, key int) (Tree, error) {
	p, ok := asNode("delete", tree)
	if !ok {
		return tree, fault.ErrEmptyTreeAccess
	}

	switch {
	case key < p.key:
		left, err := Delete(p.left, key)
		if nil != err {
			return tree, err
		}
		return balance(newNode(p.key, left, p.right)), nil

	case key > p.key:
		right, err := Delete(p.right, key)
		if nil != err {
			return tree, err
		}
		return balance(newNode(p.key, p.left, right)), nil
	}

	// found: a leaf simply disappears, and with no left branch the
	// right branch (at most a single leaf) takes its place
	if p.left.IsEmpty() {
		return p.right, nil
	}

	// otherwise the predecessor is promoted into this position
	promoted, remainder, err := shrink(p.left)
	if nil != err {
		return tree, err
	}
	return balance(newNode(promoted, remainder, p.right)), nil
}

// shrink - remove the highest key from a non-empty sub-tree
//
// returns the key and the rebalanced remainder of the sub-tree
func shrink(tree Tree) (int, Tree, error) {
	p, ok := asNode("shrink", tree)
	if !ok {
		return 0, tree, fault.ErrEmptyTreeAccess
	}

	// this is the highest key; for a leaf the remainder is empty
	if p.right.IsEmpty() {
		return p.key, p.left, nil
	}

	key, right, err := shrink(p.right)
	if nil != err {
		return 0, tree, err
	}
	return key, balance(newNode(p.key, p.left, right)), nil
}
