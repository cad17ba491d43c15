// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - add a key to the tree
//
// returns the new root; the tree passed in is unchanged.  If the key
// is already present the same tree is returned.
func Insert(tree Tree, key int) Tree {
	p, ok := asNode("insert", tree)
	if !ok {
		return Leaf(key)
	}

	switch {
	case key < p.key:
		left := Insert(p.left, key)
		if left == p.left {
			return p
		}
		return balance(newNode(p.key, left, p.right))

	case key > p.key:
		right := Insert(p.right, key)
		if right == p.right {
			return p
		}
		return balance(newNode(p.key, p.left, right))

	default:
		return p
	}
}
