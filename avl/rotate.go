// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// all rotations build new nodes; the in-order sequence of keys is
// never changed, only the shape
//
//        p                l
//       / \              / \
//      l   c    <=>     a   p
//     / \                  / \
//    a   b                b   c

// easyRight - single rotation, the left child becomes the root
func easyRight(p *Node) *Node {
	l := mustNode("easyRight", p.left)
	return newNode(l.key, l.left, newNode(p.key, l.right, p.right))
}

// easyLeft - single rotation, the right child becomes the root
func easyLeft(p *Node) *Node {
	r := mustNode("easyLeft", p.right)
	return newNode(r.key, newNode(p.key, p.left, r.left), r.right)
}

// rotateRight - rebalance a left heavy node
func rotateRight(p *Node) *Node {
	l := mustNode("rotateRight", p.left)

	// left-left: single rotation
	if l.left.Height() >= l.right.Height() {
		return easyRight(p)
	}

	// left-right: double rotation
	return easyRight(newNode(p.key, easyLeft(l), p.right))
}

// rotateLeft - rebalance a right heavy node
func rotateLeft(p *Node) *Node {
	r := mustNode("rotateLeft", p.right)

	// right-right: single rotation
	if r.right.Height() >= r.left.Height() {
		return easyLeft(p)
	}

	// right-left: double rotation
	return easyLeft(newNode(p.key, p.left, easyRight(r)))
}

// balance - rotate towards the shorter side if the sub-tree heights
// differ by more than one
func balance(p *Node) *Node {
	lh := p.left.Height()
	rh := p.right.Height()
	switch {
	case lh-rh > 1:
		return rotateRight(p)
	case rh-lh > 1:
		return rotateLeft(p)
	default:
		return p
	}
}
