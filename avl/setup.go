// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

//go:generate mockgen -destination=mocks/tree.go -package=mocks github.com/bitmark-inc/avltree/avl Tree

// Tree - the read capabilities shared by both variants of a tree
//
// payload access on the empty tree returns fault.ErrEmptyTreeAccess
type Tree interface {
	IsEmpty() bool
	Height() int
	Key() (int, error)
	Left() (Tree, error)
	Right() (Tree, error)
}

// the empty variant
type emptyTree struct{}

var empty Tree = emptyTree{}

func (emptyTree) IsEmpty() bool { return true }
func (emptyTree) Height() int   { return 0 }

func (emptyTree) Key() (int, error)    { return 0, fault.ErrEmptyTreeAccess }
func (emptyTree) Left() (Tree, error)  { return empty, fault.ErrEmptyTreeAccess }
func (emptyTree) Right() (Tree, error) { return empty, fault.ErrEmptyTreeAccess }

// Node - the non-empty variant, immutable once created
type Node struct {
	key    int  // key part for ordering
	left   Tree // left sub-tree
	right  Tree // right sub-tree
	height int  // 1 + height of the taller sub-tree
}

// all nodes are created here so that height is always correct
func newNode(key int, left Tree, right Tree) *Node {
	return &Node{
		key:    key,
		left:   left,
		right:  right,
		height: 1 + maximum(left.Height(), right.Height()),
	}
}

// IsEmpty - always false for a node
func (p *Node) IsEmpty() bool { return false }

// Height - height of the sub-tree rooted at this node
func (p *Node) Height() int { return p.height }

// Key - read the key from a node
func (p *Node) Key() (int, error) { return p.key, nil }

// Left - the left sub-tree
func (p *Node) Left() (Tree, error) { return p.left, nil }

// Right - the right sub-tree
func (p *Node) Right() (Tree, error) { return p.right, nil }

// Empty - the empty tree
func Empty() Tree {
	return empty
}

// Leaf - a tree holding a single key
func Leaf(key int) Tree {
	return newNode(key, empty, empty)
}

// IsEmpty - true if the tree holds no keys
func IsEmpty(tree Tree) bool {
	_, ok := asNode("isEmpty", tree)
	return !ok
}

// Height - 0 for the empty tree, otherwise the number of nodes on the
// longest path from the root to a leaf
func Height(tree Tree) int {
	if n, ok := asNode("height", tree); ok {
		return n.height
	}
	return 0
}

// Size - number of keys in the tree
func Size(tree Tree) int {
	n, ok := asNode("size", tree)
	if !ok {
		return 0
	}
	return 1 + Size(n.left) + Size(n.right)
}

// asNode - dispatch on the variant of a tree
//
// returns the node and true for a Node, false for the empty tree.
// Anything else means a tree was not built by this package.
func asNode(operation string, tree Tree) (*Node, bool) {
	switch t := tree.(type) {
	case emptyTree:
		return nil, false
	case *Node:
		if nil == t {
			fault.Panicf("avl: %s: nil node", operation)
		}
		return t, true
	default:
		fault.Panicf("avl: %s: unknown tree variant: %T", operation, tree)
	}
	return nil, false
}

// mustNode - for sub-trees that an invariant guarantees are non-empty
func mustNode(operation string, tree Tree) *Node {
	n, ok := asNode(operation, tree)
	if !ok {
		fault.Panicf("avl: %s: empty sub-tree", operation)
	}
	return n
}

func maximum(a int, b int) int {
	if a > b {
		return a
	}
	return b
}
