// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/fault"
)

// shorthand for hand built shapes; heights are computed by newNode
func n(key int, left Tree, right Tree) *Node {
	return newNode(key, left, right)
}

func l(key int) *Node {
	return newNode(key, empty, empty)
}

func TestEasyRight(t *testing.T) {
	//      5            3
	//     / \          / \
	//    3   6   =>   2   5
	//   / \              / \
	//  2   4            4   6
	before := n(5, n(3, l(2), l(4)), l(6))
	after := easyRight(before)

	expected := n(3, l(2), n(5, l(4), l(6)))
	assert.True(t, Equal(expected, after), "wrong shape")
	assert.Equal(t, 3, after.height, "height")

	// source is untouched
	assert.Equal(t, 5, before.key, "source changed")
	assert.Equal(t, 3, before.height, "source height changed")
}

func TestEasyLeft(t *testing.T) {
	before := n(2, l(1), n(4, l(3), l(5)))
	after := easyLeft(before)

	expected := n(4, n(2, l(1), l(3)), l(5))
	assert.True(t, Equal(expected, after), "wrong shape")
	assert.Equal(t, 3, after.height, "height")
}

func TestRotateRightLeftLeft(t *testing.T) {
	after := rotateRight(n(3, n(2, l(1), empty), empty))

	assert.True(t, Equal(n(2, l(1), l(3)), after), "wrong shape")
	assert.NoError(t, Check(after), "check")
}

func TestRotateRightLeftRight(t *testing.T) {
	after := rotateRight(n(3, n(1, empty, l(2)), empty))

	assert.True(t, Equal(n(2, l(1), l(3)), after), "wrong shape")
	assert.NoError(t, Check(after), "check")
}

func TestRotateLeftRightRight(t *testing.T) {
	after := rotateLeft(n(1, empty, n(2, empty, l(3))))

	assert.True(t, Equal(n(2, l(1), l(3)), after), "wrong shape")
	assert.NoError(t, Check(after), "check")
}

func TestRotateLeftRightLeft(t *testing.T) {
	after := rotateLeft(n(1, empty, n(3, l(2), empty)))

	assert.True(t, Equal(n(2, l(1), l(3)), after), "wrong shape")
	assert.NoError(t, Check(after), "check")
}

// the shape left by a deletion: both grandchildren equally tall
func TestRotateRightEqualGrandchildren(t *testing.T) {
	after := rotateRight(n(4, n(2, l(1), l(3)), empty))

	assert.True(t, Equal(n(2, l(1), n(4, l(3), empty)), after), "wrong shape")
	assert.NoError(t, Check(after), "check")
}

func TestBalanceLeavesBalancedNode(t *testing.T) {
	p := n(2, l(1), empty)
	assert.True(t, p == balance(p), "balanced node was rebuilt")
}

func TestRotationPreconditions(t *testing.T) {
	assert.Panics(t, func() { easyRight(l(1)) }, "easyRight without left")
	assert.Panics(t, func() { easyLeft(l(1)) }, "easyLeft without right")
	assert.Panics(t, func() { rotateRight(l(1)) }, "rotateRight without left")
	assert.Panics(t, func() { rotateLeft(l(1)) }, "rotateLeft without right")
}

func TestShrink(t *testing.T) {
	key, rest, err := shrink(l(7))
	require.NoError(t, err, "leaf")
	assert.Equal(t, 7, key, "leaf key")
	assert.True(t, rest.IsEmpty(), "leaf remainder")

	key, rest, err = shrink(n(7, l(5), empty))
	require.NoError(t, err, "no right")
	assert.Equal(t, 7, key, "no right key")
	assert.True(t, Equal(l(5), rest), "no right remainder")

	// removing 9 leaves the node left heavy
	key, rest, err = shrink(n(8, n(4, l(2), l(6)), l(9)))
	require.NoError(t, err, "rebalance")
	assert.Equal(t, 9, key, "rebalance key")
	assert.NoError(t, Check(rest), "rebalance remainder")
	assert.Equal(t, 4, rest.(*Node).key, "rebalance root")

	_, rest, err = shrink(empty)
	assert.Equal(t, fault.ErrEmptyTreeAccess, err, "empty")
	assert.True(t, rest.IsEmpty(), "empty remainder")
}

func TestCheckDetectsCorruption(t *testing.T) {
	order := &Node{key: 1, left: l(2), right: empty, height: 2}
	assert.Equal(t, fault.ErrKeyOrder, Check(order), "left order")

	order = &Node{key: 2, left: empty, right: l(1), height: 2}
	assert.Equal(t, fault.ErrKeyOrder, Check(order), "right order")

	height := &Node{key: 2, left: l(1), right: empty, height: 3}
	assert.Equal(t, fault.ErrHeightMismatch, Check(height), "height")

	unbalanced := n(4, n(2, l(1), empty), empty)
	assert.Equal(t, fault.ErrUnbalanced, Check(unbalanced), "balance")

	deep := n(8, n(4, l(2), l(9)), l(10))
	assert.Equal(t, fault.ErrKeyOrder, Check(deep), "grandchild order")
}
