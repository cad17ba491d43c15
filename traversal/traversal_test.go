// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package traversal_test

import (
	"sort"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/avl/mocks"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/traversal"
)

func build(list ...int) avl.Tree {
	tree := avl.Empty()
	for _, k := range list {
		tree = avl.Insert(tree, k)
	}
	return tree
}

func TestEmptyTree(t *testing.T) {
	keys, err := traversal.Collect(traversal.InOrder(avl.Empty()))
	require.NoError(t, err, "in-order")
	assert.Empty(t, keys, "in-order keys")

	keys, err = traversal.Collect(traversal.BreadthFirst(avl.Empty()))
	require.NoError(t, err, "breadth-first")
	assert.Empty(t, keys, "breadth-first keys")
}

func TestInOrder(t *testing.T) {
	list := []int{50, 20, 80, 10, 30, 70, 90, 60, 40, 15, 25, 85, 5}
	tree := build(list...)

	expected := append([]int{}, list...)
	sort.Ints(expected)

	keys, err := traversal.Collect(traversal.InOrder(tree))
	require.NoError(t, err)
	assert.Equal(t, expected, keys, "in-order keys")
}

func TestBreadthFirst(t *testing.T) {
	tree := build(1, 2, 3, 4, 5, 6, 7)

	keys, err := traversal.Collect(traversal.BreadthFirst(tree))
	require.NoError(t, err)
	assert.Equal(t, []int{4, 2, 6, 1, 3, 5, 7}, keys, "breadth-first keys")
}

// two passes over the same sequence are independent
func TestRestartable(t *testing.T) {
	tree := build(8, 4, 12, 2, 6, 10, 14)

	for _, seq := range []traversal.Sequence{traversal.InOrder(tree), traversal.BreadthFirst(tree)} {
		first := seq.Iterator()
		k1, ok := first.Next()
		require.True(t, ok, "first pass")

		second := seq.Iterator()
		k2, ok := second.Next()
		require.True(t, ok, "second pass")
		assert.Equal(t, k1, k2, "passes disagree")

		all, err := traversal.Collect(seq)
		require.NoError(t, err)
		assert.Len(t, all, 7, "full pass")

		// first pass continues from where it stopped
		k3, ok := first.Next()
		require.True(t, ok, "first pass resumed")
		assert.Equal(t, all[1], k3, "first pass lost position")
	}
}

func TestRebuildInOrder(t *testing.T) {
	tree := build(9, 3, 14, 1, 5, 12, 17, 4, 11, 13)

	rebuilt, err := traversal.Rebuild(traversal.InOrder(tree), avl.Empty(), avl.Insert)
	require.NoError(t, err)
	assert.NoError(t, avl.Check(rebuilt), "check")

	before, _ := traversal.Collect(traversal.InOrder(tree))
	after, _ := traversal.Collect(traversal.InOrder(rebuilt))
	assert.Equal(t, before, after, "keys differ")
}

func TestRebuildBreadthFirstKeepsShape(t *testing.T) {
	trees := []avl.Tree{
		build(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12),
		build(100, 50, 150, 25, 75, 125, 175, 10, 30, 60, 5),
		build(9, 3, 14, 1, 5, 12, 17, 4, 11, 13),
	}
	for i, tree := range trees {
		rebuilt, err := traversal.Rebuild(traversal.BreadthFirst(tree), avl.Empty(), avl.Insert)
		require.NoError(t, err, "%d: rebuild", i)
		assert.True(t, avl.Equal(tree, rebuilt), "%d: shape differs", i)
	}
}

func TestRebuildSlice(t *testing.T) {
	rebuilt, err := traversal.Rebuild(traversal.Slice([]int{3, 1, 2, 3}), avl.Empty(), avl.Insert)
	require.NoError(t, err)
	assert.True(t, avl.Equal(build(1, 2, 3), rebuilt), "wrong tree")
}

// the right branch must not be touched until the iterator reaches it
func TestInOrderIsLazy(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	root := mocks.NewMockTree(ctl)
	right := mocks.NewMockTree(ctl)

	root.EXPECT().IsEmpty().Return(false).AnyTimes()
	root.EXPECT().Left().Return(avl.Empty(), nil)
	root.EXPECT().Key().Return(10, nil)
	root.EXPECT().Right().Return(right, nil)

	it := traversal.InOrder(avl.Tree(root)).Iterator()
	key, ok := it.Next()
	require.True(t, ok, "first key")
	assert.Equal(t, 10, key, "first key")

	right.EXPECT().IsEmpty().Return(false).AnyTimes()
	right.EXPECT().Left().Return(avl.Empty(), nil)
	right.EXPECT().Key().Return(20, nil)
	right.EXPECT().Right().Return(avl.Empty(), nil)

	key, ok = it.Next()
	require.True(t, ok, "second key")
	assert.Equal(t, 20, key, "second key")

	_, ok = it.Next()
	assert.False(t, ok, "end of sequence")
	assert.NoError(t, it.Err(), "error")
}

func TestReadErrorStopsIteration(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	root := mocks.NewMockTree(ctl)
	root.EXPECT().IsEmpty().Return(false).AnyTimes()
	root.EXPECT().Left().Return(avl.Empty(), nil).AnyTimes()
	root.EXPECT().Key().Return(0, fault.ErrEmptyTreeAccess).AnyTimes()

	for _, seq := range []traversal.Sequence{traversal.InOrder(avl.Tree(root)), traversal.BreadthFirst(avl.Tree(root))} {
		keys, err := traversal.Collect(seq)
		assert.Equal(t, fault.ErrEmptyTreeAccess, err, "error")
		assert.Empty(t, keys, "keys")

		_, err = traversal.Rebuild(seq, avl.Empty(), avl.Insert)
		assert.Equal(t, fault.ErrEmptyTreeAccess, err, "rebuild error")
	}
}
