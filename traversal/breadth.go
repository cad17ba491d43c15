// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package traversal

// BreadthFirst - keys level by level from the root, each level left
// to right
//
// rebuilding a tree by inserting keys in this order reproduces the
// original shape, as no rotations are needed along the way
func BreadthFirst[T Reader[T]](root T) Sequence {
	return breadthFirst[T]{root: root}
}

type breadthFirst[T Reader[T]] struct {
	root T
}

func (s breadthFirst[T]) Iterator() Iterator {
	it := &breadthFirstIterator[T]{}
	if !s.root.IsEmpty() {
		it.queue = append(it.queue, s.root)
	}
	return it
}

type breadthFirstIterator[T Reader[T]] struct {
	queue []T
	err   error
}

func (it *breadthFirstIterator[T]) Next() (int, bool) {
	if nil != it.err || 0 == len(it.queue) {
		return 0, false
	}

	head := it.queue[0]
	var zero T
	it.queue[0] = zero // release for garbage collection
	it.queue = it.queue[1:]

	key, err := head.Key()
	if nil != err {
		it.err = err
		return 0, false
	}

	left, err := head.Left()
	if nil != err {
		it.err = err
		return 0, false
	}
	if !left.IsEmpty() {
		it.queue = append(it.queue, left)
	}

	right, err := head.Right()
	if nil != err {
		it.err = err
		return 0, false
	}
	if !right.IsEmpty() {
		it.queue = append(it.queue, right)
	}

	return key, true
}

func (it *breadthFirstIterator[T]) Err() error {
	return it.err
}
