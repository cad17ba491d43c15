// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package traversal

// InOrder - keys in ascending order
func InOrder[T Reader[T]](root T) Sequence {
	return inOrder[T]{root: root}
}

type inOrder[T Reader[T]] struct {
	root T
}

func (s inOrder[T]) Iterator() Iterator {
	return &inOrderIterator[T]{
		pending: s.root,
		descend: true,
	}
}

// the stack holds nodes whose left branch is being visited
type inOrderIterator[T Reader[T]] struct {
	stack   []T
	pending T    // right branch of the last node returned
	descend bool // pending has not been pushed yet
	err     error
}

func (it *inOrderIterator[T]) Next() (int, bool) {
	if nil != it.err {
		return 0, false
	}

	if it.descend {
		it.descend = false
		if !it.pushLeft(it.pending) {
			return 0, false
		}
	}

	n := len(it.stack)
	if 0 == n {
		return 0, false
	}
	top := it.stack[n-1]
	it.stack = it.stack[:n-1]

	key, err := top.Key()
	if nil != err {
		it.err = err
		return 0, false
	}
	right, err := top.Right()
	if nil != err {
		it.err = err
		return 0, false
	}
	it.pending = right
	it.descend = true

	return key, true
}

func (it *inOrderIterator[T]) Err() error {
	return it.err
}

// push a node and all of its left descendants
func (it *inOrderIterator[T]) pushLeft(tree T) bool {
	for !tree.IsEmpty() {
		it.stack = append(it.stack, tree)
		left, err := tree.Left()
		if nil != err {
			it.err = err
			return false
		}
		tree = left
	}
	return true
}
