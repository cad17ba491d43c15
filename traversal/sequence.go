// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package traversal

// Reader - the read capabilities required of a tree
type Reader[T any] interface {
	IsEmpty() bool
	Key() (int, error)
	Left() (T, error)
	Right() (T, error)
}

// Iterator - a single pass over a sequence
//
// Next returns false at the end of the sequence or on the first read
// error, which is then available from Err
type Iterator interface {
	Next() (int, bool)
	Err() error
}

// Sequence - a restartable source of keys
type Sequence interface {
	Iterator() Iterator
}

// Collect - read a complete pass of a sequence
func Collect(seq Sequence) ([]int, error) {
	keys := make([]int, 0, 16)
	it := seq.Iterator()
	for {
		key, ok := it.Next()
		if !ok {
			break
		}
		keys = append(keys, key)
	}
	return keys, it.Err()
}

// Rebuild - insert every key of a sequence into an initially empty tree
//
// the result holds the same keys but need not have the same shape as
// the tree the sequence came from
func Rebuild[T any](seq Sequence, empty T, insert func(T, int) T) (T, error) {
	tree := empty
	it := seq.Iterator()
	for {
		key, ok := it.Next()
		if !ok {
			break
		}
		tree = insert(tree, key)
	}
	return tree, it.Err()
}

// Slice - a sequence over a fixed list of keys
func Slice(keys []int) Sequence {
	return sliceSequence(keys)
}

type sliceSequence []int

type sliceIterator struct {
	keys  []int
	index int
}

func (s sliceSequence) Iterator() Iterator {
	return &sliceIterator{keys: s}
}

func (it *sliceIterator) Next() (int, bool) {
	if it.index >= len(it.keys) {
		return 0, false
	}
	key := it.keys[it.index]
	it.index += 1
	return key, true
}

func (it *sliceIterator) Err() error {
	return nil
}
