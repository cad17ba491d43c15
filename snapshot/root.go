// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package snapshot

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/bitmark-inc/logger"
	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/fault"
)

const (
	// MaximumRetries - attempts by Update before giving up
	MaximumRetries = 64

	defaultRetention = 10 * time.Minute
)

// Version - a numbered published tree
type Version struct {
	Number uint64
	Tree   avl.Tree
}

// Root - the current version and a short history
type Root struct {
	current   atomic.Pointer[Version]
	history   *cache.Cache
	conflicts counter.Counter
	log       *logger.L
}

// Transform - derive a new tree from the current one
//
// may be called several times by one Update so must not have side
// effects beyond computing its result
type Transform func(avl.Tree) (avl.Tree, error)

// New - create a root holding the empty tree as version zero
func New(log *logger.L, retention time.Duration) *Root {
	if retention <= 0 {
		retention = defaultRetention
	}

	r := &Root{
		history: cache.New(retention, 2*retention),
		log:     log,
	}
	v := &Version{
		Number: 0,
		Tree:   avl.Empty(),
	}
	r.current.Store(v)
	r.remember(v)

	return r
}

// Load - the current version
func (r *Root) Load() Version {
	return *r.current.Load()
}

// Update - publish the result of a transform of the current tree
//
// an error from the transform is returned without publishing; if the
// transform returns the tree it was given nothing is published and
// the current version is returned
func (r *Root) Update(transform Transform) (Version, error) {
	for i := 0; i < MaximumRetries; i += 1 {
		old := r.current.Load()

		tree, err := transform(old.Tree)
		if nil != err {
			return *old, err
		}
		if tree == old.Tree {
			return *old, nil
		}

		next := &Version{
			Number: old.Number + 1,
			Tree:   tree,
		}
		if r.current.CompareAndSwap(old, next) {
			r.remember(next)
			r.log.Debugf("published version: %d  height: %d", next.Number, avl.Height(tree))
			return *next, nil
		}

		n := r.conflicts.Increment()
		r.log.Tracef("lost race on version: %d  total conflicts: %d", old.Number, n)
	}

	r.log.Warnf("update abandoned after %d attempts", MaximumRetries)
	return r.Load(), fault.ErrRetryLimit
}

// Insert - publish a tree with the key added
func (r *Root) Insert(key int) (Version, error) {
	return r.Update(func(tree avl.Tree) (avl.Tree, error) {
		return avl.Insert(tree, key), nil
	})
}

// Delete - publish a tree with the key removed
//
// fails with fault.ErrEmptyTreeAccess if the key is not present
func (r *Root) Delete(key int) (Version, error) {
	return r.Update(func(tree avl.Tree) (avl.Tree, error) {
		return avl.Delete(tree, key)
	})
}

// Find - true if the key is in the current tree
func (r *Root) Find(key int) bool {
	return avl.Find(r.Load().Tree, key)
}

// At - a previously published version if it is still retained
func (r *Root) At(number uint64) (avl.Tree, bool) {
	item, found := r.history.Get(versionKey(number))
	if !found {
		return avl.Empty(), false
	}
	return item.(avl.Tree), true
}

// Conflicts - number of lost compare and swap races
func (r *Root) Conflicts() uint64 {
	return r.conflicts.Uint64()
}

func (r *Root) remember(v *Version) {
	r.history.Set(versionKey(v.Number), v.Tree, cache.DefaultExpiration)
}

func versionKey(number uint64) string {
	return strconv.FormatUint(number, 10)
}
