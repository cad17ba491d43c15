// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// key range of a checked sub-tree
type span struct {
	low   int
	high  int
	empty bool
}

// Check - verify search order, stored heights and balance of every
// node in the tree
func Check(tree Tree) error {
	_, _, err := check(tree)
	return err
}

// internal: consistency checker, returns the recomputed height
func check(tree Tree) (int, span, error) {
	p, ok := asNode("check", tree)
	if !ok {
		return 0, span{empty: true}, nil
	}

	lh, ls, err := check(p.left)
	if nil != err {
		return 0, span{}, err
	}
	rh, rs, err := check(p.right)
	if nil != err {
		return 0, span{}, err
	}

	if !ls.empty && ls.high >= p.key {
		return 0, span{}, fault.ErrKeyOrder
	}
	if !rs.empty && rs.low <= p.key {
		return 0, span{}, fault.ErrKeyOrder
	}

	h := 1 + maximum(lh, rh)
	if h != p.height {
		return 0, span{}, fault.ErrHeightMismatch
	}
	if lh-rh > 1 || rh-lh > 1 {
		return 0, span{}, fault.ErrUnbalanced
	}

	s := span{low: p.key, high: p.key}
	if !ls.empty {
		s.low = ls.low
	}
	if !rs.empty {
		s.high = rs.high
	}
	return h, s, nil
}
