// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package traversal - linearise a tree into a sequence of keys and
// build a tree back from such a sequence
//
// Only the read capabilities IsEmpty, Key, Left and Right are used,
// so any tree type providing them can be walked; avl.Tree does.
// Sequences are lazy: a sub-tree is only read when an iterator
// reaches it.  Every call to Iterator starts a fresh pass.
package traversal
