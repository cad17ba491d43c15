// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avlreplay - replay a journal of operations into an AVL tree
//
// the journal is read once at startup; with watch enabled the file
// is monitored and replayed from an empty tree whenever it changes.
// After each replay the keys are printed in order and breadth first.
package main
