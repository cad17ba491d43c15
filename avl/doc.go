// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - a persistent AVL balanced tree of integer keys
//
// A tree is one of two variants: the empty tree or a node holding a
// key, two sub-trees and its height.  Nodes are never modified after
// construction, so every Insert or Delete returns a new root that
// shares all untouched sub-trees with the tree it was derived from.
// Any tree value can therefore be read from many go routines at once
// and older versions stay valid for as long as they are referenced.
//
// Publishing a "current" root to several writers needs external
// synchronisation, see the snapshot package.
//
// Duplicate keys are not stored: inserting a key that is already
// present returns the same tree.  Deleting a key that is not present
// returns fault.ErrEmptyTreeAccess together with the unchanged tree.
package avl
