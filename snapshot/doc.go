// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package snapshot - a published tree root shared between go routines
//
// Readers load the current version without locking.  Writers derive a
// new tree from the version they loaded and publish it with a compare
// and swap; a writer that lost the race recomputes from the newer
// version.  Recently published versions remain reachable by number
// until their retention expires.
package snapshot
