// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package journal - a line oriented list of tree operations
//
// each line holds one operation followed by an integer key:
//
//   insert 42
//   delete 17
//   find 3
//
// blank lines and anything after a '#' are ignored
package journal
