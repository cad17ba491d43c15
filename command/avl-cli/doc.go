// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avl-cli - build an AVL tree from the keys given as arguments and
// query it
//
//   avl-cli keys --order=breadth 5 3 8 1
//   avl-cli find --key=3 5 3 8 1
//   avl-cli delete --key=5 5 3 8 1
//   avl-cli height 1 2 3 4 5 6 7
package main
