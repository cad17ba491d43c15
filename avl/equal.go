// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Equal - true if both trees have the same shape and the same keys
func Equal(a Tree, b Tree) bool {
	na, aok := asNode("equal", a)
	nb, bok := asNode("equal", b)
	if !aok || !bok {
		return aok == bok
	}

	// shared sub-tree
	if na == nb {
		return true
	}

	return na.key == nb.key && Equal(na.left, nb.left) && Equal(na.right, nb.right)
}
