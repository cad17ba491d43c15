// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/avltree/fault"
)

// common errors - keep in alphabetic order
const (
	ErrInvalidOrder = fault.InvalidError("order must be: in or breadth")
	ErrMissingKey   = fault.InvalidError("key is required")
	ErrNoKeys       = fault.InvalidError("at least one key argument is required")
)
