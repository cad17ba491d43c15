// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrEmptyTreeAccess      = NotFoundError("access to empty tree")
	ErrHeightMismatch       = InvalidError("node height does not match children")
	ErrInvalidConfiguration = InvalidError("configuration must return a table")
	ErrInvalidDuration      = InvalidError("invalid duration")
	ErrInvalidKey           = InvalidError("invalid key")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidOperation     = InvalidError("invalid operation")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrKeyOrder             = InvalidError("keys are not in search order")
	ErrNotFoundConfigFile   = NotFoundError("config file is not found")
	ErrNotFoundJournal      = NotFoundError("journal file is not found")
	ErrRequiredJournal      = InvalidError("journal file is required")
	ErrRetryLimit           = ProcessError("update retry limit exceeded")
	ErrUnbalanced           = InvalidError("sibling heights differ by more than one")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
