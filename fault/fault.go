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
	ErrFreeListCorrupt      = ProcessError("node free list corrupt")
	ErrInvalidCount         = InvalidError("count must be a non-negative integer")
	ErrInvalidKey           = InvalidError("key is not an integer")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrInvariantViolation   = ProcessError("red-black invariant violated")
	ErrMissingKey           = InvalidError("key is required")
	ErrNotFoundConfigFile   = NotFoundError("config file is not found")
	ErrRotateSentinel       = ProcessError("rotation toward an empty child")
	ErrUnknownCommand       = InvalidError("unknown command")
	ErrUnknownSetKind       = InvalidError("unknown set kind")
	ErrVerifyFailed         = ProcessError("tree verification failed")
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
