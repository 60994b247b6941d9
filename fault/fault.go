// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tally Project Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type CorruptionError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ProcessError("already initialised")
	ErrBlockIsNotRoot       = InvalidError("block is not a chain root")
	ErrBlockNotFound        = NotFoundError("block not found")
	ErrDifficultyTooLow     = InvalidError("difficulty too low")
	ErrInvalidBlockSize     = InvalidError("invalid block size")
	ErrInvalidCharacter     = InvalidError("invalid character")
	ErrInvalidCount         = InvalidError("invalid count")
	ErrInvalidDifficulty    = InvalidError("invalid difficulty")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidNonceLength   = InvalidError("invalid nonce length")
	ErrInvalidOperationTag  = InvalidError("invalid operation tag")
	ErrInvalidParentFlag    = InvalidError("invalid parent flag")
	ErrNotInitialised       = ProcessError("not initialised")
	ErrNotLink              = InvalidError("not link")
	ErrNotOperationPack     = InvalidError("not operation pack")
	ErrSealCancelled        = ProcessError("seal cancelled")
	ErrStateCorruption      = CorruptionError("state is corrupted")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e CorruptionError) Error() string { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e ProcessError) Error() string    { return string(e) }

// determine the class of an error
func IsErrCorruption(e error) bool { _, ok := e.(CorruptionError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
