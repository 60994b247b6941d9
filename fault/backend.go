// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tally Project Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// BackendError - the storage backend reported a failure
//
// wraps the underlying cause so callers can use errors.Is / errors.As
// the cause is never swallowed
type BackendError struct {
	Cause error
}

// Backend - wrap a storage failure, nil stays nil
func Backend(err error) error {
	if nil == err {
		return nil
	}
	return BackendError{Cause: err}
}

// Error - the error interface method
func (e BackendError) Error() string {
	return "backend error: " + e.Cause.Error()
}

// Unwrap - expose the underlying cause
func (e BackendError) Unwrap() error {
	return e.Cause
}

// IsErrBackend - determine if an error is a wrapped backend failure
func IsErrBackend(e error) bool { _, ok := e.(BackendError); return ok }
