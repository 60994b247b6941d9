// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tally Project Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
//
// The one exception is BackendError, which wraps whatever failure the
// storage backend reported; compare it by class with IsErrBackend or
// unwrap the cause with errors.Is / errors.As
package fault
