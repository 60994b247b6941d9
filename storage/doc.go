// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tally Project Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - the abstract key-value store and its backends
//
// the runtime only ever touches persistent state through the narrow
// Handle interface, so backends are interchangeable: a prefixed
// section of a LevelDB database for the daemon, a map for tests
//
// read of a missing key yields nil with no error; backend failures are
// returned to the caller, never handled here
package storage
