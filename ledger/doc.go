// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tally Project Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the state transition function
//
// two views of the same fold:
//
//	Executor replays a sealed block against the store, verifying the
//	proof-of-work first
//
//	Builder applies operations one at a time while assembling a new
//	unsealed block, recording each applied operation so the sealed
//	block replays to the same state
//
// both share readTally / writeTally / foldOperation, so the state a
// block commits to and the state its replay produces agree bit for bit
//
// neither path ever leaves a partial write: all validation and folding
// happens before the single write back
package ledger
