// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tally Project Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockdigest - the block identity digest
//
// a SHA3-256 hash over the packed block bytes, used both as the block
// identifier for parent linkage and as the proof-of-work target value
package blockdigest
