// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tally Project Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package proof - proof-of-work sealing
//
// searches for a nonce that brings the block identity digest under the
// difficulty target, turning an unsealed block into a sealed one
package proof
