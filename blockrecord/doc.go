// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tally Project Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockrecord - block structures and their wire form
//
// the packed form is the exact byte sequence hashed for the block
// identity digest, so packing must be deterministic:
//
//	parent flag    1 byte: 00 = absent (chain root), 01 = present
//	parent digest  32 bytes, only when present
//	operations     Varint64 count then packed operations in order
//	nonce          8 bytes little endian, always last
//
// the nonce is last so the sealer can patch it in place; the patched
// buffer is byte-identical to repacking the whole block
package blockrecord
