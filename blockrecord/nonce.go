// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tally Project Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/tallyproject/tallyd/fault"
)

// NonceType - type for nonce
type NonceType uint64

// MarshalJSON - convert a nonce to little endian hex for JSON
func (nonce NonceType) MarshalJSON() ([]byte, error) {

	bits := make([]byte, NonceSize)
	binary.LittleEndian.PutUint64(bits, uint64(nonce))

	size := 2 + hex.EncodedLen(len(bits))
	buffer := make([]byte, size)
	buffer[0] = '"'
	buffer[size-1] = '"'
	hex.Encode(buffer[1:], bits)
	return buffer, nil
}

// UnmarshalJSON - convert a nonce little endian hex string to nonce value
func (nonce *NonceType) UnmarshalJSON(s []byte) error {
	// length = '"' + characters + '"'
	last := len(s) - 1
	if len(s) < 2 || '"' != s[0] || '"' != s[last] {
		return fault.ErrInvalidCharacter
	}

	b := s[1:last]

	buffer := make([]byte, hex.DecodedLen(len(b)))
	byteCount, err := hex.Decode(buffer, b)
	if nil != err {
		return err
	}
	if NonceSize != byteCount {
		return fault.ErrInvalidNonceLength
	}
	*nonce = NonceType(binary.LittleEndian.Uint64(buffer))
	return nil
}
