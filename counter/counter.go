// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tally Project Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - the single piece of application state
//
// a 128 bit unsigned tally persisted as a fixed 16 byte little endian
// record under the state key
package counter

import (
	"encoding/binary"
	"math/big"
	"math/bits"

	"github.com/tallyproject/tallyd/fault"
)

// Length - number of bytes in the packed counter
const Length = 16

// Counter - a 128 bit unsigned tally
//
// the zero value is a counter of zero and is ready for use
type Counter struct {
	low  uint64
	high uint64
}

// New - create a counter from a 64 bit value
func New(value uint64) Counter {
	return Counter{low: value}
}

// Add - sum of two counters
//
// addition is modulo 2^128: overflow wraps silently and identically on
// all platforms, both the builder and the executor rely on this
func (c Counter) Add(amount Counter) Counter {
	low, carry := bits.Add64(c.low, amount.low, 0)
	high, _ := bits.Add64(c.high, amount.high, carry)
	return Counter{low: low, high: high}
}

// IsZero - check if zero
func (c Counter) IsZero() bool {
	return 0 == c.low && 0 == c.high
}

// Pack - counter as fixed length little endian bytes
func (c Counter) Pack() []byte {
	buffer := make([]byte, Length)
	binary.LittleEndian.PutUint64(buffer[:8], c.low)
	binary.LittleEndian.PutUint64(buffer[8:], c.high)
	return buffer
}

// CounterFromBytes - decode a little endian record into a counter
//
// only an exactly Length byte record is acceptable
func CounterFromBytes(buffer []byte) (Counter, error) {
	if Length != len(buffer) {
		return Counter{}, fault.ErrStateCorruption
	}
	return Counter{
		low:  binary.LittleEndian.Uint64(buffer[:8]),
		high: binary.LittleEndian.Uint64(buffer[8:]),
	}, nil
}

// String - decimal representation for use by the fmt package (for %s)
func (c Counter) String() string {
	b := new(big.Int).SetUint64(c.high)
	b.Lsh(b, 64)
	b.Or(b, new(big.Int).SetUint64(c.low))
	return b.String()
}

// MarshalText - decimal text for JSON encoding
func (c Counter) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText - decimal text into a counter
func (c *Counter) UnmarshalText(s []byte) error {
	b, ok := new(big.Int).SetString(string(s), 10)
	if !ok || b.Sign() < 0 || b.BitLen() > 128 {
		return fault.ErrInvalidCharacter
	}
	c.low = b.Uint64()
	c.high = new(big.Int).Rsh(b, 64).Uint64()
	return nil
}
