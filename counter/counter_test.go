// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tally Project Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tallyproject/tallyd/counter"
	"github.com/tallyproject/tallyd/fault"
)

func TestAdd(t *testing.T) {
	c := counter.New(3).Add(counter.New(5))
	assert.Equal(t, counter.New(8), c, "3 + 5")
	assert.Equal(t, "8", c.String(), "decimal form")
}

func TestAddCarry(t *testing.T) {
	// low word overflow must carry into the high word
	c := counter.New(0xffffffffffffffff).Add(counter.New(1))
	assert.Equal(t, "18446744073709551616", c.String(), "2^64")

	c = c.Add(counter.New(0xffffffffffffffff))
	assert.Equal(t, "36893488147419103231", c.String(), "2^65 - 1")
}

func TestAddWraps(t *testing.T) {
	// maximum 128 bit value + 1 wraps to zero
	max, err := counter.CounterFromBytes([]byte{
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	})
	assert.Nil(t, err, "unpack maximum")

	c := max.Add(counter.New(1))
	assert.True(t, c.IsZero(), "wrap to zero")
}

func TestPack(t *testing.T) {
	c := counter.New(0x0123456789abcdef)
	expected := []byte{
		0xef, 0xcd, 0xab, 0x89, 0x67, 0x45, 0x23, 0x01,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}
	assert.Equal(t, expected, c.Pack(), "little endian layout")
}

func TestRoundTrip(t *testing.T) {
	for _, value := range []uint64{0, 1, 8, 0xff, 0x100, 0xffffffffffffffff} {
		c := counter.New(value)
		back, err := counter.CounterFromBytes(c.Pack())
		assert.Nil(t, err, "unpack")
		assert.Equal(t, c, back, "round trip")
	}
}

func TestFromBytesBadLength(t *testing.T) {
	_, err := counter.CounterFromBytes([]byte{1, 2, 3})
	assert.Equal(t, fault.ErrStateCorruption, err, "short record")

	_, err = counter.CounterFromBytes(make([]byte, 17))
	assert.Equal(t, fault.ErrStateCorruption, err, "long record")

	_, err = counter.CounterFromBytes(nil)
	assert.Equal(t, fault.ErrStateCorruption, err, "nil record")
}

func TestText(t *testing.T) {
	c := counter.New(0xffffffffffffffff).Add(counter.New(5))

	text, err := c.MarshalText()
	assert.Nil(t, err, "marshal")
	assert.Equal(t, "18446744073709551620", string(text), "decimal text")

	var back counter.Counter
	err = back.UnmarshalText(text)
	assert.Nil(t, err, "unmarshal")
	assert.Equal(t, c, back, "text round trip")

	err = back.UnmarshalText([]byte("-5"))
	assert.Equal(t, fault.ErrInvalidCharacter, err, "negative rejected")

	err = back.UnmarshalText([]byte("not a number"))
	assert.Equal(t, fault.ErrInvalidCharacter, err, "garbage rejected")
}
