// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tally Project Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package difficulty - the proof-of-work target
//
// difficulty is the number of leading zero bytes required in the block
// identity digest; the sealer and the executor must share one value or
// sealed blocks would not validate
package difficulty

import (
	"fmt"
	"sync"

	"github.com/tallyproject/tallyd/blockdigest"
	"github.com/tallyproject/tallyd/fault"
)

// DefaultZeroBytes - the initial required count of leading zero bytes
const DefaultZeroBytes = 2

// Difficulty - type for difficulty
type Difficulty struct {
	sync.RWMutex

	zeroBytes int // required leading zero bytes of the digest
}

// Current - the difficulty in effect for this node
//
// inject this one value into both the sealer and the executor rather
// than duplicating the constant
var Current = &Difficulty{
	zeroBytes: DefaultZeroBytes,
}

// New - create a difficulty with the default value
func New() *Difficulty {
	return &Difficulty{
		zeroBytes: DefaultZeroBytes,
	}
}

// Set - change the required number of leading zero bytes
func (difficulty *Difficulty) Set(zeroBytes int) error {
	if zeroBytes < 0 || zeroBytes > blockdigest.Length {
		return fault.ErrInvalidDifficulty
	}
	difficulty.Lock()
	difficulty.zeroBytes = zeroBytes
	difficulty.Unlock()
	return nil
}

// ZeroBytes - the required number of leading zero bytes
func (difficulty *Difficulty) ZeroBytes() int {
	difficulty.RLock()
	defer difficulty.RUnlock()
	return difficulty.zeroBytes
}

// MeetsTarget - check a digest against the target
//
// true only if the first ZeroBytes bytes of the digest are all zero
func (difficulty *Difficulty) MeetsTarget(digest blockdigest.Digest) bool {
	difficulty.RLock()
	n := difficulty.zeroBytes
	difficulty.RUnlock()

	for i := 0; i < n; i += 1 {
		if 0 != digest[i] {
			return false
		}
	}
	return true
}

// String - difficulty for use by the fmt package (for %s)
func (difficulty *Difficulty) String() string {
	difficulty.RLock()
	defer difficulty.RUnlock()
	return fmt.Sprintf("%d zero bytes", difficulty.zeroBytes)
}
