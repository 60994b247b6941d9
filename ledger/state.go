// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tally Project Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/tallyproject/tallyd/blockrecord"
	"github.com/tallyproject/tallyd/counter"
	"github.com/tallyproject/tallyd/fault"
	"github.com/tallyproject/tallyd/storage"
)

// StateKey - the fixed key of the tally in the state store
//
// private to this runtime: no other subsystem may use this key
var StateKey = []byte("counter")

// read the current tally
//
// an absent record is a tally of zero; a record that does not decode
// is fatal and never silently coerced
func readTally(store storage.Handle) (counter.Counter, error) {
	buffer, err := store.Get(StateKey)
	if nil != err {
		return counter.Counter{}, fault.Backend(err)
	}
	if nil == buffer {
		return counter.Counter{}, nil
	}
	value, err := counter.CounterFromBytes(buffer)
	if nil != err {
		return counter.Counter{}, fault.ErrStateCorruption
	}
	return value, nil
}

// write the tally back under the state key
func writeTally(store storage.Handle, value counter.Counter) error {
	return fault.Backend(store.Put(StateKey, value.Pack()))
}

// apply a single operation to the tally
//
// addition is wrapping, see counter.Add
func foldOperation(tally counter.Counter, operation blockrecord.Operation) (counter.Counter, error) {
	switch op := operation.(type) {
	case *blockrecord.Add:
		return tally.Add(op.Amount), nil
	default:
		return tally, fault.ErrInvalidOperationTag
	}
}
