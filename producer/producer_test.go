// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tally Project Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package producer_test

import (
	"encoding/binary"
	"os"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/tallyproject/tallyd/background"
	"github.com/tallyproject/tallyd/blockheader"
	"github.com/tallyproject/tallyd/blockrecord"
	"github.com/tallyproject/tallyd/counter"
	"github.com/tallyproject/tallyd/difficulty"
	"github.com/tallyproject/tallyd/genesis"
	"github.com/tallyproject/tallyd/ledger"
	"github.com/tallyproject/tallyd/producer"
	"github.com/tallyproject/tallyd/storage"
)

// remove all files created by test
func removeFiles() {
	os.RemoveAll("test.log")
}

// configure for testing
func setup(t *testing.T) storage.Handle {
	removeFiles()

	logger.Initialise(logger.Configuration{
		Directory: ".",
		File:      "test.log",
		Size:      50000,
		Count:     10,
	})

	store := storage.NewMemoryHandle()
	err := blockheader.Initialise(store)
	if nil != err {
		t.Fatalf("initialise error: %s", err)
	}
	return store
}

// post test cleanup
func teardown(t *testing.T) {
	err := blockheader.Finalise()
	if nil != err {
		t.Fatalf("finalise error: %s", err)
	}
	logger.Finalise()
	removeFiles()
}

func TestProducesBlocks(t *testing.T) {
	setup(t)
	defer teardown(t)

	state := storage.NewMemoryHandle()
	blocks := storage.NewMemoryHandle()

	d := difficulty.New()
	err := d.Set(0) // seal instantly
	assert.NoError(t, err, "set difficulty")

	p := producer.New(state, blocks, d, 5, 10*time.Millisecond)

	processes := background.Start(background.Processes{p}, nil)
	time.Sleep(100 * time.Millisecond)
	processes.Stop()

	height, tip := blockheader.Get()
	assert.True(t, height > genesis.BlockNumber, "no blocks produced")

	// every produced block advanced the tally by the increment
	value, err := state.Get(ledger.StateKey)
	assert.NoError(t, err, "get tally")
	assert.NotNil(t, value, "tally never written")
	tally, err := counter.CounterFromBytes(value)
	assert.NoError(t, err, "tally corrupt")
	produced := height - genesis.BlockNumber
	assert.Equal(t, counter.New(5*produced), tally, "tally does not match block count")

	// the stored tip block hashes to the tip digest and replays
	// cleanly on a fresh store
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, height)
	packedTip, err := blocks.Get(key)
	assert.NoError(t, err, "get tip block")
	assert.NotNil(t, packedTip, "tip block missing")

	block, err := blockrecord.PackedBlock(packedTip).Unpack()
	assert.NoError(t, err, "unpack tip block")
	assert.Equal(t, tip, block.Digest(), "tip digest mismatch")

	executor := ledger.NewExecutor(d)
	fresh := storage.NewMemoryHandle()
	err = executor.Execute(block, fresh)
	assert.NoError(t, err, "replay tip block")
}

func TestStopDuringSeal(t *testing.T) {
	setup(t)
	defer teardown(t)

	state := storage.NewMemoryHandle()
	blocks := storage.NewMemoryHandle()

	d := difficulty.New()
	err := d.Set(32) // unattainable, the sealer can never finish
	assert.NoError(t, err, "set difficulty")

	p := producer.New(state, blocks, d, 1, time.Millisecond)

	processes := background.Start(background.Processes{p}, nil)
	time.Sleep(20 * time.Millisecond)

	done := make(chan struct{})
	go func() {
		processes.Stop()
		close(done)
	}()

	select {
	case <-done:
		// stop interrupted the nonce search
	case <-time.After(5 * time.Second):
		t.Fatal("producer did not stop during sealing")
	}
}
