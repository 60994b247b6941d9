// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tally Project Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package producer - background block production
//
// on a fixed cadence: build a block on the current tip, apply the
// configured increment, seal it and persist it; the sealing search
// shares the shutdown channel so a stop request interrupts even a
// long nonce search
package producer

import (
	"encoding/binary"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/tallyproject/tallyd/blockheader"
	"github.com/tallyproject/tallyd/blockrecord"
	"github.com/tallyproject/tallyd/counter"
	"github.com/tallyproject/tallyd/difficulty"
	"github.com/tallyproject/tallyd/fault"
	"github.com/tallyproject/tallyd/ledger"
	"github.com/tallyproject/tallyd/proof"
	"github.com/tallyproject/tallyd/storage"
)

// Producer - the block production process
type Producer struct {
	log        *logger.L
	builder    *ledger.Builder
	state      storage.Handle
	blocks     storage.Handle
	difficulty *difficulty.Difficulty
	increment  counter.Counter
	pause      time.Duration
}

// New - create a block producer
//
// state and blocks are the tally store and the packed block store;
// increment is added to the tally once per produced block
func New(state storage.Handle, blocks storage.Handle, d *difficulty.Difficulty, increment uint64, pause time.Duration) *Producer {
	return &Producer{
		log:        logger.New("producer"),
		builder:    ledger.NewBuilder(),
		state:      state,
		blocks:     blocks,
		difficulty: d,
		increment:  counter.New(increment),
		pause:      pause,
	}
}

// Run - produce blocks until shutdown
//
// satisfies the background.Process interface
func (producer *Producer) Run(args interface{}, shutdown <-chan struct{}) {

	log := producer.log
	log.Info("starting…")

	timer := time.NewTimer(producer.pause)
	defer timer.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-timer.C:
		}

		err := producer.produceBlock(shutdown)
		if nil != err {
			if fault.ErrSealCancelled == err {
				break loop
			}
			// a failed block leaves the chain unchanged, retry on
			// the next tick
			log.Errorf("produce block error: %s", err)
		}

		timer.Reset(producer.pause)
	}

	log.Info("finished")
}

// build, seal and persist one block on the current tip
func (producer *Producer) produceBlock(shutdown <-chan struct{}) error {

	log := producer.log

	parentDigest, number := blockheader.GetNew()

	unsealed := producer.builder.BeginDigest(parentDigest)

	err := producer.builder.Apply(unsealed, &blockrecord.Add{Amount: producer.increment}, producer.state)
	if nil != err {
		return err
	}

	err = producer.builder.Finalise(unsealed, producer.state)
	if nil != err {
		return err
	}

	block, err := proof.Seal(unsealed, producer.difficulty, shutdown)
	if nil != err {
		return err
	}

	packed := block.Pack()
	digest := packed.Digest()

	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, number)

	err = fault.Backend(producer.blocks.Put(key, packed))
	if nil != err {
		return err
	}

	err = blockheader.Set(number, digest)
	if nil != err {
		return err
	}

	log.Infof("sealed block: %d  nonce: %d  digest: %v", number, block.Nonce, digest)
	return nil
}
