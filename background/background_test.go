// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tally Project Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tallyproject/tallyd/background"
)

type ticker struct {
	ticks int64
}

func (state *ticker) Run(args interface{}, shutdown <-chan struct{}) {
loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}
		atomic.AddInt64(&state.ticks, 1)
		time.Sleep(time.Millisecond)
	}
}

func TestStartStop(t *testing.T) {

	first := &ticker{}
	second := &ticker{}

	processes := background.Processes{
		first,
		second,
	}

	p := background.Start(processes, nil)
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	assert.True(t, atomic.LoadInt64(&first.ticks) > 0, "first process never ran")
	assert.True(t, atomic.LoadInt64(&second.ticks) > 0, "second process never ran")

	// after Stop returns no process is still ticking
	firstTicks := atomic.LoadInt64(&first.ticks)
	secondTicks := atomic.LoadInt64(&second.ticks)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, firstTicks, atomic.LoadInt64(&first.ticks), "first process still running")
	assert.Equal(t, secondTicks, atomic.LoadInt64(&second.ticks), "second process still running")
}

type argsCheck struct {
	received chan interface{}
}

func (state *argsCheck) Run(args interface{}, shutdown <-chan struct{}) {
	state.received <- args
	<-shutdown
}

func TestArgsPassed(t *testing.T) {

	check := &argsCheck{
		received: make(chan interface{}, 1),
	}

	p := background.Start(background.Processes{check}, "configuration")
	defer p.Stop()

	select {
	case args := <-check.received:
		assert.Equal(t, "configuration", args, "wrong args")
	case <-time.After(time.Second):
		t.Fatal("process never started")
	}
}

func TestStopNil(t *testing.T) {
	var p *background.T
	p.Stop() // must not panic
}
