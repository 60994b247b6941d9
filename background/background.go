// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tally Project Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - maintain a set of background processes
//
// each process runs in its own goroutine until its shutdown channel is
// closed; Stop closes all of them and waits for every process to return
package background

// T - handle for the running set
type T struct {
	count    int
	finished chan struct{}
	shutdown chan struct{}
}

// Process - interface for a single background process
//
// Run must return promptly after the shutdown channel is closed
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - the list of processes to start
type Processes []Process

// Start - start up the background processes
//
// the args value is passed unchanged to every process
func Start(processes Processes, args interface{}) *T {

	register := &T{
		count:    len(processes),
		finished: make(chan struct{}),
		shutdown: make(chan struct{}),
	}

	// start each background
	for _, process := range processes {
		go func(process Process) {
			// pass the shutdown to the Run loop
			// to allow shutdown signal
			process.Run(args, register.shutdown)
			register.finished <- struct{}{}
		}(process)
	}
	return register
}

// Stop - stop all background processes and wait for them to finish
func (t *T) Stop() {

	if nil == t {
		return
	}

	// trigger shutdown of all processes
	close(t.shutdown)

	// wait for the processes to finish
	for i := 0; i < t.count; i += 1 {
		<-t.finished
	}
}
