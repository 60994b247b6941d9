// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tally Project Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"io"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/tallyproject/tallyd/fault"
)

// single test for the whole channel lifecycle, the channel is a
// package global and can only be set up once per process
func TestPanicChannel(t *testing.T) {
	os.RemoveAll("test.log")
	defer os.RemoveAll("test.log")

	logger.Initialise(logger.Configuration{
		Directory: ".",
		File:      "test.log",
		Size:      50000,
		Count:     10,
	})
	defer logger.Finalise()

	err := fault.Initialise()
	assert.NoError(t, err, "initialise")
	defer fault.Finalise()

	err = fault.Initialise()
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "double initialise")

	// logs to the channel, must not panic
	assert.NotPanics(t, func() {
		fault.Criticalf("critical condition: %d", 1)
	}, "criticalf panicked")

	assert.NotPanics(t, func() {
		fault.PanicIfError("no failure", nil)
	}, "nil error panicked")

	assert.Panics(t, func() {
		fault.Panic("fatal condition")
	}, "panic did not panic")

	assert.Panics(t, func() {
		fault.PanicWithError("operation", io.ErrUnexpectedEOF)
	}, "panic with error did not panic")

	assert.Panics(t, func() {
		fault.PanicIfError("operation", io.ErrUnexpectedEOF)
	}, "panic if error did not panic")
}
