// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tally Project Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockheader_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/tallyproject/tallyd/blockheader"
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
