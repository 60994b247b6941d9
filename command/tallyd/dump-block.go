// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tally Project Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli"

	"github.com/tallyproject/tallyd/blockdigest"
	"github.com/tallyproject/tallyd/blockrecord"
	"github.com/tallyproject/tallyd/configuration"
	"github.com/tallyproject/tallyd/fault"
	"github.com/tallyproject/tallyd/genesis"
	"github.com/tallyproject/tallyd/storage"
	"github.com/tallyproject/tallyd/util"
)

type operationItem struct {
	Index int         `json:"index"`
	Type  string      `json:"type"`
	Data  interface{} `json:"data"`
}

type blockResult struct {
	Number     uint64                `json:"number"`
	Digest     blockdigest.Digest    `json:"digest"`
	Parent     *blockdigest.Digest   `json:"parent"`
	Nonce      blockrecord.NonceType `json:"nonce"`
	Operations []operationItem       `json:"operations"`
}

// runDumpBlock - display stored blocks as JSON on stdout
//
// opens the database directly, so the daemon must not be running
func runDumpBlock(c *cli.Context) error {

	configurationFile := c.GlobalString("config-file")
	if "" == configurationFile {
		return fmt.Errorf("missing configuration file argument")
	}
	if !util.EnsureFileExists(configurationFile) {
		return fmt.Errorf("missing configuration file: %q", configurationFile)
	}

	theConfiguration, err := configuration.GetConfiguration(configurationFile)
	if nil != err {
		return fmt.Errorf("failed to read configuration from: %q  error: %s", configurationFile, err)
	}

	if 0 == len(c.Args()) {
		return fmt.Errorf("missing block number argument")
	}

	number, err := strconv.ParseUint(c.Args().Get(0), 10, 64)
	if nil != err {
		return fmt.Errorf("error in block number: %s", err)
	}
	if number < genesis.BlockNumber {
		return fmt.Errorf("error: invalid block number: %d", number)
	}

	// optional end of range
	numberEnd := number
	if len(c.Args()) > 1 {
		numberEnd, err = strconv.ParseUint(c.Args().Get(1), 10, 64)
		if nil != err {
			return fmt.Errorf("error in ending block number: %s", err)
		}
		if numberEnd < number {
			return fmt.Errorf("error: invalid ending block number: %d", numberEnd)
		}
	}

	err = storage.Initialise(theConfiguration.Database.Name)
	if nil != err {
		return fmt.Errorf("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	fmt.Fprintf(os.Stdout, "[\n")
	for ; number <= numberEnd; number += 1 {
		result, err := dumpBlock(number)
		if nil != err {
			return fmt.Errorf("dump block error: %s", err)
		}
		s, err := json.MarshalIndent(result, "  ", "  ")
		if nil != err {
			return fmt.Errorf("dump block JSON error: %s", err)
		}
		fmt.Fprintf(os.Stdout, "  %s,\n", s)
	}
	fmt.Fprintf(os.Stdout, "{}]\n")

	return nil
}

// dump of a particular block
func dumpBlock(number uint64) (*blockResult, error) {

	// the chain root is fiat, not stored
	if genesis.BlockNumber == number {
		return makeBlockResult(number, genesis.Digest(), genesis.Block), nil
	}

	// fetch block and compute digest
	n := make([]byte, 8)
	binary.BigEndian.PutUint64(n, number)

	packed, err := storage.Pool.Blocks.Get(n)
	if nil != err {
		return nil, fault.Backend(err)
	}
	if nil == packed {
		return nil, fault.ErrBlockNotFound
	}

	block, err := blockrecord.PackedBlock(packed).Unpack()
	if nil != err {
		return nil, err
	}

	return makeBlockResult(number, blockrecord.PackedBlock(packed).Digest(), block), nil
}

func makeBlockResult(number uint64, digest blockdigest.Digest, block *blockrecord.Block) *blockResult {

	operations := make([]operationItem, len(block.Operations))
	for i, operation := range block.Operations {
		name, _ := blockrecord.RecordName(operation)
		operations[i] = operationItem{
			Index: i + 1,
			Type:  name,
			Data:  operation,
		}
	}

	return &blockResult{
		Number:     number,
		Digest:     digest,
		Parent:     block.Parent,
		Nonce:      block.Nonce,
		Operations: operations,
	}
}
