// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tally Project Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/tallyproject/tallyd/background"
	"github.com/tallyproject/tallyd/blockheader"
	"github.com/tallyproject/tallyd/configuration"
	"github.com/tallyproject/tallyd/difficulty"
	"github.com/tallyproject/tallyd/fault"
	"github.com/tallyproject/tallyd/genesis"
	"github.com/tallyproject/tallyd/ledger"
	"github.com/tallyproject/tallyd/producer"
	"github.com/tallyproject/tallyd/storage"
	"github.com/tallyproject/tallyd/util"
)

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "tallyd"
	app.Usage = "tally chain daemon"
	app.Version = version

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config-file, c",
			Value: "",
			Usage: "*configuration `FILE`",
		},
		cli.BoolFlag{
			Name:  "quiet, q",
			Usage: " suppress console messages",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:      "dump-block",
			Usage:     "dump block(s) as JSON structures to stdout",
			ArgsUsage: "START [END]",
			Action:    runDumpBlock,
		},
	}

	app.Action = runNode

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: error: %s", app.Name, err)
	}
}

func runNode(c *cli.Context) error {

	quiet := c.Bool("quiet")

	configurationFile := c.String("config-file")
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

	// start logging
	err = logger.Initialise(theConfiguration.Logging)
	if nil != err {
		return fmt.Errorf("logger setup failed with error: %s", err)
	}
	defer logger.Finalise()

	// set up the fallback channel for critical failures
	err = fault.Initialise()
	if nil != err {
		return fmt.Errorf("fault initialise error: %s", err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				return fmt.Errorf("another instance is already running")
			}
			return fmt.Errorf("PID file: %q creation failed, error: %s", theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// set the sealing difficulty before anything can seal or verify
	err = difficulty.Current.Set(theConfiguration.Sealing.Difficulty)
	if nil != err {
		fault.Criticalf("difficulty error: %s", err)
		return fmt.Errorf("difficulty error: %s", err)
	}
	log.Infof("difficulty: %s", difficulty.Current)

	// start the data storage
	log.Info("initialise storage")
	err = storage.Initialise(theConfiguration.Database.Name)
	if nil != err {
		fault.Criticalf("storage initialise error: %s", err)
		return fmt.Errorf("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	// the chain root is checked on every start
	executor := ledger.NewExecutor(difficulty.Current)
	err = executor.ValidateRoot(genesis.Block)
	if nil != err {
		fault.Criticalf("genesis validation error: %s", err)
		return fmt.Errorf("genesis validation error: %s", err)
	}

	// tip tracking
	log.Info("initialise blockheader")
	err = blockheader.Initialise(storage.Pool.Tip)
	if nil != err {
		fault.Criticalf("blockheader initialise error: %s", err)
		return fmt.Errorf("blockheader initialise error: %s", err)
	}
	defer blockheader.Finalise()

	// the tip record must point at a block we actually hold
	err = blockheader.VerifyTip(storage.Pool.Blocks)
	if nil != err {
		fault.Criticalf("tip verification error: %s", err)
		return fmt.Errorf("tip verification error: %s", err)
	}

	log.Infof("database: %q", theConfiguration.Database.Name)
	log.Infof("block height: %d", blockheader.Height())

	// start the block producer
	p := producer.New(
		storage.Pool.State,
		storage.Pool.Blocks,
		difficulty.Current,
		theConfiguration.Sealing.Increment,
		time.Duration(theConfiguration.Sealing.BlockPause)*time.Millisecond,
	)
	processes := background.Start(background.Processes{p}, nil)
	defer processes.Stop()

	// wait for CTRL-C before shutting down to allow manual testing
	if !quiet {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if !quiet {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
	return nil
}
