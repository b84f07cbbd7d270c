// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/redblack/compare"
	"github.com/bitmark-inc/redblack/fault"
	"github.com/bitmark-inc/redblack/version"
)

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "ascending", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'a'},
		{Long: "random", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'r'},
		{Long: "seed", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		fmt.Printf("%s: version: %s\n", program, version.Version)
		return
	}

	if len(options["help"]) > 0 || len(arguments) > 0 {
		usage(program)
		return
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	configurationFile := ""
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
	}
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// command line overrides the file
	if err := applyOverrides(theConfiguration, options); nil != err {
		exitwithstatus.Message("%s: %s", program, err)
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version.Version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	results, err := run(theConfiguration)

	if len(results) > 0 {
		if e := compare.Report(os.Stdout, results); nil != e {
			log.Errorf("report error: %s", e)
		}
	}

	if nil != err {
		fault.Criticalf("comparison error: %s", err)
		exitwithstatus.Message("%s: comparison error: %s", program, err)
	}
}

// copy numeric command line options over the configuration
func applyOverrides(theConfiguration *Configuration, options map[string][]string) error {
	counts := []struct {
		name  string
		value *int
	}{
		{"ascending", &theConfiguration.Ascending},
		{"random", &theConfiguration.Random},
	}
	for _, c := range counts {
		if 0 == len(options[c.name]) {
			continue
		}
		n, err := strconv.Atoi(options[c.name][0])
		if nil != err || n < 0 {
			return fmt.Errorf("%s: %q  error: %w", c.name, options[c.name][0], fault.ErrInvalidCount)
		}
		*c.value = n
	}

	if len(options["seed"]) > 0 {
		n, err := strconv.ParseInt(options["seed"][0], 10, 64)
		if nil != err || n < 0 {
			return fmt.Errorf("seed: %q  error: %w", options["seed"][0], fault.ErrInvalidCount)
		}
		theConfiguration.Seed = n
	}

	if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Console = true
	}
	return nil
}

// run the timing harness, turning a tree corruption panic into an
// error so the deferred finalisers still run
func run(theConfiguration *Configuration) (results []compare.Result, err error) {
	defer func() {
		if r := recover(); nil != r {
			err = fault.Recovered(r)
			if nil == err {
				panic(r)
			}
		}
	}()

	options := compare.Options{
		Ascending: theConfiguration.Ascending,
		Random:    theConfiguration.Random,
		Seed:      uint64(theConfiguration.Seed),
		Verify:    theConfiguration.Verify,
	}
	return compare.Run(logger.New("compare"), theConfiguration.Sets, options)
}

func usage(program string) {
	fmt.Printf("usage: %s [options]\n", program)
	fmt.Printf("       --help                -h            this message\n")
	fmt.Printf("       --verbose             -v            log to the console as well\n")
	fmt.Printf("       --version             -V            display version\n")
	fmt.Printf("       --config-file=FILE    -c FILE       Lua configuration file\n")
	fmt.Printf("       --ascending=N         -a N          number of ascending keys\n")
	fmt.Printf("       --random=N            -r N          number of random keys\n")
	fmt.Printf("       --seed=N              -s N          random key seed, 0 = time based\n")
}
