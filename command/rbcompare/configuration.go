// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/redblack/configuration"
	"github.com/bitmark-inc/redblack/fault"
	"github.com/bitmark-inc/redblack/set"
)

// basic defaults (directories are relative to the configuration file)
const (
	defaultAscending = 5000
	defaultRandom    = 100000
	defaultSeed      = 0 // time based

	defaultLogDirectory = "log"
	defaultLogFile      = "rbcompare.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// Configuration - contents of the Lua configuration file
type Configuration struct {
	Ascending int                  `gluamapper:"ascending" json:"ascending"`
	Random    int                  `gluamapper:"random" json:"random"`
	Seed      int64                `gluamapper:"seed" json:"seed"`
	Sets      []string             `gluamapper:"sets" json:"sets"`
	Verify    bool                 `gluamapper:"verify" json:"verify"`
	Logging   logger.Configuration `gluamapper:"logging" json:"logging"`
}

func defaultConfiguration() *Configuration {
	return &Configuration{
		Ascending: defaultAscending,
		Random:    defaultRandom,
		Seed:      defaultSeed,
		Sets:      nil, // all kinds
		Verify:    true,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "info",
			},
		},
	}
}

// will read decode and verify the configuration
// a blank file name gives the defaults relative to the current directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	options := defaultConfiguration()
	baseDirectory := "."

	if "" != configurationFileName {
		fileName, err := filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}
		baseDirectory = filepath.Dir(fileName)

		if err := configuration.ParseConfigurationFile(fileName, options); nil != err {
			return nil, err
		}
	}

	if 0 == len(options.Sets) {
		options.Sets = set.Kinds()
	}

	if options.Ascending < 0 || options.Random < 0 || options.Seed < 0 {
		return nil, fault.ErrInvalidCount
	}

	for _, kind := range options.Sets {
		if _, err := set.Make(kind); nil != err {
			return nil, fmt.Errorf("set: %q  error: %w", kind, err)
		}
	}

	// log file must be a plain name inside the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("file: %q is not plain name", options.Logging.File)
	}

	if !filepath.IsAbs(options.Logging.Directory) {
		options.Logging.Directory = filepath.Join(baseDirectory, options.Logging.Directory)
	}
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	return options, nil
}
