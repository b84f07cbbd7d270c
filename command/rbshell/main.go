// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/redblack/bst"
	"github.com/bitmark-inc/redblack/fault"
	"github.com/bitmark-inc/redblack/rbtree"
	"github.com/bitmark-inc/redblack/shell"
	"github.com/bitmark-inc/redblack/version"
)

const (
	logFile  = "rbshell.log"
	logCount = 10
	logSize  = 1024 * 1024
)

type metadata struct {
	verbose    bool
	check      bool
	unbalanced bool
	preload    int
	logDir     string
	prompt     string
}

func main() {

	m := metadata{}

	app := cli.NewApp()
	app.Name = "rbshell"
	app.Usage = "interactive red-black tree"
	app.Version = version.Version

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:        "verbose, v",
			Usage:       " log at debug level",
			Destination: &m.verbose,
		},
		cli.IntFlag{
			Name:        "preload, p",
			Value:       0,
			Usage:       " insert keys 1 to `N` before reading commands",
			Destination: &m.preload,
		},
		cli.BoolFlag{
			Name:        "check, C",
			Usage:       " verify the tree after every change",
			Destination: &m.check,
		},
		cli.BoolFlag{
			Name:        "unbalanced, u",
			Usage:       " use the unbalanced tree instead",
			Destination: &m.unbalanced,
		},
		cli.StringFlag{
			Name:        "log-dir",
			Value:       os.TempDir(),
			Usage:       " write the log file to `DIR`",
			Destination: &m.logDir,
		},
		cli.StringFlag{
			Name:        "prompt",
			Value:       "> ",
			Usage:       " command `PROMPT`, empty for none",
			Destination: &m.prompt,
		},
	}

	app.Action = func(c *cli.Context) error {
		return runShell(c, m)
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func runShell(c *cli.Context, m metadata) error {
	if m.preload < 0 {
		return fault.ErrInvalidCount
	}

	level := "info"
	if m.verbose {
		level = "debug"
	}
	logging := logger.Configuration{
		Directory: m.logDir,
		File:      logFile,
		Size:      logSize,
		Count:     logCount,
		Console:   false, // keep the terminal for the shell
		Levels: map[string]string{
			logger.DefaultTag: level,
		},
	}
	if err := logger.Initialise(logging); nil != err {
		return err
	}
	defer logger.Finalise()

	log := logger.New("shell")
	log.Infof("version: %s", version.Version)

	var tree shell.Tree
	if m.unbalanced {
		tree = bst.NewOrdered[int]()
	} else {
		tree = rbtree.NewOrdered[int]()
	}

	for key := 1; key <= m.preload; key += 1 {
		tree.Insert(key)
	}
	log.Infof("preloaded: %d keys", tree.Count())

	if m.check {
		tree = &checked{Tree: tree, log: log, w: c.App.ErrWriter}
	}

	s := shell.New(log, tree, c.App.Writer, m.prompt)
	err := s.Run(os.Stdin)

	ops := s.Statistics()
	log.Infof("inserted: %d  removed: %d  found: %d  missed: %d  errors: %d",
		ops.Inserted.Uint64(), ops.Removed.Uint64(), ops.Found.Uint64(), ops.Missed.Uint64(), s.Errors())
	return err
}
