// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/redblack/fault"
	"github.com/bitmark-inc/redblack/set"
)

const testConfiguration = `
local M = {}
M.ascending = 300
M.random = 700
M.seed = 42
M.sets = { "redblack", "llrb" }
M.verify = false
M.logging = {
    directory = "logs",
    file = "test.log",
    size = 4096,
    count = 2,
    console = false,
    levels = { DEFAULT = "debug" },
}
return M
`

func writeConfiguration(t *testing.T, content string) string {
	fileName := filepath.Join(t.TempDir(), "rbcompare.conf")
	require.NoError(t, os.WriteFile(fileName, []byte(content), 0600), "write configuration")
	return fileName
}

func TestGetConfiguration(t *testing.T) {
	fileName := writeConfiguration(t, testConfiguration)

	c, err := getConfiguration(fileName)
	require.NoError(t, err, "get configuration")

	assert.Equal(t, 300, c.Ascending, "ascending")
	assert.Equal(t, 700, c.Random, "random")
	assert.Equal(t, int64(42), c.Seed, "seed")
	assert.Equal(t, []string{set.RedBlack, set.LLRB}, c.Sets, "sets")
	assert.False(t, c.Verify, "verify")

	logDirectory := filepath.Join(filepath.Dir(fileName), "logs")
	assert.Equal(t, logDirectory, c.Logging.Directory, "log directory")
	assert.Equal(t, "test.log", c.Logging.File, "log file")
	assert.Equal(t, 4096, c.Logging.Size, "log size")
	assert.Equal(t, 2, c.Logging.Count, "log count")
	assert.Equal(t, "debug", c.Logging.Levels["DEFAULT"], "log level")

	info, err := os.Stat(logDirectory)
	require.NoError(t, err, "log directory created")
	assert.True(t, info.IsDir(), "log directory is a directory")
}

func TestGetConfigurationDefaults(t *testing.T) {
	fileName := writeConfiguration(t, "return {}")

	c, err := getConfiguration(fileName)
	require.NoError(t, err, "get configuration")

	assert.Equal(t, defaultAscending, c.Ascending, "ascending")
	assert.Equal(t, defaultRandom, c.Random, "random")
	assert.Equal(t, int64(defaultSeed), c.Seed, "seed")
	assert.Equal(t, set.Kinds(), c.Sets, "sets")
	assert.True(t, c.Verify, "verify")
	assert.Equal(t, defaultLogFile, c.Logging.File, "log file")
	assert.Equal(t, filepath.Join(filepath.Dir(fileName), defaultLogDirectory), c.Logging.Directory, "log directory")
}

func TestGetConfigurationErrors(t *testing.T) {
	_, err := getConfiguration(filepath.Join(t.TempDir(), "absent.conf"))
	assert.Equal(t, fault.ErrNotFoundConfigFile, err, "missing file")

	_, err = getConfiguration(writeConfiguration(t, "return { random = -1 }"))
	assert.Equal(t, fault.ErrInvalidCount, err, "negative count")

	_, err = getConfiguration(writeConfiguration(t, `return { sets = { "redblack", "skiplist" } }`))
	assert.True(t, errors.Is(err, fault.ErrUnknownSetKind), "unknown set")

	_, err = getConfiguration(writeConfiguration(t, `return { logging = { file = "sub/x.log" } }`))
	assert.Error(t, err, "log file with a path")
}

func TestApplyOverrides(t *testing.T) {
	c := defaultConfiguration()
	options := map[string][]string{
		"ascending": {"10"},
		"random":    {"20"},
		"seed":      {"30"},
		"verbose":   {""},
	}
	require.NoError(t, applyOverrides(c, options), "overrides")
	assert.Equal(t, 10, c.Ascending, "ascending")
	assert.Equal(t, 20, c.Random, "random")
	assert.Equal(t, int64(30), c.Seed, "seed")
	assert.True(t, c.Logging.Console, "verbose")

	for _, bad := range []map[string][]string{
		{"ascending": {"ten"}},
		{"random": {"-5"}},
		{"seed": {"-1"}},
	} {
		err := applyOverrides(defaultConfiguration(), bad)
		assert.True(t, errors.Is(err, fault.ErrInvalidCount), "bad override: %v", bad)
	}
}
