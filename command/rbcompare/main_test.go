// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/redblack/fault"
	"github.com/bitmark-inc/redblack/set"
)

const (
	dir = "testing"
)

func TestMain(m *testing.M) {
	_ = os.RemoveAll(dir)
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	rc := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(dir)
	os.Exit(rc)
}

func TestRun(t *testing.T) {
	c := defaultConfiguration()
	c.Ascending = 40
	c.Random = 60
	c.Seed = 3
	c.Sets = []string{set.RedBlack, set.BST}

	results, err := run(c)
	require.NoError(t, err, "run")
	require.Len(t, results, 2, "one result per set")
	for _, r := range results {
		assert.True(t, r.Valid(), "%s: valid", r.Kind)
	}
}

func TestRunErrors(t *testing.T) {
	c := defaultConfiguration()
	c.Ascending = -1
	c.Sets = []string{set.RedBlack}

	results, err := run(c)
	assert.Equal(t, fault.ErrInvalidCount, err, "negative count")
	assert.Empty(t, results, "no results")

	c = defaultConfiguration()
	c.Ascending = 1
	c.Random = 1
	c.Sets = []string{"skiplist"}

	_, err = run(c)
	assert.Equal(t, fault.ErrUnknownSetKind, err, "unknown set")
}
