// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package compare_test

import (
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/redblack/compare"
	"github.com/bitmark-inc/redblack/fault"
	"github.com/bitmark-inc/redblack/set"
)

const category = "compare-testing"

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "compare-test-")
	if nil != err {
		panic(fmt.Sprintf("temporary directory: %s", err))
	}

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
	if err := logger.Initialise(logging); nil != err {
		panic(fmt.Sprintf("logger initialization failed: %s", err))
	}

	rc := m.Run()
	logger.Finalise()
	_ = os.RemoveAll(dir)
	os.Exit(rc)
}

func TestRun(t *testing.T) {
	options := compare.Options{
		Ascending: 300,
		Random:    500,
		Seed:      12345,
		Verify:    true,
	}
	unique := map[int]struct{}{}
	for _, key := range compare.Keys(options.Random, options.Seed) {
		unique[key] = struct{}{}
	}

	results, err := compare.Run(logger.New(category), set.Kinds(), options)
	require.NoError(t, err, "run")
	require.Len(t, results, len(set.Kinds()), "one result per kind")

	for i, r := range results {
		assert.Equal(t, set.Kinds()[i], r.Kind, "kind order")
		assert.True(t, r.Valid(), "%s: valid", r.Kind)

		assert.Equal(t, compare.InsertAscending, r.Phases[0].Phase, "%s: first phase", r.Kind)
		assert.Equal(t, 301, r.Phases[compare.InsertAscending].Keys, "%s: ascending keys include both ends", r.Kind)
		assert.Equal(t, uint64(301), r.Phases[compare.InsertAscending].Changed, "%s: ascending inserts", r.Kind)
		assert.Equal(t, uint64(301), r.Phases[compare.RemoveAscending].Changed, "%s: ascending removes", r.Kind)
		assert.Equal(t, 500, r.Phases[compare.InsertRandom].Keys, "%s: random keys offered", r.Kind)
		assert.Equal(t, uint64(len(unique)), r.Phases[compare.InsertRandom].Changed, "%s: random inserts", r.Kind)
		assert.Equal(t, uint64(len(unique)), r.Phases[compare.RemoveRandom].Changed, "%s: random removes", r.Kind)
	}
}

func TestRunErrors(t *testing.T) {
	log := logger.New(category)

	_, err := compare.Run(log, []string{set.RedBlack, "skiplist"}, compare.Options{Ascending: 1})
	assert.Equal(t, fault.ErrUnknownSetKind, err, "unknown kind")

	_, err = compare.Run(log, []string{set.RedBlack}, compare.Options{Ascending: -1})
	assert.Equal(t, fault.ErrInvalidCount, err, "negative count")

	results, err := compare.Run(log, []string{set.RedBlack}, compare.Options{})
	assert.NoError(t, err, "empty run")
	assert.Len(t, results, 1, "empty run result")
}

func TestKeys(t *testing.T) {
	a := compare.Keys(1000, 99)
	b := compare.Keys(1000, 99)
	assert.Equal(t, a, b, "same seed, same keys")
	for _, key := range a {
		assert.True(t, key >= 0 && key <= 1000, "key in range: %d", key)
	}
	assert.Empty(t, compare.Keys(0, 1), "no keys")
}

func TestRatio(t *testing.T) {
	assert.Equal(t, "there was no difference", compare.Ratio("a", time.Second, "b", time.Second), "equal")
	assert.Equal(t, "redblack was 4.00 times faster than bst", compare.Ratio("bst", 4*time.Second, "redblack", time.Second), "b faster")
	assert.Equal(t, "bst was 2.50 times faster than redblack", compare.Ratio("bst", 2*time.Second, "redblack", 5*time.Second), "a faster")
	assert.Equal(t, "no measurable time", compare.Ratio("a", 0, "b", time.Second), "zero")
}

func TestReport(t *testing.T) {
	results, err := compare.Run(logger.New(category), []string{set.RedBlack, set.BST}, compare.Options{Ascending: 50, Random: 50, Seed: 1})
	require.NoError(t, err, "run")

	buffer := &strings.Builder{}
	require.NoError(t, compare.Report(buffer, results), "report")

	text := buffer.String()
	assert.Contains(t, text, "kind", "header")
	assert.Contains(t, text, "redblack  insert ascending", "red-black row")
	assert.Contains(t, text, "bst       remove random", "bst row")
	assert.Equal(t, 1+8+4, strings.Count(text, "\n"), "header, eight rows, four comparisons")
}
