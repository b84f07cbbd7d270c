// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/redblack/fault"
	"github.com/bitmark-inc/redblack/shell"
	"github.com/bitmark-inc/redblack/shell/mocks"
)

const (
	dir      = "testing"
	category = "testing"
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

func TestCheckedVerifiesChanges(t *testing.T) {
	ctl := gomock.NewController(t)
	m := mocks.NewMockTree(ctl)
	defer ctl.Finish()

	m.EXPECT().Insert(1).Return(true).Times(1)
	m.EXPECT().Insert(2).Return(false).Times(1)
	m.EXPECT().Remove(1).Return(true).Times(1)
	m.EXPECT().Count().Return(0).AnyTimes()

	// only the two successful changes are verified
	gomock.InOrder(
		m.EXPECT().Verify().Return(true).Times(1),
		m.EXPECT().Verify().Return(false).Times(1),
	)

	w := &bytes.Buffer{}
	c := &checked{Tree: m, log: logger.New(category), w: w}

	assert.True(t, c.Insert(1), "insert new")
	assert.False(t, c.Insert(2), "insert duplicate")
	assert.PanicsWithValue(t, fault.ErrInvariantViolation, func() { c.Remove(1) }, "remove on a damaged tree")
	assert.Equal(t, "verify failed after delete 1\n", w.String(), "report")
}

func TestCheckedEndsSession(t *testing.T) {
	ctl := gomock.NewController(t)
	m := mocks.NewMockTree(ctl)
	defer ctl.Finish()

	m.EXPECT().Insert(5).Return(true).Times(1)
	m.EXPECT().Verify().Return(false).Times(1)
	m.EXPECT().Count().Return(1).AnyTimes()

	// nothing after the failing line may reach the tree
	m.EXPECT().Insert(6).Times(0)

	w := &bytes.Buffer{}
	out := &bytes.Buffer{}
	c := &checked{Tree: m, log: logger.New(category), w: w}
	s := shell.New(logger.New(category), c, out, "")

	err := s.Run(strings.NewReader("I 5\nI 6\n"))
	assert.Equal(t, fault.ErrInvariantViolation, err, "session error")
	assert.Equal(t, "verify failed after insert 5\n", w.String(), "report")
	assert.Equal(t, "error: "+fault.ErrInvariantViolation.Error()+"\n", out.String(), "shell output")
	assert.Equal(t, uint64(1), s.Errors(), "error count")
}
