// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/redblack/fault"
	"github.com/bitmark-inc/redblack/shell"
)

// checked - verify the tree after every successful change, a failure
// panics with fault.ErrInvariantViolation which ends the shell session
type checked struct {
	shell.Tree
	log *logger.L
	w   io.Writer
}

func (c *checked) Insert(key int) bool {
	ok := c.Tree.Insert(key)
	if ok {
		c.verify("insert", key)
	}
	return ok
}

func (c *checked) Remove(key int) bool {
	ok := c.Tree.Remove(key)
	if ok {
		c.verify("delete", key)
	}
	return ok
}

func (c *checked) verify(operation string, key int) {
	if c.Tree.Verify() {
		c.log.Debugf("%s: %d  count: %d  valid", operation, key, c.Tree.Count())
		return
	}
	c.log.Criticalf("%s: %d  count: %d  verify failed", operation, key, c.Tree.Count())
	fmt.Fprintf(c.w, "verify failed after %s %d\n", operation, key)
	panic(fault.ErrInvariantViolation)
}
