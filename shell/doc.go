// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package shell - line oriented command interpreter over an integer
// tree
//
// each input line is one command, a single letter or its long name
// optionally followed by an integer key:
//
//   I n  insert n    add a key
//   D n  delete n    remove a key
//   Q n  query n     membership test
//   P    print       draw the tree
//   C    check       verify the tree invariants
//   L    list        keys in ascending order
//   H    help        this list
//   X    exit        leave the shell (end of input also exits)
package shell
