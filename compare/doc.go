// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package compare - time the red-black tree against other ordered sets
//
// Each set kind runs four phases on a fresh instance: insert an
// ascending run of keys, remove them in the same order, insert a
// batch of random keys (duplicates included) and remove that batch.
// Ascending input is where an unbalanced tree degenerates.
package compare
