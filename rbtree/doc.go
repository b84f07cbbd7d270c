// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rbtree - a red-black balanced tree holding an ordered set
// of unique keys
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Nodes live in a per-tree arena and are addressed by handles
// (indices into the arena). Handle zero is the sentinel: a
// permanently black node that stands for every absent child. Parent
// links are plain handles and never own anything, so the whole tree
// is released when the Tree value becomes unreachable.
//
// The balancing rules follow the classic formulation in Cormen,
// Leiserson, Rivest and Stein, Introduction to Algorithms, with the
// difference that the sentinel is never written to: delete fixup
// carries the parent of the spliced node as an explicit anchor.
//
// After every completed Insert or Remove:
//
//   1. keys are in strict in-order sequence
//   2. the sentinel and the root are black
//   3. no red node has a red child
//   4. every path from a node to a sentinel has the same number of
//      black nodes
//
// so the height of a tree of n keys never exceeds 2·log₂(n+1).
package rbtree
