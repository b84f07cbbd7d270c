// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"cmp"
)

// Tree - type to hold the arena and root of a tree
type Tree[T any] struct {
	compare   func(a, b T) int // three way: -1 a < b, 0 a == b, +1 a > b
	nodes     []node[T]        // arena, nodes[0] is the sentinel
	root      handle
	free      handle // head of reclaimed slots
	freeNodes int    // number of slots in the free list
	count     int
}

// New - create an initially empty tree ordered by compare
func New[T any](compare func(a, b T) int) *Tree[T] {
	return &Tree[T]{
		compare: compare,
		nodes:   []node[T]{{colour: black}},
		root:    sentinel,
		free:    sentinel,
	}
}

// NewOrdered - create an initially empty tree using the natural
// ordering of the key type
func NewOrdered[T cmp.Ordered]() *Tree[T] {
	return New(cmp.Compare[T])
}

// IsEmpty - true if tree contains no keys
func (tree *Tree[T]) IsEmpty() bool {
	return sentinel == tree.root
}

// Count - number of keys currently in the tree
func (tree *Tree[T]) Count() int {
	return tree.count
}

// Root - key held by the root node
func (tree *Tree[T]) Root() (T, bool) {
	if sentinel == tree.root {
		var zero T
		return zero, false
	}
	return tree.nodes[tree.root].key, true
}

// Height - number of edges on the longest path from the root down to
// a node without children, zero for an empty or single node tree
func (tree *Tree[T]) Height() int {
	if sentinel == tree.root {
		return 0
	}
	return tree.height(tree.root) - 1
}

// internal: number of nodes on the longest downward path

func (tree *Tree[T]) height(h handle) int {
	if sentinel == h {
		return 0
	}
	p := &tree.nodes[h]
	return 1 + max(tree.height(p.left), tree.height(p.right))
}

// internal: colour test that treats the sentinel as black
func (tree *Tree[T]) isRed(h handle) bool {
	return sentinel != h && red == tree.nodes[h].colour
}
