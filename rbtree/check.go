// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

// Verify - check the red-black rules and the key ordering
//
// this is a diagnostic, a false result means an earlier Insert or
// Remove is defective
func (tree *Tree[T]) Verify() bool {
	if red == tree.nodes[sentinel].colour {
		return false
	}
	if sentinel == tree.root {
		return true
	}
	if tree.isRed(tree.root) {
		return false
	}
	return tree.colourCheck(tree.root) &&
		-1 != tree.blackHeight(tree.root) &&
		tree.inOrder()
}

// internal: no red node has a red child
func (tree *Tree[T]) colourCheck(h handle) bool {
	if sentinel == h {
		return true
	}
	p := &tree.nodes[h]
	if red == p.colour && (tree.isRed(p.left) || tree.isRed(p.right)) {
		return false
	}
	return tree.colourCheck(p.left) && tree.colourCheck(p.right)
}

// internal: black nodes below h on any path to a sentinel, or -1 as
// soon as any sub-tree breaks a rule
func (tree *Tree[T]) blackHeight(h handle) int {
	if sentinel == h {
		return 0
	}
	p := &tree.nodes[h]
	lh := tree.blackHeight(p.left)
	if -1 == lh {
		return -1
	}
	rh := tree.blackHeight(p.right)
	if -1 == rh || lh != rh {
		return -1
	}
	if black == p.colour {
		return lh + 1
	}
	if tree.isRed(p.left) || tree.isRed(p.right) {
		return -1
	}
	return lh
}

// internal: strictly ascending in-order sequence
func (tree *Tree[T]) inOrder() bool {
	first := true
	var previous T
	for key := range tree.All() {
		if !first && tree.compare(previous, key) >= 0 {
			return false
		}
		first = false
		previous = key
	}
	return true
}

// CheckUp - check the up pointers for consistency
func (tree *Tree[T]) CheckUp() bool {
	return tree.checkup(tree.root, sentinel)
}

// internal: consistency checker
func (tree *Tree[T]) checkup(h handle, up handle) bool {
	if sentinel == h {
		return true
	}
	p := &tree.nodes[h]
	if p.up != up {
		return false
	}
	if !tree.checkup(p.left, h) {
		return false
	}
	return tree.checkup(p.right, h)
}
