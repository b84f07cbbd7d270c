// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

// Remove - delete a key from the tree
// returns false, leaving the tree unchanged, if the key was not present
func (tree *Tree[T]) Remove(key T) bool {
	target := tree.search(key)
	if sentinel == target {
		return false
	}

	// a node with two children keeps its place and takes the key of
	// its in-order successor, which is spliced out instead
	victim := target
	if pt := &tree.nodes[target]; sentinel != pt.left && sentinel != pt.right {
		victim = tree.first(pt.right)
		pt.key = tree.nodes[victim].key
	}

	child, parent, wasBlack := tree.splice(victim)
	tree.freeNode(victim)
	tree.count -= 1

	if wasBlack {
		tree.deleteFixup(child, parent)
	}
	return true
}

// internal: unlink a node having at most one child
// returns the child that took its place, its former parent and
// whether a black node was removed
func (tree *Tree[T]) splice(n handle) (handle, handle, bool) {
	pn := &tree.nodes[n]
	child := pn.left
	if sentinel == child {
		child = pn.right
	}
	parent := pn.up

	if sentinel != child {
		tree.nodes[child].up = parent
	}
	tree.replaceChild(parent, n, child)

	return child, parent, black == pn.colour
}

// internal: restore the black height after a black node was removed
// from below parent, x is the node now occupying that slot and may
// be the sentinel
func (tree *Tree[T]) deleteFixup(x handle, parent handle) {
	nodes := tree.nodes

	for x != tree.root && !tree.isRed(x) {
		if x == nodes[parent].left {
			w := nodes[parent].right
			if tree.isRed(w) {
				nodes[w].colour = black
				nodes[parent].colour = red
				tree.rotateLeft(parent)
				w = nodes[parent].right
			}
			if !tree.isRed(nodes[w].left) && !tree.isRed(nodes[w].right) {
				// push the deficiency up one level
				nodes[w].colour = red
				x = parent
				parent = nodes[x].up
				continue
			}
			if !tree.isRed(nodes[w].right) {
				// near child red: turn into the far child case
				nodes[nodes[w].left].colour = black
				nodes[w].colour = red
				tree.rotateRight(w)
				w = nodes[parent].right
			}
			nodes[w].colour = nodes[parent].colour
			nodes[parent].colour = black
			nodes[nodes[w].right].colour = black
			tree.rotateLeft(parent)
			x = tree.root
			break
		}

		// mirror image: x is a right child
		w := nodes[parent].left
		if tree.isRed(w) {
			nodes[w].colour = black
			nodes[parent].colour = red
			tree.rotateRight(parent)
			w = nodes[parent].left
		}
		if !tree.isRed(nodes[w].left) && !tree.isRed(nodes[w].right) {
			nodes[w].colour = red
			x = parent
			parent = nodes[x].up
			continue
		}
		if !tree.isRed(nodes[w].left) {
			nodes[nodes[w].right].colour = black
			nodes[w].colour = red
			tree.rotateLeft(w)
			w = nodes[parent].left
		}
		nodes[w].colour = nodes[parent].colour
		nodes[parent].colour = black
		nodes[nodes[w].left].colour = black
		tree.rotateRight(parent)
		x = tree.root
		break
	}

	if sentinel != x {
		nodes[x].colour = black
	}
}
