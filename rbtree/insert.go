// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

// Insert - add a key to the tree
// returns false, leaving the tree unchanged, if the key was already present
func (tree *Tree[T]) Insert(key T) bool {
	up := sentinel
	p := tree.root
	goLeft := false

	for sentinel != p {
		up = p
		c := tree.compare(key, tree.nodes[p].key)
		switch {
		case c < 0:
			p = tree.nodes[p].left
			goLeft = true
		case c > 0:
			p = tree.nodes[p].right
			goLeft = false
		default:
			return false
		}
	}

	// arena may grow here, so no node pointers are held across this call
	n := tree.newNode(key, up)
	switch {
	case sentinel == up:
		tree.root = n
	case goLeft:
		tree.nodes[up].left = n
	default:
		tree.nodes[up].right = n
	}
	tree.count += 1

	tree.insertFixup(n)
	return true
}

// internal: restore the colour rules after linking the red node n
func (tree *Tree[T]) insertFixup(n handle) {
	nodes := tree.nodes

	for n != tree.root && tree.isRed(nodes[n].up) {
		parent := nodes[n].up
		grand := nodes[parent].up
		if sentinel == grand {
			break
		}

		if parent == nodes[grand].left {
			uncle := nodes[grand].right
			if tree.isRed(uncle) {
				// recolour and continue from the grandparent
				nodes[parent].colour = black
				nodes[uncle].colour = black
				nodes[grand].colour = red
				n = grand
				continue
			}
			if n == nodes[parent].right {
				// inner child: turn into the outer case
				n = parent
				tree.rotateLeft(n)
				parent = nodes[n].up
			}
			nodes[parent].colour = black
			nodes[grand].colour = red
			tree.rotateRight(grand)
			break
		}

		// mirror image: parent is a right child
		uncle := nodes[grand].left
		if tree.isRed(uncle) {
			nodes[parent].colour = black
			nodes[uncle].colour = black
			nodes[grand].colour = red
			n = grand
			continue
		}
		if n == nodes[parent].left {
			n = parent
			tree.rotateRight(n)
			parent = nodes[n].up
		}
		nodes[parent].colour = black
		nodes[grand].colour = red
		tree.rotateLeft(grand)
		break
	}

	tree.nodes[tree.root].colour = black
}
