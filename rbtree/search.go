// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

// Contains - true if the key is in the tree
func (tree *Tree[T]) Contains(key T) bool {
	return sentinel != tree.search(key)
}

// internal: find the node holding key, the sentinel if absent
func (tree *Tree[T]) search(key T) handle {
	p := tree.root
	for sentinel != p {
		c := tree.compare(key, tree.nodes[p].key)
		switch {
		case c < 0: // key < p.key
			p = tree.nodes[p].left
		case c > 0: // key > p.key
			p = tree.nodes[p].right
		default:
			return p
		}
	}
	return sentinel
}
