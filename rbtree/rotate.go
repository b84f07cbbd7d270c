// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"github.com/bitmark-inc/redblack/fault"
)

// internal: promote the right child of n
//
//       n               r
//      / \             / \
//     a   r    ==>    n   c
//        / \         / \
//       b   c       a   b
func (tree *Tree[T]) rotateLeft(n handle) {
	pn := &tree.nodes[n]
	r := pn.right
	if sentinel == r {
		panic(fault.ErrRotateSentinel)
	}
	pr := &tree.nodes[r]

	pn.right = pr.left
	if sentinel != pr.left {
		tree.nodes[pr.left].up = n
	}

	pr.up = pn.up
	tree.replaceChild(pn.up, n, r)

	pr.left = n
	pn.up = r
}

// internal: promote the left child of n
//
//         n           l
//        / \         / \
//       l   c  ==>  a   n
//      / \             / \
//     a   b           b   c
func (tree *Tree[T]) rotateRight(n handle) {
	pn := &tree.nodes[n]
	l := pn.left
	if sentinel == l {
		panic(fault.ErrRotateSentinel)
	}
	pl := &tree.nodes[l]

	pn.left = pl.right
	if sentinel != pl.right {
		tree.nodes[pl.right].up = n
	}

	pl.up = pn.up
	tree.replaceChild(pn.up, n, l)

	pl.right = n
	pn.up = l
}

// internal: make parent refer to to in the slot that held from
// a sentinel parent means from was the root
func (tree *Tree[T]) replaceChild(parent handle, from handle, to handle) {
	if sentinel == parent {
		tree.root = to
		return
	}
	pp := &tree.nodes[parent]
	switch from {
	case pp.left:
		pp.left = to
	case pp.right:
		pp.right = to
	default:
		panic(fault.ErrInvariantViolation)
	}
}
