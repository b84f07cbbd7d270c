// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"github.com/bitmark-inc/redblack/fault"
)

// handle - index of a node in the tree's arena
type handle int32

// the sentinel always occupies the first arena slot
const sentinel handle = 0

// colour of a node
type colour bool

const (
	black colour = false
	red   colour = true
)

func (c colour) String() string {
	if red == c {
		return "red"
	}
	return "black"
}

// a node in the tree
type node[T any] struct {
	key    T      // key part for ordering
	left   handle // left sub-tree
	right  handle // right sub-tree
	up     handle // parent node, also the free list link
	colour colour // red or black
}

// allocate a new red node, reuses reclaimed slots if any are available
func (tree *Tree[T]) newNode(key T, up handle) handle {
	if sentinel == tree.free {
		if 0 != tree.freeNodes {
			panic(fault.ErrFreeListCorrupt)
		}
		tree.nodes = append(tree.nodes, node[T]{
			key:    key,
			left:   sentinel,
			right:  sentinel,
			up:     up,
			colour: red,
		})
		return handle(len(tree.nodes) - 1)
	}
	h := tree.free
	p := &tree.nodes[h]
	tree.free = p.up
	p.key = key
	p.left = sentinel
	p.right = sentinel
	p.up = up
	p.colour = red
	tree.freeNodes -= 1
	return h
}

// reclaim a slot and keep it in the free list
//
// the key is cleared so the tree does not keep the value alive
func (tree *Tree[T]) freeNode(h handle) {
	if sentinel == h {
		panic(fault.ErrFreeListCorrupt)
	}
	var zero T
	p := &tree.nodes[h]
	p.key = zero
	p.left = sentinel
	p.right = sentinel
	p.colour = black
	p.up = tree.free // use as free list pointer
	tree.free = h
	tree.freeNodes += 1
}
