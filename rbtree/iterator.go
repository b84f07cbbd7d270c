// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"iter"
)

// Min - return the lowest key
func (tree *Tree[T]) Min() (T, bool) {
	return tree.keyOf(tree.first(tree.root))
}

// Max - return the highest key
func (tree *Tree[T]) Max() (T, bool) {
	return tree.keyOf(tree.last(tree.root))
}

// All - ascending sequence of keys
//
// the sequence is lazy and may be ranged over any number of times;
// the tree must not be modified while a range over it is in progress
func (tree *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for p := tree.first(tree.root); sentinel != p; p = tree.next(p) {
			if !yield(tree.nodes[p].key) {
				return
			}
		}
	}
}

// Backward - descending sequence of keys
func (tree *Tree[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for p := tree.last(tree.root); sentinel != p; p = tree.prev(p) {
			if !yield(tree.nodes[p].key) {
				return
			}
		}
	}
}

// Keys - all keys in ascending order
func (tree *Tree[T]) Keys() []T {
	keys := make([]T, 0, tree.count)
	for key := range tree.All() {
		keys = append(keys, key)
	}
	return keys
}

func (tree *Tree[T]) keyOf(h handle) (T, bool) {
	if sentinel == h {
		var zero T
		return zero, false
	}
	return tree.nodes[h].key, true
}

// internal: lowest node in a sub-tree
func (tree *Tree[T]) first(h handle) handle {
	if sentinel == h {
		return sentinel
	}
	for sentinel != tree.nodes[h].left {
		h = tree.nodes[h].left
	}
	return h
}

// internal: highest node in a sub-tree
func (tree *Tree[T]) last(h handle) handle {
	if sentinel == h {
		return sentinel
	}
	for sentinel != tree.nodes[h].right {
		h = tree.nodes[h].right
	}
	return h
}

// internal: in-order successor or the sentinel if no more nodes
func (tree *Tree[T]) next(h handle) handle {
	if r := tree.nodes[h].right; sentinel != r {
		return tree.first(r)
	}
	up := tree.nodes[h].up
	for sentinel != up && h == tree.nodes[up].right {
		h = up
		up = tree.nodes[up].up
	}
	return up
}

// internal: in-order predecessor or the sentinel if no more nodes
func (tree *Tree[T]) prev(h handle) handle {
	if l := tree.nodes[h].left; sentinel != l {
		return tree.last(l)
	}
	up := tree.nodes[h].up
	for sentinel != up && h == tree.nodes[up].left {
		h = up
		up = tree.nodes[up].up
	}
	return up
}
