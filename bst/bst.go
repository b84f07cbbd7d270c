// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bst - an unbalanced binary search tree
//
// Kept only as a baseline for timing comparisons: ascending input
// turns it into a linked list, and its recursive routines then
// descend once per key.
package bst

import (
	"cmp"
	"fmt"
	"io"
	"iter"
)

// a node in the tree
type node[T any] struct {
	key   T
	left  *node[T]
	right *node[T]
}

// Tree - type to hold the root node of a tree
type Tree[T any] struct {
	compare func(a, b T) int
	root    *node[T]
	count   int
}

// New - create an initially empty tree ordered by compare
func New[T any](compare func(a, b T) int) *Tree[T] {
	return &Tree[T]{
		compare: compare,
	}
}

// NewOrdered - create an initially empty tree using the natural
// ordering of the key type
func NewOrdered[T cmp.Ordered]() *Tree[T] {
	return New(cmp.Compare[T])
}

// Count - number of keys currently in the tree
func (tree *Tree[T]) Count() int {
	return tree.count
}

// Insert - add a key, false if it was already present
func (tree *Tree[T]) Insert(key T) bool {
	if !tree.insert(key, &tree.root) {
		return false
	}
	tree.count += 1
	return true
}

func (tree *Tree[T]) insert(key T, pp **node[T]) bool {
	p := *pp
	if nil == p {
		*pp = &node[T]{key: key}
		return true
	}
	c := tree.compare(key, p.key)
	switch {
	case c < 0:
		return tree.insert(key, &p.left)
	case c > 0:
		return tree.insert(key, &p.right)
	default:
		return false
	}
}

// Remove - delete a key, false if it was not present
func (tree *Tree[T]) Remove(key T) bool {
	if !tree.remove(key, &tree.root) {
		return false
	}
	tree.count -= 1
	return true
}

func (tree *Tree[T]) remove(key T, pp **node[T]) bool {
	p := *pp
	if nil == p {
		return false
	}
	c := tree.compare(key, p.key)
	switch {
	case c < 0:
		return tree.remove(key, &p.left)
	case c > 0:
		return tree.remove(key, &p.right)
	}

	switch {
	case nil == p.left:
		*pp = p.right
	case nil == p.right:
		*pp = p.left
	default:
		p.key = removeSmallest(&p.right)
	}
	return true
}

// internal: unlink the lowest node of a sub-tree and return its key
func removeSmallest[T any](pp **node[T]) T {
	p := *pp
	if nil == p.left {
		*pp = p.right
		return p.key
	}
	return removeSmallest(&p.left)
}

// Contains - true if the key is in the tree
func (tree *Tree[T]) Contains(key T) bool {
	p := tree.root
	for nil != p {
		c := tree.compare(key, p.key)
		switch {
		case c < 0:
			p = p.left
		case c > 0:
			p = p.right
		default:
			return true
		}
	}
	return false
}

// All - ascending sequence of keys
func (tree *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		walk(tree.root, yield)
	}
}

func walk[T any](p *node[T], yield func(T) bool) bool {
	if nil == p {
		return true
	}
	return walk(p.left, yield) && yield(p.key) && walk(p.right, yield)
}

// Verify - only the ordering rule applies to an unbalanced tree
func (tree *Tree[T]) Verify() bool {
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

// Height - number of edges on the longest path from the root
func (tree *Tree[T]) Height() int {
	if nil == tree.root {
		return 0
	}
	return height(tree.root) - 1
}

func height[T any](p *node[T]) int {
	if nil == p {
		return 0
	}
	return 1 + max(height(p.left), height(p.right))
}

// Print - write the tree sideways, right sub-tree first, indented
// by depth; returns the depth
func (tree *Tree[T]) Print(w io.Writer) int {
	return printTree(w, tree.root, 0)
}

func printTree[T any](w io.Writer, p *node[T], depth int) int {
	if nil == p {
		return 0
	}
	rd := printTree(w, p.right, depth+1)
	fmt.Fprintf(w, "%*s%v\n", 2*depth, "", p.key)
	ld := printTree(w, p.left, depth+1)
	return 1 + max(rd, ld)
}
