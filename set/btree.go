// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package set

import (
	"iter"

	"github.com/google/btree"
)

// BTreeSet - in-memory B-tree from github.com/google/btree
type BTreeSet[T any] struct {
	compare func(a, b T) int
	tree    *btree.BTreeG[T]
}

// NewBTree - create an empty B-tree set of the given degree
func NewBTree[T any](degree int, compare func(a, b T) int) *BTreeSet[T] {
	less := func(a, b T) bool {
		return compare(a, b) < 0
	}
	return &BTreeSet[T]{
		compare: compare,
		tree:    btree.NewG[T](degree, less),
	}
}

// Insert - add a key, false if it was already present
func (s *BTreeSet[T]) Insert(key T) bool {
	if s.tree.Has(key) {
		return false
	}
	s.tree.ReplaceOrInsert(key)
	return true
}

// Remove - delete a key, false if it was not present
func (s *BTreeSet[T]) Remove(key T) bool {
	_, found := s.tree.Delete(key)
	return found
}

// Contains - true if the key is in the set
func (s *BTreeSet[T]) Contains(key T) bool {
	return s.tree.Has(key)
}

// Count - number of keys
func (s *BTreeSet[T]) Count() int {
	return s.tree.Len()
}

// All - ascending sequence of keys
func (s *BTreeSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.tree.Ascend(func(item T) bool {
			return yield(item)
		})
	}
}

// Verify - the library keeps its own balance, only the order is checked
func (s *BTreeSet[T]) Verify() bool {
	return ascending(s.All(), s.compare)
}
