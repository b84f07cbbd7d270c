// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package set

import (
	"iter"
	"sort"

	"github.com/bitmark-inc/redblack/bst"
	"github.com/bitmark-inc/redblack/fault"
	"github.com/bitmark-inc/redblack/rbtree"
)

// Set - ordered set of unique keys
type Set[T any] interface {
	Insert(key T) bool   // false if already present
	Remove(key T) bool   // false if not present
	Contains(key T) bool // membership
	Verify() bool        // structural self check
	Count() int          // number of keys
	All() iter.Seq[T]    // ascending keys
}

// names of the available set kinds
const (
	RedBlack = "redblack"
	BST      = "bst"
	BTree    = "btree"
	LLRB     = "llrb"
	MemDB    = "memdb"
)

// degree of the google btree, 2 gives a 2-3-4 tree
const defaultDegree = 2

var makers = map[string]func() Set[int]{
	RedBlack: func() Set[int] { return rbtree.NewOrdered[int]() },
	BST:      func() Set[int] { return bst.NewOrdered[int]() },
	BTree:    func() Set[int] { return NewBTree(defaultDegree, compareInt) },
	LLRB:     func() Set[int] { return NewLLRB() },
	MemDB:    func() Set[int] { return NewMemDB() },
}

// Kinds - sorted names accepted by Make
func Kinds() []string {
	kinds := make([]string, 0, len(makers))
	for kind := range makers {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// Make - create an empty integer set of the named kind
func Make(kind string) (Set[int], error) {
	maker, ok := makers[kind]
	if !ok {
		return nil, fault.ErrUnknownSetKind
	}
	return maker(), nil
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// internal: strictly ascending check shared by the adapters
func ascending[T any](seq iter.Seq[T], compare func(a, b T) int) bool {
	first := true
	var previous T
	for key := range seq {
		if !first && compare(previous, key) >= 0 {
			return false
		}
		first = false
		previous = key
	}
	return true
}
