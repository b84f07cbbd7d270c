// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package set

import (
	"iter"

	"github.com/petar/GoLLRB/llrb"
)

// LLRBSet - left-leaning red-black tree from github.com/petar/GoLLRB
type LLRBSet struct {
	tree *llrb.LLRB
}

// NewLLRB - create an empty integer set
func NewLLRB() *LLRBSet {
	return &LLRBSet{
		tree: llrb.New(),
	}
}

// Insert - add a key, false if it was already present
func (s *LLRBSet) Insert(key int) bool {
	if s.tree.Has(llrb.Int(key)) {
		return false
	}
	s.tree.InsertNoReplace(llrb.Int(key))
	return true
}

// Remove - delete a key, false if it was not present
func (s *LLRBSet) Remove(key int) bool {
	return nil != s.tree.Delete(llrb.Int(key))
}

// Contains - true if the key is in the set
func (s *LLRBSet) Contains(key int) bool {
	return s.tree.Has(llrb.Int(key))
}

// Count - number of keys
func (s *LLRBSet) Count() int {
	return s.tree.Len()
}

// All - ascending sequence of keys
func (s *LLRBSet) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		low := s.tree.Min()
		if nil == low {
			return
		}
		s.tree.AscendGreaterOrEqual(low, func(item llrb.Item) bool {
			return yield(int(item.(llrb.Int)))
		})
	}
}

// Verify - only the order is checked
func (s *LLRBSet) Verify() bool {
	return ascending(s.All(), compareInt)
}
