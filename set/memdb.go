// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package set

import (
	"encoding/binary"
	"iter"

	"github.com/syndtr/goleveldb/leveldb/comparer"
	"github.com/syndtr/goleveldb/leveldb/memdb"
)

// initial arena size of the skip list in bytes
const memDBCapacity = 64 * 1024

// size of an encoded key
const keySize = 8

// MemDBSet - the in-memory skip list leveldb uses as its memtable
type MemDBSet struct {
	db *memdb.DB
}

// NewMemDB - create an empty integer set
func NewMemDB() *MemDBSet {
	return &MemDBSet{
		db: memdb.New(comparer.DefaultComparer, memDBCapacity),
	}
}

// encode an integer so that byte order equals numeric order
func encodeKey(key int) []byte {
	buffer := make([]byte, keySize)
	binary.BigEndian.PutUint64(buffer, uint64(key)^(1<<63))
	return buffer
}

func decodeKey(buffer []byte) int {
	return int(binary.BigEndian.Uint64(buffer) ^ (1 << 63))
}

// Insert - add a key, false if it was already present
func (s *MemDBSet) Insert(key int) bool {
	k := encodeKey(key)
	if s.db.Contains(k) {
		return false
	}
	return nil == s.db.Put(k, nil)
}

// Remove - delete a key, false if it was not present
func (s *MemDBSet) Remove(key int) bool {
	return nil == s.db.Delete(encodeKey(key))
}

// Contains - true if the key is in the set
func (s *MemDBSet) Contains(key int) bool {
	return s.db.Contains(encodeKey(key))
}

// Count - number of keys
func (s *MemDBSet) Count() int {
	return s.db.Len()
}

// All - ascending sequence of keys
func (s *MemDBSet) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := s.db.NewIterator(nil)
		defer it.Release()
		for it.Next() {
			if !yield(decodeKey(it.Key())) {
				return
			}
		}
	}
}

// Verify - only the order of the encoded keys is checked
func (s *MemDBSet) Verify() bool {
	return ascending(s.All(), compareInt)
}
