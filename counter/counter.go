// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - operation counts for the timing harness and the
// shell
package counter

import (
	"sync/atomic"
)

// Counter - type to denote a counter that can be synchronously
// incremented, just a 64 bit unsigned integer
type Counter uint64

// Increment - add 1 to a counter, returns new value
func (ic *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(ic), 1)
}

// CountIf - add 1 only when an operation reports success, returns
// the operation's result so calls can be wrapped in place
func (ic *Counter) CountIf(ok bool) bool {
	if ok {
		atomic.AddUint64((*uint64)(ic), 1)
	}
	return ok
}

// Uint64 - returns current value
func (ic *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(ic))
}

// IsZero - check if zero
func (ic *Counter) IsZero() bool {
	return 0 == ic.Uint64()
}

// Reset - set back to zero, returns the previous value
func (ic *Counter) Reset() uint64 {
	return atomic.SwapUint64((*uint64)(ic), 0)
}

// Operations - counts of set operations that changed or found something
type Operations struct {
	Inserted Counter // Insert returned true
	Removed  Counter // Remove returned true
	Found    Counter // Contains returned true
	Missed   Counter // any operation returned false
}

// Record - count the outcome of a single operation
func (o *Operations) Record(c *Counter, ok bool) bool {
	if !c.CountIf(ok) {
		o.Missed.Increment()
	}
	return ok
}
