// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package compare

import (
	"math/rand/v2"
	"time"
)

// Keys - n random keys in the range [0, n], duplicates are expected
// a zero seed takes one from the clock
func Keys(n int, seed uint64) []int {
	if 0 == seed {
		seed = uint64(time.Now().UnixNano())
	}
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	keys := make([]int, n)
	for i := range keys {
		keys[i] = r.IntN(n + 1)
	}
	return keys
}
