// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package set

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyEncodingKeepsOrder(t *testing.T) {
	keys := []int{math.MinInt64, -1000, -1, 0, 1, 255, 256, 1 << 40, math.MaxInt64}
	for i, key := range keys {
		assert.Equal(t, key, decodeKey(encodeKey(key)), "round trip: %d", key)
		if i > 0 {
			assert.Equal(t, -1, bytes.Compare(encodeKey(keys[i-1]), encodeKey(key)), "%d < %d", keys[i-1], key)
		}
	}
}
