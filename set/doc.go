// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package set - a common interface over the red-black tree and the
// ordered containers it is compared against
//
// The adapters exist for the timing harness and the shell; none of
// them is safe for concurrent use.
package set
