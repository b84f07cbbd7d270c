// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - write an ASCII graphic representation of the tree, right
// sub-tree above and left sub-tree below each node
// returns the maximum depth of the tree
func (tree *Tree[T]) Print(w io.Writer) int {
	return tree.printTree(w, tree.root, "", root)
}

// internal print - returns the maximum depth of the sub-tree
func (tree *Tree[T]) printTree(w io.Writer, h handle, prefix string, br branch) int {
	if sentinel == h {
		return 0
	}
	p := &tree.nodes[h]
	rd := 0
	ld := 0
	if sentinel != p.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = tree.printTree(w, p.right, prefix+t, right)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%v (%s)\n", p.key, p.colour)
	if sentinel != p.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = tree.printTree(w, p.left, prefix+t, left)
	}
	return 1 + max(rd, ld)
}
