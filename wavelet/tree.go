/*
Copyright 2011-2025 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package wavelet implements a wavelet tree over the BWT column: the
// alphabet is recursively split into halves, each node carrying a
// rank.Dict over which of its covered positions belong to the right
// half. This answers rank_c/select_c/access in O(log sigma) rank.Dict
// visits instead of a linear scan of the column, the structure C6 (the
// succinct file core) is built on.
package wavelet

import (
	"fmt"

	"github.com/lefromage/succinct/rank"
)

// node covers the symbol-rank half-open range [lo, hi) of the alphabet.
// A leaf (hi == lo+1) carries no bit vector: every position routed to it
// is known to hold symbol rank lo.
type node struct {
	lo, hi int
	dict   *rank.Dict
	left   *node
	right  *node
}

func (n *node) isLeaf() bool {
	return n.hi-n.lo == 1
}

// Tree is a wavelet tree over a string of symbol ranks in [0, sigma).
// The ordering of ranks must match the ordering the caller uses for its
// alphabet and cumulative-count table (C[]): the tree's left/right split
// is purely a function of rank, so as long as both sides agree on what
// a rank means, the tree is self-consistent.
type Tree struct {
	root  *node
	sigma int
	n     int
}

// Build constructs a wavelet tree over symbols (each in [0, sigma)).
func Build(symbols []int, sigma int) (*Tree, error) {
	if sigma <= 0 {
		return nil, fmt.Errorf("wavelet: invalid alphabet size %d", sigma)
	}

	for _, s := range symbols {
		if s < 0 || s >= sigma {
			return nil, fmt.Errorf("wavelet: symbol %d out of range [0,%d)", s, sigma)
		}
	}

	root := buildNode(symbols, 0, sigma)
	return &Tree{root: root, sigma: sigma, n: len(symbols)}, nil
}

func buildNode(symbols []int, lo, hi int) *node {
	n := &node{lo: lo, hi: hi}

	if hi-lo <= 1 {
		return n
	}

	mid := (lo + hi) / 2
	bv := rank.NewBitVector(len(symbols))
	left := make([]int, 0, len(symbols))
	right := make([]int, 0, len(symbols))

	for i, s := range symbols {
		if s >= mid {
			bv.Set(i)
			right = append(right, s)
		} else {
			left = append(left, s)
		}
	}

	n.dict = rank.NewDict(bv)
	n.left = buildNode(left, lo, mid)
	n.right = buildNode(right, mid, hi)
	return n
}

// Len returns the length of the encoded string.
func (this *Tree) Len() int {
	return this.n
}

// Sigma returns the alphabet size.
func (this *Tree) Sigma() int {
	return this.sigma
}

// Access returns the symbol rank at position i.
func (this *Tree) Access(i int) int {
	if i < 0 || i >= this.n {
		panic(fmt.Errorf("wavelet: access index out of range: %d", i))
	}

	cur := this.root
	pos := i

	for !cur.isLeaf() {
		if cur.dict.Vector().Get(pos) {
			pos = int(cur.dict.Rank1(pos))
			cur = cur.right
		} else {
			pos = int(cur.dict.Rank0(pos))
			cur = cur.left
		}
	}

	return cur.lo
}

// Rank returns the number of occurrences of symbol c in [0, i).
func (this *Tree) Rank(c, i int) int {
	if c < 0 || c >= this.sigma {
		panic(fmt.Errorf("wavelet: rank: symbol out of range: %d", c))
	}

	if i <= 0 {
		return 0
	}

	if i > this.n {
		i = this.n
	}

	cur := this.root
	pos := i

	for !cur.isLeaf() {
		mid := (cur.lo + cur.hi) / 2

		if c < mid {
			pos = int(cur.dict.Rank0(pos))
			cur = cur.left
		} else {
			pos = int(cur.dict.Rank1(pos))
			cur = cur.right
		}
	}

	return pos
}

// Select returns the position of the k-th (0-indexed) occurrence of
// symbol c.
func (this *Tree) Select(c, k int) int {
	if c < 0 || c >= this.sigma {
		panic(fmt.Errorf("wavelet: select: symbol out of range: %d", c))
	}

	return selectRec(this.root, c, k)
}

func selectRec(n *node, c, k int) int {
	if n.isLeaf() {
		return k
	}

	mid := (n.lo + n.hi) / 2

	if c < mid {
		childPos := selectRec(n.left, c, k)
		return n.dict.Select0(int64(childPos))
	}

	childPos := selectRec(n.right, c, k)
	return n.dict.Select1(int64(childPos))
}
