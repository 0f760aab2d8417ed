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

package wavelet

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/lefromage/succinct/rank"
)

// Serialize writes the tree shape as a pre-order walk of internal-node
// bit vectors (length, then raw words). Leaves carry no data: the
// shape is a deterministic function of sigma, so Deserialize recovers
// it by re-running the same lo/hi split recursion. Rank/select
// directories are rebuilt on load rather than stored, since they are a
// deterministic O(bits) function of the vector.
func (this *Tree) Serialize(w io.Writer) error {
	return serializeNode(w, this.root)
}

func serializeNode(w io.Writer, n *node) error {
	if n.isLeaf() {
		return nil
	}

	bv := n.dict.Vector()

	if err := binary.Write(w, binary.BigEndian, int64(bv.Len())); err != nil {
		return err
	}

	for _, word := range bv.Words() {
		if err := binary.Write(w, binary.BigEndian, word); err != nil {
			return err
		}
	}

	if err := serializeNode(w, n.left); err != nil {
		return err
	}

	return serializeNode(w, n.right)
}

// Deserialize reconstructs a Tree of the given alphabet size and row
// count from a stream written by Serialize. n must be supplied by the
// caller (it already knows it from its own layout) rather than
// recovered from the stream: a leaf root (sigma == 1, the degenerate
// tree over a single symbol, e.g. an index built over empty text plus
// its lone sentinel) carries no bit vector at all, so there is nothing
// in the stream to recover a row count from in that case.
func Deserialize(r io.Reader, sigma int, n int) (*Tree, error) {
	if sigma <= 0 {
		return nil, fmt.Errorf("wavelet: invalid alphabet size %d", sigma)
	}

	if n < 0 {
		return nil, fmt.Errorf("wavelet: invalid row count %d", n)
	}

	root, err := deserializeNode(r, 0, sigma)
	if err != nil {
		return nil, err
	}

	return &Tree{root: root, sigma: sigma, n: n}, nil
}

func deserializeNode(r io.Reader, lo, hi int) (*node, error) {
	n := &node{lo: lo, hi: hi}

	if hi-lo <= 1 {
		return n, nil
	}

	var length int64
	if err := binary.Read(r, binary.BigEndian, &length); err != nil {
		return nil, err
	}

	nbWords := (int(length) + 63) / 64
	if nbWords == 0 {
		nbWords = 1
	}

	words := make([]uint64, nbWords)

	for i := range words {
		if err := binary.Read(r, binary.BigEndian, &words[i]); err != nil {
			return nil, err
		}
	}

	bv := rank.FromWords(words, int(length))
	n.dict = rank.NewDict(bv)

	mid := (lo + hi) / 2

	left, err := deserializeNode(r, lo, mid)
	if err != nil {
		return nil, err
	}

	right, err := deserializeNode(r, mid, hi)
	if err != nil {
		return nil, err
	}

	n.left = left
	n.right = right
	return n, nil
}
