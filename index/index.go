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

// Package index ties the bitpack, rank, wavelet, sarray and sample
// primitives into the frozen, concurrency-safe self-index: the
// alphabet, the cumulative symbol-count table, the wavelet tree over
// the BWT column, and the sampled SA/ISA tables, plus the navigation,
// search, extraction and serialization operations built on them.
//
// An *Index is immutable once Build or Deserialize returns. Every
// method is a pure read and may be called from any number of
// goroutines concurrently without external synchronization.
package index

import (
	"fmt"
	"sort"
	"time"

	succinct "github.com/lefromage/succinct"
	"github.com/lefromage/succinct/sample"
	"github.com/lefromage/succinct/sarray"
	"github.com/lefromage/succinct/wavelet"
)

// DefaultSampleRate is the default SA/ISA sample spacing when a caller
// does not specify one (spec default of 32, a power of two).
const DefaultSampleRate = 32

// ErrRange reports an out-of-range offset or length passed to Extract,
// ExtractUntil, CharAt or Compare.
var ErrRange = fmt.Errorf("index: offset or length out of range")

// Index is the frozen succinct representation of a byte text: its
// suffix array and BWT column are never stored in full, only their
// compressed surrogates (wavelet tree, sampled SA/ISA).
type Index struct {
	n        int
	alphabet []byte
	cum      []int64 // length K+1: cum[c] for c in [0,K], cum[K] = total row count
	tree     *wavelet.Tree
	samples  *sample.Table
}

// Build constructs an Index over text, sampling SA/ISA at rate. Emits
// progress events to every non-nil listener as each stage completes.
func Build(text []byte, rate int, listeners ...succinct.Listener) (*Index, error) {
	succinct.Broadcast(listeners, succinct.NewEvent(succinct.EvtBuildStart, int64(len(text)), "", time.Time{}))

	sa, err := sarray.Build(text)
	if err != nil {
		return nil, err
	}

	succinct.Broadcast(listeners, succinct.NewEvent(succinct.EvtSuffixArrayDone, int64(len(sa.SA())), "", time.Time{}))

	tree, err := wavelet.Build(sa.L(), sa.K())
	if err != nil {
		return nil, err
	}

	succinct.Broadcast(listeners, succinct.NewEvent(succinct.EvtWaveletDone, int64(tree.Len()), "", time.Time{}))

	samples, err := sample.Build(sa, rate)
	if err != nil {
		return nil, err
	}

	succinct.Broadcast(listeners, succinct.NewEvent(succinct.EvtSampleDone, int64(samples.NumSamples()), "", time.Time{}))

	idx := &Index{
		n:        sa.N(),
		alphabet: sa.Alphabet(),
		cum:      sa.Cum(),
		tree:     tree,
		samples:  samples,
	}

	succinct.Broadcast(listeners, succinct.NewEvent(succinct.EvtBuildEnd, int64(idx.n), "", time.Time{}))
	return idx, nil
}

// Len returns the length of the original text (the sentinel is never
// counted or surfaced).
func (this *Index) Len() int {
	return this.n
}

// Sigma returns the number of distinct real bytes in the text
// (excluding the sentinel).
func (this *Index) Sigma() int {
	return len(this.alphabet)
}

// Alphabet returns the sorted distinct real bytes in the text.
func (this *Index) Alphabet() []byte {
	return this.alphabet
}

// Rate returns the SA/ISA sample spacing this index was built with.
func (this *Index) Rate() int {
	return this.samples.Rate()
}

// SameRecord always reports true for the unsharded core: the whole
// text is one record. shard.File overrides this using its
// record-start array.
func (this *Index) SameRecord(a, b int64) bool {
	return true
}

// total is the row count of the underlying SA/L/ISA arrays, which
// includes the one sentinel row never surfaced to callers.
func (this *Index) total() int {
	return this.n + 1
}

// symbolRank maps a real byte to its wavelet-tree symbol rank in
// [1, K). ok is false if the byte never occurs in the text.
func (this *Index) symbolRank(b byte) (rank int, ok bool) {
	idx := sort.Search(len(this.alphabet), func(i int) bool { return this.alphabet[i] >= b })

	if idx == len(this.alphabet) || this.alphabet[idx] != b {
		return 0, false
	}

	return idx + 1, true
}

// byteOf maps a wavelet-tree symbol rank back to its real byte. Rank 0
// (the sentinel) has no corresponding byte and must never be passed.
func (this *Index) byteOf(rank int) byte {
	return this.alphabet[rank-1]
}
