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

package sarray

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lefromage/succinct/internal/bitutil"
)

// maxTextLen bounds the addressable size of a single build: the text
// plus its sentinel, its suffix array, its inverse and its BWT column
// must each fit in a Go int-indexed slice with headroom to spare.
const maxTextLen = 1<<31 - 2

// ErrBuildInput reports a build-time error: input too large, or (when
// raised from package sample) a sample rate that is non-positive or
// not a power of two.
var ErrBuildInput = errors.New("sarray: invalid build input")

// Array holds the suffix array, its inverse and the BWT column derived
// from a byte text plus an implicit sentinel smaller than any real
// byte. All three slices have length N()+1: positions [0, N()) are the
// real text, position N() is the sentinel. Callers outside this package
// never see offset N() itself (see index.Index).
type Array struct {
	sa       []int
	isa      []int
	l        []int // BWT column, as symbol ranks in [0, K)
	alphabet []byte
	cum      []int64 // cumulative counts C[rank] over [0, K], length K+1
	n        int     // original text length (excludes the sentinel)
}

// Build runs suffix array construction (SA-IS induced sorting) over
// text plus an implicit end-of-text sentinel smaller than every real
// byte, per the data model: all suffixes of text+sentinel are distinct,
// so no tie-breaking convention is needed.
func Build(text []byte) (*Array, error) {
	n := len(text)

	if n > maxTextLen {
		return nil, fmt.Errorf("%w: input of %d bytes exceeds the addressable limit", ErrBuildInput, n)
	}

	freqs := make([]int, 256)
	bitutil.Histogram(text, freqs)

	alphabet := make([]byte, 0, 256)

	for b := 0; b < 256; b++ {
		if freqs[b] > 0 {
			alphabet = append(alphabet, byte(b))
		}
	}

	sort.Slice(alphabet, func(i, j int) bool { return alphabet[i] < alphabet[j] })

	rankOf := [256]int{}

	for i, b := range alphabet {
		rankOf[b] = i + 1 // rank 0 is reserved for the sentinel
	}

	k := len(alphabet) + 1
	total := n + 1

	data := make([]int, total)

	for i, b := range text {
		data[i] = rankOf[b]
	}

	data[n] = 0 // sentinel: smaller than every real rank

	sa := make([]int, total)

	if total == 1 {
		sa[0] = 0
	} else {
		computeSuffixArrayIS(data, sa, 0, total, k, false)
	}

	isa := make([]int, total)

	for i, p := range sa {
		isa[p] = i
	}

	l := make([]int, total)

	for i, p := range sa {
		prev := p - 1

		if prev < 0 {
			prev = total - 1
		}

		l[i] = data[prev]
	}

	cum := make([]int64, k+1)

	for _, sym := range data {
		cum[sym+1]++
	}

	for c := 1; c <= k; c++ {
		cum[c] += cum[c-1]
	}

	return &Array{sa: sa, isa: isa, l: l, alphabet: alphabet, cum: cum, n: n}, nil
}

// N returns the length of the original text (excluding the sentinel).
func (this *Array) N() int {
	return this.n
}

// K returns the alphabet size including the sentinel (real symbols get
// ranks [1, K), the sentinel is rank 0).
func (this *Array) K() int {
	return len(this.alphabet) + 1
}

// Alphabet returns the sorted distinct real bytes seen in the text.
// alphabet[i] has symbol rank i+1.
func (this *Array) Alphabet() []byte {
	return this.alphabet
}

// SA returns the suffix array of text+sentinel, length N()+1.
func (this *Array) SA() []int {
	return this.sa
}

// ISA returns the inverse suffix array, length N()+1.
func (this *Array) ISA() []int {
	return this.isa
}

// L returns the BWT column as symbol ranks in [0, K()), length N()+1.
func (this *Array) L() []int {
	return this.l
}

// Cum returns the cumulative-count table C[rank] = number of symbols in
// text+sentinel strictly smaller than rank, for rank in [0, K()], with
// C[K()] equal to the total row count N()+1 (a sentinel upper bound
// used when a caller needs "the next symbol's C value" for the last
// symbol in the alphabet).
func (this *Array) Cum() []int64 {
	return this.cum
}
