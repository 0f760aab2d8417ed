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

package index

import "sort"

// lookupLF and lookupPsi are free functions, not methods: neither owns
// the other, both are pure functions over the shared BWT column,
// cumulative-count table and wavelet tree.

// lookupLF maps row i to the row whose suffix starts one position
// earlier in the text: LF(i) = C[access(L,i)] + rank_{access(L,i)}(L,i).
func lookupLF(idx *Index, i int) int {
	sym := idx.tree.Access(i)
	return int(idx.cum[sym]) + idx.tree.Rank(sym, i)
}

// lookupPsi is the inverse of lookupLF: it maps row i to the row whose
// suffix starts one position later in the text. Finds the symbol c
// with cum[c] <= i < cum[c+1] by binary search, then returns the
// (i-cum[c])-th (0-indexed) occurrence of c in the column.
func lookupPsi(idx *Index, i int) int {
	c := symbolRankContaining(idx, i)
	return idx.tree.Select(c, i-int(idx.cum[c]))
}

// symbolRankContaining returns the symbol rank c such that
// cum[c] <= i < cum[c+1].
func symbolRankContaining(idx *Index, i int) int {
	k := len(idx.cum) - 1 // alphabet size including the sentinel
	return sort.Search(k, func(c int) bool { return idx.cum[c+1] > i })
}

// lookupSA recovers SA[i] by walking lookupLF until a sampled row (a
// multiple of Rate()) is reached. Samples are kept by row, so the
// number of steps is not bounded by Rate(): it is however far the LF
// walk from row i runs before it meets such a row.
func lookupSA(idx *Index, i int) int {
	rate := idx.samples.Rate()
	steps := 0

	for i%rate != 0 {
		i = lookupLF(idx, i)
		steps++
	}

	val := idx.samples.SampleSA(i / rate)
	return (val + steps) % idx.total()
}

// lookupISA recovers ISA[p] for a text offset p in [0, n] (n included,
// for the sentinel row used internally by Extract's end-of-text case)
// by walking lookupPsi forward from the nearest sample at or before p.
func lookupISA(idx *Index, p int) int {
	rate := idx.samples.Rate()
	base := p / rate
	row := idx.samples.SampleISA(base)

	for rem := p - base*rate; rem > 0; rem-- {
		row = lookupPsi(idx, row)
	}

	return row
}

// Locate materializes a single SA row into its source-text offset.
// BwdSearch, RangeSearch and their fwd/continue variants all return
// Range values without resolving rows to offsets; Locate is the one
// step that turns a row a caller already holds (e.g. from regex range
// composition) into a concrete position, the same lookupSA step Search
// applies to every row in a range.
func (this *Index) Locate(row int) int {
	return lookupSA(this, row)
}
