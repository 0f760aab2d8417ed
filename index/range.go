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

// Range is a half-open [Lo, Hi) span of SA rows, the unit every search
// operation narrows or combines.
type Range struct {
	Lo, Hi int
}

// Empty reports whether the range matches nothing.
func (r Range) Empty() bool {
	return r.Hi <= r.Lo
}

// Count returns the number of rows (== occurrences) in the range.
func (r Range) Count() int {
	if r.Empty() {
		return 0
	}

	return r.Hi - r.Lo
}

// full is the range of every real suffix, excluding the sentinel's own
// row (row 0, whose suffix is the sentinel itself at offset n).
func (this *Index) full() Range {
	return Range{1, this.total()}
}

// BwdSearch finds the SA range of every suffix with prefix P, by
// narrowing the range one byte at a time from the last byte of P to
// the first.
func (this *Index) BwdSearch(p []byte) Range {
	if len(p) == 0 {
		return this.full()
	}

	rank, ok := this.symbolRank(p[len(p)-1])
	if !ok {
		return Range{}
	}

	r := Range{int(this.cum[rank]), int(this.cum[rank+1])}

	for k := len(p) - 2; k >= 0 && !r.Empty(); k-- {
		rank, ok = this.symbolRank(p[k])
		if !ok {
			return Range{}
		}

		r = this.stepBwd(rank, r)
	}

	return r
}

// ContinueBwdSearch runs the same backward-narrowing loop as BwdSearch
// over the full pattern p, but starting from an already-narrowed range
// instead of the full range.
func (this *Index) ContinueBwdSearch(p []byte, r Range) Range {
	for k := len(p) - 1; k >= 0 && !r.Empty(); k-- {
		rank, ok := this.symbolRank(p[k])
		if !ok {
			return Range{}
		}

		r = this.stepBwd(rank, r)
	}

	return r
}

func (this *Index) stepBwd(rank int, r Range) Range {
	lo := int(this.cum[rank]) + this.tree.Rank(rank, r.Lo)
	hi := int(this.cum[rank]) + this.tree.Rank(rank, r.Hi)
	return Range{lo, hi}
}

// FwdSearch finds the SA range of every suffix with prefix p by
// extending a range rightward one byte at a time, starting from the
// full range. Dual of BwdSearch: same result set, opposite scan order.
func (this *Index) FwdSearch(p []byte) Range {
	r := this.full()

	for off, c := range p {
		if r.Empty() {
			return r
		}

		r = this.ContinueFwdSearch(c, r, off)
	}

	return r
}

// ContinueFwdSearch narrows r (a range of rows already known to share a
// common prefix of length offset) to the contiguous sub-range whose
// byte at text position SA[row]+offset equals c. Suffixes sharing a
// prefix are themselves SA-sorted by what follows that prefix, so this
// sub-range is contiguous and locatable by binary search.
func (this *Index) ContinueFwdSearch(c byte, r Range, offset int) Range {
	lo := sort.Search(r.Hi-r.Lo, func(i int) bool {
		return this.byteAtRow(r.Lo+i, offset) >= int(c)
	}) + r.Lo

	hi := sort.Search(r.Hi-r.Lo, func(i int) bool {
		return this.byteAtRow(r.Lo+i, offset) > int(c)
	}) + r.Lo

	return Range{lo, hi}
}

// byteAtRow returns the byte at offset positions past the start of the
// suffix at SA row, or -1 (less than every real byte) past the end of
// the text: a suffix that ends there is followed by the sentinel, so it
// sorts before every suffix that continues past the shared prefix.
func (this *Index) byteAtRow(row, offset int) int {
	p := lookupSA(this, row) + offset

	if p >= this.n {
		return -1
	}

	return int(this.CharAt(p))
}

// RangeSearch returns the SA range of every suffix whose first byte is
// in [loByte, hiByte]. This is the single-byte specialization BwdSearch
// reduces to for regex character classes and the dot metacharacter
// (spec: "character class / dot: union of single-byte ranges").
func (this *Index) RangeSearch(loByte, hiByte byte) Range {
	loIdx := sort.Search(len(this.alphabet), func(i int) bool { return this.alphabet[i] >= loByte })
	hiIdx := sort.Search(len(this.alphabet), func(i int) bool { return this.alphabet[i] > hiByte })

	lo := int(this.cum[loIdx+1])
	hi := int(this.cum[hiIdx+1])

	if hi < lo {
		hi = lo
	}

	return Range{lo, hi}
}

// Count returns the number of occurrences of p in the text.
func (this *Index) Count(p []byte) int {
	return this.BwdSearch(p).Count()
}

// Search returns every absolute byte offset at which p occurs, in no
// particular order.
func (this *Index) Search(p []byte) []int {
	r := this.BwdSearch(p)
	out := make([]int, 0, r.Count())

	for i := r.Lo; i < r.Hi; i++ {
		out = append(out, lookupSA(this, i))
	}

	return out
}

// SearchIterator returns a single-pass, lazily evaluated sequence of
// occurrence offsets for p. Calling the returned function again after
// it returns ok=false keeps returning ok=false; restart by calling
// SearchIterator again.
func (this *Index) SearchIterator(p []byte) func() (offset int, ok bool) {
	r := this.BwdSearch(p)
	cur := r.Lo

	return func() (int, bool) {
		if cur >= r.Hi {
			return 0, false
		}

		off := lookupSA(this, cur)
		cur++
		return off, true
	}
}
