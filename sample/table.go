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

// Package sample stores the suffix array and its inverse at a fixed
// sample rate, bit-packed, so that any SA/ISA entry can be recovered
// by LF/ψ steps from a stored sample instead of keeping the full
// O(n log n)-bit arrays around. An ISA entry takes at most rate-1 ψ
// steps; an SA entry takes as many LF steps as it needs to reach a
// sampled row, which is not bounded by rate.
package sample

import (
	"fmt"

	"github.com/lefromage/succinct/bitpack"
	"github.com/lefromage/succinct/sarray"
)

// Table holds sampledSA[j] = SA[j*rate] and sampledISA[k] = ISA[k*rate]
// over the suffix array of a text of length n (plus its sentinel row),
// bit-packed at width ceil(log2(n+1)).
type Table struct {
	sampledSA  *bitpack.Array
	sampledISA *bitpack.Array
	rate       int
	n          int
}

// Build samples sa at the given rate. rate must be a positive power of
// two; any other rate is rejected with ErrBuildInput.
func Build(sa *sarray.Array, rate int) (*Table, error) {
	if rate <= 0 || rate&(rate-1) != 0 {
		return nil, fmt.Errorf("%w: sample rate %d is not a positive power of two", sarray.ErrBuildInput, rate)
	}

	n := sa.N()
	total := n + 1 // rows in SA/ISA, including the sentinel row
	numSamples := (total + rate - 1) / rate

	width := bitpack.BitWidth(n)

	sampledSA, err := bitpack.NewArray(numSamples, width)
	if err != nil {
		return nil, err
	}

	sampledISA, err := bitpack.NewArray(numSamples, width)
	if err != nil {
		return nil, err
	}

	fullSA := sa.SA()
	fullISA := sa.ISA()

	for j := 0; j < numSamples; j++ {
		sampledSA.Set(j, uint64(fullSA[j*rate]))
		sampledISA.Set(j, uint64(fullISA[j*rate]))
	}

	return &Table{sampledSA: sampledSA, sampledISA: sampledISA, rate: rate, n: n}, nil
}

// FromArrays reconstructs a Table from already-decoded bit-packed
// arrays, used by Deserialize.
func FromArrays(sampledSA, sampledISA *bitpack.Array, rate, n int) *Table {
	return &Table{sampledSA: sampledSA, sampledISA: sampledISA, rate: rate, n: n}
}

// Rate returns the sample spacing.
func (this *Table) Rate() int {
	return this.rate
}

// N returns the text length the samples were built over.
func (this *Table) N() int {
	return this.n
}

// NumSamples returns the number of stored samples in each table.
func (this *Table) NumSamples() int {
	return this.sampledSA.Len()
}

// SA returns the underlying bit-packed sampledSA array.
func (this *Table) SA() *bitpack.Array {
	return this.sampledSA
}

// ISA returns the underlying bit-packed sampledISA array.
func (this *Table) ISA() *bitpack.Array {
	return this.sampledISA
}

// SampleSA returns sampledSA[j] = SA[j*rate].
func (this *Table) SampleSA(j int) int {
	return int(this.sampledSA.Get(j))
}

// SampleISA returns sampledISA[k] = ISA[k*rate].
func (this *Table) SampleISA(k int) int {
	return int(this.sampledISA.Get(k))
}
