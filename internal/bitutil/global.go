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

// Package bitutil keeps the handful of teacher primitives still used
// outside the entropy coder: the order-0 byte histogram (vectorized 16
// bytes at a time) sarray.Build uses to derive the alphabet and
// cumulative-count table, and the integer log2 helpers. No package in
// this module calls the log2 helpers; bit-packed widths come from
// bitpack.BitWidth.
package bitutil

import "errors"

// LOG2 is an array with 256 elements: int(Math.log2(x+1))
var LOG2 = [...]uint32{
	0, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3, 3, 3, 3, 3, 4,
	4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 6,
	6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6,
	6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6,
	6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6,
	6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 8,
}

// Log2 returns a fast, integer rounded value for log2(x).
func Log2(x uint32) (uint32, error) {
	if x == 0 {
		return 0, errors.New("bitutil: cannot calculate log of a negative or null value")
	}

	return Log2NoCheck(x), nil
}

// Log2NoCheck does the same as Log2 minus the null check on input value.
func Log2NoCheck(x uint32) uint32 {
	var res uint32

	if x >= 1<<16 {
		x >>= 16
		res = 16
	} else {
		res = 0
	}

	if x >= 1<<8 {
		x >>= 8
		res += 8
	}

	return res + LOG2[x-1]
}

// Histogram computes the order-0 byte frequency histogram of block,
// unrolled 16 bytes at a time. freqs must have length >= 256.
func Histogram(block []byte, freqs []int) {
	end16 := len(block) & -16

	for i := 0; i < end16; {
		d := block[i : i+16]
		freqs[d[0]]++
		freqs[d[1]]++
		freqs[d[2]]++
		freqs[d[3]]++
		freqs[d[4]]++
		freqs[d[5]]++
		freqs[d[6]]++
		freqs[d[7]]++
		freqs[d[8]]++
		freqs[d[9]]++
		freqs[d[10]]++
		freqs[d[11]]++
		freqs[d[12]]++
		freqs[d[13]]++
		freqs[d[14]]++
		freqs[d[15]]++
		i += 16
	}

	for i := end16; i < len(block); i++ {
		freqs[block[i]]++
	}
}
