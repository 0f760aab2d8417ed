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

// Package shard adds a record-id map on top of a succinct index: a
// sorted array of record-start offsets, and a SameRecord that actually
// consults it instead of the core's always-true default. Nothing else
// about the index changes; shard is a thin coordinate-lookup layer.
package shard

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lefromage/succinct/bitpack"
	"github.com/lefromage/succinct/index"
)

// ErrRecordStarts reports a malformed record-start array: empty, not
// beginning at offset 0, not strictly increasing, or running past the
// end of the underlying text.
var ErrRecordStarts = errors.New("shard: invalid record starts")

// File wraps an *index.Index with a sorted record-start offset table.
// Every index.Index query method is available directly through
// embedding; File adds RecordOf, NumRecords, RecordStart and RecordEnd,
// and overrides SameRecord.
type File struct {
	*index.Index
	starts *bitpack.Array
}

// NewFile builds a File over idx given the sorted, strictly increasing
// byte offsets at which each record begins. recordStarts[0] must be 0.
func NewFile(idx *index.Index, recordStarts []int64) (*File, error) {
	if len(recordStarts) == 0 || recordStarts[0] != 0 {
		return nil, fmt.Errorf("%w: must start at offset 0", ErrRecordStarts)
	}

	for i := 1; i < len(recordStarts); i++ {
		if recordStarts[i] <= recordStarts[i-1] {
			return nil, fmt.Errorf("%w: not strictly increasing at index %d", ErrRecordStarts, i)
		}
	}

	if last := recordStarts[len(recordStarts)-1]; last > int64(idx.Len()) {
		return nil, fmt.Errorf("%w: start %d past end of text (len=%d)", ErrRecordStarts, last, idx.Len())
	}

	width := bitpack.BitWidth(idx.Len())

	arr, err := bitpack.NewArray(len(recordStarts), width)
	if err != nil {
		return nil, fmt.Errorf("shard: %w", err)
	}

	for i, s := range recordStarts {
		arr.Set(i, uint64(s))
	}

	return &File{Index: idx, starts: arr}, nil
}

// NumRecords returns the number of records in the file.
func (this *File) NumRecords() int {
	return this.starts.Len()
}

// RecordStart returns the byte offset at which record i begins.
func (this *File) RecordStart(i int) int64 {
	return int64(this.starts.Get(i))
}

// RecordEnd returns the byte offset one past the end of record i (the
// start of record i+1, or the text length for the last record).
func (this *File) RecordEnd(i int) int64 {
	if i+1 < this.starts.Len() {
		return int64(this.starts.Get(i + 1))
	}

	return int64(this.Len())
}

// RecordOf returns the index of the record containing offset: the
// largest i such that RecordStart(i) <= offset.
func (this *File) RecordOf(offset int64) int {
	n := this.starts.Len()

	i := sort.Search(n, func(i int) bool { return int64(this.starts.Get(i)) > offset })
	return i - 1
}

// SameRecord overrides the core index's always-true default: two
// offsets are in the same record only if RecordOf agrees for both.
func (this *File) SameRecord(a, b int64) bool {
	return this.RecordOf(a) == this.RecordOf(b)
}
