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

// Package cli implements sfbench, a minimal stand-in for the "external
// partitioner" boundary spec.md describes but leaves out of core
// scope: it shards a text on fixed-size boundaries, builds one
// index.Index per shard, fans count/search out across shards
// concurrently and routes extract to its owning shard. It exists only to exercise the documented shard
// contract (a partition base offset and size per shard, routed and
// coordinate-translated by the caller, never by the core itself), not
// as a production benchmark harness.
package cli

import (
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/lefromage/succinct/index"
)

// shard is one partition: its base offset in the original text and
// the index built over just its bytes.
type shard struct {
	base int
	size int
	idx  *index.Index
}

// shardSet is the full partitioning of one text.
type shardSet struct {
	shards []shard
}

// buildShardSet splits text into shards of at most shardSize bytes
// each and builds an index.Index per shard concurrently, the same
// per-task goroutine fan-out the teacher's BWT inverse transform uses
// (transform/BWT.go's inverseBiPSIv2Task split across a sync.WaitGroup),
// generalized here with errgroup so a build failure in any shard
// aborts the whole set instead of silently losing a goroutine's error.
func buildShardSet(text []byte, shardSize, rate int) (*shardSet, error) {
	if shardSize <= 0 {
		return nil, fmt.Errorf("sfbench: invalid shard size %d", shardSize)
	}

	n := len(text)
	numShards := (n + shardSize - 1) / shardSize

	if numShards == 0 {
		numShards = 1
	}

	set := &shardSet{shards: make([]shard, numShards)}

	var g errgroup.Group

	for i := 0; i < numShards; i++ {
		i := i
		base := i * shardSize
		end := base + shardSize

		if end > n {
			end = n
		}

		g.Go(func() error {
			idx, err := index.Build(text[base:end], rate)
			if err != nil {
				return fmt.Errorf("build shard %d [%d:%d): %w", i, base, end, err)
			}

			set.shards[i] = shard{base: base, size: end - base, idx: idx}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return set, nil
}

// countAll sums count(p) across every shard concurrently. An
// occurrence that straddles a shard boundary lies in no shard and is
// not counted.
func (this *shardSet) countAll(p []byte) (int, error) {
	counts := make([]int, len(this.shards))
	var g errgroup.Group

	for i, s := range this.shards {
		i, s := i, s

		g.Go(func() error {
			counts[i] = s.idx.Count(p)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	total := 0
	for _, c := range counts {
		total += c
	}

	return total, nil
}

// searchAll runs search(p) on every shard concurrently and translates
// each shard-local offset back to a global offset in the original
// text (global = shard base + local). An occurrence that straddles a
// shard boundary lies in no shard and is not reported.
func (this *shardSet) searchAll(p []byte) ([]int, error) {
	perShard := make([][]int, len(this.shards))
	var g errgroup.Group

	for i, s := range this.shards {
		i, s := i, s

		g.Go(func() error {
			local := s.idx.Search(p)
			global := make([]int, len(local))

			for k, off := range local {
				global[k] = s.base + off
			}

			perShard[i] = global
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []int
	for _, s := range perShard {
		out = append(out, s...)
	}

	sort.Ints(out)
	return out, nil
}

// extractAt routes a global (offset, length) request to the single
// shard containing offset, per spec.md §6's shard-level collaborator
// contract: "a shard routes extract(o, l) to itself when
// O_p <= o < O_p + S_p and translates o to local coordinates before
// calling the core." A request spanning a shard boundary is truncated
// to that shard, exactly as index.Extract truncates at end of text —
// cross-shard concatenation is explicitly left to the caller (spec.md
// Open Question: "shard record-boundary extract").
func (this *shardSet) extractAt(offset, length int) ([]byte, error) {
	for _, s := range this.shards {
		if offset >= s.base && offset < s.base+s.size {
			return s.idx.Extract(offset-s.base, length)
		}
	}

	return nil, fmt.Errorf("sfbench: offset %d out of range", offset)
}
