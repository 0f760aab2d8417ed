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

package regex

import "github.com/lefromage/succinct/index"

// Match is one occurrence of a pattern: the byte it starts at in the
// original text and the number of bytes it spans.
type Match struct {
	Offset int
	Length int
}

// eval returns every match of n anywhere in idx's text, as
// (offset, length) pairs, computed entirely in the SA-range domain:
// literal/class/dot resolve to a backward-search range, materialized
// via Locate; concat, union and star compose the resulting match sets
// directly rather than re-scanning text.
func eval(n *node, idx *index.Index) []Match {
	switch n.kind {
	case KindLiteral:
		return rangeToMatches(idx, idx.BwdSearch([]byte{n.b}), 1)

	case KindDot:
		return rangeToMatches(idx, idx.RangeSearch(0x00, 0xFF), 1)

	case KindClass:
		return rangeToMatches(idx, idx.RangeSearch(n.lo, n.hi), 1)

	case KindUnion:
		return dedupMatches(append(eval(n.left, idx), eval(n.right, idx)...))

	case KindConcat:
		return evalConcat(n, idx)

	case KindStar:
		return evalStar(n, idx)
	}

	panic("regex: unreachable node kind")
}

func rangeToMatches(idx *index.Index, r index.Range, length int) []Match {
	out := make([]Match, 0, r.Count())

	for row := r.Lo; row < r.Hi; row++ {
		out = append(out, Match{Offset: idx.Locate(row), Length: length})
	}

	return out
}

// groupByOffset indexes a match set by start offset, the join key
// concat and star use to extend a prefix match with a following one.
func groupByOffset(ms []Match) map[int][]int {
	g := make(map[int][]int, len(ms))

	for _, m := range ms {
		g[m.Offset] = append(g[m.Offset], m.Length)
	}

	return g
}

// evalConcat joins every match of the left operand to every match of
// the right operand that starts exactly where the left one ends. This
// is the general form of the spec's "verify by continueBwdSearch or
// compare" description: instead of re-verifying byte-by-byte, the
// right operand's own match set (already computed from range queries)
// is consulted by a direct offset lookup.
func evalConcat(n *node, idx *index.Index) []Match {
	left := eval(n.left, idx)
	rightByStart := groupByOffset(eval(n.right, idx))

	out := make([]Match, 0, len(left))

	for _, lm := range left {
		end := lm.Offset + lm.Length

		for _, rl := range rightByStart[end] {
			out = append(out, Match{Offset: lm.Offset, Length: lm.Length + rl})
		}
	}

	return dedupMatches(out)
}

// evalStar computes the zero-or-more closure of sub as a fixpoint over
// (offset, length) states: every offset starts with a zero-length
// (epsilon) match, and each state is extended by every match of sub
// starting where it leaves off, until no new state is reached. This
// terminates because the state space is bounded by (n+1)^2 and a
// zero-length extension of sub (a nullable sub-pattern) is discarded
// rather than followed, which would otherwise revisit the same state
// forever.
func evalStar(n *node, idx *index.Index) []Match {
	subByStart := groupByOffset(eval(n.sub, idx))

	seen := make(map[Match]bool)
	var frontier []Match

	for off := 0; off <= idx.Len(); off++ {
		m := Match{Offset: off, Length: 0}
		seen[m] = true
		frontier = append(frontier, m)
	}

	for len(frontier) > 0 {
		var next []Match

		for _, m := range frontier {
			for _, sl := range subByStart[m.Offset+m.Length] {
				if sl == 0 {
					continue
				}

				nm := Match{Offset: m.Offset, Length: m.Length + sl}

				if !seen[nm] {
					seen[nm] = true
					next = append(next, nm)
				}
			}
		}

		frontier = next
	}

	out := make([]Match, 0, len(seen))

	for m := range seen {
		out = append(out, m)
	}

	return out
}

func dedupMatches(ms []Match) []Match {
	seen := make(map[Match]bool, len(ms))
	out := make([]Match, 0, len(ms))

	for _, m := range ms {
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}

	return out
}
