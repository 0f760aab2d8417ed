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

import (
	"sort"

	"github.com/lefromage/succinct/index"
)

// Regex is a compiled pattern, reusable across any number of indexes
// or concurrent Search calls.
type Regex struct {
	pattern string
	root    *node
}

// Compile parses pattern into a reusable Regex. Returns a *ParseError
// on a malformed or unsupported pattern.
func Compile(pattern string) (*Regex, error) {
	root, err := parse(pattern)
	if err != nil {
		return nil, err
	}

	return &Regex{pattern: pattern, root: root}, nil
}

// String returns the original pattern text.
func (this *Regex) String() string {
	return this.pattern
}

// Search evaluates the pattern against idx and returns every match,
// canonicalized as greedy, leftmost and non-overlapping (spec's star
// overlap Open Question, decided: a match consumed at one offset is
// never re-offered as a starting point for the next attempt at a
// smaller offset, the conventional `grep -o` reading of repetition).
func (this *Regex) Search(idx *index.Index) []Match {
	raw := eval(this.root, idx)
	return canonicalize(raw, idx.Len())
}

// Search compiles pattern and evaluates it against idx in one call.
func Search(idx *index.Index, pattern string) ([]Match, error) {
	re, err := Compile(pattern)
	if err != nil {
		return nil, err
	}

	return re.Search(idx), nil
}

// canonicalize picks, at each text offset left to right, the longest
// match starting there (greedy) and skips straight to the end of it
// before considering the next offset (non-overlapping). Zero-length
// matches are never reported: a pattern that merely accepts the empty
// string is not an occurrence.
func canonicalize(ms []Match, n int) []Match {
	maxLenAt := make(map[int]int, len(ms))

	for _, m := range ms {
		if m.Length == 0 {
			continue
		}

		if cur, ok := maxLenAt[m.Offset]; !ok || m.Length > cur {
			maxLenAt[m.Offset] = m.Length
		}
	}

	var out []Match

	for cursor := 0; cursor <= n; {
		length, ok := maxLenAt[cursor]

		if !ok {
			cursor++
			continue
		}

		out = append(out, Match{Offset: cursor, Length: length})
		cursor += length
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Offset < out[j].Offset })

	return out
}
