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

// Package succinct defines the top level types shared across the
// self-indexing compressed text store: build/serialization progress
// events and the error kind constants from the error handling design.
//
// The actual data structures live in sub-packages: bitpack, rank,
// wavelet, sarray, sample, index, regex and shard.
package succinct

const (
	// ErrKindBuild signals a build-time error: input too large or a
	// non-positive sample rate. Construction aborts.
	ErrKindBuild = 1
	// ErrKindRange signals an out-of-range extract/search/compare call.
	ErrKindRange = 2
	// ErrKindRegexParse signals a malformed or unsupported regex pattern.
	ErrKindRegexParse = 3
	// ErrKindIO signals a serialize/deserialize failure; the partial
	// instance must be discarded by the caller.
	ErrKindIO = 4
	// ErrKindInvariant signals an internal invariant violation. Never
	// recoverable.
	ErrKindInvariant = 5
)

// Debug is the package-level switch for expensive internal invariant
// checks (rank/select cross-checks, LF/ψ duality). Off by default. No
// package in this module reads it, so setting it changes no build or
// query path.
var Debug = false
