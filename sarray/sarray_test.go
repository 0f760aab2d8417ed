package sarray

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func naiveSuffixArray(t []byte) []int {
	n := len(t) + 1
	suffixes := make([]string, n)

	for i := 0; i < n; i++ {
		if i < len(t) {
			suffixes[i] = string(t[i:]) + "\x00"
		} else {
			suffixes[i] = "\x00"
		}
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	sort.Slice(idx, func(a, b int) bool { return suffixes[idx[a]] < suffixes[idx[b]] })
	return idx
}

func requireValidSuffixArray(t *testing.T, text []byte) *Array {
	a, err := Build(text)
	require.NoError(t, err)
	require.Equal(t, len(text), a.N())
	require.Equal(t, naiveSuffixArray(text), a.SA())

	for i, p := range a.SA() {
		require.Equal(t, i, a.ISA()[p])
	}

	return a
}

func TestBuildKnownStrings(t *testing.T) {
	for _, s := range []string{
		"mississippi",
		"abracadabra",
		"banana",
		"aaaaaa",
		"The quick brown fox",
		"a",
		"",
	} {
		requireValidSuffixArray(t, []byte(s))
	}
}

func TestBuildRandom(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for trial := 0; trial < 20; trial++ {
		n := r.Intn(300)
		text := make([]byte, n)

		for i := range text {
			text[i] = byte('a' + r.Intn(4))
		}

		requireValidSuffixArray(t, text)
	}
}

func TestBWTColumnMatchesRotation(t *testing.T) {
	text := []byte("abracadabra")
	a, err := Build(text)
	require.NoError(t, err)

	total := len(text) + 1
	rankOf := map[byte]int{}

	for i, b := range a.Alphabet() {
		rankOf[b] = i + 1
	}

	for i, p := range a.SA() {
		prev := p - 1
		if prev < 0 {
			prev = total - 1
		}

		var want int
		if prev == len(text) {
			want = 0
		} else {
			want = rankOf[text[prev]]
		}

		require.Equal(t, want, a.L()[i], "position %d", i)
	}
}

func TestCumulativeCounts(t *testing.T) {
	a, err := Build([]byte("banana"))
	require.NoError(t, err)

	hist := make([]int64, a.K())
	for _, sym := range a.L() {
		hist[sym]++
	}

	cum := a.Cum()
	require.Equal(t, a.K()+1, len(cum))

	running := int64(0)
	for c := 0; c < a.K(); c++ {
		require.Equal(t, running, cum[c], "rank %d", c)
		running += hist[c]
	}
	require.Equal(t, running, cum[a.K()])
	require.Equal(t, int64(len(a.L())), cum[a.K()])
}

func TestAlphabetIsSortedAndDistinct(t *testing.T) {
	a, err := Build([]byte("mississippi"))
	require.NoError(t, err)

	alpha := a.Alphabet()
	require.Equal(t, []byte("imps"), alpha)

	for i := 1; i < len(alpha); i++ {
		require.Less(t, alpha[i-1], alpha[i])
	}
}
