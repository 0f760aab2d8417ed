package index

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBwdSearchEmptyPatternMatchesFull(t *testing.T) {
	idx, err := Build([]byte("banana"), 4)
	require.NoError(t, err)

	r := idx.BwdSearch(nil)
	require.Equal(t, idx.full(), r)
	require.Equal(t, idx.Len(), r.Count())
}

func TestBwdSearchUnknownByteIsEmpty(t *testing.T) {
	idx, err := Build([]byte("banana"), 4)
	require.NoError(t, err)

	r := idx.BwdSearch([]byte("z"))
	require.True(t, r.Empty())
	require.Equal(t, 0, r.Count())
}

func TestFwdSearchAgreesWithBwdSearch(t *testing.T) {
	texts := []string{"mississippi", "abracadabra", "banana", "aaaaaa", "The quick brown fox"}
	patterns := []string{"i", "ss", "ana", "a", "The", "fox"}

	for _, text := range texts {
		idx, err := Build([]byte(text), 4)
		require.NoError(t, err)

		for _, p := range patterns {
			bwd := idx.BwdSearch([]byte(p))
			fwd := idx.FwdSearch([]byte(p))

			bwdOffsets := rangeOffsets(idx, bwd)
			fwdOffsets := rangeOffsets(idx, fwd)

			sort.Ints(bwdOffsets)
			sort.Ints(fwdOffsets)

			require.Equal(t, bwdOffsets, fwdOffsets, "text=%q pattern=%q", text, p)
		}
	}
}

func rangeOffsets(idx *Index, r Range) []int {
	out := make([]int, 0, r.Count())

	for i := r.Lo; i < r.Hi; i++ {
		out = append(out, lookupSA(idx, i))
	}

	return out
}

func TestContinueBwdSearchMatchesWholePattern(t *testing.T) {
	idx, err := Build([]byte("abracadabra"), 4)
	require.NoError(t, err)

	whole := idx.BwdSearch([]byte("abra"))

	half := idx.BwdSearch([]byte("ra"))
	continued := idx.ContinueBwdSearch([]byte("ab"), half)

	require.Equal(t, whole, continued)
}

func TestRangeSearchMatchesByteUnion(t *testing.T) {
	idx, err := Build([]byte("mississippi"), 4)
	require.NoError(t, err)

	r := idx.RangeSearch('a', 'm')
	offsets := rangeOffsets(idx, r)
	sort.Ints(offsets)

	var want []int
	for i, b := range []byte("mississippi") {
		if b >= 'a' && b <= 'm' {
			want = append(want, i)
		}
	}
	sort.Ints(want)

	require.Equal(t, want, offsets)
}

func TestRangeSearchFullByteRangeIsFull(t *testing.T) {
	idx, err := Build([]byte("banana"), 4)
	require.NoError(t, err)

	require.Equal(t, idx.full(), idx.RangeSearch(0x00, 0xFF))
}

func TestRangeSearchAbsentByteIsEmpty(t *testing.T) {
	idx, err := Build([]byte("banana"), 4)
	require.NoError(t, err)

	r := idx.RangeSearch('x', 'x')
	require.True(t, r.Empty())
}

func TestCountMatchesKnownSeedScenarios(t *testing.T) {
	idx, err := Build([]byte("mississippi"), 4)
	require.NoError(t, err)
	require.Equal(t, 2, idx.Count([]byte("issi")))

	idx, err = Build([]byte("abracadabra"), 4)
	require.NoError(t, err)
	require.Equal(t, 5, idx.Count([]byte("a")))

	idx, err = Build([]byte("aaaaaa"), 4)
	require.NoError(t, err)
	require.Equal(t, 5, idx.Count([]byte("aa")))

	idx, err = Build([]byte("The quick brown fox"), 4)
	require.NoError(t, err)
	require.Equal(t, 1, idx.Count([]byte("quick")))
}
