package rank

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildRandom(n int, seed int64) (*BitVector, []bool) {
	r := rand.New(rand.NewSource(seed))
	bv := NewBitVector(n)
	bits := make([]bool, n)

	for i := 0; i < n; i++ {
		if r.Intn(3) == 0 {
			bv.Set(i)
			bits[i] = true
		}
	}

	return bv, bits
}

func TestRank1Naive(t *testing.T) {
	n := 10000
	bv, bits := buildRandom(n, 1)
	d := NewDict(bv)

	naive := 0

	for i := 0; i <= n; i++ {
		require.Equal(t, int64(naive), d.Rank1(i), "i=%d", i)

		if i < n && bits[i] {
			naive++
		}
	}

	require.Equal(t, int64(naive), d.Ones())
}

func TestSelect1Naive(t *testing.T) {
	n := 5000
	bv, bits := buildRandom(n, 2)
	d := NewDict(bv)

	var positions []int

	for i, b := range bits {
		if b {
			positions = append(positions, i)
		}
	}

	for k, pos := range positions {
		require.Equal(t, pos, d.Select1(int64(k)))
	}
}

func TestSelect0Naive(t *testing.T) {
	n := 5000
	bv, bits := buildRandom(n, 4)
	d := NewDict(bv)

	var positions []int

	for i, b := range bits {
		if !b {
			positions = append(positions, i)
		}
	}

	for k, pos := range positions {
		require.Equal(t, pos, d.Select0(int64(k)))
	}
}

func TestRankSelectDuality(t *testing.T) {
	n := 3000
	bv, _ := buildRandom(n, 3)
	d := NewDict(bv)

	for k := int64(0); k < d.Ones(); k++ {
		pos := d.Select1(k)
		require.True(t, bv.Get(pos))
		require.Equal(t, k, d.Rank1(pos))
	}
}

func TestBlockBoundaries(t *testing.T) {
	// Exercise the superblock/block boundary arithmetic directly.
	n := superblockBits*3 + blockBits*2 + 17
	bv := NewBitVector(n)

	for i := 0; i < n; i += 7 {
		bv.Set(i)
	}

	d := NewDict(bv)

	naive := int64(0)

	for i := 0; i <= n; i++ {
		require.Equal(t, naive, d.Rank1(i))

		if i < n && i%7 == 0 {
			naive++
		}
	}
}
