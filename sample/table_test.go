package sample

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lefromage/succinct/sarray"
)

func TestBuildSamplesMatchFullArrays(t *testing.T) {
	sa, err := sarray.Build([]byte("mississippi"))
	require.NoError(t, err)

	tbl, err := Build(sa, 4)
	require.NoError(t, err)

	require.Equal(t, 4, tbl.Rate())
	require.Equal(t, sa.N(), tbl.N())

	fullSA := sa.SA()
	fullISA := sa.ISA()

	for j := 0; j < tbl.NumSamples(); j++ {
		require.Equal(t, fullSA[j*4], tbl.SampleSA(j))
		require.Equal(t, fullISA[j*4], tbl.SampleISA(j))
	}
}

func TestBuildRejectsNonPowerOfTwoRate(t *testing.T) {
	sa, err := sarray.Build([]byte("banana"))
	require.NoError(t, err)

	_, err = Build(sa, 3)
	require.ErrorIs(t, err, sarray.ErrBuildInput)

	_, err = Build(sa, 0)
	require.ErrorIs(t, err, sarray.ErrBuildInput)

	_, err = Build(sa, -8)
	require.ErrorIs(t, err, sarray.ErrBuildInput)
}

func TestSamplingInvarianceOfRate(t *testing.T) {
	sa, err := sarray.Build([]byte("abracadabra"))
	require.NoError(t, err)

	t1, err := Build(sa, 1)
	require.NoError(t, err)

	t2, err := Build(sa, 8)
	require.NoError(t, err)

	require.Equal(t, sa.SA()[0], t1.SampleSA(0))
	require.Equal(t, sa.SA()[0], t2.SampleSA(0))
}

func TestWidthCoversSentinelOffset(t *testing.T) {
	sa, err := sarray.Build([]byte("aaaaaa"))
	require.NoError(t, err)

	tbl, err := Build(sa, 2)
	require.NoError(t, err)

	// The sentinel row's SA value is n itself; the packed width must be
	// able to hold it without truncation.
	found := false
	for j := 0; j < tbl.NumSamples(); j++ {
		if tbl.SampleSA(j) == sa.N() {
			found = true
		}
	}
	require.True(t, found)
}
