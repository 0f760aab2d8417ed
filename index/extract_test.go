package index

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCharAtMatchesOriginalText(t *testing.T) {
	text := "mississippi"
	idx, err := Build([]byte(text), 4)
	require.NoError(t, err)

	for i := 0; i < len(text); i++ {
		require.Equal(t, text[i], idx.CharAt(i))
	}
}

func TestCharAtPanicsOutOfRange(t *testing.T) {
	idx, err := Build([]byte("banana"), 4)
	require.NoError(t, err)

	require.Panics(t, func() { idx.CharAt(-1) })
	require.Panics(t, func() { idx.CharAt(idx.Len()) })
}

func TestExtractMatchesSlice(t *testing.T) {
	text := "abracadabra"
	idx, err := Build([]byte(text), 4)
	require.NoError(t, err)

	got, err := idx.Extract(7, 4)
	require.NoError(t, err)
	require.Equal(t, "abra", string(got))

	got, err = idx.Extract(0, len(text))
	require.NoError(t, err)
	require.Equal(t, text, string(got))
}

func TestExtractClampsOverlongLength(t *testing.T) {
	text := "banana"
	idx, err := Build([]byte(text), 4)
	require.NoError(t, err)

	got, err := idx.Extract(3, 1000)
	require.NoError(t, err)
	require.Equal(t, text[3:], string(got))
}

func TestExtractRejectsBadOffset(t *testing.T) {
	idx, err := Build([]byte("banana"), 4)
	require.NoError(t, err)

	_, err = idx.Extract(-1, 2)
	require.ErrorIs(t, err, ErrRange)

	_, err = idx.Extract(100, 2)
	require.ErrorIs(t, err, ErrRange)

	_, err = idx.Extract(0, -1)
	require.ErrorIs(t, err, ErrRange)
}

func TestExtractUntilMatchesSplit(t *testing.T) {
	text := "The quick brown fox"
	idx, err := Build([]byte(text), 4)
	require.NoError(t, err)

	got, err := idx.ExtractUntil(0, ' ')
	require.NoError(t, err)
	require.Equal(t, "The", string(got))

	got, err = idx.ExtractUntil(4, ' ')
	require.NoError(t, err)
	require.Equal(t, "quick", string(got))

	got, err = idx.ExtractUntil(16, ' ')
	require.NoError(t, err)
	require.Equal(t, "fox", string(got))
}

func TestExtractFixedWidthIntegers(t *testing.T) {
	raw := []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	idx, err := Build(raw, 4)
	require.NoError(t, err)

	s, err := idx.ExtractShort(0)
	require.NoError(t, err)
	require.Equal(t, uint16(0x0001), s)

	i, err := idx.ExtractInt(0)
	require.NoError(t, err)
	require.Equal(t, uint32(0x00010203), i)

	l, err := idx.ExtractLong(0)
	require.NoError(t, err)
	require.Equal(t, uint64(0x0001020304050607), l)

	_, err = idx.ExtractLong(5)
	require.ErrorIs(t, err, ErrRange)
}

func TestCompareOrdering(t *testing.T) {
	idx, err := Build([]byte("banana"), 4)
	require.NoError(t, err)

	c, err := idx.Compare([]byte("ban"), 0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, c)

	c, err = idx.Compare([]byte("baz"), 0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, c)

	c, err = idx.Compare([]byte("bam"), 0, 0)
	require.NoError(t, err)
	require.Equal(t, -1, c)

	c, err = idx.Compare([]byte("xxban"), 0, 2)
	require.NoError(t, err)
	require.Equal(t, 0, c)
}
