package shard

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lefromage/succinct/index"
)

func buildFile(t *testing.T, text string, starts []int64) *File {
	t.Helper()

	idx, err := index.Build([]byte(text), 4)
	require.NoError(t, err)

	f, err := NewFile(idx, starts)
	require.NoError(t, err)

	return f
}

func TestNewFileRejectsInvalidStarts(t *testing.T) {
	idx, err := index.Build([]byte("banana"), 4)
	require.NoError(t, err)

	_, err = NewFile(idx, nil)
	require.ErrorIs(t, err, ErrRecordStarts)

	_, err = NewFile(idx, []int64{1, 4})
	require.ErrorIs(t, err, ErrRecordStarts)

	_, err = NewFile(idx, []int64{0, 3, 3})
	require.ErrorIs(t, err, ErrRecordStarts)

	_, err = NewFile(idx, []int64{0, 100})
	require.ErrorIs(t, err, ErrRecordStarts)
}

func TestRecordOfAndBounds(t *testing.T) {
	// "one;two;three" with records split on ';'
	text := "one;two;three"
	f := buildFile(t, text, []int64{0, 4, 8})

	require.Equal(t, 3, f.NumRecords())
	require.Equal(t, int64(0), f.RecordStart(0))
	require.Equal(t, int64(4), f.RecordStart(1))
	require.Equal(t, int64(8), f.RecordStart(2))
	require.Equal(t, int64(4), f.RecordEnd(0))
	require.Equal(t, int64(8), f.RecordEnd(1))
	require.Equal(t, int64(len(text)), f.RecordEnd(2))

	require.Equal(t, 0, f.RecordOf(0))
	require.Equal(t, 0, f.RecordOf(3))
	require.Equal(t, 1, f.RecordOf(4))
	require.Equal(t, 1, f.RecordOf(7))
	require.Equal(t, 2, f.RecordOf(8))
	require.Equal(t, 2, f.RecordOf(int64(len(text)-1)))
}

func TestSameRecordOverridesCoreDefault(t *testing.T) {
	text := "one;two;three"
	f := buildFile(t, text, []int64{0, 4, 8})

	require.True(t, f.SameRecord(0, 3))
	require.False(t, f.SameRecord(0, 4))
	require.False(t, f.SameRecord(4, 8))
	require.True(t, f.SameRecord(8, 12))

	// the embedded core default is unreachable through File once
	// overridden, but remains true for a plain index.Index.
	idx, err := index.Build([]byte(text), 4)
	require.NoError(t, err)
	require.True(t, idx.SameRecord(0, 12))
}

func TestFileDelegatesCoreQueries(t *testing.T) {
	text := "one;two;three"
	f := buildFile(t, text, []int64{0, 4, 8})

	require.Equal(t, 1, f.Count([]byte("two")))
	require.Equal(t, []int{4}, f.Search([]byte("two")))

	got, err := f.Extract(8, 5)
	require.NoError(t, err)
	require.Equal(t, "three", string(got))
}

func TestSingleRecordFile(t *testing.T) {
	f := buildFile(t, "banana", []int64{0})

	require.Equal(t, 1, f.NumRecords())
	require.True(t, f.SameRecord(0, 5))
	require.Equal(t, 0, f.RecordOf(0))
	require.Equal(t, 0, f.RecordOf(5))
}
