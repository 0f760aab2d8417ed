package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()

	cmd := newRootCmd()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	return out.String()
}

func TestBuildThenQueryRoundTrip(t *testing.T) {
	dir := t.TempDir()

	textPath := filepath.Join(dir, "text.txt")
	require.NoError(t, os.WriteFile(textPath, []byte("abracadabra"), 0644))

	idxPath := filepath.Join(dir, "text.idx")

	run(t, "build", textPath, "--out", idxPath, "--sample-rate", "4")
	require.FileExists(t, idxPath)

	countOut := run(t, "count", "abra", "--index", idxPath)
	require.Equal(t, "2\n", countOut)

	searchOut := run(t, "search", "a", "--index", idxPath)
	lines := strings.Fields(searchOut)
	require.Len(t, lines, 5)

	extractOut := run(t, "extract", "7", "4", "--index", idxPath)
	require.Equal(t, "abra\n", extractOut)

	regexOut := run(t, "regex", "a.a", "--index", idxPath)
	require.NotEmpty(t, regexOut)
}

func TestCountRequiresIndexFlag(t *testing.T) {
	cmd := newRootCmd()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"count", "a"})

	err := cmd.ExecuteContext(context.Background())
	require.Error(t, err)
}

func TestBuildRequiresOutFlag(t *testing.T) {
	dir := t.TempDir()
	textPath := filepath.Join(dir, "text.txt")
	require.NoError(t, os.WriteFile(textPath, []byte("banana"), 0644))

	cmd := newRootCmd()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"build", textPath})

	err := cmd.ExecuteContext(context.Background())
	require.Error(t, err)
}
