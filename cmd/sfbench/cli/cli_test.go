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

package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
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

func writeText(t *testing.T, text string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "text.txt")
	require.NoError(t, os.WriteFile(path, []byte(text), 0644))
	return path
}

func TestCountSearchExtractAcrossShards(t *testing.T) {
	path := writeText(t, "abracadabraabracadabraabracadabra")

	// "abra" occurs at 0, 7, 11, 18, 22 and 29; the one at 7 straddles
	// the shard boundary at 9, so no shard reports it.
	countOut := run(t, "count", "abra", "--text", path, "--shard-size", "9", "--sample-rate", "4")
	require.Equal(t, "5\n", countOut)

	searchOut := run(t, "search", "abra", "--text", path, "--shard-size", "9", "--sample-rate", "4")
	lines := strings.Fields(searchOut)
	require.Len(t, lines, 5)

	prev := -1
	for _, l := range lines {
		v, err := strconv.Atoi(l)
		require.NoError(t, err)
		require.Greater(t, v, prev)
		prev = v
	}

	extractOut := run(t, "extract", "0", "4", "--text", path, "--shard-size", "9", "--sample-rate", "4")
	require.Equal(t, "abra\n", extractOut)
}

func TestCountRequiresTextFlag(t *testing.T) {
	cmd := newRootCmd()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"count", "a"})

	err := cmd.ExecuteContext(context.Background())
	require.Error(t, err)
}

func TestExtractOutOfRangeReturnsError(t *testing.T) {
	path := writeText(t, "short text")

	cmd := newRootCmd()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"extract", "1000", "4", "--text", path, "--shard-size", "4", "--sample-rate", "4"})

	err := cmd.ExecuteContext(context.Background())
	require.Error(t, err)
}
