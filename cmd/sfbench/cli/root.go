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
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lefromage/succinct/index"
)

var (
	textPath  string
	shardSize int
	rate      int
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sfbench",
		Short: "Shard a text file and fan queries out across per-shard indexes",
		Long: `sfbench is a minimal external partitioner: it splits a text file on
fixed-size byte boundaries, builds one index.Index per shard, and
dispatches count/search across shards concurrently, routing extract to
the shard that owns the offset. It exists
to exercise the documented shard boundary contract, not as a
production benchmark harness.`,
	}

	rootCmd.PersistentFlags().StringVar(&textPath, "text", "", "path to the text file to shard (required)")
	rootCmd.PersistentFlags().IntVar(&shardSize, "shard-size", 1<<20, "maximum bytes per shard")
	rootCmd.PersistentFlags().IntVar(&rate, "sample-rate", index.DefaultSampleRate, "SA/ISA sample rate per shard (power of two)")

	rootCmd.AddCommand(
		newCountCmd(),
		newSearchCmd(),
		newExtractCmd(),
	)

	return rootCmd
}

// Execute builds and runs the sfbench command tree against os.Args.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func loadShardSet() (*shardSet, error) {
	if textPath == "" {
		return nil, fmt.Errorf("--text is required")
	}

	text, err := os.ReadFile(textPath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", textPath, err)
	}

	return buildShardSet(text, shardSize, rate)
}
