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

// Package cli builds sfgrep's command tree: one cobra.Command per verb
// (build, count, search, extract, regex) over a persisted index file,
// the same one-command-per-operation shape as the teacher's
// BlockCompressor/BlockDecompressor pair, but composed with cobra/pflag
// rather than a hand-rolled flag-switch loop.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	succinct "github.com/lefromage/succinct"
	"github.com/lefromage/succinct/index"
)

var (
	indexPath string
	verbose   bool
)

// newRootCmd assembles the command tree. Split out from Execute so
// tests can drive it directly with SetArgs/SetOut instead of going
// through os.Args and process exit codes.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sfgrep",
		Short: "Query a succinct self-indexing compressed text store",
		Long: `sfgrep builds and queries a compressed suffix-array / FM-index
self-index: count, search, extract and regex search directly on the
compressed representation, with no decompression step.`,
	}

	rootCmd.PersistentFlags().StringVar(&indexPath, "index", "", "path to the index file (required for every subcommand but build)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print build/serialize progress events")

	rootCmd.AddCommand(
		newBuildCmd(),
		newCountCmd(),
		newSearchCmd(),
		newExtractCmd(),
		newRegexCmd(),
	)

	return rootCmd
}

// Execute builds and runs the sfgrep command tree against os.Args.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func listeners(w io.Writer) []succinct.Listener {
	if !verbose {
		return nil
	}

	return []succinct.Listener{newConsoleListener(w)}
}

func openIndex() (*index.Index, error) {
	if indexPath == "" {
		return nil, fmt.Errorf("--index is required")
	}

	return index.ReadFile(indexPath)
}
