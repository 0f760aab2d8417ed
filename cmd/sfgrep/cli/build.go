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
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lefromage/succinct/index"
)

func newBuildCmd() *cobra.Command {
	var rate int
	var out string

	cmd := &cobra.Command{
		Use:   "build <text-file>",
		Short: "Build an index from a text file and write it to --out",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				return fmt.Errorf("--out is required")
			}

			text, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			idx, err := index.Build(text, rate, listeners(cmd.OutOrStdout())...)
			if err != nil {
				return fmt.Errorf("build index: %w", err)
			}

			if err := idx.WriteFile(out, listeners(cmd.OutOrStdout())...); err != nil {
				return fmt.Errorf("write index: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "built index over %d bytes, sigma=%d, rate=%d -> %s\n",
				idx.Len(), idx.Sigma(), idx.Rate(), out)
			return nil
		},
	}

	cmd.Flags().IntVar(&rate, "sample-rate", index.DefaultSampleRate, "SA/ISA sample rate (power of two)")
	cmd.Flags().StringVar(&out, "out", "", "output index file path (required)")
	return cmd
}
