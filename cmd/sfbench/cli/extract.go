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
	"strconv"

	"github.com/spf13/cobra"
)

func newExtractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract <offset> <length>",
		Short: "Extract a byte range, routed to the one shard that owns it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			offset, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid offset %q: %w", args[0], err)
			}

			length, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid length %q: %w", args[1], err)
			}

			set, err := loadShardSet()
			if err != nil {
				return err
			}

			out, err := set.extractAt(offset, length)
			if err != nil {
				return err
			}

			cmd.OutOrStdout().Write(out)
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
}
