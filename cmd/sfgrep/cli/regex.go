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

	"github.com/spf13/cobra"

	"github.com/lefromage/succinct/regex"
)

func newRegexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regex <pattern>",
		Short: "Search using the literal/concat/union/star/class/dot regex dialect",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := openIndex()
			if err != nil {
				return err
			}

			matches, err := regex.Search(idx, args[0])
			if err != nil {
				return fmt.Errorf("compile pattern: %w", err)
			}

			for _, m := range matches {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%d\n", m.Offset, m.Length)
			}

			return nil
		},
	}
}
