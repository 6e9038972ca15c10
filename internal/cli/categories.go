// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

type categoryJSON struct {
	Name    string `json:"name"`
	Pattern string `json:"pattern"`
}

func newCategoriesCmd(opts *options) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the extraction categories and their patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			extractor, err := opts.extractor(nil)
			if err != nil {
				return err
			}
			patterns := extractor.Registry().Patterns()

			if asJSON {
				out := make([]categoryJSON, 0, len(patterns))
				for _, p := range patterns {
					out = append(out, categoryJSON{Name: string(p.Category), Pattern: p.Expr()})
				}
				data, err := json.MarshalIndent(out, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal categories: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			for _, p := range patterns {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n  %s\n", p.Category, p.Expr())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output categories as JSON")
	return cmd
}
