// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gemaraproj/extract-mcp/internal/extraction"
	"github.com/gemaraproj/extract-mcp/internal/extraction/render"
)

func newExtractCmd(opts *options) *cobra.Command {
	var (
		sample     bool
		format     string
		categories []string
	)

	cmd := &cobra.Command{
		Use:   "extract [file ...]",
		Short: "Extract structured data from text",
		Long: `Scans text for every known category and prints the matches.

Text is read from the named files, from stdin when no file (or "-") is given,
or from a built-in sample with --sample. Several files are extracted
concurrently; any failure aborts the whole run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if sample && len(args) > 0 {
				return fmt.Errorf("--sample cannot be combined with file arguments")
			}
			if format == "" {
				format = opts.cfg.Output.Format
			}
			renderer, err := render.ForFormat(format)
			if err != nil {
				return err
			}

			names, texts, err := readInputs(cmd, args, sample)
			if err != nil {
				return err
			}
			return runExtract(cmd, opts, renderer, categories, names, texts)
		},
	}

	cmd.Flags().BoolVar(&sample, "sample", false, "extract from the built-in sample text")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format (text, json, yaml); defaults to the configured format")
	cmd.Flags().StringSliceVarP(&categories, "category", "c", nil, "restrict extraction to a category (repeatable)")
	return cmd
}

func readInputs(cmd *cobra.Command, args []string, sample bool) ([]string, []string, error) {
	if sample {
		return []string{"sample"}, []string{extraction.SampleText()}, nil
	}
	if len(args) == 0 {
		args = []string{"-"}
	}

	names := make([]string, 0, len(args))
	texts := make([]string, 0, len(args))
	for _, name := range args {
		var (
			data []byte
			err  error
		)
		if name == "-" {
			data, err = io.ReadAll(cmd.InOrStdin())
		} else {
			// #nosec G304 - reading user-named files is the command's purpose
			data, err = os.ReadFile(name)
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		names = append(names, name)
		texts = append(texts, string(data))
	}
	return names, texts, nil
}

func runExtract(cmd *cobra.Command, opts *options, renderer render.Renderer, categories, names, texts []string) error {
	extractor, err := opts.extractor(categories)
	if err != nil {
		return err
	}
	timeout, err := opts.timeout()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	reports, err := extractor.ExtractBatch(ctx, texts, opts.cfg.Extraction.BatchConcurrency)
	if err != nil {
		return err
	}
	slog.Debug("extracted inputs", "count", len(reports), "format", renderer.Name())

	out := cmd.OutOrStdout()
	for i, report := range reports {
		if len(reports) > 1 {
			fmt.Fprintf(out, "==> %s <==\n", names[i])
		}
		if err := renderer.Render(out, report); err != nil {
			return err
		}
	}
	return nil
}
