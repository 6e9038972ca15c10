// SPDX-License-Identifier: Apache-2.0

// Package cli implements the extract-mcp command line.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/gemaraproj/extract-mcp/internal/config"
	"github.com/gemaraproj/extract-mcp/internal/extraction"
	"github.com/gemaraproj/extract-mcp/internal/logging"
)

// Version is set at build time with -ldflags "-X".
var Version = "dev"

// options is the state shared by all subcommands.
type options struct {
	configPath string
	logLevel   string

	cfg        *config.Config
	logCleanup func() error
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "extract-mcp",
		Short: "Extract structured data from unstructured text",
		Long: `Extracts email addresses, URLs, phone numbers, credit card numbers, time
expressions, HTML tags, hashtags and currency amounts from text.

Run "extract-mcp extract" on files or stdin, or "extract-mcp serve" to expose
the extractor as an MCP server over stdio.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return opts.load()
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return opts.close()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		newExtractCmd(opts),
		newCategoriesCmd(opts),
		newServeCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func (o *options) load() error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	cleanup, err := logging.Setup(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	o.cfg = cfg
	o.logCleanup = cleanup
	return nil
}

func (o *options) close() error {
	if o.logCleanup == nil {
		return nil
	}
	return o.logCleanup()
}

// extractor builds an extractor restricted to the configured categories plus
// any given on the command line.
func (o *options) extractor(extra []string) (*extraction.Extractor, error) {
	registry := extraction.Default()

	names := append([]string{}, o.cfg.Extraction.Categories...)
	names = append(names, extra...)
	if len(names) > 0 {
		cats := make([]extraction.Category, len(names))
		for i, n := range names {
			cats[i] = extraction.Category(n)
		}
		sub, err := registry.Subset(cats...)
		if err != nil {
			return nil, err
		}
		registry = sub
	}

	return extraction.NewExtractor(registry,
		extraction.WithMaxInputBytes(o.cfg.Extraction.MaxInputBytes),
		extraction.WithLogger(slog.Default()),
	), nil
}

func (o *options) timeout() (time.Duration, error) {
	return o.cfg.Extraction.TimeoutDuration()
}
