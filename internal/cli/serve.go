// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gemaraproj/extract-mcp/internal/cache"
	"github.com/gemaraproj/extract-mcp/internal/tool"
)

func newServeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server on stdio",
		Long: `Start a Model Context Protocol server over stdio exposing the
extract_structured_data and list_categories tools.

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "extract": {
        "command": "/path/to/extract-mcp",
        "args": ["serve"]
      }
    }
  }`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			extractor, err := opts.extractor(nil)
			if err != nil {
				return err
			}
			timeout, err := opts.timeout()
			if err != nil {
				return err
			}
			reportCache, err := cache.NewReportCache(opts.cfg.Cache.MaxItems)
			if err != nil {
				return fmt.Errorf("failed to create report cache: %w", err)
			}

			server := tool.NewServer(Version, tool.NewToolset(extractor, reportCache, timeout))
			slog.Info("starting extract MCP server on stdio", "version", Version)
			if err := server.Run(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("server error: %w", err)
			}
			slog.Info("server stopped")
			return nil
		},
	}
}
