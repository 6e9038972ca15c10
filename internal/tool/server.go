// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server exposes a Toolset over MCP.
type Server struct {
	mcpServer *mcp.Server
}

// NewServer creates an MCP server with all extraction tools registered.
func NewServer(version string, tools *Toolset) *Server {
	srv := mcp.NewServer(&mcp.Implementation{
		Name:    "extract-mcp",
		Version: version,
	}, nil)

	mcp.AddTool(srv, MetadataExtractStructuredData, tools.ExtractStructuredData)
	mcp.AddTool(srv, MetadataListCategories, tools.ListCategories)

	return &Server{mcpServer: srv}
}

// Run serves over stdio until ctx is cancelled or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// MCPServer returns the underlying MCP server.
func (s *Server) MCPServer() *mcp.Server {
	return s.mcpServer
}
