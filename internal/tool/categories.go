// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// MetadataListCategories describes the list_categories tool.
var MetadataListCategories = &mcp.Tool{
	Name:        "list_categories",
	Description: "List the data categories extract_structured_data recognises, in report order, with the regular expression used for each.",
	InputSchema: map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	},
}

type InputListCategories struct{}

type CategoryInfo struct {
	Name    string `json:"name"`
	Pattern string `json:"pattern"`
}

type OutputListCategories struct {
	Categories []CategoryInfo `json:"categories"`
}

// ListCategories returns the categories of the toolset's registry.
func (t *Toolset) ListCategories(_ context.Context, _ *mcp.CallToolRequest, _ InputListCategories) (*mcp.CallToolResult, OutputListCategories, error) {
	patterns := t.extractor.Registry().Patterns()
	out := OutputListCategories{Categories: make([]CategoryInfo, 0, len(patterns))}
	for _, p := range patterns {
		out.Categories = append(out.Categories, CategoryInfo{Name: string(p.Category), Pattern: p.Expr()})
	}
	return nil, out, nil
}
