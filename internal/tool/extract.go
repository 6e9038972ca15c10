// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gemaraproj/extract-mcp/internal/cache"
	"github.com/gemaraproj/extract-mcp/internal/extraction"
)

// MetadataExtractStructuredData describes the extract_structured_data tool.
var MetadataExtractStructuredData = &mcp.Tool{
	Name: "extract_structured_data",
	Description: "Extract structured data items from unstructured text: email addresses, URLs, " +
		"phone numbers, credit card numbers, time expressions, HTML tags, hashtags and currency amounts. " +
		"Returns one entry per category in a fixed order, each with the matched substrings in the order " +
		"they appear in the text. Matches are shape-only: card numbers are not Luhn-checked and email " +
		"domains are not resolved. URLs run to the next whitespace, so trailing punctuation is kept, and " +
		"currency amounts must carry exactly two decimal digits.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"content"},
		"properties": map[string]interface{}{
			"content": map[string]interface{}{
				"type":        "string",
				"description": "Text to scan. May be empty.",
			},
			"categories": map[string]interface{}{
				"type":        "array",
				"description": "Optional subset of categories to extract. Defaults to all categories.",
				"items": map[string]interface{}{
					"type": "string",
					"enum": categoryNames(extraction.Default()),
				},
			},
		},
	},
}

// InputExtractStructuredData is the input for the ExtractStructuredData tool.
type InputExtractStructuredData struct {
	Content    string   `json:"content"`
	Categories []string `json:"categories,omitempty"`
}

// CategoryMatches holds the matches for one category.
type CategoryMatches struct {
	Category string   `json:"category"`
	Matches  []string `json:"matches"`
	Count    int      `json:"count"`
}

// OutputExtractStructuredData is the output for the ExtractStructuredData tool.
type OutputExtractStructuredData struct {
	// Results has one entry per requested category, in registry order.
	Results []CategoryMatches `json:"results"`
	// TotalMatches is the number of matches across all categories.
	TotalMatches int `json:"total_matches"`
}

// Toolset serves the extraction tools from a shared extractor and cache.
type Toolset struct {
	extractor *extraction.Extractor
	cache     *cache.ReportCache
	timeout   time.Duration
	logger    *slog.Logger
}

// NewToolset creates a Toolset. reportCache may be nil to disable caching and
// a zero timeout disables the per-call deadline.
func NewToolset(extractor *extraction.Extractor, reportCache *cache.ReportCache, timeout time.Duration) *Toolset {
	return &Toolset{
		extractor: extractor,
		cache:     reportCache,
		timeout:   timeout,
		logger:    slog.Default(),
	}
}

// ExtractStructuredData runs the extractor over the provided content.
func (t *Toolset) ExtractStructuredData(ctx context.Context, _ *mcp.CallToolRequest, input InputExtractStructuredData) (*mcp.CallToolResult, OutputExtractStructuredData, error) {
	extractor := t.extractor
	if len(input.Categories) > 0 {
		cats := make([]extraction.Category, len(input.Categories))
		for i, c := range input.Categories {
			cats[i] = extraction.Category(c)
		}
		sub, err := extractor.Registry().Subset(cats...)
		if err != nil {
			return nil, OutputExtractStructuredData{}, err
		}
		extractor = extractor.WithRegistry(sub)
	}

	report, err := t.extract(ctx, extractor, input.Content)
	if err != nil {
		return nil, OutputExtractStructuredData{}, err
	}

	return nil, newOutput(report), nil
}

func (t *Toolset) extract(ctx context.Context, extractor *extraction.Extractor, content string) (*extraction.Report, error) {
	var key string
	if t.cache != nil {
		key = cache.Key(extractor.Registry(), content)
		if report, ok := t.cache.Get(key); ok {
			t.logger.DebugContext(ctx, "report cache hit", "bytes", len(content))
			return report, nil
		}
	}

	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}
	report, err := extractor.Extract(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("extract_structured_data: %w", err)
	}

	if t.cache != nil {
		t.cache.Put(key, report)
	}
	return report, nil
}

func newOutput(report *extraction.Report) OutputExtractStructuredData {
	out := OutputExtractStructuredData{
		Results:      make([]CategoryMatches, 0, report.Len()),
		TotalMatches: report.Total(),
	}
	for _, e := range report.Entries() {
		out.Results = append(out.Results, CategoryMatches{
			Category: string(e.Category),
			Matches:  e.Matches,
			Count:    len(e.Matches),
		})
	}
	return out
}

func categoryNames(r *extraction.Registry) []string {
	cats := r.Categories()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	return names
}
