// SPDX-License-Identifier: Apache-2.0

// Package render turns extraction reports into human- or machine-readable output.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/gemaraproj/extract-mcp/internal/extraction"
)

// Renderer writes a report in one output format.
type Renderer interface {
	Name() string
	Render(w io.Writer, report *extraction.Report) error
}

var renderers = []Renderer{
	TextRenderer{},
	JSONRenderer{},
	YAMLRenderer{},
}

// ForFormat returns the renderer registered under name.
func ForFormat(name string) (Renderer, error) {
	for _, r := range renderers {
		if strings.EqualFold(r.Name(), name) {
			return r, nil
		}
	}
	return nil, fmt.Errorf("unknown output format %q (valid: %s)", name, strings.Join(Formats(), ", "))
}

// Formats returns the names of all registered renderers.
func Formats() []string {
	names := make([]string, len(renderers))
	for i, r := range renderers {
		names[i] = r.Name()
	}
	return names
}

// TextRenderer prints a header, then each category with one match per line.
type TextRenderer struct{}

func (TextRenderer) Name() string {
	return "text"
}

func (TextRenderer) Render(w io.Writer, report *extraction.Report) error {
	var b strings.Builder
	b.WriteString("----- Extraction Results -----\n\n")
	for _, e := range report.Entries() {
		fmt.Fprintf(&b, "%s:\n", e.Category)
		if len(e.Matches) == 0 {
			b.WriteString("  No matches found\n")
		}
		for _, m := range e.Matches {
			fmt.Fprintf(&b, "  %s\n", m)
		}
		b.WriteString(strings.Repeat("-", 40) + "\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

type JSONRenderer struct{}

func (JSONRenderer) Name() string {
	return "json"
}

func (JSONRenderer) Render(w io.Writer, report *extraction.Report) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	return nil
}

type YAMLRenderer struct{}

func (YAMLRenderer) Name() string {
	return "yaml"
}

func (YAMLRenderer) Render(w io.Writer, report *extraction.Report) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	_, err = w.Write(data)
	return err
}
