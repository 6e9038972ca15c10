// SPDX-License-Identifier: Apache-2.0

package render_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gemaraproj/extract-mcp/internal/extraction"
	"github.com/gemaraproj/extract-mcp/internal/extraction/render"
)

func hashtagReport(t *testing.T) *extraction.Report {
	t.Helper()
	sub, err := extraction.Default().Subset(extraction.CategoryEmail, extraction.CategoryHashtag)
	require.NoError(t, err)
	report, err := extraction.NewExtractor(sub).Extract(context.Background(), "#one and #two")
	require.NoError(t, err)
	return report
}

func TestForFormat(t *testing.T) {
	tests := []struct {
		format   string
		wantName string
		wantErr  bool
	}{
		{format: "text", wantName: "text"},
		{format: "JSON", wantName: "json"},
		{format: "yaml", wantName: "yaml"},
		{format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			r, err := render.ForFormat(tt.format)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "valid: text, json, yaml")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, r.Name())
		})
	}
}

func TestTextRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.TextRenderer{}.Render(&buf, hashtagReport(t)))

	sep := strings.Repeat("-", 40)
	want := "----- Extraction Results -----\n\n" +
		"Email Addresses:\n  No matches found\n" + sep + "\n" +
		"Hashtags:\n  #one\n  #two\n" + sep + "\n"
	assert.Equal(t, want, buf.String())
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.JSONRenderer{}.Render(&buf, hashtagReport(t)))

	assert.JSONEq(t, `{"Email Addresses":[],"Hashtags":["#one","#two"]}`, buf.String())
	assert.Less(t, strings.Index(buf.String(), "Email Addresses"), strings.Index(buf.String(), "Hashtags"))

	var decoded map[string][]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.NotNil(t, decoded["Email Addresses"])
}

func TestJSONRenderer_KeepsTagsReadable(t *testing.T) {
	sub, err := extraction.Default().Subset(extraction.CategoryHTMLTag)
	require.NoError(t, err)
	report, err := extraction.NewExtractor(sub).Extract(context.Background(), "a <p> b")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.JSONRenderer{}.Render(&buf, report))
	assert.Contains(t, buf.String(), `"<p>"`)
}

func TestYAMLRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.YAMLRenderer{}.Render(&buf, hashtagReport(t)))

	var decoded map[string][]string
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, []string{"#one", "#two"}, decoded["Hashtags"])
	assert.Empty(t, decoded["Email Addresses"])
	assert.Less(t, strings.Index(buf.String(), "Email Addresses"), strings.Index(buf.String(), "Hashtags"))
}
