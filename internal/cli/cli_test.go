// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the command tree with an isolated config directory.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("EXTRACT_CONFIG", "")
	t.Setenv("EXTRACT_FORMAT", "")

	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestExtractCmd_Sample(t *testing.T) {
	out, err := run(t, "", "extract", "--sample")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "----- Extraction Results -----\n\n"))
	assert.Contains(t, out, "Email Addresses:\n  john.doe@example.com\n  jane.smith@company.co.uk\n")
	assert.Contains(t, out, "Currency Amounts:\n  $19.99\n  $1,234.56\n")
	assert.Contains(t, out, strings.Repeat("-", 40))
}

func TestExtractCmd_StdinJSON(t *testing.T) {
	out, err := run(t, "reach me@example.com or #team", "extract", "--format", "json")
	require.NoError(t, err)

	var decoded map[string][]string
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Len(t, decoded, 8)
	assert.Equal(t, []string{"me@example.com"}, decoded["Email Addresses"])
	assert.Equal(t, []string{"#team"}, decoded["Hashtags"])
	assert.Equal(t, []string{}, decoded["URLs"])
}

func TestExtractCmd_CategoryFilter(t *testing.T) {
	out, err := run(t, "$20 and $19.99", "extract", "-c", "Currency Amounts", "-f", "text")
	require.NoError(t, err)

	assert.Contains(t, out, "Currency Amounts:\n  $19.99\n")
	assert.NotContains(t, out, "Email Addresses")
}

func TestExtractCmd_Files(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("#alpha"), 0o600))
	require.NoError(t, os.WriteFile(b, []byte("nothing here"), 0o600))

	out, err := run(t, "", "extract", "-c", "Hashtags", a, b)
	require.NoError(t, err)

	assert.Contains(t, out, "==> "+a+" <==")
	assert.Contains(t, out, "==> "+b+" <==")
	assert.Less(t, strings.Index(out, a), strings.Index(out, b))
	assert.Contains(t, out, "  #alpha\n")
	assert.Contains(t, out, "  No matches found\n")
}

func TestExtractCmd_Errors(t *testing.T) {
	tests := []struct {
		name        string
		stdin       string
		args        []string
		errContains string
	}{
		{
			name:        "unknown format",
			args:        []string{"extract", "--sample", "--format", "xml"},
			errContains: "unknown output format",
		},
		{
			name:        "unknown category",
			args:        []string{"extract", "--sample", "-c", "Postal Codes"},
			errContains: "unknown category",
		},
		{
			name:        "missing file",
			args:        []string{"extract", filepath.Join(os.TempDir(), "does-not-exist.txt")},
			errContains: "failed to read",
		},
		{
			name:        "sample with files",
			args:        []string{"extract", "--sample", "x.txt"},
			errContains: "--sample cannot be combined",
		},
		{
			name:        "invalid encoding",
			stdin:       "bad \xff",
			args:        []string{"extract"},
			errContains: "not valid UTF-8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.stdin, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestExtractCmd_InputLimitFromEnv(t *testing.T) {
	t.Setenv("EXTRACT_MAX_INPUT_BYTES", "4")
	_, err := run(t, "12345", "extract")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input exceeds maximum size")
}

func TestCategoriesCmd(t *testing.T) {
	out, err := run(t, "", "categories")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Email Addresses\n"))
	assert.Contains(t, out, "Hashtags\n  #[A-Za-z0-9_]+\n")

	out, err = run(t, "", "categories", "--json")
	require.NoError(t, err)
	var decoded []categoryJSON
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 8)
	assert.Equal(t, "Currency Amounts", decoded[7].Name)
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "extract-mcp version dev\n", out)
}

func TestRootCmd_BadConfig(t *testing.T) {
	_, err := run(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "categories")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config file")
}
