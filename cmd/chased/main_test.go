package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// Keep config lookups inside the test sandbox.
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSearchCommandRoutesQuery(t *testing.T) {
	out, err := execute(t, "search", "Blue", "Jeans")
	require.NoError(t, err)
	assert.Equal(t, "pants\tPants\n", out)
}

func TestSearchCommandNoMatch(t *testing.T) {
	_, err := execute(t, "search", "hats")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no category matches "hats"`)
}

func TestCatalogCommandFiltersByCategory(t *testing.T) {
	out, err := execute(t, "catalog", "--category", "jewelry")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "CATEGORY")
	for _, line := range lines[1:] {
		assert.True(t, strings.HasPrefix(line, "jewelry"), line)
	}
}

func TestCatalogCommandUnknownCategory(t *testing.T) {
	_, err := execute(t, "catalog", "-c", "hats")
	require.Error(t, err)
}

func TestCatalogCommandUsesConfiguredFile(t *testing.T) {
	dir := t.TempDir()
	catPath := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(catPath, []byte(`
categories:
  - id: hats
    label: Hats
    synonyms: [hat, cap]
products:
  - name: Bucket Hat
    price: "£12.00"
    category: hats
`), 0o644))
	cfgPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("catalog = \"catalog.yaml\"\n"), 0o644))

	out, err := execute(t, "--config", cfgPath, "search", "red cap")
	require.NoError(t, err)
	assert.Equal(t, "hats\tHats\n", out)
}
