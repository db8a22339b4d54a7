package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) error {
	t.Helper()
	t.Cleanup(func() {
		for _, name := range []string{"fixture", "out", "database"} {
			generateCmd.Flags().Set(name, "")
			generateCmd.Flags().Lookup(name).Changed = false
		}
	})
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestGenerateWritesSeed(t *testing.T) {
	out := filepath.Join(t.TempDir(), "seed.sql")

	require.NoError(t, runCLI(t, "generate", "--out", out, "--database", "eventix_test"))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	content := string(data)
	assert.True(t, strings.HasPrefix(content, "USE eventix_test;\nGO\n"))
	assert.Contains(t, content, "('cat-001-1', 'evt-001', 'GENERAL', 'General Admission', 2990000, 30000, 15000);")
	assert.True(t, strings.HasSuffix(content, "\nGO"))
}

func TestGenerateFromFixture(t *testing.T) {
	dir := t.TempDir()
	fixturePath := filepath.Join(dir, "events.yaml")
	require.NoError(t, os.WriteFile(fixturePath, []byte(`
- id: evt-7
  title: Jazz by the Bay
  date: "2025-11-02"
  time: "18:00"
  ticketCategories:
    - id: cat-7-1
      name: GA
      display_name: General
      price: 800000
      total_quantity: 100
      available_quantity: 40
`), 0644))
	out := filepath.Join(dir, "seed.sql")

	require.NoError(t, runCLI(t, "generate", "--fixture", fixturePath, "--out", out))
	require.NoError(t, runCLI(t, "verify", out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "('cat-7-1', 'evt-7', 'GA', 'General', 800000, 100, 40);")
}

func TestGenerateRejectsInvalidFixture(t *testing.T) {
	dir := t.TempDir()
	fixturePath := filepath.Join(dir, "events.yaml")
	require.NoError(t, os.WriteFile(fixturePath, []byte(`
- id: evt-7
  date: "2025-11-02"
  time: "18:00"
  ticketCategories:
    - {id: c1, total_quantity: 1, available_quantity: 2}
`), 0644))
	out := filepath.Join(dir, "seed.sql")

	err := runCLI(t, "generate", "--fixture", fixturePath, "--out", out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid seed set")

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestGenerateMissingOutputDirectory(t *testing.T) {
	out := filepath.Join(t.TempDir(), "missing", "seed.sql")

	err := runCLI(t, "generate", "--out", out)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
