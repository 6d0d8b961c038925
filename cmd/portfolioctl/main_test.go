package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio/pkg/auth"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func sqliteConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	cfg := "storage:\n  driver: sqlite\nsqlite:\n  path: " + filepath.Join(dir, "portfolio.db") + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(cfg), 0o644))
	return dir
}

func TestHashPassword(t *testing.T) {
	out, err := run(t, "hash-password", "s3cret")
	require.NoError(t, err)
	assert.True(t, auth.CheckPasswordHash("s3cret", strings.TrimSpace(out)))
}

func TestResetRequiresConfirmation(t *testing.T) {
	_, err := run(t, "reset", "-c", sqliteConfigDir(t))
	assert.ErrorContains(t, err, "--yes")
}

func TestExportImportProfiles(t *testing.T) {
	dir := sqliteConfigDir(t)

	out, err := run(t, "profiles", "-c", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "default")

	legacy := filepath.Join(dir, "legacy.json")
	require.NoError(t, os.WriteFile(legacy, []byte(`{"profile":{"name":"Sam"}}`), 0o644))
	out, err = run(t, "import", legacy, "-c", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 1 profile(s)")

	exported := filepath.Join(dir, "out.json")
	_, err = run(t, "export", "-o", exported, "-c", dir)
	require.NoError(t, err)
	raw, err := os.ReadFile(exported)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"name": "Sam"`)
	assert.Contains(t, string(raw), `"schemaVersion": 2`)

	_, err = run(t, "activate", "missing", "-c", dir)
	assert.Error(t, err)
}
