package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	return cmd.Execute()
}

func TestRunCmd_RequiresExactlyOneSource(t *testing.T) {
	t.Parallel()

	err := execute(t, "run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logs")

	err = execute(t, "run", "--logs", "./logs", "--period", "2021-03-14")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "none of the others can be")
}

func TestMigrateCmd_MissingConfig(t *testing.T) {
	t.Parallel()

	err := execute(t, "migrate", "--config", "/does/not/exist.yml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestMigrateCmd_UpAndDownOnSQLite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	configPath := filepath.Join(dir, "configs.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(`collection: scl
log:
  level: error
database:
  dialect: sqlite3
  dsn: `+filepath.Join(dir, "counter.db")+`
`), 0o644))

	require.NoError(t, execute(t, "migrate", "--config", configPath))
	require.NoError(t, execute(t, "migrate", "--config", configPath))
	require.NoError(t, execute(t, "migrate", "--down", "--config", configPath))
}
