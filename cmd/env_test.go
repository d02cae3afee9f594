package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCommand(t *testing.T, dbPath string) (*cobra.Command, string) {
	t.Helper()
	dir := t.TempDir()
	logPath := filepath.Join(dir, "careerform.log")
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log:\n  file: "+logPath+"\n"), 0o644))

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("db", dbPath, "")
	cmd.Flags().String("config", cfgPath, "")
	cmd.Flags().String("log-level", "", "")
	return cmd, logPath
}

func TestSetupOpensStore(t *testing.T) {
	cmd, _ := testCommand(t, filepath.Join(t.TempDir(), "careerform.db"))

	e, err := setup(cmd)
	require.NoError(t, err)
	defer e.Close()
	assert.NotNil(t, e.drafts())
}

func TestSetupLogsStoreFailure(t *testing.T) {
	// A directory cannot be opened as a database file.
	cmd, logPath := testCommand(t, t.TempDir())

	_, err := setup(cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open store")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "setup failed")
	assert.Contains(t, string(data), "open store")
}
