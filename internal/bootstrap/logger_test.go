package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2026-01-%02d_00-00-00", i+1))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o600))

	cleanupLogs(dir, 9)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var logs []string
	for _, e := range entries {
		if filepath.Ext(e.Name()) == LogFileExtension {
			logs = append(logs, e.Name())
		}
	}
	require.Len(t, logs, 9)
	assert.Equal(t, fmt.Sprintf(LogFileNamePattern, "2026-01-04_00-00-00"), logs[0], "oldest files removed first")
	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
}

func TestSetupLogger(t *testing.T) {
	t.Run("stdout only", func(t *testing.T) {
		f, err := SetupLogger(testConfig())
		require.NoError(t, err)
		assert.Nil(t, f)
	})

	t.Run("with log directory", func(t *testing.T) {
		cfg := testConfig()
		cfg.LogDir = filepath.Join(t.TempDir(), "logs")

		f, err := SetupLogger(cfg)
		require.NoError(t, err)
		require.NotNil(t, f)
		t.Cleanup(func() { f.Close() })

		info, err := f.Stat()
		require.NoError(t, err)
		assert.Positive(t, info.Size(), "startup messages written to session file")
	})
}
