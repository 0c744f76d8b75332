package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearLoggingEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"FINDEDITOR_DEBUG", "FINDEDITOR_DEBUG_FILE", "FINDEDITOR_MAX_LOG_FILES"} {
		t.Setenv(key, "")
	}
}

func TestInitialize_DisabledByDefault(t *testing.T) {
	clearLoggingEnv(t)

	path, err := Initialize(false, "", DefaultMaxLogFiles)

	require.NoError(t, err)
	assert.Empty(t, path)
	assert.NotNil(t, Logger)
}

func TestInitialize_DebugFile(t *testing.T) {
	clearLoggingEnv(t)
	debugFile := filepath.Join(t.TempDir(), "nested", "debug.log")

	path, err := Initialize(false, debugFile, DefaultMaxLogFiles)
	require.NoError(t, err)
	assert.Equal(t, debugFile, path)

	Logger.Debug("Editor resolved", "path", "/usr/bin/vi")

	data, err := os.ReadFile(debugFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Debug logging initialized")
	assert.Contains(t, string(data), "/usr/bin/vi")
}

func TestInitialize_InheritsDebugFileFromEnv(t *testing.T) {
	clearLoggingEnv(t)
	debugFile := filepath.Join(t.TempDir(), "inherited.log")
	t.Setenv("FINDEDITOR_DEBUG_FILE", debugFile)

	path, err := Initialize(false, "", DefaultMaxLogFiles)

	require.NoError(t, err)
	assert.Equal(t, debugFile, path)
}

func TestInitialize_DebugUsesLogDir(t *testing.T) {
	clearLoggingEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_STATE_HOME", filepath.Join(home, "state"))
	t.Setenv("LOCALAPPDATA", filepath.Join(home, "appdata"))

	path, err := Initialize(true, "", DefaultMaxLogFiles)
	require.NoError(t, err)

	logDir, err := GetLogDir()
	require.NoError(t, err)
	assert.Equal(t, logDir, filepath.Dir(path))
	assert.True(t, strings.HasSuffix(path, ".log"))
	assert.FileExists(t, path)
}

func TestRotateLogs(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	for i, name := range []string{"a.log", "b.log", "c.log", "d.log"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, nil, 0644))
		modTime := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(path, modTime, modTime))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), nil, 0644))

	require.NoError(t, rotateLogs(dir, 3))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"c.log", "d.log", "keep.txt"}, names)
}

func TestRotateLogs_UnderLimit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.log"), nil, 0644))

	require.NoError(t, rotateLogs(dir, 5))

	assert.FileExists(t, filepath.Join(dir, "a.log"))
}
