//go:build windows

package editor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutableExts(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		expected []string
	}{
		{"unset uses defaults", nil, []string{".com", ".exe", ".bat", ".cmd"}},
		{"empty uses defaults", map[string]string{"PATHEXT": ""}, []string{".com", ".exe", ".bat", ".cmd"}},
		{"only separators uses defaults", map[string]string{"PATHEXT": ";;"}, []string{".com", ".exe", ".bat", ".cmd"}},
		{"lower-cased", map[string]string{"PATHEXT": ".EXE;.Cmd"}, []string{".exe", ".cmd"}},
		{"missing dot added", map[string]string{"PATHEXT": "EXE;.bat"}, []string{".exe", ".bat"}},
		{"empty entries skipped", map[string]string{"PATHEXT": ".exe;;.ps1;"}, []string{".exe", ".ps1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, executableExts(envFrom(tt.env)))
		})
	}
}

func TestLookPath_PathExt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fakeeditor.cmd"), []byte("@exit 0\r\n"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder.exe"), 0755))

	f := New(WithLookupEnv(envFrom(map[string]string{
		"PATH":    dir,
		"PATHEXT": ".EXE;.CMD",
	})))

	path, err := f.lookPath("fakeeditor")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "fakeeditor.cmd"), path)

	_, err = f.lookPath("folder")
	assert.ErrorIs(t, err, ErrCommandNotFound)
}
