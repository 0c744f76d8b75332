package cmd

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/findeditor/editor"
	"github.com/renato0307/findeditor/internal/config"
	"github.com/renato0307/findeditor/internal/logging"
)

func clearCLIEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"FINDEDITOR_DEBUG", "FINDEDITOR_DEBUG_FILE", "FINDEDITOR_MAX_LOG_FILES",
		"FINDEDITOR_IGNORE_EMPTY", EnvVar, "VISUAL", "EDITOR", "SETTINGS_EDITOR", "FLAG_EDITOR",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestAfterApply_AppliesSettings(t *testing.T) {
	clearCLIEnv(t)
	ignore := true
	maxLogs := 7

	cli := &CLI{MaxLogFiles: logging.DefaultMaxLogFiles, ExtraVar: []string{"FLAG_EDITOR"}}
	cli.SetSettings(&config.Settings{
		ExtraEnvVars: config.StringArray{"SETTINGS_EDITOR"},
		IgnoreEmpty:  &ignore,
		MaxLogFiles:  &maxLogs,
	})

	require.NoError(t, cli.AfterApply())

	assert.Equal(t, []string{"FLAG_EDITOR", "SETTINGS_EDITOR"}, cli.ExtraVar)
	assert.True(t, cli.IgnoreEmpty)
	assert.Equal(t, 7, cli.MaxLogFiles)
	require.NotNil(t, cli.Finder)
}

func TestAfterApply_FlagsBeatSettings(t *testing.T) {
	clearCLIEnv(t)
	maxLogs := 7

	cli := &CLI{MaxLogFiles: 3}
	cli.SetSettings(&config.Settings{MaxLogFiles: &maxLogs})

	require.NoError(t, cli.AfterApply())

	assert.Equal(t, 3, cli.MaxLogFiles)
}

func TestAfterApply_IgnoreEmptyPrecedence(t *testing.T) {
	enabled := true
	disabled := false

	tests := []struct {
		name     string
		flag     bool
		env      string
		setEnv   bool
		settings *bool
		expected bool
	}{
		{name: "default", expected: false},
		{name: "settings only", settings: &enabled, expected: true},
		{name: "env false beats settings true", env: "false", setEnv: true, settings: &enabled, expected: false},
		{name: "env true beats settings false", env: "true", setEnv: true, settings: &disabled, expected: true},
		{name: "flag beats env false", flag: true, env: "false", setEnv: true, expected: true},
		{name: "unparsable env leaves default", env: "maybe", setEnv: true, settings: &enabled, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearCLIEnv(t)
			if tt.setEnv {
				t.Setenv("FINDEDITOR_IGNORE_EMPTY", tt.env)
			}

			cli := &CLI{MaxLogFiles: logging.DefaultMaxLogFiles, IgnoreEmpty: tt.flag}
			cli.SetSettings(&config.Settings{IgnoreEmpty: tt.settings})

			require.NoError(t, cli.AfterApply())

			assert.Equal(t, tt.expected, cli.IgnoreEmpty)
		})
	}
}

func TestAfterApply_EnvDisablesIgnoreEmptyFromSettings(t *testing.T) {
	clearCLIEnv(t)
	t.Setenv("FINDEDITOR_IGNORE_EMPTY", "false")
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "nano")
	ignore := true

	cli := &CLI{MaxLogFiles: logging.DefaultMaxLogFiles}
	cli.SetSettings(&config.Settings{IgnoreEmpty: &ignore})

	require.NoError(t, cli.AfterApply())

	assert.False(t, cli.IgnoreEmpty)
	assert.Equal(t, "", cli.Finder.EditorName())
}

func TestNewFinder_Precedence(t *testing.T) {
	clearCLIEnv(t)
	t.Setenv("EDITOR", "from-editor")
	t.Setenv("FLAG_EDITOR", "from-flag")

	f := NewFinder([]string{"FLAG_EDITOR"}, true)
	assert.Equal(t, "from-flag", f.EditorName())

	t.Setenv(EnvVar, "from-findeditor")
	assert.Equal(t, "from-findeditor", f.EditorName())
}

func TestNewFinder_IgnoreEmpty(t *testing.T) {
	clearCLIEnv(t)
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "from-editor")

	assert.Equal(t, "from-editor", NewFinder(nil, true).EditorName())
	assert.Equal(t, "", NewFinder(nil, false).EditorName())

	_, err := NewFinder(nil, false).SplitEditorName()
	assert.ErrorIs(t, err, editor.ErrEmptyEditorString)
}
