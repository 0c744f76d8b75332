package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own
// FINDEDITOR_HOME and PATH.
type TestEnvironment struct {
	BinDir  string
	Home    string
	WorkDir string

	extraEnv map[string]string
	tb       testing.TB
}

// NewTestEnvironment creates an isolated test environment.
// The temp directories are automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		BinDir:   tb.TempDir(),
		Home:     tb.TempDir(),
		WorkDir:  tb.TempDir(),
		extraEnv: make(map[string]string),
		tb:       tb,
	}
}

// SetEnv sets an extra environment variable for commands run in this environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	e.extraEnv[key] = value
}

// WriteFakeEditor writes an executable shell script named name into BinDir
// and returns its path.
func (e *TestEnvironment) WriteFakeEditor(name, body string) string {
	e.tb.Helper()
	return e.WriteScript(e.BinDir, name, body)
}

// WriteScript writes an executable shell script into dir and returns its path.
func (e *TestEnvironment) WriteScript(dir, name, body string) string {
	e.tb.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755); err != nil {
		e.tb.Fatalf("Failed to write script %s: %v", path, err)
	}
	return path
}

// WriteSettings writes settings.json into the isolated FINDEDITOR_HOME.
func (e *TestEnvironment) WriteSettings(content string) {
	e.tb.Helper()
	if err := os.WriteFile(filepath.Join(e.Home, "settings.json"), []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out FINDEDITOR_* and editor variables and sets:
//   - FINDEDITOR_HOME to the temp directory
//   - FINDEDITOR_DEBUG to empty string (disables debug logging)
//   - PATH to BinDir
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+3+len(e.extraEnv))

	overrideKeys := map[string]bool{
		"EDITOR": true,
		"PATH":   true,
		"VISUAL": true,
	}
	for k := range e.extraEnv {
		overrideKeys[k] = true
	}

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "FINDEDITOR_") || overrideKeys[key] {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"FINDEDITOR_HOME="+e.Home,
		"FINDEDITOR_DEBUG=",
	)
	if _, ok := e.extraEnv["PATH"]; !ok {
		env = append(env, "PATH="+e.BinDir)
	}

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}
