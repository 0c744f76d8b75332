package cmd

import (
	"github.com/renato0307/findeditor/editor"
	"github.com/renato0307/findeditor/internal/logging"
	"github.com/renato0307/findeditor/internal/ports"
)

// EnvVar is always checked before any other editor variable
const EnvVar = "FINDEDITOR_EDITOR"

// Compile-time interface verification
var _ ports.EditorFinder = (*editor.Finder)(nil)

// NewFinder creates the editor finder used by all commands
func NewFinder(extraVars []string, ignoreEmpty bool) *editor.Finder {
	vars := make([]string, 0, len(extraVars)+1)
	vars = append(vars, EnvVar)
	vars = append(vars, extraVars...)

	return editor.New(
		editor.WithExtraEnvVars(vars...),
		editor.WithIgnoreEmpty(ignoreEmpty),
		editor.WithLogger(logging.Logger),
	)
}
