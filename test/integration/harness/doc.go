// Package harness provides utilities for integration testing the findeditor CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - FINDEDITOR_HOME: Isolated per test (temp directory)
//   - FINDEDITOR_DEBUG: Disabled to reduce noise
//   - PATH: Only the per-test bin directory holding fake editors
//   - VISUAL, EDITOR, FINDEDITOR_EDITOR: Removed unless set with SetEnv
package harness
