//go:build !windows

// Package integration_test provides end-to-end tests for findeditor CLI commands.
// Tests compile the binary once via TestMain and run each test with an
// isolated FINDEDITOR_HOME and PATH to ensure test independence.
package integration_test

import (
	"log"
	"os"
	"testing"

	"github.com/renato0307/findeditor/test/integration/harness"
)

func TestMain(m *testing.M) {
	// Build binary once before all tests
	_, err := harness.BuildBinary()
	if err != nil {
		log.Fatalf("Failed to build binary: %v", err)
	}

	code := m.Run()

	harness.CleanupBinary()

	os.Exit(code)
}
