package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCandidates(t *testing.T) {
	exts := []string{".com", ".exe", ".bat", ".cmd"}

	tests := []struct {
		name     string
		path     string
		exts     []string
		expected []string
	}{
		{"no extensions", "bin/code", nil, []string{"bin/code"}},
		{"adds each extension", "bin/code", exts, []string{"bin/code.com", "bin/code.exe", "bin/code.bat", "bin/code.cmd"}},
		{"known extension kept", "bin/code.CMD", exts, []string{"bin/code.CMD"}},
		{"unknown extension extended", "bin/code.old", exts, []string{"bin/code.old.com", "bin/code.old.exe", "bin/code.old.bat", "bin/code.old.cmd"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, candidates(tt.path, tt.exts))
		})
	}
}
