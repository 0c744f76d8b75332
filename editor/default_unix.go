//go:build !windows

package editor

// DefaultEditor is used when none of the checked environment variables is set.
const DefaultEditor = "vi"
