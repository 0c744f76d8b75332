// Package editor finds the user's preferred text editor and opens files in it.
//
// The editor command is looked up from caller-supplied environment variables
// first, then $VISUAL and $EDITOR, and finally falls back to DefaultEditor
// ("vi", or "notepad.exe" on Windows). The command string is split with POSIX
// shell quoting rules so values like `code --wait` work.
//
// WhichEditor and OpenEditor only run executables found through $PATH. A bare
// command name is never resolved against the current directory, even on
// Windows where the OS would otherwise do so.
//
// Use Finder for tool-specific variables such as $MYTOOL_EDITOR:
//
//	f := editor.New(editor.WithExtraEnvVars("MYTOOL_EDITOR"))
//	outcome, err := f.OpenEditor("config.toml", true)
package editor
