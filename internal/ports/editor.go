package ports

import "github.com/renato0307/findeditor/editor"

// EditorFinder finds and opens the user's editor
type EditorFinder interface {
	// EditorName returns the raw editor command
	EditorName() string
	// SplitEditorName splits the editor command into name and arguments
	SplitEditorName() (editor.Command, error)
	// WhichEditor resolves the editor executable through PATH
	WhichEditor() (editor.Resolved, error)
	// OpenEditor opens file in the editor, optionally waiting for it to exit
	OpenEditor(file string, wait bool) (editor.Outcome, error)
}
