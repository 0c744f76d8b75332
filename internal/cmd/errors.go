package cmd

import (
	"fmt"

	"github.com/renato0307/findeditor/editor"
)

// ExitCodeError asks main to exit with Code without printing anything more
type ExitCodeError struct {
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("editor exited with status %d", e.Code)
}

// describeError prefixes err with its editor error kind, if it has one
func describeError(err error) error {
	if kind := editor.KindOf(err); kind != editor.KindUnknown {
		return fmt.Errorf("%s: %w", kind, err)
	}
	return err
}
