package editor

import (
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
)

// Command is an editor command split into its name and arguments.
type Command struct {
	Name string
	Args []string
}

// String renders the command as a shell-quoted command line.
func (c Command) String() string {
	return shellquote.Join(append([]string{c.Name}, c.Args...)...)
}

// SplitEditorName splits a raw editor string into a command and its arguments
// using POSIX shell word rules. Quotes group words and are removed; nothing is
// expanded.
func SplitEditorName(raw string) (Command, error) {
	if strings.TrimSpace(raw) == "" {
		return Command{}, ErrEmptyEditorString
	}

	words, err := shellquote.Split(raw)
	if err != nil {
		return Command{}, fmt.Errorf("%w %q: %w", ErrMalformedEditorString, raw, err)
	}
	if len(words) == 0 || words[0] == "" {
		return Command{}, fmt.Errorf("%w: no command name in %q", ErrEmptyEditorString, raw)
	}

	return Command{
		Name: words[0],
		Args: words[1:],
	}, nil
}
