package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/renato0307/findeditor/editor"
)

// SplitCmd splits an editor command into its name and arguments
type SplitCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Raw    string `arg:"" optional:"" help:"Editor command to split (defaults to the looked-up editor)"`
}

type splitOutput struct {
	Command string   `json:"command"`
	Args    []string `json:"args"`
}

// Run executes the split command
func (s *SplitCmd) Run(cli *CLI) error {
	var (
		command editor.Command
		err     error
	)
	if s.Raw != "" {
		command, err = editor.SplitEditorName(s.Raw)
	} else {
		command, err = cli.Finder.SplitEditorName()
	}
	if err != nil {
		return describeError(err)
	}

	out := splitOutput{Command: command.Name, Args: command.Args}
	if out.Args == nil {
		out.Args = []string{}
	}

	if s.Format == "json" {
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(cli.Stdout(), string(data))
		return nil
	}

	fmt.Fprintf(cli.Stdout(), "Command: %s\n", out.Command)
	fmt.Fprintf(cli.Stdout(), "Args: %s\n", strings.Join(out.Args, " "))
	return nil
}
