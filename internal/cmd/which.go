package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
)

// WhichCmd resolves the editor executable
type WhichCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

type whichOutput struct {
	Path string   `json:"path"`
	Args []string `json:"args"`
}

// Run executes the which command
func (w *WhichCmd) Run(cli *CLI) error {
	resolved, err := cli.Finder.WhichEditor()
	if err != nil {
		return describeError(err)
	}

	out := whichOutput{Path: resolved.Path, Args: resolved.Args}
	if out.Args == nil {
		out.Args = []string{}
	}

	if w.Format == "json" {
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(cli.Stdout(), string(data))
		return nil
	}

	fmt.Fprintf(cli.Stdout(), "Path: %s\n", out.Path)
	fmt.Fprintf(cli.Stdout(), "Args: %s\n", strings.Join(out.Args, " "))
	return nil
}
