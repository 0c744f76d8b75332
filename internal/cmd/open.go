package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/renato0307/findeditor/internal/logging"
)

// OpenCmd opens a file in the editor
type OpenCmd struct {
	File string `arg:"" help:"File to edit"`
	Wait bool   `help:"Wait for the editor to exit" default:"true" negatable:""`
}

// Run executes the open command
func (o *OpenCmd) Run(cli *CLI) error {
	if !stdinIsTerminal() {
		fmt.Fprintln(cli.Stderr(), "Warning: standard input is not a terminal, interactive editors may not work")
	}

	outcome, err := cli.Finder.OpenEditor(o.File, o.Wait)
	if err != nil {
		return describeError(err)
	}

	if !outcome.Waited {
		fmt.Fprintf(cli.Stdout(), "Started editor (pid %d)\n", outcome.Pid)
		return nil
	}

	logging.Logger.Info("Editor finished", "file", o.File, "exit_code", outcome.ExitCode)
	if !outcome.Success() {
		code := outcome.ExitCode
		if code <= 0 {
			code = 1
		}
		return &ExitCodeError{Code: code}
	}
	return nil
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
