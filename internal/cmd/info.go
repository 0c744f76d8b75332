package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kballard/go-shellquote"

	"github.com/renato0307/findeditor/internal/theme"
)

// InfoCmd shows every step of finding the editor
type InfoCmd struct{}

// Run executes the info command
func (i *InfoCmd) Run(cli *CLI) error {
	w := cli.Stdout()

	fmt.Fprintln(w, theme.TitleStyle.Render("Editor"))
	printRow(w, "Raw", theme.ValueStyle.Render(cli.Finder.EditorName()))

	command, err := cli.Finder.SplitEditorName()
	if err != nil {
		printRow(w, "Command", theme.ErrorStyle.Render(err.Error()))
		return describeError(err)
	}
	printRow(w, "Command", theme.ValueStyle.Render(command.Name))
	printRow(w, "Arguments", formatArgs(command.Args))

	resolved, err := cli.Finder.WhichEditor()
	if err != nil {
		printRow(w, "Resolved", theme.ErrorStyle.Render(err.Error()))
		return describeError(err)
	}
	printRow(w, "Resolved", theme.PathStyle.Render(resolved.Path))

	commandLine := shellquote.Join(append([]string{resolved.Path}, resolved.Args...)...)
	printRow(w, "Command line", theme.ValueStyle.Render(commandLine+" FILE"))

	return nil
}

func printRow(w io.Writer, label, value string) {
	fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, theme.LabelStyle.Render(label), value))
}

func formatArgs(args []string) string {
	if len(args) == 0 {
		return theme.MutedStyle.Render("(none)")
	}
	return theme.ValueStyle.Render(strings.Join(args, " "))
}
