package cmd

import "fmt"

// NameCmd prints the raw editor command
type NameCmd struct{}

// Run executes the name command
func (n *NameCmd) Run(cli *CLI) error {
	fmt.Fprintln(cli.Stdout(), cli.Finder.EditorName())
	return nil
}
