package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// ListCommand handles the list command
type ListCommand struct {
	deps *Deps
}

// NewListCommand creates a new ListCommand
func NewListCommand(deps *Deps) *ListCommand {
	return &ListCommand{deps: deps}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg := lc.deps.Config
	root := cfg.GetRepoPath()

	entries, err := lc.deps.Generator.Discover(root, cfg.Flags.NameFilter)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		color.Yellow("No test files found")
		return nil
	}

	showCases, err := cmd.Flags().GetBool("test-cases")
	if err != nil {
		return err
	}
	return lc.deps.Formatter.PrintTestList(root, entries, showCases)
}
