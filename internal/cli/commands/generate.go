package commands

import (
	"github.com/spf13/cobra"

	"promptgen/internal/generator"
)

// GenerateCommand handles the generate command
type GenerateCommand struct {
	deps *Deps
}

// NewGenerateCommand creates a new GenerateCommand
func NewGenerateCommand(deps *Deps) *GenerateCommand {
	return &GenerateCommand{deps: deps}
}

// Execute runs the command
func (gc *GenerateCommand) Execute(cmd *cobra.Command, args []string) error {
	flags := gc.deps.Config.Flags

	summary, err := gc.deps.Generator.Manual(cmd.Context(), generator.ManualOptions{
		Repository:             flags.Repository,
		SourceFiles:            flags.SourceFiles,
		TestFile:               flags.TestFile,
		Language:               flags.Language,
		Framework:              flags.Framework,
		SourceFileContents:     flags.SourceFileContents,
		DependencyFileContents: flags.DependencyFileContents,
		TestExampleContent:     flags.TestExampleContent,
	})
	if err != nil {
		return err
	}

	gc.deps.Formatter.PrintSummary(summary)
	return nil
}
