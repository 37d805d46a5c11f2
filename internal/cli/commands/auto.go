package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"promptgen/internal/generator"
	"promptgen/internal/ui"
)

// AutoCommand handles the auto command
type AutoCommand struct {
	deps *Deps
}

// NewAutoCommand creates a new AutoCommand
func NewAutoCommand(deps *Deps) *AutoCommand {
	return &AutoCommand{deps: deps}
}

// Execute runs the command
func (ac *AutoCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg := ac.deps.Config

	// Discover tests
	entries, err := ac.deps.Generator.Discover(cfg.GetRepoPath(), cfg.Flags.NameFilter)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		ac.deps.Logger.Warn("no test files found", zap.String("repo_path", cfg.GetRepoPath()))
		color.Yellow("No test files found")
		return nil
	}

	if cfg.ShowProgress {
		ac.deps.Generator.SetProgress(ui.NewProgressBar(len(entries)))
	}

	summary, err := ac.deps.Generator.Auto(cmd.Context(), entries, generator.AutoOptions{
		Repository:       cfg.Flags.Repository,
		Language:         cfg.Flags.Language,
		Framework:        cfg.Flags.Framework,
		IncludeAssistant: cfg.IncludeAssistantMessage(),
	})
	if err != nil {
		return err
	}

	ac.deps.Formatter.PrintSummary(summary)
	return nil
}
