package commands

import (
	"github.com/spf13/cobra"
)

// StatsCommand handles the stats command
type StatsCommand struct {
	deps *Deps
}

// NewStatsCommand creates a new StatsCommand
func NewStatsCommand(deps *Deps) *StatsCommand {
	return &StatsCommand{deps: deps}
}

// Execute runs the command
func (sc *StatsCommand) Execute(cmd *cobra.Command, args []string) error {
	records, err := sc.deps.Storage.Load()
	if err != nil {
		return err
	}

	sc.deps.Formatter.PrintStats(sc.deps.Storage.Path(), records)
	return nil
}
