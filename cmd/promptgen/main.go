package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"promptgen/internal/cli"
	"promptgen/internal/cli/commands"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "promptgen",
		Short: "Fine-tuning prompt generator for unit tests",
		Long: `Scan repositories for test files and their source and dependency files, and append
conversation records in JSON Lines format for fine-tuning a model to write unit tests.`,
		Version: version,
	}

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Register all commands
	commands.NewCommands(&flags).Register(rootCmd)
	rootCmd.SetArgs(cli.ExpandMultiValue(os.Args[1:], commands.MultiValueFlags))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Execute root command
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
