// Command auto_prompt scans a repository and appends one record per test file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"promptgen/internal/cli"
	"promptgen/internal/cli/commands"
)

var version = "dev"

func main() {
	var flags cli.Flags
	cmds := commands.NewCommands(&flags)

	rootCmd := cmds.AsRoot(cmds.AutoCobra("auto_prompt"))
	rootCmd.Version = version
	rootCmd.SetArgs(os.Args[1:])

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
