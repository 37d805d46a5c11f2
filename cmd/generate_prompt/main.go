// Command generate_prompt appends one record built from explicitly listed files.
package main

import (
	"fmt"
	"os"

	"promptgen/internal/cli"
	"promptgen/internal/cli/commands"
)

var version = "dev"

func main() {
	var flags cli.Flags
	cmds := commands.NewCommands(&flags)

	rootCmd := cmds.AsRoot(cmds.GenerateCobra("generate_prompt"))
	rootCmd.Version = version
	rootCmd.SetArgs(cli.ExpandMultiValue(os.Args[1:], commands.MultiValueFlags))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
