package main

import (
	"errors"
	"fmt"
	"os"

	"bluewave/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		// Domain failures have already been reported through the
		// output formatter; anything else still needs printing.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) || exitErr.Code == cli.ExitCommandError {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
