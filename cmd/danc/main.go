package main

import (
	"errors"
	"fmt"
	"os"

	"danc/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err != nil {
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) || !exitErr.Reported {
			fmt.Fprintln(os.Stderr, err)
		}
	}
	os.Exit(cli.GetExitCode(err))
}
