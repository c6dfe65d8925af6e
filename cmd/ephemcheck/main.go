package main

import (
	"fmt"
	"os"

	"github.com/roach88/ephemcheck/internal/cli"

	// Engine adapters register themselves at init time. Link the adapter
	// for the ephemeris library under test here, e.g.:
	//   _ "example.com/ephem-adapter"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
