package main

import (
	"fmt"
	"os"

	"github.com/runnerr0/tubereport/internal/cli"
)

var version = "0.1.0"

func main() {
	if err := cli.Run(version); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
