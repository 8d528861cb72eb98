package main

import (
	"fmt"
	"os"

	"medical-store/internal/cli"
	"medical-store/internal/config"
)

func main() {
	if err := cli.NewRootCommand(config.Load()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
