package main

import (
	"fmt"
	"os"

	"tiktok-transcript/cmd/t2t/cmd"
	"tiktok-transcript/internal/config"
)

func main() {
	// Load .env early so every subcommand sees the same environment. Missing
	// files only warn; system-wide variables may already be set.
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "configuration warning: %v\n", err)
	}

	cmd.Execute()
}
