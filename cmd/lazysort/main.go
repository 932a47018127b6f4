package main

import (
	"os"

	"github.com/KasperOmsK/lazysort/cmd"
)

func main() {
	rootCmd := cmd.NewRootCommand()

	versionCmd := cmd.NewVersionCommand()
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
