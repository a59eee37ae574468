package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "patlog",
	Short: "Log pattern tooling",
	Long:  `Compile, inspect and preview patlog rendering patterns.`,
}

func main() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
