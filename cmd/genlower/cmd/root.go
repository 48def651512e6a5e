package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "genlower",
	Short: "Control-flow lowering pass for generator and async functions",
	Long:  `genlower lowers generator and async functions containing try/catch/finally into a flat, label-addressed state machine driven by the __generator/__awaiter runtime.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddGroup(&cobra.Group{
		ID:    "demo",
		Title: "Demonstration",
	})

	rootCmd.AddCommand(demoCmd)
}
