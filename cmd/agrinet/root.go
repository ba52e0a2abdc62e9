package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "agrinet",
	Short: "AgriNet serves the corn leaf disease detector and its website",
	Long: `AgriNet classifies photos of corn leaves into common diseases and serves the
marketing site that fronts the detector.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
