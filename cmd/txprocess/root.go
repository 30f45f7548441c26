package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "txprocess",
	Short: "Inspect and resolve marketplace transaction processes",
	Long: `txprocess interprets marketplace transaction lifecycles: it derives the
current state of a transaction from its transition history and computes the
UI-facing decisions (actions, finality, reviews) for a given viewer role.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}
