package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sharetribe/txprocess"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the engine version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(txprocess.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
