package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sharetribe/txprocess"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the supported transaction processes",
	Long:  `Prints every registered process with its alias and unit types, as YAML.`,
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := txprocess.New()
		if err != nil {
			fmt.Printf("Error initializing engine: %v\n", err)
			os.Exit(1)
		}

		out, err := yaml.Marshal(engine.SupportedProcesses())
		if err != nil {
			fmt.Printf("Error encoding process list: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(string(out))
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
