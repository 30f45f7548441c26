package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sharetribe/txprocess"
	"github.com/sharetribe/txprocess/internal/presentation/graph"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <process>",
	Short: "Export a process graph visualization",
	Long: `Outputs a Mermaid diagram (graph TD) of the process state graph.
With --last-transition, the resulting current state is highlighted.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		lastTransition, _ := cmd.Flags().GetString("last-transition")

		engine, err := txprocess.New()
		if err != nil {
			fmt.Printf("Error initializing engine: %v\n", err)
			os.Exit(1)
		}

		proc, err := engine.Process(args[0])
		if err != nil {
			fmt.Printf("Error resolving process: %v\n", err)
			os.Exit(1)
		}

		var overlay *graph.Overlay
		if lastTransition != "" {
			state := proc.StateAfterTransition(lastTransition)
			if state == "" {
				fmt.Printf("Unknown transition %q for process %s\n", lastTransition, proc.Name)
				os.Exit(1)
			}
			overlay = &graph.Overlay{CurrentState: state}
		}

		fmt.Print(graph.GenerateMermaid(proc.Definition, overlay))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("last-transition", "", "Highlight the state reached after this transition")
}
