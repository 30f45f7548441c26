package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sharetribe/txprocess"
	"github.com/sharetribe/txprocess/internal/logging"
	mcpAdapter "github.com/sharetribe/txprocess/pkg/adapters/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server on stdio",
	Long: `Exposes the decision engine to agent tooling over the Model Context
Protocol: process introspection tools and per-process graph resources.
Logs go to stderr; stdout carries the protocol stream.`,
	Run: func(cmd *cobra.Command, args []string) {
		debug, _ := cmd.Flags().GetBool("debug")

		logger := logging.NewNop()
		if debug {
			logger = logging.New(slog.LevelDebug)
		}

		engine, err := txprocess.New(txprocess.WithLogger(logger))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing engine: %v\n", err)
			os.Exit(1)
		}

		if err := mcpAdapter.NewServer(engine).ServeStdio(); err != nil {
			fmt.Fprintf(os.Stderr, "MCP server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
