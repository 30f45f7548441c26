package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sharetribe/txprocess"
	"github.com/sharetribe/txprocess/internal/presentation/tui"
	"github.com/sharetribe/txprocess/pkg/registry"
)

var describeCmd = &cobra.Command{
	Use:   "describe <process>",
	Short: "Show a readable summary of a process",
	Long:  `Renders a markdown summary of the process: states, transitions, and classification sets.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
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

		render := tui.NewRenderer()
		out, err := render(describeMarkdown(proc))
		if err != nil {
			fmt.Printf("Error rendering summary: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}

func describeMarkdown(proc *registry.Process) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", proc.Name)
	fmt.Fprintf(&sb, "Alias: `%s` (unit types: %s)\n\n", proc.Alias, strings.Join(proc.UnitTypes, ", "))

	sb.WriteString("## States\n\n")
	for _, st := range proc.States {
		marker := ""
		switch {
		case st.Name == proc.InitialState:
			marker = " _(initial)_"
		case st.Final:
			marker = " _(final)_"
		}
		fmt.Fprintf(&sb, "- `%s`%s\n", st.Name, marker)
	}

	sb.WriteString("\n## Transitions\n\n")
	sb.WriteString("| Transition | Privileged | Refunded | Completed |\n")
	sb.WriteString("|---|---|---|---|\n")
	for _, t := range proc.Transitions {
		fmt.Fprintf(&sb, "| `%s` | %s | %s | %s |\n",
			t,
			checkmark(proc.IsPrivilegedTransition(t)),
			checkmark(proc.IsRefundedTransition(t)),
			checkmark(proc.IsCompletedTransition(t)))
	}

	if len(proc.AttentionStates) > 0 {
		sb.WriteString("\n## Provider attention\n\n")
		fmt.Fprintf(&sb, "The provider is expected to act at: %s\n", strings.Join(proc.AttentionStates, ", "))
	}

	return sb.String()
}

func checkmark(b bool) string {
	if b {
		return "✓"
	}
	return ""
}
