// Package graph renders process definitions as Mermaid diagrams for the CLI
// and the introspection API.
package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sharetribe/txprocess/pkg/process"
)

// Overlay carries dynamic transaction state to highlight on the diagram.
type Overlay struct {
	CurrentState  string
	VisitedStates []string
}

// GenerateMermaid produces a Mermaid flowchart (graph TD) for a process
// definition. Shapes follow the state kind:
//   - initial state: ((circle))
//   - final state: [[double rectangle]]
//   - other states: [rectangle]
//
// Edge labels are the transition names with the "transition/" prefix
// stripped. An optional overlay highlights the current and visited states.
func GenerateMermaid(def *process.Definition, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, s := range def.States {
		safeID := sanitizeMermaidID(s.Name)

		opener, closer := "[", "]"
		switch {
		case s.Name == def.InitialState:
			opener, closer = "((", "))"
		case s.Final:
			opener, closer = "[[", "]]"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, s.Name, closer))

		// Map iteration order is random; sort for stable output.
		edges := make([]string, 0, len(s.Transitions))
		for transition := range s.Transitions {
			edges = append(edges, transition)
		}
		sort.Strings(edges)

		for _, transition := range edges {
			label := strings.TrimPrefix(transition, "transition/")
			safeTo := sanitizeMermaidID(s.Transitions[transition])
			sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", safeID, label, safeTo))
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		for _, name := range overlay.VisitedStates {
			if name == overlay.CurrentState {
				continue
			}
			sb.WriteString(fmt.Sprintf("    class %s visited;\n", sanitizeMermaidID(name)))
		}
		if overlay.CurrentState != "" {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", sanitizeMermaidID(overlay.CurrentState)))
		}
	}

	return sb.String()
}

// sanitizeMermaidID keeps node identifiers inside Mermaid's safe charset.
func sanitizeMermaidID(id string) string {
	return strings.NewReplacer("-", "_", "/", "_", " ", "_").Replace(id)
}
