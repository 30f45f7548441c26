// Package validator checks process graphs for the structural invariants the
// engine relies on when interpreting transition history.
package validator

import (
	"fmt"
	"strings"

	"github.com/sharetribe/txprocess/pkg/process"
)

// ValidateProcess checks a process definition for consistency:
//
//   - the initial state exists and every edge points at a declared state;
//   - no transition name is an outgoing edge of two different states (state
//     after a transition must be derivable without knowing the prior state);
//   - every edge transition is declared exactly once in the transition table,
//     and the table contains no unused or duplicate entries;
//   - terminal states have no outgoing edges;
//   - every provider-attention state exists.
//
// It collects all problems before failing so a broken definition is reported
// in one pass.
func ValidateProcess(def *process.Definition) error {
	var problems []string

	states := make(map[string]process.State, len(def.States))
	for _, s := range def.States {
		if _, dup := states[s.Name]; dup {
			problems = append(problems, fmt.Sprintf("state %q declared twice", s.Name))
		}
		states[s.Name] = s
	}

	if _, ok := states[def.InitialState]; !ok {
		problems = append(problems, fmt.Sprintf("initial state %q not declared", def.InitialState))
	}

	declared := make(map[string]bool, len(def.Transitions))
	for _, t := range def.Transitions {
		if declared[t] {
			problems = append(problems, fmt.Sprintf("transition %q declared twice", t))
		}
		declared[t] = true
	}

	edgeSource := make(map[string]string)
	for _, s := range def.States {
		if s.Final && len(s.Transitions) > 0 {
			problems = append(problems, fmt.Sprintf("final state %q has outgoing transitions", s.Name))
		}
		for transition, next := range s.Transitions {
			if from, seen := edgeSource[transition]; seen {
				problems = append(problems, fmt.Sprintf("transition %q leaves both %q and %q", transition, from, s.Name))
			}
			edgeSource[transition] = s.Name
			if _, ok := states[next]; !ok {
				problems = append(problems, fmt.Sprintf("transition %q points at undeclared state %q", transition, next))
			}
			if !declared[transition] {
				problems = append(problems, fmt.Sprintf("edge transition %q missing from transition table", transition))
			}
		}
	}

	for _, t := range def.Transitions {
		if _, used := edgeSource[t]; !used {
			problems = append(problems, fmt.Sprintf("declared transition %q is not an edge of any state", t))
		}
	}

	for _, name := range def.AttentionStates {
		if _, ok := states[name]; !ok {
			problems = append(problems, fmt.Sprintf("attention state %q not declared", name))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("found %d problems:\n- %s", len(problems), strings.Join(problems, "\n- "))
	}
	return nil
}
