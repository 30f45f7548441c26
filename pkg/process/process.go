package process

import "slices"

// State is one node of a process graph. Transitions maps an outgoing
// transition name to the name of its unique destination state.
type State struct {
	Name        string
	Final       bool
	Transitions map[string]string
}

// Classification groups the transition sets behind the per-process predicates.
// Any transition not listed simply classifies as false.
type Classification struct {
	// RelevantPast lists transitions that belong in a rendered activity feed.
	// The creating transition and most automatic expirations are left out.
	RelevantPast []string

	// Privileged lists transitions that must run through a trusted context
	// rather than directly from a client (payment initiation).
	Privileged []string

	// Completed lists transitions after which the transaction counts as
	// fulfilled (completion, reviews, review-period expirations).
	Completed []string

	// Refunded lists transitions after which a refund is understood to have
	// happened (payment expiration, cancel, decline, expire).
	Refunded []string

	CustomerReview []string
	ProviderReview []string
}

// Definition is the complete, static lifecycle description of one kind of
// transaction. Definitions are built once at package load and never mutated;
// they are safe for unrestricted concurrent reads.
type Definition struct {
	Name      string
	Alias     string
	UnitTypes []string

	// InitialState is the state of a transaction before any transition has
	// been recorded.
	InitialState string

	// States holds every node of the graph.
	States []State

	// Transitions is the declared transition table. Every transition used as
	// an edge anywhere in the graph appears here exactly once.
	Transitions []string

	Classify Classification

	// AttentionStates lists the states at which the provider is expected to
	// take action.
	AttentionStates []string
}

// StateAfterTransition returns the destination state of the named transition,
// or "" when the transition is unknown or empty. Edge names are unique across
// the whole graph, so the destination is well-defined without knowing the
// prior state. Callers must treat "" as "state cannot be determined", not as
// the initial state.
func (d *Definition) StateAfterTransition(transition string) string {
	if transition == "" {
		return ""
	}
	for _, s := range d.States {
		if next, ok := s.Transitions[transition]; ok {
			return next
		}
	}
	return ""
}

// StateNode returns the graph node with the given name.
func (d *Definition) StateNode(name string) (State, bool) {
	for _, s := range d.States {
		if s.Name == name {
			return s, true
		}
	}
	return State{}, false
}

// IsRelevantPastTransition reports whether the transition should show up in an
// activity/history feed.
func (d *Definition) IsRelevantPastTransition(transition string) bool {
	return slices.Contains(d.Classify.RelevantPast, transition)
}

// IsPrivilegedTransition reports whether the transition must be executed
// through a trusted context.
func (d *Definition) IsPrivilegedTransition(transition string) bool {
	return slices.Contains(d.Classify.Privileged, transition)
}

// IsCompletedTransition reports whether the transition marks the transaction
// as fulfilled.
func (d *Definition) IsCompletedTransition(transition string) bool {
	return slices.Contains(d.Classify.Completed, transition)
}

// IsRefundedTransition reports whether a refund is understood to have happened
// after the transition.
func (d *Definition) IsRefundedTransition(transition string) bool {
	return slices.Contains(d.Classify.Refunded, transition)
}

// IsCustomerReview reports whether the transition is a review submitted by the
// customer.
func (d *Definition) IsCustomerReview(transition string) bool {
	return slices.Contains(d.Classify.CustomerReview, transition)
}

// IsProviderReview reports whether the transition is a review submitted by the
// provider.
func (d *Definition) IsProviderReview(transition string) bool {
	return slices.Contains(d.Classify.ProviderReview, transition)
}
