// Package registry resolves process names (including legacy names and
// versioned aliases) to process definitions and derives graph-traversal
// queries from them.
package registry

import (
	"fmt"

	"github.com/sharetribe/txprocess/internal/validator"
	"github.com/sharetribe/txprocess/pkg/domain"
	"github.com/sharetribe/txprocess/pkg/process"
)

// Canonical process names.
const (
	PurchaseProcessName = "default-purchase"
	BookingProcessName  = "default-booking"
	InquiryProcessName  = "default-inquiry"
)

// ResolveLatestProcessName maps historical process names onto the current
// canonical name for the same graph. It is idempotent and passes unknown
// names through unchanged.
func ResolveLatestProcessName(name string) string {
	switch name {
	case "flex-product-default-process", "default-buying-products", PurchaseProcessName:
		return PurchaseProcessName
	case "flex-default-process", "flex-hourly-default-process", "flex-booking-default-process", BookingProcessName:
		return BookingProcessName
	default:
		return name
	}
}

// ProcessInfo is the introspection view of a registered process. It carries no
// graph internals.
type ProcessInfo struct {
	Name      string   `json:"name" yaml:"name"`
	Alias     string   `json:"alias" yaml:"alias"`
	UnitTypes []string `json:"unit_types" yaml:"unit_types"`
}

// Process is a registered definition decorated with transaction-level queries.
type Process struct {
	*process.Definition
}

// State returns the transaction's current state, derived from its last
// transition. "" means the state cannot be determined (the transaction may
// still be loading or belong to a newer process revision).
func (p *Process) State(tx *domain.Transaction) string {
	return p.StateAfterTransition(tx.Attributes.LastTransition)
}

// TransitionsToStates returns the union, across the given target states, of
// every transition whose destination is that state.
func (p *Process) TransitionsToStates(stateNames []string) []string {
	var out []string
	for _, s := range p.States {
		for transition, next := range s.Transitions {
			for _, target := range stateNames {
				if next == target {
					out = append(out, transition)
				}
			}
		}
	}
	return out
}

// HasPassedState reports whether the transaction's recorded history contains
// any transition leading into the named state. This is a history-membership
// test, not a current-state test: a transaction that has moved on still "has
// passed" every state it transitioned through.
func (p *Process) HasPassedState(stateName string, tx *domain.Transaction) bool {
	for _, transition := range p.TransitionsToStates([]string{stateName}) {
		if tx.HasTransition(transition) {
			return true
		}
	}
	return false
}

// Registry is an immutable map from canonical process name to definition.
// Build it once with New or Default and share it freely; it is safe for
// unrestricted concurrent reads.
type Registry struct {
	processes map[string]*Process
	order     []string
}

// New builds a registry from the given definitions, validating each graph.
func New(defs ...*process.Definition) (*Registry, error) {
	r := &Registry{processes: make(map[string]*Process, len(defs))}
	for _, def := range defs {
		if err := validator.ValidateProcess(def); err != nil {
			return nil, fmt.Errorf("invalid process %q: %w", def.Name, err)
		}
		if _, exists := r.processes[def.Name]; exists {
			return nil, fmt.Errorf("duplicate process %q", def.Name)
		}
		r.processes[def.Name] = &Process{Definition: def}
		r.order = append(r.order, def.Name)
	}
	return r, nil
}

// Default builds the registry of the built-in marketplace processes
// (purchase, booking, inquiry). The built-in graphs are covered by their own
// validation tests, so construction cannot fail.
func Default() *Registry {
	r, err := New(process.Purchase, process.Booking, process.Inquiry)
	if err != nil {
		panic(err)
	}
	return r
}

// Get resolves the (possibly legacy) name and returns the registered process.
// An unrecognized name is fatal for the caller: without the process graph no
// transaction can be reasoned about.
func (r *Registry) Get(name string) (*Process, error) {
	p, ok := r.processes[ResolveLatestProcessName(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrProcessNotFound, name)
	}
	return p, nil
}

// SupportedProcessesInfo returns static introspection data for every
// registered process, in registration order.
func (r *Registry) SupportedProcessesInfo() []ProcessInfo {
	infos := make([]ProcessInfo, 0, len(r.order))
	for _, name := range r.order {
		p := r.processes[name]
		infos = append(infos, ProcessInfo{
			Name:      p.Name,
			Alias:     p.Alias,
			UnitTypes: append([]string(nil), p.UnitTypes...),
		})
	}
	return infos
}

// AllTransitions returns the flattened union of every transition name across
// all registered processes. Generic validation code uses it to recognize any
// valid transition string regardless of process.
func (r *Registry) AllTransitions() []string {
	var out []string
	for _, name := range r.order {
		out = append(out, r.processes[name].Transitions...)
	}
	return out
}

// TransitionsNeedingProviderAttention returns, across all processes, the
// transitions leading into any state where the provider is expected to act.
//
// Transitions are de-duplicated by name only: if two unrelated processes ever
// reused a transition name with different meanings, this would conflate them.
// Processes must keep transition names distinct if that matters.
func (r *Registry) TransitionsNeedingProviderAttention() []string {
	seen := make(map[string]bool)
	var out []string
	for _, name := range r.order {
		p := r.processes[name]
		for _, transition := range p.TransitionsToStates(p.AttentionStates) {
			if !seen[transition] {
				seen[transition] = true
				out = append(out, transition)
			}
		}
	}
	return out
}

// IsPurchaseProcess reports whether the name resolves to the purchase process.
func (r *Registry) IsPurchaseProcess(name string) bool {
	return ResolveLatestProcessName(name) == PurchaseProcessName
}

// IsBookingProcess reports whether the name resolves to the booking process.
func (r *Registry) IsBookingProcess(name string) bool {
	return ResolveLatestProcessName(name) == BookingProcessName
}

// IsPurchaseProcessAlias reports whether the alias string references the
// purchase process.
func (r *Registry) IsPurchaseProcessAlias(alias string) bool {
	return r.IsPurchaseProcess(ParseAlias(alias).ProcessName)
}

// IsBookingProcessAlias reports whether the alias string references the
// booking process.
func (r *Registry) IsBookingProcessAlias(alias string) bool {
	return r.IsBookingProcess(ParseAlias(alias).ProcessName)
}
