package txprocess

import (
	"io"
	"log/slog"

	"github.com/sharetribe/txprocess/pkg/domain"
	"github.com/sharetribe/txprocess/pkg/process"
	"github.com/sharetribe/txprocess/pkg/registry"
	"github.com/sharetribe/txprocess/pkg/statedata"
)

// Version is the release version of the engine, embedded in the CLI and the
// MCP server handshake.
const Version = "1.0.0"

// Engine is the high-level entry point of the transaction process engine. It
// bundles an immutable process registry with the state-data decision tables
// and provides the simplified API the adapters consume.
//
// An Engine is stateless between calls and safe for unrestricted concurrent
// use.
type Engine struct {
	registry *registry.Registry
	logger   *slog.Logger

	processes []*process.Definition
	buttons   statedata.Params
}

// Option configures the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithProcesses replaces the built-in process definitions. Mainly useful for
// marketplaces running customized graphs.
func WithProcesses(defs ...*process.Definition) Option {
	return func(e *Engine) {
		e.processes = defs
	}
}

// WithButtonFactories sets the descriptor factories handed to the decision
// tables. The rendering layer supplies these to control what a button
// descriptor carries; without them plain transition/role descriptors are
// produced.
func WithButtonFactories(action func(transition string, by domain.Role) *statedata.Button, review func(by domain.Role) *statedata.Button) Option {
	return func(e *Engine) {
		e.buttons.ActionButtonFor = action
		e.buttons.LeaveReviewFor = review
	}
}

// New initializes an Engine. With no options it carries the built-in
// purchase, booking, and inquiry processes and a no-op logger.
func New(opts ...Option) (*Engine, error) {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.logger == nil {
		eng.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if eng.processes == nil {
		eng.registry = registry.Default()
	} else {
		reg, err := registry.New(eng.processes...)
		if err != nil {
			return nil, err
		}
		eng.registry = reg
	}

	return eng, nil
}

// Registry exposes the underlying process registry for callers needing
// registry-level queries (all transitions, provider-attention transitions).
func (e *Engine) Registry() *registry.Registry {
	return e.registry
}

// SupportedProcesses returns static introspection data for every registered
// process.
func (e *Engine) SupportedProcesses() []registry.ProcessInfo {
	return e.registry.SupportedProcessesInfo()
}

// Process resolves a (possibly legacy) process name to its registered
// definition.
func (e *Engine) Process(name string) (*registry.Process, error) {
	return e.registry.Get(name)
}

// State computes the transaction's current lifecycle state. An empty state
// with a nil error means the state cannot be determined from the recorded
// last transition.
func (e *Engine) State(tx *domain.Transaction) (string, error) {
	proc, err := e.registry.Get(tx.Attributes.ProcessName)
	if err != nil {
		return "", err
	}
	state := proc.State(tx)
	e.logger.Debug("state resolved",
		"transaction", tx.ID,
		"process", proc.Name,
		"last_transition", tx.Attributes.LastTransition,
		"state", state)
	return state, nil
}

// StateData computes the UI-decision descriptor for the transaction as seen
// by the given role. The descriptor is never nil for a known process.
func (e *Engine) StateData(tx *domain.Transaction, role domain.Role) (*statedata.StateData, error) {
	proc, err := e.registry.Get(tx.Attributes.ProcessName)
	if err != nil {
		return nil, err
	}

	params := e.buttons
	params.Transaction = tx
	params.Role = role

	data := statedata.Resolve(proc, params)
	e.logger.Debug("state data resolved",
		"transaction", tx.ID,
		"process", proc.Name,
		"state", data.ProcessState,
		"role", role,
		"action_needed", data.ActionNeeded)
	return data, nil
}
