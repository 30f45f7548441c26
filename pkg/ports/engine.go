package ports

import (
	"github.com/sharetribe/txprocess/pkg/domain"
	"github.com/sharetribe/txprocess/pkg/registry"
	"github.com/sharetribe/txprocess/pkg/statedata"
)

// DecisionEngine is the engine surface the serving adapters (HTTP, MCP, CLI)
// depend on. All operations are pure and synchronous.
type DecisionEngine interface {
	// SupportedProcesses returns static introspection data for every
	// registered process.
	SupportedProcesses() []registry.ProcessInfo

	// Process resolves a (possibly legacy) process name. Unknown names fail
	// with domain.ErrProcessNotFound.
	Process(name string) (*registry.Process, error)

	// State computes the transaction's current state from its last
	// transition. "" means the state cannot be determined.
	State(tx *domain.Transaction) (string, error)

	// StateData computes the UI-decision descriptor for the transaction as
	// seen by the given role. The descriptor is never nil.
	StateData(tx *domain.Transaction, role domain.Role) (*statedata.StateData, error)
}
