package domain

import "time"

// TransitionRecord is one entry of a transaction's append-only history.
type TransitionRecord struct {
	Transition string    `json:"transition" yaml:"transition"`
	By         Role      `json:"by" yaml:"by"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
}

// Attributes is the process-relevant slice of a transaction record.
type Attributes struct {
	ProcessName    string             `json:"process_name" yaml:"process_name"`
	ProcessVersion int                `json:"process_version,omitempty" yaml:"process_version,omitempty"`
	LastTransition string             `json:"last_transition" yaml:"last_transition"`
	Transitions    []TransitionRecord `json:"transitions" yaml:"transitions"`
}

// Transaction is the backend's transaction entity, consumed read-only.
// The engine is handed one at a time and never writes back.
type Transaction struct {
	ID         string     `json:"id" yaml:"id"`
	Attributes Attributes `json:"attributes" yaml:"attributes"`

	// CustomerID and ProviderID identify the two parties of the transaction.
	CustomerID string `json:"customer_id,omitempty" yaml:"customer_id,omitempty"`
	ProviderID string `json:"provider_id,omitempty" yaml:"provider_id,omitempty"`
}

// HasTransition reports whether the recorded history contains the named
// transition. The last transition counts even when the backend has not
// (yet) echoed it into the history list.
func (t *Transaction) HasTransition(transition string) bool {
	if transition == "" {
		return false
	}
	if t.Attributes.LastTransition == transition {
		return true
	}
	for _, rec := range t.Attributes.Transitions {
		if rec.Transition == transition {
			return true
		}
	}
	return false
}
