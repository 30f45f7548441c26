// Package dto holds the wire representations of transaction documents handed
// to the CLI and the MCP adapter. The structs carry mapstructure tags so the
// same shape decodes from JSON, YAML fixtures, and generic argument maps.
package dto

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/sharetribe/txprocess/pkg/domain"
)

// TransactionDoc mirrors the backend's transaction resource shape:
// {id, attributes: {process_name, last_transition, transitions: [...]}}.
type TransactionDoc struct {
	ID         string        `json:"id" yaml:"id" mapstructure:"id"`
	Attributes AttributesDoc `json:"attributes" yaml:"attributes" mapstructure:"attributes"`
	CustomerID string        `json:"customer_id" yaml:"customer_id" mapstructure:"customer_id"`
	ProviderID string        `json:"provider_id" yaml:"provider_id" mapstructure:"provider_id"`
}

type AttributesDoc struct {
	ProcessName    string          `json:"process_name" yaml:"process_name" mapstructure:"process_name"`
	ProcessVersion int             `json:"process_version" yaml:"process_version" mapstructure:"process_version"`
	LastTransition string          `json:"last_transition" yaml:"last_transition" mapstructure:"last_transition"`
	Transitions    []TransitionDoc `json:"transitions" yaml:"transitions" mapstructure:"transitions"`
}

type TransitionDoc struct {
	Transition string    `json:"transition" yaml:"transition" mapstructure:"transition"`
	By         string    `json:"by" yaml:"by" mapstructure:"by"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at" mapstructure:"created_at"`
}

// DecodeTransaction builds a TransactionDoc from a generic map, as received
// from MCP tool arguments.
func DecodeTransaction(raw map[string]any) (*TransactionDoc, error) {
	var doc TransactionDoc
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     &doc,
		DecodeHook: mapstructure.StringToTimeHookFunc(time.RFC3339),
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("invalid transaction document: %w", err)
	}
	return &doc, nil
}

// ToDomain converts the wire document into the engine's transaction entity.
func (d *TransactionDoc) ToDomain() *domain.Transaction {
	tx := &domain.Transaction{
		ID: d.ID,
		Attributes: domain.Attributes{
			ProcessName:    d.Attributes.ProcessName,
			ProcessVersion: d.Attributes.ProcessVersion,
			LastTransition: d.Attributes.LastTransition,
		},
		CustomerID: d.CustomerID,
		ProviderID: d.ProviderID,
	}
	for _, rec := range d.Attributes.Transitions {
		tx.Attributes.Transitions = append(tx.Attributes.Transitions, domain.TransitionRecord{
			Transition: rec.Transition,
			By:         domain.Role(rec.By),
			CreatedAt:  rec.CreatedAt,
		})
	}
	return tx
}
