package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharetribe/txprocess/internal/dto"
	"github.com/sharetribe/txprocess/pkg/domain"
)

func TestDecodeTransaction(t *testing.T) {
	raw := map[string]any{
		"id": "tx-1",
		"attributes": map[string]any{
			"process_name":    "default-booking",
			"process_version": 1,
			"last_transition": "transition/accept",
			"transitions": []any{
				map[string]any{
					"transition": "transition/request-payment",
					"by":         "customer",
					"created_at": "2026-08-30T12:00:00Z",
				},
			},
		},
		"customer_id": "user-a",
		"provider_id": "user-b",
	}

	doc, err := dto.DecodeTransaction(raw)
	require.NoError(t, err)

	assert.Equal(t, "tx-1", doc.ID)
	assert.Equal(t, "default-booking", doc.Attributes.ProcessName)
	assert.Equal(t, 1, doc.Attributes.ProcessVersion)
	assert.Equal(t, "transition/accept", doc.Attributes.LastTransition)
	require.Len(t, doc.Attributes.Transitions, 1)
	assert.Equal(t, "transition/request-payment", doc.Attributes.Transitions[0].Transition)
	assert.Equal(t, time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC), doc.Attributes.Transitions[0].CreatedAt)
}

func TestDecodeTransaction_InvalidShape(t *testing.T) {
	_, err := dto.DecodeTransaction(map[string]any{
		"attributes": "not-a-map",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid transaction document")
}

func TestToDomain(t *testing.T) {
	doc := &dto.TransactionDoc{
		ID: "tx-2",
		Attributes: dto.AttributesDoc{
			ProcessName:    "default-purchase",
			LastTransition: "transition/mark-delivered",
			Transitions: []dto.TransitionDoc{
				{Transition: "transition/purchase", By: "customer"},
				{Transition: "transition/mark-delivered", By: "provider"},
			},
		},
		CustomerID: "user-a",
		ProviderID: "user-b",
	}

	tx := doc.ToDomain()
	assert.Equal(t, "tx-2", tx.ID)
	assert.Equal(t, "default-purchase", tx.Attributes.ProcessName)
	assert.Equal(t, domain.RoleProvider, tx.Attributes.Transitions[1].By)
	assert.True(t, tx.HasTransition("transition/purchase"))

	role, err := domain.RoleOf("user-b", tx)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleProvider, role)
}
