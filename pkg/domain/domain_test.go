package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharetribe/txprocess/pkg/domain"
)

func TestRoleOf(t *testing.T) {
	tx := &domain.Transaction{
		ID:         "tx-1",
		CustomerID: "user-a",
		ProviderID: "user-b",
	}

	role, err := domain.RoleOf("user-a", tx)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, role)

	role, err = domain.RoleOf("user-b", tx)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleProvider, role)

	_, err = domain.RoleOf("user-c", tx)
	assert.ErrorIs(t, err, domain.ErrNoRole)

	// An empty user ID never matches, even against an empty party ID.
	_, err = domain.RoleOf("", &domain.Transaction{})
	assert.ErrorIs(t, err, domain.ErrNoRole)
}

func TestRoleValid(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleCustomer, domain.RoleProvider, domain.RoleOperator, domain.RoleSystem} {
		assert.True(t, role.Valid())
	}
	assert.False(t, domain.Role("").Valid())
	assert.False(t, domain.Role("admin").Valid())
}

func TestHasTransition(t *testing.T) {
	tx := &domain.Transaction{
		Attributes: domain.Attributes{
			LastTransition: "transition/accept",
			Transitions: []domain.TransitionRecord{
				{Transition: "transition/request-payment", By: domain.RoleCustomer},
				{Transition: "transition/confirm-payment", By: domain.RoleCustomer},
			},
		},
	}

	assert.True(t, tx.HasTransition("transition/confirm-payment"))
	// The last transition counts even before the backend echoes it into the
	// history list.
	assert.True(t, tx.HasTransition("transition/accept"))
	assert.False(t, tx.HasTransition("transition/decline"))
	assert.False(t, tx.HasTransition(""))
}
