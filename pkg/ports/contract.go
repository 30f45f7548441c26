package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharetribe/txprocess/pkg/domain"
	"github.com/sharetribe/txprocess/pkg/statedata"
)

// RunDecisionCacheContract verifies that a DecisionCache implementation
// honors the interface contract. Adapter tests call it against their own
// instance.
func RunDecisionCacheContract(t *testing.T, cache DecisionCache) {
	ctx := context.Background()
	key := CacheKey("default-booking", "transition/confirm-payment", "provider") +
		"|contract-" + time.Now().Format("20060102150405")

	t.Run("Get before Set is a miss", func(t *testing.T) {
		_, err := cache.Get(ctx, key)
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
	})

	t.Run("Set then Get round-trips", func(t *testing.T) {
		data := &statedata.StateData{
			ProcessName:        "default-booking",
			ProcessState:       "preauthorized",
			ActionNeeded:       true,
			IsSaleNotification: true,
			PrimaryButton:      &statedata.Button{Transition: "transition/accept", By: domain.RoleProvider},
		}
		require.NoError(t, cache.Set(ctx, key, data))

		got, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, data.ProcessState, got.ProcessState)
		assert.True(t, got.ActionNeeded)
		require.NotNil(t, got.PrimaryButton)
		assert.Equal(t, "transition/accept", got.PrimaryButton.Transition)
	})

	t.Run("Overwrite keeps the last value", func(t *testing.T) {
		first := &statedata.StateData{ProcessName: "default-booking", ProcessState: "accepted"}
		second := &statedata.StateData{ProcessName: "default-booking", ProcessState: "delivered", IsFinal: true}
		require.NoError(t, cache.Set(ctx, key, first))
		require.NoError(t, cache.Set(ctx, key, second))

		got, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "delivered", got.ProcessState)
		assert.True(t, got.IsFinal)
	})
}
