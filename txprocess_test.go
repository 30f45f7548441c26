package txprocess_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	txprocess "github.com/sharetribe/txprocess"
	"github.com/sharetribe/txprocess/pkg/domain"
	"github.com/sharetribe/txprocess/pkg/process"
	"github.com/sharetribe/txprocess/pkg/statedata"
)

func bookingTx(lastTransition string) *domain.Transaction {
	return &domain.Transaction{
		ID: "tx-1",
		Attributes: domain.Attributes{
			ProcessName:    "default-booking",
			LastTransition: lastTransition,
		},
	}
}

func TestEngineDefaults(t *testing.T) {
	engine, err := txprocess.New()
	require.NoError(t, err)

	infos := engine.SupportedProcesses()
	require.Len(t, infos, 3)

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name)
	}
	assert.Equal(t, []string{"default-purchase", "default-booking", "default-inquiry"}, names)
}

func TestEngineState(t *testing.T) {
	engine, err := txprocess.New()
	require.NoError(t, err)

	state, err := engine.State(bookingTx("transition/confirm-payment"))
	require.NoError(t, err)
	assert.Equal(t, "preauthorized", state)

	state, err = engine.State(bookingTx("transition/no-such-thing"))
	require.NoError(t, err)
	assert.Empty(t, state)

	tx := bookingTx("transition/confirm-payment")
	tx.Attributes.ProcessName = "no-such-process"
	_, err = engine.State(tx)
	assert.ErrorIs(t, err, domain.ErrProcessNotFound)
}

func TestEngineStateData(t *testing.T) {
	engine, err := txprocess.New()
	require.NoError(t, err)

	data, err := engine.StateData(bookingTx("transition/confirm-payment"), domain.RoleProvider)
	require.NoError(t, err)
	assert.Equal(t, "preauthorized", data.ProcessState)
	assert.True(t, data.ActionNeeded)
	require.NotNil(t, data.PrimaryButton)
	assert.Equal(t, "transition/accept", data.PrimaryButton.Transition)

	tx := bookingTx("transition/confirm-payment")
	tx.Attributes.ProcessName = "no-such-process"
	_, err = engine.StateData(tx, domain.RoleProvider)
	assert.ErrorIs(t, err, domain.ErrProcessNotFound)
}

func TestEngineWithButtonFactories(t *testing.T) {
	engine, err := txprocess.New(
		txprocess.WithButtonFactories(
			func(transition string, by domain.Role) *statedata.Button {
				return &statedata.Button{Transition: "custom/" + transition, By: by}
			},
			func(by domain.Role) *statedata.Button {
				return &statedata.Button{By: by, Review: true}
			},
		),
	)
	require.NoError(t, err)

	data, err := engine.StateData(bookingTx("transition/confirm-payment"), domain.RoleProvider)
	require.NoError(t, err)
	require.NotNil(t, data.PrimaryButton)
	assert.Equal(t, "custom/transition/accept", data.PrimaryButton.Transition)
}

func TestEngineWithProcesses(t *testing.T) {
	engine, err := txprocess.New(txprocess.WithProcesses(process.Inquiry))
	require.NoError(t, err)

	assert.Len(t, engine.SupportedProcesses(), 1)
	_, err = engine.Process("default-booking")
	assert.ErrorIs(t, err, domain.ErrProcessNotFound)
}

func TestEngineWithProcessesRejectsBrokenGraph(t *testing.T) {
	broken := &process.Definition{
		Name:         "broken",
		InitialState: "nowhere",
	}
	_, err := txprocess.New(txprocess.WithProcesses(broken))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "initial state")
}
