package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharetribe/txprocess/pkg/domain"
	"github.com/sharetribe/txprocess/pkg/process"
	"github.com/sharetribe/txprocess/pkg/registry"
)

func bookingTx(lastTransition string, history ...string) *domain.Transaction {
	tx := &domain.Transaction{
		ID: "tx-1",
		Attributes: domain.Attributes{
			ProcessName:    registry.BookingProcessName,
			LastTransition: lastTransition,
		},
	}
	for _, transition := range history {
		tx.Attributes.Transitions = append(tx.Attributes.Transitions, domain.TransitionRecord{Transition: transition})
	}
	return tx
}

func TestResolveLatestProcessName(t *testing.T) {
	cases := map[string]string{
		"flex-booking-default-process": "default-booking",
		"flex-hourly-default-process":  "default-booking",
		"flex-default-process":         "default-booking",
		"flex-product-default-process": "default-purchase",
		"default-buying-products":      "default-purchase",
		"default-booking":              "default-booking",
		"default-purchase":             "default-purchase",
		"default-inquiry":              "default-inquiry",
		"some-custom-process":          "some-custom-process",
	}
	for in, want := range cases {
		assert.Equal(t, want, registry.ResolveLatestProcessName(in), in)
	}
}

func TestResolveLatestProcessName_Idempotent(t *testing.T) {
	for _, name := range []string{
		"flex-booking-default-process", "default-booking", "default-purchase", "unknown-thing", "",
	} {
		once := registry.ResolveLatestProcessName(name)
		assert.Equal(t, once, registry.ResolveLatestProcessName(once), name)
	}
}

func TestGet_ResolvesLegacyNames(t *testing.T) {
	reg := registry.Default()

	proc, err := reg.Get("flex-booking-default-process")
	require.NoError(t, err)
	assert.Equal(t, registry.BookingProcessName, proc.Name)
}

func TestGet_UnknownProcessIsFatal(t *testing.T) {
	reg := registry.Default()

	_, err := reg.Get("marketplace-custom-process")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProcessNotFound)
	assert.Contains(t, err.Error(), "marketplace-custom-process")
}

func TestState_FromLastTransition(t *testing.T) {
	reg := registry.Default()
	proc, err := reg.Get(registry.BookingProcessName)
	require.NoError(t, err)

	// Scenario: request-payment with empty prior history.
	assert.Equal(t, "pending-payment", proc.State(bookingTx("transition/request-payment")))
	assert.Equal(t, "preauthorized", proc.State(bookingTx("transition/confirm-payment")))

	// Undetermined state for an unknown or absent last transition.
	assert.Empty(t, proc.State(bookingTx("transition/not-in-this-process")))
	assert.Empty(t, proc.State(bookingTx("")))
}

func TestTransitionsToStates(t *testing.T) {
	reg := registry.Default()
	proc, err := reg.Get(registry.BookingProcessName)
	require.NoError(t, err)

	got := proc.TransitionsToStates([]string{process.BookingStateAccepted})
	assert.ElementsMatch(t, []string{process.BookingAccept, process.BookingOperatorAccept}, got)

	got = proc.TransitionsToStates([]string{process.BookingStateAccepted, process.BookingStateDeclined})
	assert.ElementsMatch(t, []string{
		process.BookingAccept, process.BookingOperatorAccept,
		process.BookingDecline, process.BookingOperatorDecline,
	}, got)
}

func TestHasPassedState(t *testing.T) {
	reg := registry.Default()
	proc, err := reg.Get(registry.BookingProcessName)
	require.NoError(t, err)

	tx := bookingTx(process.BookingComplete,
		process.BookingRequestPayment,
		process.BookingConfirmPayment,
		process.BookingAccept,
		process.BookingComplete,
	)

	// History membership: past states stay "passed" after moving on.
	assert.True(t, proc.HasPassedState(process.BookingStatePreauthorized, tx))
	assert.True(t, proc.HasPassedState(process.BookingStateAccepted, tx))
	assert.True(t, proc.HasPassedState(process.BookingStateDelivered, tx))
	assert.False(t, proc.HasPassedState(process.BookingStateDeclined, tx))
	assert.False(t, proc.HasPassedState(process.BookingStateReviewed, tx))
}

func TestSupportedProcessesInfo(t *testing.T) {
	infos := registry.Default().SupportedProcessesInfo()
	require.Len(t, infos, 3)

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name)
		assert.NotEmpty(t, info.Alias)
		assert.NotEmpty(t, info.UnitTypes)
	}
	assert.Equal(t, []string{"default-purchase", "default-booking", "default-inquiry"}, names)
}

func TestAllTransitions(t *testing.T) {
	all := registry.Default().AllTransitions()

	want := len(process.Purchase.Transitions) + len(process.Booking.Transitions) + len(process.Inquiry.Transitions)
	assert.Len(t, all, want)
	assert.Contains(t, all, process.BookingAccept)
	assert.Contains(t, all, process.PurchaseDispute)
	assert.Contains(t, all, process.InquireWithoutPayment)
}

func TestTransitionsNeedingProviderAttention(t *testing.T) {
	// Booking needs attention at preauthorized, purchase at purchased; both
	// are entered via "transition/confirm-payment", which the flat set
	// de-duplicates to a single entry.
	got := registry.Default().TransitionsNeedingProviderAttention()
	assert.Equal(t, []string{"transition/confirm-payment"}, got)
}

func TestProcessClassifiers(t *testing.T) {
	reg := registry.Default()

	assert.True(t, reg.IsBookingProcess("default-booking"))
	assert.True(t, reg.IsBookingProcess("flex-booking-default-process"))
	assert.False(t, reg.IsBookingProcess("default-purchase"))

	assert.True(t, reg.IsPurchaseProcess("default-buying-products"))
	assert.False(t, reg.IsPurchaseProcess("default-inquiry"))

	assert.True(t, reg.IsBookingProcessAlias("default-booking/release-1"))
	assert.True(t, reg.IsPurchaseProcessAlias("flex-product-default-process/release-3"))
	assert.False(t, reg.IsPurchaseProcessAlias("default-booking/release-1"))
}

func TestParseAlias(t *testing.T) {
	alias := registry.ParseAlias("default-booking/release-1")
	assert.Equal(t, "default-booking", alias.ProcessName)
	assert.Equal(t, "release-1", alias.ReleaseTag)
	assert.Equal(t, "default-booking/release-1", alias.String())

	bare := registry.ParseAlias("default-booking")
	assert.Equal(t, "default-booking", bare.ProcessName)
	assert.Empty(t, bare.ReleaseTag)
	assert.Equal(t, "default-booking", bare.String())
}

func TestNew_RejectsBrokenDefinition(t *testing.T) {
	broken := &process.Definition{
		Name:         "broken",
		InitialState: "initial",
		States: []process.State{
			{Name: "initial", Transitions: map[string]string{"transition/go": "nowhere"}},
		},
		Transitions: []string{"transition/go"},
	}
	_, err := registry.New(broken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestNew_RejectsDuplicateProcessName(t *testing.T) {
	_, err := registry.New(process.Booking, process.Booking)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate process")
}
