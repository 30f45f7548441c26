package statedata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharetribe/txprocess/pkg/domain"
	"github.com/sharetribe/txprocess/pkg/process"
	"github.com/sharetribe/txprocess/pkg/registry"
	"github.com/sharetribe/txprocess/pkg/statedata"
)

func mustGet(t *testing.T, name string) *registry.Process {
	t.Helper()
	proc, err := registry.Default().Get(name)
	require.NoError(t, err)
	return proc
}

func tx(processName, lastTransition string) *domain.Transaction {
	return &domain.Transaction{
		ID: "tx-1",
		Attributes: domain.Attributes{
			ProcessName:    processName,
			LastTransition: lastTransition,
		},
	}
}

func TestBooking_PreauthorizedProviderNeedsAction(t *testing.T) {
	proc := mustGet(t, registry.BookingProcessName)
	data := statedata.Resolve(proc, statedata.Params{
		Transaction: tx(registry.BookingProcessName, process.BookingConfirmPayment),
		Role:        domain.RoleProvider,
	})

	require.NotNil(t, data)
	assert.Equal(t, "preauthorized", data.ProcessState)
	assert.True(t, data.ActionNeeded)
	assert.True(t, data.IsSaleNotification)
	assert.True(t, data.ShowDetailCardHeadings)
	require.NotNil(t, data.PrimaryButton)
	assert.Equal(t, process.BookingAccept, data.PrimaryButton.Transition)
	require.NotNil(t, data.SecondaryButton)
	assert.Equal(t, process.BookingDecline, data.SecondaryButton.Transition)
}

func TestBooking_PreauthorizedCustomerJustWaits(t *testing.T) {
	proc := mustGet(t, registry.BookingProcessName)
	data := statedata.Resolve(proc, statedata.Params{
		Transaction: tx(registry.BookingProcessName, process.BookingConfirmPayment),
		Role:        domain.RoleCustomer,
	})

	require.NotNil(t, data)
	assert.False(t, data.ActionNeeded)
	assert.True(t, data.ShowExtraInfo)
	assert.Nil(t, data.PrimaryButton)
}

func TestBooking_InquiryDependsOnRole(t *testing.T) {
	proc := mustGet(t, registry.BookingProcessName)

	customer := statedata.Resolve(proc, statedata.Params{
		Transaction: tx(registry.BookingProcessName, process.BookingInquire),
		Role:        domain.RoleCustomer,
	})
	assert.True(t, customer.ShowOrderPanel)
	assert.False(t, customer.ShowDetailCardHeadings)

	provider := statedata.Resolve(proc, statedata.Params{
		Transaction: tx(registry.BookingProcessName, process.BookingInquire),
		Role:        domain.RoleProvider,
	})
	assert.False(t, provider.ShowOrderPanel)
	assert.True(t, provider.ShowDetailCardHeadings)
}

func TestBooking_DeliveredShowsFirstReviewLink(t *testing.T) {
	proc := mustGet(t, registry.BookingProcessName)
	data := statedata.Resolve(proc, statedata.Params{
		Transaction: tx(registry.BookingProcessName, process.BookingComplete),
		Role:        domain.RoleCustomer,
	})

	assert.True(t, data.IsFinal)
	assert.True(t, data.ShowReviewAsFirstLink)
	require.NotNil(t, data.PrimaryButton)
	assert.True(t, data.PrimaryButton.Review)
}

func TestBooking_SecondReviewLinkOnlyForPendingReviewer(t *testing.T) {
	proc := mustGet(t, registry.BookingProcessName)

	// Provider already reviewed; the customer gets the second-review link.
	data := statedata.Resolve(proc, statedata.Params{
		Transaction: tx(registry.BookingProcessName, process.BookingReview1ByProvider),
		Role:        domain.RoleCustomer,
	})
	assert.True(t, data.ShowReviewAsSecondLink)

	// The provider who already reviewed falls through to the default card.
	data = statedata.Resolve(proc, statedata.Params{
		Transaction: tx(registry.BookingProcessName, process.BookingReview1ByProvider),
		Role:        domain.RoleProvider,
	})
	assert.False(t, data.ShowReviewAsSecondLink)
	assert.True(t, data.ShowDetailCardHeadings)
}

func TestBooking_ReviewedShowsReviews(t *testing.T) {
	proc := mustGet(t, registry.BookingProcessName)
	data := statedata.Resolve(proc, statedata.Params{
		Transaction: tx(registry.BookingProcessName, process.BookingExpireReviewPeriod),
		Role:        domain.RoleProvider,
	})

	assert.True(t, data.IsFinal)
	assert.True(t, data.ShowReviews)
}

func TestPurchase_DeliveredCustomerMayDispute(t *testing.T) {
	proc := mustGet(t, registry.PurchaseProcessName)
	data := statedata.Resolve(proc, statedata.Params{
		Transaction: tx(registry.PurchaseProcessName, process.PurchaseMarkDelivered),
		Role:        domain.RoleCustomer,
	})

	assert.True(t, data.ActionNeeded)
	assert.True(t, data.ShowDispute)
	require.NotNil(t, data.PrimaryButton)
	assert.Equal(t, process.PurchaseMarkReceived, data.PrimaryButton.Transition)
}

func TestPurchase_PurchasedProviderShipButton(t *testing.T) {
	proc := mustGet(t, registry.PurchaseProcessName)
	data := statedata.Resolve(proc, statedata.Params{
		Transaction: tx(registry.PurchaseProcessName, process.PurchaseConfirmPayment),
		Role:        domain.RoleProvider,
	})

	assert.True(t, data.ActionNeeded)
	assert.True(t, data.IsSaleNotification)
	require.NotNil(t, data.PrimaryButton)
	assert.Equal(t, process.PurchaseMarkDelivered, data.PrimaryButton.Transition)
}

func TestInquiry_FreeInquiryIsFinal(t *testing.T) {
	proc := mustGet(t, registry.InquiryProcessName)
	data := statedata.Resolve(proc, statedata.Params{
		Transaction: tx(registry.InquiryProcessName, process.InquireWithoutPayment),
		Role:        domain.RoleProvider,
	})

	assert.True(t, data.IsFinal)
	assert.True(t, data.ShowDetailCardHeadings)
}

func TestCustomButtonFactories(t *testing.T) {
	proc := mustGet(t, registry.BookingProcessName)
	data := statedata.Resolve(proc, statedata.Params{
		Transaction: tx(registry.BookingProcessName, process.BookingConfirmPayment),
		Role:        domain.RoleProvider,
		ActionButtonFor: func(transition string, by domain.Role) *statedata.Button {
			return &statedata.Button{Transition: transition + "#custom", By: by}
		},
	})

	require.NotNil(t, data.PrimaryButton)
	assert.Equal(t, process.BookingAccept+"#custom", data.PrimaryButton.Transition)
}

// Every (state, role) combination must produce a well-formed descriptor, even
// combinations no case handles explicitly.
func TestResolve_NeverNilForAnyCombination(t *testing.T) {
	reg := registry.Default()
	roles := []domain.Role{domain.RoleCustomer, domain.RoleProvider, domain.RoleOperator, domain.RoleSystem, ""}

	for _, info := range reg.SupportedProcessesInfo() {
		proc, err := reg.Get(info.Name)
		require.NoError(t, err)
		for _, transition := range append([]string{"", "transition/unknown"}, proc.Transitions...) {
			for _, role := range roles {
				data := statedata.Resolve(proc, statedata.Params{
					Transaction: tx(info.Name, transition),
					Role:        role,
				})
				require.NotNil(t, data, "%s %s %s", info.Name, transition, role)
				assert.Equal(t, info.Name, data.ProcessName)
			}
		}
	}
}
