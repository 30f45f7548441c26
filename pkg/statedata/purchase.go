package statedata

import (
	"github.com/sharetribe/txprocess/pkg/domain"
	"github.com/sharetribe/txprocess/pkg/process"
	"github.com/sharetribe/txprocess/pkg/resolver"
)

// purchaseStateData is the decision table for the default-purchase process.
func purchaseStateData(processName, state string, params Params) *StateData {
	customer := string(domain.RoleCustomer)
	provider := string(domain.RoleProvider)
	base := StateData{ProcessName: processName, ProcessState: state}

	return resolver.New[*StateData](state, string(params.Role)).
		Cond([]string{process.PurchaseStateInquiry, customer}, func() *StateData {
			d := base
			d.ShowOrderPanel = true
			return &d
		}).
		Cond([]string{process.PurchaseStateInquiry, provider}, func() *StateData {
			d := base
			d.ShowDetailCardHeadings = true
			return &d
		}).
		Cond([]string{process.PurchaseStatePurchased, customer}, func() *StateData {
			d := base
			d.ShowDetailCardHeadings = true
			d.ShowExtraInfo = true
			d.PrimaryButton = params.actionButton(process.PurchaseMarkReceivedFromPurchased, domain.RoleCustomer)
			return &d
		}).
		Cond([]string{process.PurchaseStatePurchased, provider}, func() *StateData {
			d := base
			d.ShowDetailCardHeadings = true
			d.ActionNeeded = true
			d.IsSaleNotification = true
			d.PrimaryButton = params.actionButton(process.PurchaseMarkDelivered, domain.RoleProvider)
			return &d
		}).
		Cond([]string{process.PurchaseStateDelivered, customer}, func() *StateData {
			d := base
			d.ShowDetailCardHeadings = true
			d.ActionNeeded = true
			d.ShowDispute = true
			d.PrimaryButton = params.actionButton(process.PurchaseMarkReceived, domain.RoleCustomer)
			return &d
		}).
		Cond([]string{process.PurchaseStateDelivered, provider}, func() *StateData {
			d := base
			d.ShowDetailCardHeadings = true
			return &d
		}).
		Cond([]string{process.PurchaseStateDisputed, resolver.Wildcard}, func() *StateData {
			d := base
			d.ShowDetailCardHeadings = true
			return &d
		}).
		Cond([]string{process.PurchaseStatePaymentExpired, resolver.Wildcard}, finalCard(base)).
		Cond([]string{process.PurchaseStateCanceled, resolver.Wildcard}, finalCard(base)).
		Cond([]string{process.PurchaseStateReceived, resolver.Wildcard}, func() *StateData {
			d := base
			d.ShowDetailCardHeadings = true
			return &d
		}).
		Cond([]string{process.PurchaseStateCompleted, resolver.Wildcard}, func() *StateData {
			d := base
			d.IsFinal = true
			d.ShowDetailCardHeadings = true
			d.ShowReviewAsFirstLink = true
			d.PrimaryButton = params.leaveReview(params.Role)
			return &d
		}).
		Cond([]string{process.PurchaseStateReviewedByProvider, customer}, func() *StateData {
			d := base
			d.IsFinal = true
			d.ShowDetailCardHeadings = true
			d.ShowReviewAsSecondLink = true
			d.PrimaryButton = params.leaveReview(domain.RoleCustomer)
			return &d
		}).
		Cond([]string{process.PurchaseStateReviewedByCustomer, provider}, func() *StateData {
			d := base
			d.IsFinal = true
			d.ShowDetailCardHeadings = true
			d.ShowReviewAsSecondLink = true
			d.PrimaryButton = params.leaveReview(domain.RoleProvider)
			return &d
		}).
		Cond([]string{process.PurchaseStateReviewed, resolver.Wildcard}, func() *StateData {
			d := base
			d.IsFinal = true
			d.ShowDetailCardHeadings = true
			d.ShowReviews = true
			return &d
		}).
		Default(func() *StateData {
			d := base
			d.ShowDetailCardHeadings = true
			return &d
		}).
		Resolve()
}
