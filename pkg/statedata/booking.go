package statedata

import (
	"github.com/sharetribe/txprocess/pkg/domain"
	"github.com/sharetribe/txprocess/pkg/process"
	"github.com/sharetribe/txprocess/pkg/resolver"
)

// bookingStateData is the decision table for the default-booking process.
// Order matters: specific (state, role) cases come before wildcard rows.
func bookingStateData(processName, state string, params Params) *StateData {
	customer := string(domain.RoleCustomer)
	provider := string(domain.RoleProvider)
	base := StateData{ProcessName: processName, ProcessState: state}

	return resolver.New[*StateData](state, string(params.Role)).
		Cond([]string{process.BookingStateInquiry, customer}, func() *StateData {
			d := base
			d.ShowOrderPanel = true
			return &d
		}).
		Cond([]string{process.BookingStateInquiry, provider}, func() *StateData {
			d := base
			d.ShowDetailCardHeadings = true
			return &d
		}).
		Cond([]string{process.BookingStatePreauthorized, customer}, func() *StateData {
			d := base
			d.ShowDetailCardHeadings = true
			d.ShowExtraInfo = true
			return &d
		}).
		Cond([]string{process.BookingStatePreauthorized, provider}, func() *StateData {
			d := base
			d.ShowDetailCardHeadings = true
			d.ActionNeeded = true
			d.IsSaleNotification = true
			d.PrimaryButton = params.actionButton(process.BookingAccept, domain.RoleProvider)
			d.SecondaryButton = params.actionButton(process.BookingDecline, domain.RoleProvider)
			return &d
		}).
		Cond([]string{process.BookingStateDeclined, resolver.Wildcard}, finalCard(base)).
		Cond([]string{process.BookingStateExpired, resolver.Wildcard}, finalCard(base)).
		Cond([]string{process.BookingStatePaymentExpired, resolver.Wildcard}, finalCard(base)).
		Cond([]string{process.BookingStateAccepted, resolver.Wildcard}, func() *StateData {
			d := base
			d.ShowDetailCardHeadings = true
			return &d
		}).
		Cond([]string{process.BookingStateCanceled, resolver.Wildcard}, finalCard(base)).
		Cond([]string{process.BookingStateDelivered, resolver.Wildcard}, func() *StateData {
			d := base
			d.IsFinal = true
			d.ShowDetailCardHeadings = true
			d.ShowReviewAsFirstLink = true
			d.PrimaryButton = params.leaveReview(params.Role)
			return &d
		}).
		Cond([]string{process.BookingStateReviewedByProvider, customer}, func() *StateData {
			d := base
			d.IsFinal = true
			d.ShowDetailCardHeadings = true
			d.ShowReviewAsSecondLink = true
			d.PrimaryButton = params.leaveReview(domain.RoleCustomer)
			return &d
		}).
		Cond([]string{process.BookingStateReviewedByCustomer, provider}, func() *StateData {
			d := base
			d.IsFinal = true
			d.ShowDetailCardHeadings = true
			d.ShowReviewAsSecondLink = true
			d.PrimaryButton = params.leaveReview(domain.RoleProvider)
			return &d
		}).
		Cond([]string{process.BookingStateReviewed, resolver.Wildcard}, func() *StateData {
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

// finalCard is the shared shape of terminal states that only show the detail
// card.
func finalCard(base StateData) func() *StateData {
	return func() *StateData {
		d := base
		d.IsFinal = true
		d.ShowDetailCardHeadings = true
		return &d
	}
}
