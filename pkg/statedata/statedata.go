package statedata

import (
	"github.com/sharetribe/txprocess/pkg/domain"
	"github.com/sharetribe/txprocess/pkg/registry"
)

// Button describes an action or review button the rendering layer may show.
// It is plain data; the engine attaches no behavior to it.
type Button struct {
	Transition string      `json:"transition,omitempty"`
	By         domain.Role `json:"by,omitempty"`
	Review     bool        `json:"review,omitempty"`
}

// StateData is the UI-decision descriptor computed for one (state, role)
// combination. The rendering layer interprets it; the engine only assembles
// it.
type StateData struct {
	ProcessName  string `json:"process_name"`
	ProcessState string `json:"process_state"`

	ActionNeeded       bool `json:"action_needed,omitempty"`
	IsFinal            bool `json:"is_final,omitempty"`
	IsSaleNotification bool `json:"is_sale_notification,omitempty"`

	ShowDetailCardHeadings bool `json:"show_detail_card_headings,omitempty"`
	ShowDispute            bool `json:"show_dispute,omitempty"`
	ShowOrderPanel         bool `json:"show_order_panel,omitempty"`
	ShowExtraInfo          bool `json:"show_extra_info,omitempty"`
	ShowReviewAsFirstLink  bool `json:"show_review_as_first_link,omitempty"`
	ShowReviewAsSecondLink bool `json:"show_review_as_second_link,omitempty"`
	ShowReviews            bool `json:"show_reviews,omitempty"`

	PrimaryButton   *Button `json:"primary_button,omitempty"`
	SecondaryButton *Button `json:"secondary_button,omitempty"`
}

// Params carries the facts and caller-supplied descriptor factories one
// resolution needs. ActionButtonFor and LeaveReviewFor may be nil, in which
// case plain Button descriptors are produced.
type Params struct {
	Transaction *domain.Transaction
	Role        domain.Role

	ActionButtonFor func(transition string, by domain.Role) *Button
	LeaveReviewFor  func(by domain.Role) *Button
}

func (p Params) actionButton(transition string, by domain.Role) *Button {
	if p.ActionButtonFor != nil {
		return p.ActionButtonFor(transition, by)
	}
	return &Button{Transition: transition, By: by}
}

func (p Params) leaveReview(by domain.Role) *Button {
	if p.LeaveReviewFor != nil {
		return p.LeaveReviewFor(by)
	}
	return &Button{By: by, Review: true}
}

// Resolve computes the UI-decision descriptor for the transaction viewed as
// the given role. It never returns nil and never panics: unhandled (state,
// role) combinations degrade to a minimal descriptor that just echoes the
// process name and state.
func Resolve(proc *registry.Process, params Params) *StateData {
	state := proc.State(params.Transaction)
	switch proc.Name {
	case registry.PurchaseProcessName:
		return purchaseStateData(proc.Name, state, params)
	case registry.BookingProcessName:
		return bookingStateData(proc.Name, state, params)
	case registry.InquiryProcessName:
		return inquiryStateData(proc.Name, state, params)
	default:
		return &StateData{ProcessName: proc.Name, ProcessState: state}
	}
}
