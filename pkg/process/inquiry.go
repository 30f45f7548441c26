package process

// Inquiry process states.
const (
	InquiryStateInitial     = "initial"
	InquiryStateFreeInquiry = "free-inquiry"
)

// Inquiry process transitions.
const (
	InquireWithoutPayment = "transition/inquire-without-payment"
)

// Inquiry is the default-inquiry process: a free conversation opener with no
// payment flow and no reviews.
var Inquiry = &Definition{
	Name:         "default-inquiry",
	Alias:        "default-inquiry/release-1",
	UnitTypes:    []string{"inquiry"},
	InitialState: InquiryStateInitial,
	States: []State{
		{
			Name: InquiryStateInitial,
			Transitions: map[string]string{
				InquireWithoutPayment: InquiryStateFreeInquiry,
			},
		},
		{Name: InquiryStateFreeInquiry, Final: true},
	},
	Transitions: []string{
		InquireWithoutPayment,
	},
	Classify: Classification{},
}
