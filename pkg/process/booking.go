package process

// Booking process states.
const (
	BookingStateInitial            = "initial"
	BookingStateInquiry            = "inquiry"
	BookingStatePendingPayment     = "pending-payment"
	BookingStatePaymentExpired     = "payment-expired"
	BookingStatePreauthorized      = "preauthorized"
	BookingStateDeclined           = "declined"
	BookingStateAccepted           = "accepted"
	BookingStateExpired            = "expired"
	BookingStateCanceled           = "canceled"
	BookingStateDelivered          = "delivered"
	BookingStateReviewedByCustomer = "reviewed-by-customer"
	BookingStateReviewedByProvider = "reviewed-by-provider"
	BookingStateReviewed           = "reviewed"
)

// Booking process transitions. These are process-local constants: the same
// English word in another process is a different transition.
const (
	BookingInquire                    = "transition/inquire"
	BookingRequestPayment             = "transition/request-payment"
	BookingRequestPaymentAfterInquiry = "transition/request-payment-after-inquiry"
	BookingConfirmPayment             = "transition/confirm-payment"
	BookingExpirePayment              = "transition/expire-payment"
	BookingAccept                     = "transition/accept"
	BookingOperatorAccept             = "transition/operator-accept"
	BookingDecline                    = "transition/decline"
	BookingOperatorDecline            = "transition/operator-decline"
	BookingExpire                     = "transition/expire"
	BookingCancel                     = "transition/cancel"
	BookingComplete                   = "transition/complete"
	BookingOperatorComplete           = "transition/operator-complete"
	BookingReview1ByCustomer          = "transition/review-1-by-customer"
	BookingReview1ByProvider          = "transition/review-1-by-provider"
	BookingReview2ByCustomer          = "transition/review-2-by-customer"
	BookingReview2ByProvider          = "transition/review-2-by-provider"
	BookingExpireCustomerReviewPeriod = "transition/expire-customer-review-period"
	BookingExpireProviderReviewPeriod = "transition/expire-provider-review-period"
	BookingExpireReviewPeriod         = "transition/expire-review-period"
)

// Booking is the default-booking process: calendar bookings with a
// preauthorize-then-accept payment flow and a two-sided review diamond at the
// end (either party may review first).
var Booking = &Definition{
	Name:         "default-booking",
	Alias:        "default-booking/release-1",
	UnitTypes:    []string{"day", "night", "hour"},
	InitialState: BookingStateInitial,
	States: []State{
		{
			Name: BookingStateInitial,
			Transitions: map[string]string{
				BookingInquire:        BookingStateInquiry,
				BookingRequestPayment: BookingStatePendingPayment,
			},
		},
		{
			Name: BookingStateInquiry,
			Transitions: map[string]string{
				BookingRequestPaymentAfterInquiry: BookingStatePendingPayment,
			},
		},
		{
			Name: BookingStatePendingPayment,
			Transitions: map[string]string{
				BookingExpirePayment:  BookingStatePaymentExpired,
				BookingConfirmPayment: BookingStatePreauthorized,
			},
		},
		{Name: BookingStatePaymentExpired, Final: true},
		{
			Name: BookingStatePreauthorized,
			Transitions: map[string]string{
				BookingAccept:          BookingStateAccepted,
				BookingOperatorAccept:  BookingStateAccepted,
				BookingDecline:         BookingStateDeclined,
				BookingOperatorDecline: BookingStateDeclined,
				BookingExpire:          BookingStateExpired,
			},
		},
		{Name: BookingStateDeclined, Final: true},
		{Name: BookingStateExpired, Final: true},
		{
			Name: BookingStateAccepted,
			Transitions: map[string]string{
				BookingCancel:           BookingStateCanceled,
				BookingComplete:         BookingStateDelivered,
				BookingOperatorComplete: BookingStateDelivered,
			},
		},
		{Name: BookingStateCanceled, Final: true},
		{
			Name: BookingStateDelivered,
			Transitions: map[string]string{
				BookingExpireReviewPeriod: BookingStateReviewed,
				BookingReview1ByCustomer:  BookingStateReviewedByCustomer,
				BookingReview1ByProvider:  BookingStateReviewedByProvider,
			},
		},
		{
			Name: BookingStateReviewedByCustomer,
			Transitions: map[string]string{
				BookingReview2ByProvider:          BookingStateReviewed,
				BookingExpireProviderReviewPeriod: BookingStateReviewed,
			},
		},
		{
			Name: BookingStateReviewedByProvider,
			Transitions: map[string]string{
				BookingReview2ByCustomer:          BookingStateReviewed,
				BookingExpireCustomerReviewPeriod: BookingStateReviewed,
			},
		},
		{Name: BookingStateReviewed, Final: true},
	},
	Transitions: []string{
		BookingInquire,
		BookingRequestPayment,
		BookingRequestPaymentAfterInquiry,
		BookingConfirmPayment,
		BookingExpirePayment,
		BookingAccept,
		BookingOperatorAccept,
		BookingDecline,
		BookingOperatorDecline,
		BookingExpire,
		BookingCancel,
		BookingComplete,
		BookingOperatorComplete,
		BookingReview1ByCustomer,
		BookingReview1ByProvider,
		BookingReview2ByCustomer,
		BookingReview2ByProvider,
		BookingExpireCustomerReviewPeriod,
		BookingExpireProviderReviewPeriod,
		BookingExpireReviewPeriod,
	},
	Classify: Classification{
		RelevantPast: []string{
			BookingConfirmPayment,
			BookingAccept,
			BookingOperatorAccept,
			BookingDecline,
			BookingOperatorDecline,
			BookingExpire,
			BookingCancel,
			BookingComplete,
			BookingOperatorComplete,
			BookingReview1ByCustomer,
			BookingReview1ByProvider,
			BookingReview2ByCustomer,
			BookingReview2ByProvider,
		},
		Privileged: []string{
			BookingRequestPayment,
			BookingRequestPaymentAfterInquiry,
		},
		Completed: []string{
			BookingComplete,
			BookingOperatorComplete,
			BookingReview1ByCustomer,
			BookingReview1ByProvider,
			BookingReview2ByCustomer,
			BookingReview2ByProvider,
			BookingExpireReviewPeriod,
			BookingExpireCustomerReviewPeriod,
			BookingExpireProviderReviewPeriod,
		},
		Refunded: []string{
			BookingExpirePayment,
			BookingCancel,
			BookingDecline,
			BookingOperatorDecline,
			BookingExpire,
		},
		CustomerReview: []string{
			BookingReview1ByCustomer,
			BookingReview2ByCustomer,
		},
		ProviderReview: []string{
			BookingReview1ByProvider,
			BookingReview2ByProvider,
		},
	},
	AttentionStates: []string{BookingStatePreauthorized},
}
