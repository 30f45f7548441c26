package process

// Purchase process states.
const (
	PurchaseStateInitial            = "initial"
	PurchaseStateInquiry            = "inquiry"
	PurchaseStatePendingPayment     = "pending-payment"
	PurchaseStatePaymentExpired     = "payment-expired"
	PurchaseStatePurchased          = "purchased"
	PurchaseStateDelivered          = "delivered"
	PurchaseStateReceived           = "received"
	PurchaseStateDisputed           = "disputed"
	PurchaseStateCanceled           = "canceled"
	PurchaseStateCompleted          = "completed"
	PurchaseStateReviewedByCustomer = "reviewed-by-customer"
	PurchaseStateReviewedByProvider = "reviewed-by-provider"
	PurchaseStateReviewed           = "reviewed"
)

// Purchase process transitions.
const (
	PurchaseInquire                    = "transition/inquire"
	PurchaseRequestPayment             = "transition/request-payment"
	PurchaseRequestPaymentAfterInquiry = "transition/request-payment-after-inquiry"
	PurchaseConfirmPayment             = "transition/confirm-payment"
	PurchaseExpirePayment              = "transition/expire-payment"
	PurchaseMarkDelivered              = "transition/mark-delivered"
	PurchaseOperatorMarkDelivered      = "transition/operator-mark-delivered"
	PurchaseMarkReceivedFromPurchased  = "transition/mark-received-from-purchased"
	PurchaseAutoCancel                 = "transition/auto-cancel"
	PurchaseCancel                     = "transition/cancel"
	PurchaseMarkReceived               = "transition/mark-received"
	PurchaseAutoMarkReceived           = "transition/auto-mark-received"
	PurchaseDispute                    = "transition/dispute"
	PurchaseOperatorDispute            = "transition/operator-dispute"
	PurchaseMarkReceivedFromDisputed   = "transition/mark-received-from-disputed"
	PurchaseAutoCancelFromDisputed     = "transition/auto-cancel-from-disputed"
	PurchaseCancelFromDisputed         = "transition/cancel-from-disputed"
	PurchaseAutoComplete               = "transition/auto-complete"
	PurchaseReview1ByCustomer          = "transition/review-1-by-customer"
	PurchaseReview1ByProvider          = "transition/review-1-by-provider"
	PurchaseReview2ByCustomer          = "transition/review-2-by-customer"
	PurchaseReview2ByProvider          = "transition/review-2-by-provider"
	PurchaseExpireCustomerReviewPeriod = "transition/expire-customer-review-period"
	PurchaseExpireProviderReviewPeriod = "transition/expire-provider-review-period"
	PurchaseExpireReviewPeriod         = "transition/expire-review-period"
)

// Purchase is the default-purchase process: item purchases with shipping,
// dispute handling, and the same two-sided review diamond as booking.
var Purchase = &Definition{
	Name:         "default-purchase",
	Alias:        "default-purchase/release-1",
	UnitTypes:    []string{"item"},
	InitialState: PurchaseStateInitial,
	States: []State{
		{
			Name: PurchaseStateInitial,
			Transitions: map[string]string{
				PurchaseInquire:        PurchaseStateInquiry,
				PurchaseRequestPayment: PurchaseStatePendingPayment,
			},
		},
		{
			Name: PurchaseStateInquiry,
			Transitions: map[string]string{
				PurchaseRequestPaymentAfterInquiry: PurchaseStatePendingPayment,
			},
		},
		{
			Name: PurchaseStatePendingPayment,
			Transitions: map[string]string{
				PurchaseExpirePayment:  PurchaseStatePaymentExpired,
				PurchaseConfirmPayment: PurchaseStatePurchased,
			},
		},
		{Name: PurchaseStatePaymentExpired, Final: true},
		{
			Name: PurchaseStatePurchased,
			Transitions: map[string]string{
				PurchaseMarkDelivered:             PurchaseStateDelivered,
				PurchaseOperatorMarkDelivered:     PurchaseStateDelivered,
				PurchaseMarkReceivedFromPurchased: PurchaseStateReceived,
				PurchaseAutoCancel:                PurchaseStateCanceled,
				PurchaseCancel:                    PurchaseStateCanceled,
			},
		},
		{
			Name: PurchaseStateDelivered,
			Transitions: map[string]string{
				PurchaseMarkReceived:     PurchaseStateReceived,
				PurchaseAutoMarkReceived: PurchaseStateReceived,
				PurchaseDispute:          PurchaseStateDisputed,
				PurchaseOperatorDispute:  PurchaseStateDisputed,
			},
		},
		{
			Name: PurchaseStateDisputed,
			Transitions: map[string]string{
				PurchaseMarkReceivedFromDisputed: PurchaseStateReceived,
				PurchaseAutoCancelFromDisputed:   PurchaseStateCanceled,
				PurchaseCancelFromDisputed:       PurchaseStateCanceled,
			},
		},
		{Name: PurchaseStateCanceled, Final: true},
		{
			Name: PurchaseStateReceived,
			Transitions: map[string]string{
				PurchaseAutoComplete: PurchaseStateCompleted,
			},
		},
		{
			Name: PurchaseStateCompleted,
			Transitions: map[string]string{
				PurchaseExpireReviewPeriod: PurchaseStateReviewed,
				PurchaseReview1ByCustomer:  PurchaseStateReviewedByCustomer,
				PurchaseReview1ByProvider:  PurchaseStateReviewedByProvider,
			},
		},
		{
			Name: PurchaseStateReviewedByCustomer,
			Transitions: map[string]string{
				PurchaseReview2ByProvider:          PurchaseStateReviewed,
				PurchaseExpireProviderReviewPeriod: PurchaseStateReviewed,
			},
		},
		{
			Name: PurchaseStateReviewedByProvider,
			Transitions: map[string]string{
				PurchaseReview2ByCustomer:          PurchaseStateReviewed,
				PurchaseExpireCustomerReviewPeriod: PurchaseStateReviewed,
			},
		},
		{Name: PurchaseStateReviewed, Final: true},
	},
	Transitions: []string{
		PurchaseInquire,
		PurchaseRequestPayment,
		PurchaseRequestPaymentAfterInquiry,
		PurchaseConfirmPayment,
		PurchaseExpirePayment,
		PurchaseMarkDelivered,
		PurchaseOperatorMarkDelivered,
		PurchaseMarkReceivedFromPurchased,
		PurchaseAutoCancel,
		PurchaseCancel,
		PurchaseMarkReceived,
		PurchaseAutoMarkReceived,
		PurchaseDispute,
		PurchaseOperatorDispute,
		PurchaseMarkReceivedFromDisputed,
		PurchaseAutoCancelFromDisputed,
		PurchaseCancelFromDisputed,
		PurchaseAutoComplete,
		PurchaseReview1ByCustomer,
		PurchaseReview1ByProvider,
		PurchaseReview2ByCustomer,
		PurchaseReview2ByProvider,
		PurchaseExpireCustomerReviewPeriod,
		PurchaseExpireProviderReviewPeriod,
		PurchaseExpireReviewPeriod,
	},
	Classify: Classification{
		RelevantPast: []string{
			PurchaseConfirmPayment,
			PurchaseMarkDelivered,
			PurchaseOperatorMarkDelivered,
			PurchaseMarkReceivedFromPurchased,
			PurchaseAutoCancel,
			PurchaseCancel,
			PurchaseMarkReceived,
			PurchaseAutoMarkReceived,
			PurchaseDispute,
			PurchaseOperatorDispute,
			PurchaseMarkReceivedFromDisputed,
			PurchaseAutoCancelFromDisputed,
			PurchaseCancelFromDisputed,
			PurchaseAutoComplete,
			PurchaseReview1ByCustomer,
			PurchaseReview1ByProvider,
			PurchaseReview2ByCustomer,
			PurchaseReview2ByProvider,
		},
		Privileged: []string{
			PurchaseRequestPayment,
			PurchaseRequestPaymentAfterInquiry,
		},
		Completed: []string{
			PurchaseAutoComplete,
			PurchaseReview1ByCustomer,
			PurchaseReview1ByProvider,
			PurchaseReview2ByCustomer,
			PurchaseReview2ByProvider,
			PurchaseExpireReviewPeriod,
			PurchaseExpireCustomerReviewPeriod,
			PurchaseExpireProviderReviewPeriod,
		},
		Refunded: []string{
			PurchaseExpirePayment,
			PurchaseAutoCancel,
			PurchaseCancel,
			PurchaseAutoCancelFromDisputed,
			PurchaseCancelFromDisputed,
		},
		CustomerReview: []string{
			PurchaseReview1ByCustomer,
			PurchaseReview2ByCustomer,
		},
		ProviderReview: []string{
			PurchaseReview1ByProvider,
			PurchaseReview2ByProvider,
		},
	},
	AttentionStates: []string{PurchaseStatePurchased},
}
