package models

// CheckoutStep names the three linear steps of the checkout flow.
type CheckoutStep string

const (
	StepGuestInfo    CheckoutStep = "guestInfo"
	StepPayment      CheckoutStep = "payment"
	StepConfirmation CheckoutStep = "confirmation"
)

// CheckoutSessionView is the snapshot of a checkout session handed to
// clients. The live session (timers, cancellation context, in-flight guard)
// stays server-side; this view carries everything a step needs to render.
type CheckoutSessionView struct {
	SessionID    string              `json:"sessionId"`
	Step         CheckoutStep        `json:"step"`
	Draft        BookingDraft        `json:"draft"`
	Guest        *GuestInfo          `json:"guest,omitempty"`
	GuestFields  FieldValidationMap  `json:"guestFields,omitempty"`
	Discount     *AppliedDiscount    `json:"discount,omitempty"`
	Payment      PaymentSelection    `json:"payment"`
	CardFields   FieldValidationMap  `json:"cardFields,omitempty"`
	Breakdown    PriceBreakdown      `json:"breakdown"`
	Hold         *CountdownState     `json:"hold,omitempty"`
	HoldExpired  bool                `json:"holdExpired"`
	QR           *CountdownState     `json:"qr,omitempty"`
	QRPayload    *QRPayload          `json:"qrPayload,omitempty"`
	Processing   bool                `json:"processing"`
	Confirmation *ConfirmationRecord `json:"confirmation,omitempty"`
}
