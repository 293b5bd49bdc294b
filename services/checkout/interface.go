package checkout

import "stayhub/models"

// CheckoutService drives the three-step checkout flow: guest info, payment,
// confirmation. Every call returns a fresh session snapshot; the live
// session state never leaves the service.
type CheckoutService interface {
	StartSession(draft *models.BookingDraft) *models.CheckoutSessionView
	GetSession(sessionID string) (*models.CheckoutSessionView, error)
	SubmitGuestInfo(sessionID string, guest models.GuestInfo) (*models.CheckoutSessionView, error)
	Back(sessionID string) (*models.CheckoutSessionView, error)
	SelectPaymentMethod(sessionID string, method models.PaymentMethod) (*models.CheckoutSessionView, error)
	AttachCardFields(sessionID string, fields models.CardFields) (*models.CheckoutSessionView, error)
	ApplyDiscount(sessionID string, code string) (*models.CheckoutSessionView, error)
	RemoveDiscount(sessionID string) (*models.CheckoutSessionView, error)
	SubmitPayment(sessionID string) (*models.CheckoutSessionView, error)
	ExtendHold(sessionID string) (*models.CheckoutSessionView, error)
	RegenerateQR(sessionID string) (*models.CheckoutSessionView, error)
	Abandon(sessionID string) error
}
