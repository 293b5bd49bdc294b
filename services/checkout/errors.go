package checkout

import "fmt"

// FlowError is a coded error raised by checkout state transitions.
type FlowError struct {
	Code    string
	Message string
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	// ErrSessionNotFound is returned when the session ID is unknown or the
	// session has already been torn down.
	ErrSessionNotFound = &FlowError{Code: "sessionNotFound", Message: "checkout session not found or expired"}

	// ErrWrongStep is returned when an operation is invoked outside the step
	// it belongs to.
	ErrWrongStep = &FlowError{Code: "wrongStep", Message: "operation not allowed in the current checkout step"}

	// ErrNotPayable is returned when the draft has zero nights.
	ErrNotPayable = &FlowError{Code: "notPayable", Message: "stay must cover at least one night"}

	// ErrHoldExpired blocks payment submission until the hold is extended or
	// the session abandoned.
	ErrHoldExpired = &FlowError{Code: "holdExpired", Message: "price hold expired; extend the hold or abandon the session"}

	// ErrPaymentInFlight rejects a second submission while one is pending.
	ErrPaymentInFlight = &FlowError{Code: "paymentInFlight", Message: "a payment submission is already being processed"}

	// ErrSettlementFailed is a retryable settlement outcome; the session
	// stays on the payment step.
	ErrSettlementFailed = &FlowError{Code: "settlementFailed", Message: "payment settlement failed, please try again"}

	// ErrQRNotActive is returned when a QR regeneration is requested while a
	// non-QR payment method is selected.
	ErrQRNotActive = &FlowError{Code: "qrNotActive", Message: "selected payment method does not use a QR code"}

	// ErrInvalidMethod rejects a payment method outside the supported set.
	ErrInvalidMethod = &FlowError{Code: "invalidMethod", Message: "unsupported payment method"}

	// ErrMethodRequired is returned when payment is submitted before a
	// method was selected.
	ErrMethodRequired = &FlowError{Code: "methodRequired", Message: "select a payment method first"}

	// ErrCardNotSelected is returned when card fields arrive while another
	// payment method is selected.
	ErrCardNotSelected = &FlowError{Code: "cardNotSelected", Message: "card is not the selected payment method"}
)

// DiscountError is a coded error raised by promo-code validation.
type DiscountError struct {
	Code    string
	Message string
}

func (e *DiscountError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Discount error codes.
const (
	DiscountUnknownCode       = "unknownCode"
	DiscountBelowMinimumOrder = "belowMinimumOrder"
)

// CardValidationError carries the per-field card form errors that aborted a
// payment submission.
type CardValidationError struct {
	Fields map[string]string
}

func (e *CardValidationError) Error() string {
	return fmt.Sprintf("card validation failed for %d field(s)", len(e.Fields))
}

// GuestValidationError carries the per-field guest form errors that kept the
// session on the guest-info step.
type GuestValidationError struct {
	Fields map[string]string
}

func (e *GuestValidationError) Error() string {
	return fmt.Sprintf("guest validation failed for %d field(s)", len(e.Fields))
}
