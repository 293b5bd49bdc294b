package checkout

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"stayhub/metrics"
	"stayhub/models"
)

// cardFormFields lists the field keys of the card form.
var cardFormFields = []string{"number", "expiry", "cvv", "holderName"}

// DefaultCheckoutService implements CheckoutService on top of an in-memory
// session store and a settlement gateway.
type DefaultCheckoutService struct {
	Store   *SessionStore
	Gateway SettlementGateway
	Catalog []models.DiscountRule
	Logger  *zap.Logger

	FeeRate      float64
	CashbackRate float64

	HoldMinutes       int
	HoldExtendMinutes int
	QRMinutes         int
}

// StartSession creates a session for the given draft. A missing or
// malformed draft falls back to the fixed demo draft so every step stays
// independently reachable.
func (svc *DefaultCheckoutService) StartSession(draft *models.BookingDraft) *models.CheckoutSessionView {
	d := models.DemoDraft()
	if draft != nil && draft.Valid() {
		d = *draft
	} else if draft != nil {
		svc.Logger.Warn("malformed booking draft, falling back to demo draft",
			zap.String("hotelId", draft.HotelID))
	}

	s := newSession(uuid.New().String(), d)
	svc.Store.put(s)
	metrics.SessionsStarted.Inc()
	svc.Logger.Info("checkout session started",
		zap.String("sessionId", s.id),
		zap.String("hotelId", d.HotelID),
		zap.Int("nights", d.Nights()))

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view(svc.FeeRate, svc.CashbackRate)
}

// GetSession returns the current snapshot.
func (svc *DefaultCheckoutService) GetSession(sessionID string) (*models.CheckoutSessionView, error) {
	return svc.withSession(sessionID, func(s *session) error { return nil })
}

// SubmitGuestInfo validates the guest form. On success it stores the guest,
// starts the price-hold countdown and advances to the payment step; on
// failure the session stays put and the per-field errors are surfaced.
func (svc *DefaultCheckoutService) SubmitGuestInfo(sessionID string, guest models.GuestInfo) (*models.CheckoutSessionView, error) {
	return svc.withSession(sessionID, func(s *session) error {
		if s.step != models.StepGuestInfo {
			return ErrWrongStep
		}

		errs := ValidateGuestInfo(guest)
		s.guestFields = models.BuildFieldValidationMap(GuestFormFields, errs)
		if len(errs) > 0 {
			return &GuestValidationError{Fields: errs}
		}

		g := guest
		s.guest = &g
		s.step = models.StepPayment
		s.holdExpired = false
		s.hold.Start(svc.HoldMinutes, svc.holdExpiryFunc(s))

		metrics.GuestSubmits.Inc()
		svc.Logger.Info("guest info accepted, price hold started",
			zap.String("sessionId", s.id),
			zap.Int("holdMinutes", svc.HoldMinutes))
		return nil
	})
}

// holdExpiryFunc marks the session's hold as expired if it is still on the
// payment step when the countdown runs out.
func (svc *DefaultCheckoutService) holdExpiryFunc(s *session) func() {
	return func() {
		s.mu.Lock()
		if s.step == models.StepPayment {
			s.holdExpired = true
			metrics.HoldsExpired.Inc()
			svc.Logger.Info("price hold expired", zap.String("sessionId", s.id))
		}
		s.mu.Unlock()
	}
}

// Back returns from the payment step to the guest step without discarding
// anything already entered, enabling edit-then-resubmit.
func (svc *DefaultCheckoutService) Back(sessionID string) (*models.CheckoutSessionView, error) {
	return svc.withSession(sessionID, func(s *session) error {
		if s.step != models.StepPayment {
			return ErrWrongStep
		}
		if s.holdExpired {
			return ErrHoldExpired
		}
		s.step = models.StepGuestInfo
		return nil
	})
}

// SelectPaymentMethod switches the payment method. Leaving the card method
// discards partially entered card fields; entering a QR method issues a
// payload and arms the QR refresh countdown.
func (svc *DefaultCheckoutService) SelectPaymentMethod(sessionID string, method models.PaymentMethod) (*models.CheckoutSessionView, error) {
	return svc.withSession(sessionID, func(s *session) error {
		if s.step != models.StepPayment {
			return ErrWrongStep
		}
		if !method.Valid() {
			return ErrInvalidMethod
		}

		if s.payment.Method == models.MethodCard && method != models.MethodCard {
			s.payment.Card = nil
			s.cardFields = nil
		}
		s.payment.Method = method

		if method.UsesQR() {
			breakdown := ComputeBreakdown(s.draft, s.discount, svc.FeeRate, svc.CashbackRate)
			s.qrPayload = newQRPayload(method, breakdown.GrandTotal, time.Now())
			s.qr.Start(svc.QRMinutes, nil)
			s.qrArmed = true
		} else if s.qrArmed {
			s.qr.Stop()
			s.qrArmed = false
			s.qrPayload = nil
		}
		return nil
	})
}

// AttachCardFields captures the card form, normalizing number and expiry
// formatting. Validation display state is refreshed; hard validation runs
// again on payment submission.
func (svc *DefaultCheckoutService) AttachCardFields(sessionID string, fields models.CardFields) (*models.CheckoutSessionView, error) {
	return svc.withSession(sessionID, func(s *session) error {
		if s.step != models.StepPayment {
			return ErrWrongStep
		}
		if s.payment.Method != models.MethodCard {
			return ErrCardNotSelected
		}

		card := models.CardFields{
			Number:     FormatCardNumber(fields.Number),
			Expiry:     FormatExpiry(fields.Expiry),
			CVV:        fields.CVV,
			HolderName: fields.HolderName,
		}
		s.payment.Card = &card
		s.cardFields = models.BuildFieldValidationMap(cardFormFields, ValidateCardFields(card, time.Now()))
		return nil
	})
}

// ApplyDiscount validates a promo code against the current subtotal.
// Re-applying while a discount is attached is replace-after-clear: the old
// discount is removed before the new code is evaluated, so two discounts can
// never be active at once.
func (svc *DefaultCheckoutService) ApplyDiscount(sessionID string, code string) (*models.CheckoutSessionView, error) {
	return svc.withSession(sessionID, func(s *session) error {
		if s.step != models.StepPayment {
			return ErrWrongStep
		}

		s.discount = nil
		subtotal := ComputeBreakdown(s.draft, nil, svc.FeeRate, svc.CashbackRate).Subtotal
		applied, err := ApplyDiscountCode(code, subtotal, svc.Catalog)
		if err != nil {
			return err
		}
		s.discount = applied
		svc.Logger.Info("discount applied",
			zap.String("sessionId", s.id),
			zap.String("code", applied.Code),
			zap.Int64("amount", applied.Amount))
		return nil
	})
}

// RemoveDiscount clears the applied discount unconditionally.
func (svc *DefaultCheckoutService) RemoveDiscount(sessionID string) (*models.CheckoutSessionView, error) {
	return svc.withSession(sessionID, func(s *session) error {
		if s.step != models.StepPayment {
			return ErrWrongStep
		}
		s.discount = nil
		return nil
	})
}

// SubmitPayment runs the settlement and, on success, builds the
// confirmation record and advances to the confirmation step. The in-flight
// guard serializes submissions; the breakdown frozen before the settlement
// await is the one written into the record.
func (svc *DefaultCheckoutService) SubmitPayment(sessionID string) (*models.CheckoutSessionView, error) {
	s, ok := svc.Store.get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	s.mu.Lock()
	if s.step != models.StepPayment {
		s.mu.Unlock()
		return nil, ErrWrongStep
	}
	if s.holdExpired {
		s.mu.Unlock()
		return nil, ErrHoldExpired
	}
	if s.processing {
		s.mu.Unlock()
		return nil, ErrPaymentInFlight
	}
	if s.draft.Nights() < 1 {
		s.mu.Unlock()
		return nil, ErrNotPayable
	}
	if s.payment.Method == "" {
		s.mu.Unlock()
		return nil, ErrMethodRequired
	}
	if s.payment.Method == models.MethodCard {
		card := models.CardFields{}
		if s.payment.Card != nil {
			card = *s.payment.Card
		}
		errs := ValidateCardFields(card, time.Now())
		s.cardFields = models.BuildFieldValidationMap(cardFormFields, errs)
		if len(errs) > 0 {
			s.mu.Unlock()
			return nil, &CardValidationError{Fields: errs}
		}
	}

	breakdown := ComputeBreakdown(s.draft, s.discount, svc.FeeRate, svc.CashbackRate)
	req := models.SettlementRequest{
		SessionID: s.id,
		Method:    s.payment.Method,
		Amount:    breakdown.GrandTotal,
	}
	s.processing = true
	ctx := s.ctx
	s.mu.Unlock()

	result, err := svc.Gateway.Settle(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	if ctx.Err() != nil {
		// Session was torn down while the settlement was outstanding; the
		// completion is discarded, never applied to a dead session.
		return nil, ErrSessionNotFound
	}
	s.processing = false
	if err != nil {
		metrics.PaymentsFailed.Inc()
		svc.Logger.Warn("payment settlement failed",
			zap.String("sessionId", s.id),
			zap.Error(err))
		return nil, ErrSettlementFailed
	}

	s.confirmation = buildConfirmationRecord(s.draft, *s.guest, breakdown, s.payment.Method, result.PaymentRef, result.SettledAt)
	s.step = models.StepConfirmation
	// The hold only guards the payment step; an expiry that raced the
	// settlement await must not surface on the confirmation.
	s.holdExpired = false
	s.hold.Stop()
	s.qr.Stop()
	s.qrArmed = false
	s.touch()

	metrics.PaymentsSucceeded.Inc()
	svc.Logger.Info("payment settled, booking confirmed",
		zap.String("sessionId", s.id),
		zap.String("bookingId", s.confirmation.BookingID),
		zap.Int64("grandTotal", breakdown.GrandTotal))
	return s.view(svc.FeeRate, svc.CashbackRate), nil
}

// ExtendHold re-arms the price hold with the extension window and clears the
// expired substate, returning the session to normal payment.
func (svc *DefaultCheckoutService) ExtendHold(sessionID string) (*models.CheckoutSessionView, error) {
	return svc.withSession(sessionID, func(s *session) error {
		if s.step != models.StepPayment {
			return ErrWrongStep
		}
		s.hold.Reset(svc.HoldExtendMinutes)
		s.holdExpired = false
		metrics.HoldsExtended.Inc()
		svc.Logger.Info("price hold extended",
			zap.String("sessionId", s.id),
			zap.Int("minutes", svc.HoldExtendMinutes))
		return nil
	})
}

// RegenerateQR issues a fresh QR payload and re-arms the refresh countdown.
func (svc *DefaultCheckoutService) RegenerateQR(sessionID string) (*models.CheckoutSessionView, error) {
	return svc.withSession(sessionID, func(s *session) error {
		if s.step != models.StepPayment {
			return ErrWrongStep
		}
		if !s.payment.Method.UsesQR() {
			return ErrQRNotActive
		}
		breakdown := ComputeBreakdown(s.draft, s.discount, svc.FeeRate, svc.CashbackRate)
		s.qrPayload = newQRPayload(s.payment.Method, breakdown.GrandTotal, time.Now())
		s.qr.Reset(svc.QRMinutes)
		s.qrArmed = true
		return nil
	})
}

// Abandon discards the session, stopping its timers and cancelling any
// outstanding settlement.
func (svc *DefaultCheckoutService) Abandon(sessionID string) error {
	if !svc.Store.remove(sessionID) {
		return ErrSessionNotFound
	}
	metrics.SessionsAbandoned.Inc()
	svc.Logger.Info("checkout session abandoned", zap.String("sessionId", sessionID))
	return nil
}

// withSession runs fn under the session lock and returns a fresh snapshot.
func (svc *DefaultCheckoutService) withSession(sessionID string, fn func(*session) error) (*models.CheckoutSessionView, error) {
	s, ok := svc.Store.get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(s); err != nil {
		return nil, err
	}
	s.touch()
	return s.view(svc.FeeRate, svc.CashbackRate), nil
}
