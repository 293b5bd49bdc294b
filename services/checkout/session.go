package checkout

import (
	"context"
	"sync"
	"time"

	"stayhub/models"
)

// session is the live server-side checkout session. It owns two countdown
// timers and a cancellation context; neither survives the session, which is
// why sessions live in process memory rather than an external cache.
type session struct {
	mu sync.Mutex

	id    string
	step  models.CheckoutStep
	draft models.BookingDraft

	guest       *models.GuestInfo
	guestFields models.FieldValidationMap

	discount *models.AppliedDiscount

	payment    models.PaymentSelection
	cardFields models.FieldValidationMap

	hold        *CountdownTimer
	holdExpired bool

	qr        *CountdownTimer
	qrArmed   bool
	qrPayload *models.QRPayload

	processing   bool
	confirmation *models.ConfirmationRecord

	touchedAt time.Time

	ctx    context.Context
	cancel context.CancelFunc
}

func newSession(id string, draft models.BookingDraft) *session {
	ctx, cancel := context.WithCancel(context.Background())
	return &session{
		id:        id,
		step:      models.StepGuestInfo,
		draft:     draft,
		hold:      NewCountdownTimer(),
		qr:        NewCountdownTimer(),
		touchedAt: time.Now(),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// touch must be called with the mutex held.
func (s *session) touch() {
	s.touchedAt = time.Now()
}

// teardown stops both timers and cancels any outstanding settlement so a
// late completion is discarded instead of applied to a dead session.
func (s *session) teardown() {
	s.cancel()
	s.hold.Stop()
	s.qr.Stop()
}

// view assembles the client snapshot. Must be called with the mutex held.
func (s *session) view(feeRate, cashbackRate float64) *models.CheckoutSessionView {
	v := &models.CheckoutSessionView{
		SessionID:    s.id,
		Step:         s.step,
		Draft:        s.draft,
		Guest:        s.guest,
		GuestFields:  s.guestFields,
		Discount:     s.discount,
		Payment:      s.payment,
		CardFields:   s.cardFields,
		Breakdown:    ComputeBreakdown(s.draft, s.discount, feeRate, cashbackRate),
		HoldExpired:  s.holdExpired,
		Processing:   s.processing,
		Confirmation: s.confirmation,
	}
	if hold := s.hold.State(); hold.TotalSeconds > 0 {
		v.Hold = &hold
	}
	if s.qrArmed {
		qr := s.qr.State()
		v.QR = &qr
		v.QRPayload = s.qrPayload
	}
	return v
}
