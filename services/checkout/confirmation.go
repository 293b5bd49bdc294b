package checkout

import (
	"fmt"
	"time"

	"stayhub/models"
)

// bookingIDPrefix is the short prefix in front of the timestamp-derived
// booking ID.
const bookingIDPrefix = "SH"

// NewBookingID derives a session-unique booking ID from the settlement
// timestamp. It is not guaranteed globally unique.
func NewBookingID(now time.Time) string {
	return fmt.Sprintf("%s%d", bookingIDPrefix, now.UnixMilli())
}

// buildConfirmationRecord freezes the session outcome into the immutable
// confirmation record. The state machine calls it exactly once, at the
// payment-to-confirmation edge, with the breakdown computed immediately
// before the settlement await.
func buildConfirmationRecord(draft models.BookingDraft, guest models.GuestInfo, breakdown models.PriceBreakdown, method models.PaymentMethod, paymentRef string, now time.Time) *models.ConfirmationRecord {
	return &models.ConfirmationRecord{
		BookingID:         NewBookingID(now),
		HotelName:         draft.HotelName,
		RoomName:          draft.RoomName,
		CheckIn:           draft.CheckIn,
		CheckOut:          draft.CheckOut,
		Nights:            draft.Nights(),
		RoomsCount:        draft.RoomsCount,
		GuestCount:        draft.GuestCount(),
		RoomPricePerNight: draft.RoomPricePerNight,
		Breakdown:         breakdown,
		Guest:             guest,
		PaymentMethod:     method,
		PaymentRef:        paymentRef,
		CreatedAt:         now,
	}
}
