package models

import "time"

// ConfirmationRecord is the immutable summary produced once, at the
// payment-to-confirmation transition. The breakdown and guest info are
// frozen copies; the booking ID is session-unique, derived from the
// settlement timestamp, and not guaranteed globally unique.
type ConfirmationRecord struct {
	BookingID         string         `json:"bookingId"`
	HotelName         string         `json:"hotelName"`
	RoomName          string         `json:"roomName"`
	CheckIn           time.Time      `json:"checkIn"`
	CheckOut          time.Time      `json:"checkOut"`
	Nights            int            `json:"nights"`
	RoomsCount        int            `json:"roomsCount"`
	GuestCount        int            `json:"guestCount"`
	RoomPricePerNight int64          `json:"roomPricePerNight"`
	Breakdown         PriceBreakdown `json:"breakdown"`
	Guest             GuestInfo      `json:"guest"`
	PaymentMethod     PaymentMethod  `json:"paymentMethod"`
	PaymentRef        string         `json:"paymentRef,omitempty"`
	CreatedAt         time.Time      `json:"createdAt"`
}
