package models

import "time"

// Stay composition limits enforced when a draft enters the checkout flow.
const (
	MinRooms    = 1
	MaxRooms    = 5
	MinAdults   = 1
	MaxAdults   = 10
	MinChildren = 0
	MaxChildren = 6
)

// BookingDraft is the room/stay selection handed over by the calling page
// when the user enters checkout. All monetary values are integer
// minor-currency units.
type BookingDraft struct {
	HotelID           string    `json:"hotelId"`
	HotelName         string    `json:"hotelName"`
	RoomName          string    `json:"roomName"`
	RoomPricePerNight int64     `json:"roomPricePerNight"`
	CheckIn           time.Time `json:"checkIn"`
	CheckOut          time.Time `json:"checkOut"`
	RoomsCount        int       `json:"roomsCount"`
	AdultsCount       int       `json:"adultsCount"`
	ChildrenCount     int       `json:"childrenCount"`
}

// Nights returns the stay length in whole days, never negative.
func (d BookingDraft) Nights() int {
	n := int(d.CheckOut.Sub(d.CheckIn).Hours() / 24)
	if n < 0 {
		return 0
	}
	return n
}

// GuestCount is the total headcount across adults and children.
func (d BookingDraft) GuestCount() int {
	return d.AdultsCount + d.ChildrenCount
}

// Valid reports whether the draft is well-formed enough to enter checkout.
// A draft may be valid yet not payable (zero nights).
func (d BookingDraft) Valid() bool {
	if d.HotelID == "" || d.HotelName == "" || d.RoomName == "" {
		return false
	}
	if d.RoomPricePerNight <= 0 {
		return false
	}
	if d.RoomsCount < MinRooms || d.RoomsCount > MaxRooms {
		return false
	}
	if d.AdultsCount < MinAdults || d.AdultsCount > MaxAdults {
		return false
	}
	if d.ChildrenCount < MinChildren || d.ChildrenCount > MaxChildren {
		return false
	}
	return true
}

// DemoDraft is the fixed fallback used when the flow is entered without a
// prior draft (page reload, direct link), so every step stays reachable.
func DemoDraft() BookingDraft {
	checkIn := time.Now().AddDate(0, 0, 7).Truncate(24 * time.Hour)
	return BookingDraft{
		HotelID:           "demo-hotel-001",
		HotelName:         "Grand Lotus Riverside",
		RoomName:          "Deluxe Double Room with City View",
		RoomPricePerNight: 1_500_000,
		CheckIn:           checkIn,
		CheckOut:          checkIn.AddDate(0, 0, 2),
		RoomsCount:        1,
		AdultsCount:       2,
		ChildrenCount:     0,
	}
}
