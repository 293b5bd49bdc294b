package export

import (
	"fmt"
	"strings"

	"stayhub/models"
)

// SharePayload bundles the one-way confirmation share outputs: an email
// draft, a native-share text and the clipboard copy of the booking ID.
type SharePayload struct {
	EmailSubject  string `json:"emailSubject"`
	EmailBody     string `json:"emailBody"`
	ShareText     string `json:"shareText"`
	ClipboardText string `json:"clipboardText"`
}

// BuildSharePayload composes the share outputs from a confirmation record.
// Fire-and-forget: nothing here feeds back into the checkout flow.
func BuildSharePayload(rec models.ConfirmationRecord) SharePayload {
	stay := fmt.Sprintf("%s – %s",
		rec.CheckIn.Format("02 Jan 2006"),
		rec.CheckOut.Format("02 Jan 2006"))

	var body strings.Builder
	fmt.Fprintf(&body, "Booking %s is confirmed!\n\n", rec.BookingID)
	fmt.Fprintf(&body, "Hotel: %s\n", rec.HotelName)
	fmt.Fprintf(&body, "Room: %s\n", rec.RoomName)
	fmt.Fprintf(&body, "Stay: %s (%d night(s), %d room(s))\n", stay, rec.Nights, rec.RoomsCount)
	fmt.Fprintf(&body, "Guests: %d\n", rec.GuestCount)
	fmt.Fprintf(&body, "Total paid: %s\n\n", formatAmount(rec.Breakdown.GrandTotal))
	fmt.Fprintf(&body, "Lead guest: %s (%s)\n", rec.Guest.FullName(), rec.Guest.Email)

	return SharePayload{
		EmailSubject: fmt.Sprintf("Your booking %s at %s", rec.BookingID, rec.HotelName),
		EmailBody:    body.String(),
		ShareText: fmt.Sprintf("I just booked %s at %s, %s. Booking ID %s.",
			rec.RoomName, rec.HotelName, stay, rec.BookingID),
		ClipboardText: rec.BookingID,
	}
}

// formatAmount renders minor-currency units with thousands separators.
func formatAmount(v int64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%d", v)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ".")
	if neg {
		out = "-" + out
	}
	return out
}
