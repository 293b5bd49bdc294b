package export

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"stayhub/models"
)

// BuildConfirmationPDF renders a printable booking confirmation. The PDF is
// a one-way output composed from the frozen confirmation record.
func BuildConfirmationPDF(rec models.ConfirmationRecord) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Confirmation", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING CONFIRMATION")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, rec.BookingID)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Hotel        : %s", rec.HotelName),
		fmt.Sprintf("Room         : %s", rec.RoomName),
		fmt.Sprintf("Check-in     : %s", rec.CheckIn.Format("Mon, 02 Jan 2006")),
		fmt.Sprintf("Check-out    : %s", rec.CheckOut.Format("Mon, 02 Jan 2006")),
		fmt.Sprintf("Nights       : %d", rec.Nights),
		fmt.Sprintf("Rooms        : %d", rec.RoomsCount),
		fmt.Sprintf("Guests       : %d", rec.GuestCount),
		fmt.Sprintf("Lead guest   : %s", rec.Guest.FullName()),
		fmt.Sprintf("Email        : %s", rec.Guest.Email),
		fmt.Sprintf("Phone        : %s %s", rec.Guest.CountryCode, rec.Guest.Phone),
		fmt.Sprintf("Paid via     : %s", rec.PaymentMethod),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Price summary")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	money := []string{
		fmt.Sprintf("Room rate    : %s / night", formatAmount(rec.RoomPricePerNight)),
		fmt.Sprintf("Subtotal     : %s", formatAmount(rec.Breakdown.Subtotal)),
		fmt.Sprintf("Service fee  : %s", formatAmount(rec.Breakdown.FeeAmount)),
		fmt.Sprintf("Discount     : -%s", formatAmount(rec.Breakdown.DiscountAmount)),
		fmt.Sprintf("Grand total  : %s", formatAmount(rec.Breakdown.GrandTotal)),
		fmt.Sprintf("Est. cashback: %s", formatAmount(rec.Breakdown.CashbackEstimate)),
	}
	for _, line := range money {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Issued %s", rec.CreatedAt.Format("2006-01-02 15:04")))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to render confirmation pdf: %w", err)
	}
	filename := fmt.Sprintf("confirmation-%s.pdf", rec.BookingID)
	return buf.Bytes(), filename, nil
}
