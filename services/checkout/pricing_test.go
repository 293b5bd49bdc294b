package checkout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"stayhub/models"
)

func draftFor(pricePerNight int64, nights, rooms int) models.BookingDraft {
	checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	return models.BookingDraft{
		HotelID:           "h-1",
		HotelName:         "Test Hotel",
		RoomName:          "Test Room",
		RoomPricePerNight: pricePerNight,
		CheckIn:           checkIn,
		CheckOut:          checkIn.AddDate(0, 0, nights),
		RoomsCount:        rooms,
		AdultsCount:       2,
		ChildrenCount:     0,
	}
}

func TestComputeBreakdown_Subtotal(t *testing.T) {
	cases := []struct {
		name     string
		price    int64
		nights   int
		rooms    int
		expected int64
	}{
		{"one night one room", 1_500_000, 1, 1, 1_500_000},
		{"two nights one room", 1_500_000, 2, 1, 3_000_000},
		{"three nights five rooms", 800_000, 3, 5, 12_000_000},
		{"long stay", 250_000, 14, 2, 7_000_000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := ComputeBreakdown(draftFor(tc.price, tc.nights, tc.rooms), nil, 0.10, 0.05)
			assert.Equal(t, tc.expected, b.Subtotal)
			assert.Equal(t, tc.nights, b.Nights)
		})
	}
}

func TestComputeBreakdown_FeeAndCashback(t *testing.T) {
	b := ComputeBreakdown(draftFor(1_500_000, 2, 1), nil, 0.10, 0.05)

	assert.Equal(t, int64(3_000_000), b.Subtotal)
	assert.Equal(t, int64(300_000), b.FeeAmount)
	assert.Equal(t, int64(0), b.DiscountAmount)
	assert.Equal(t, int64(3_300_000), b.GrandTotal)
	assert.Equal(t, int64(165_000), b.CashbackEstimate)
}

func TestComputeBreakdown_DiscountClampedToOrderTotal(t *testing.T) {
	// Discount amount larger than subtotal+fee must clamp, never go negative.
	discount := &models.AppliedDiscount{Code: "HUGE", PercentOff: 100, Amount: 99_000_000}
	b := ComputeBreakdown(draftFor(1_000_000, 1, 1), discount, 0.10, 0.05)

	assert.Equal(t, int64(1_100_000), b.DiscountAmount)
	assert.Equal(t, int64(0), b.GrandTotal)
	assert.Equal(t, int64(0), b.CashbackEstimate)
}

func TestComputeBreakdown_GrandTotalNeverNegative(t *testing.T) {
	for _, amount := range []int64{0, 500_000, 1_650_000, 2_000_000, 50_000_000} {
		discount := &models.AppliedDiscount{Code: "X", Amount: amount}
		b := ComputeBreakdown(draftFor(1_500_000, 1, 1), discount, 0.10, 0.05)
		assert.GreaterOrEqual(t, b.GrandTotal, int64(0), "discount amount %d", amount)
	}
}

func TestComputeBreakdown_ZeroNights(t *testing.T) {
	d := draftFor(1_500_000, 1, 1)
	d.CheckOut = d.CheckIn
	b := ComputeBreakdown(d, nil, 0.10, 0.05)

	assert.Equal(t, 0, b.Nights)
	assert.Equal(t, int64(0), b.Subtotal)
	assert.Equal(t, int64(0), b.GrandTotal)
}

func TestNights_NeverNegative(t *testing.T) {
	d := draftFor(1_000_000, 1, 1)
	d.CheckOut = d.CheckIn.AddDate(0, 0, -3)
	assert.Equal(t, 0, d.Nights())
}
