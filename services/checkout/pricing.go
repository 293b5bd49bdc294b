package checkout

import (
	"math"

	"stayhub/models"
)

// ComputeBreakdown derives the full price breakdown from the draft and the
// applied discount. Idempotent and side-effect free; callers re-run it on
// every change to the draft, the discount or the rates instead of patching
// a stored breakdown.
func ComputeBreakdown(draft models.BookingDraft, discount *models.AppliedDiscount, feeRate, cashbackRate float64) models.PriceBreakdown {
	nights := draft.Nights()
	subtotal := draft.RoomPricePerNight * int64(nights) * int64(draft.RoomsCount)
	fee := roundShare(subtotal, feeRate)

	var discountAmount int64
	if discount != nil {
		discountAmount = discount.Amount
	}
	if discountAmount > subtotal+fee {
		discountAmount = subtotal + fee
	}

	grandTotal := subtotal + fee - discountAmount
	if grandTotal < 0 {
		grandTotal = 0
	}

	return models.PriceBreakdown{
		Nights:           nights,
		Subtotal:         subtotal,
		FeeAmount:        fee,
		DiscountAmount:   discountAmount,
		GrandTotal:       grandTotal,
		CashbackEstimate: roundShare(grandTotal, cashbackRate),
	}
}

func roundShare(amount int64, rate float64) int64 {
	return int64(math.Round(float64(amount) * rate))
}
