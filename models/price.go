package models

// PriceBreakdown is the derived money view of a session. It is a pure
// function of the draft, the applied discount and the configured rates;
// it is recomputed on every input change, never mutated in place.
type PriceBreakdown struct {
	Nights           int   `json:"nights"`
	Subtotal         int64 `json:"subtotal"`
	FeeAmount        int64 `json:"feeAmount"`
	DiscountAmount   int64 `json:"discountAmount"`
	GrandTotal       int64 `json:"grandTotal"`
	CashbackEstimate int64 `json:"cashbackEstimate"`
}
