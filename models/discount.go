package models

// DiscountRule describes one promo code in the fixed catalog.
type DiscountRule struct {
	Code           string `json:"code"`
	Label          string `json:"label"`
	PercentOff     int    `json:"percentOff"`
	CapAmount      int64  `json:"capAmount"`
	MinOrderAmount int64  `json:"minOrderAmount"`
}

// AppliedDiscount is the result of validating a promo code against the
// current subtotal. A session holds at most one at a time; applying a new
// code replaces the old one, never stacks.
type AppliedDiscount struct {
	Code       string `json:"code"`
	Label      string `json:"label"`
	PercentOff int    `json:"percentOff"`
	Amount     int64  `json:"amount"`
}
