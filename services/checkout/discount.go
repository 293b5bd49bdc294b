package checkout

import (
	"fmt"
	"strings"

	"stayhub/models"
)

// DefaultCatalog returns the fixed promo-code catalog. One catalog serves
// the whole flow; codes are matched case-insensitively.
func DefaultCatalog() []models.DiscountRule {
	return []models.DiscountRule{
		{Code: "SUMMER20", Label: "Summer getaway -20%", PercentOff: 20, CapAmount: 1_000_000, MinOrderAmount: 2_000_000},
		{Code: "WELCOME10", Label: "First booking -10%", PercentOff: 10, CapAmount: 500_000, MinOrderAmount: 1_000_000},
		{Code: "STAYLONG15", Label: "Long stay -15%", PercentOff: 15, CapAmount: 1_500_000, MinOrderAmount: 5_000_000},
		{Code: "WEEKEND5", Label: "Weekend escape -5%", PercentOff: 5, CapAmount: 300_000, MinOrderAmount: 500_000},
	}
}

// ApplyDiscountCode normalizes and validates a promo code against the
// subtotal, returning the computed discount. The discount amount is the
// percentage of the subtotal, rounded, capped by the rule's ceiling.
func ApplyDiscountCode(code string, subtotal int64, catalog []models.DiscountRule) (*models.AppliedDiscount, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))

	var rule *models.DiscountRule
	for i := range catalog {
		if catalog[i].Code == normalized {
			rule = &catalog[i]
			break
		}
	}
	if rule == nil {
		return nil, &DiscountError{
			Code:    DiscountUnknownCode,
			Message: fmt.Sprintf("promo code %q is not recognized", normalized),
		}
	}

	if subtotal < rule.MinOrderAmount {
		return nil, &DiscountError{
			Code:    DiscountBelowMinimumOrder,
			Message: fmt.Sprintf("order subtotal must be at least %d to use %s", rule.MinOrderAmount, rule.Code),
		}
	}

	amount := (subtotal*int64(rule.PercentOff) + 50) / 100
	if amount > rule.CapAmount {
		amount = rule.CapAmount
	}

	return &models.AppliedDiscount{
		Code:       rule.Code,
		Label:      rule.Label,
		PercentOff: rule.PercentOff,
		Amount:     amount,
	}, nil
}
