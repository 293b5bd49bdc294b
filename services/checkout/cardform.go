package checkout

import (
	"strconv"
	"strings"
	"time"

	"stayhub/models"
)

// CardType classifies a card number by its issuer prefix.
type CardType string

const (
	CardVisa       CardType = "visa"
	CardMastercard CardType = "mastercard"
	CardJCB        CardType = "jcb"
	CardAmex       CardType = "amex"
	CardUnknown    CardType = "unknown"
)

const maxFormattedCardLen = 19

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DetectCardType classifies a card number by prefix after stripping
// non-digits.
func DetectCardType(number string) CardType {
	d := digitsOnly(number)
	switch {
	case len(d) == 0:
		return CardUnknown
	case d[0] == '4':
		return CardVisa
	case len(d) >= 2 && d[0] == '5' && d[1] >= '1' && d[1] <= '5':
		return CardMastercard
	case len(d) >= 2 && d[0] == '2' && d[1] >= '2' && d[1] <= '7':
		return CardMastercard
	case strings.HasPrefix(d, "35"):
		return CardJCB
	case strings.HasPrefix(d, "34") || strings.HasPrefix(d, "37"):
		return CardAmex
	default:
		return CardUnknown
	}
}

// FormatCardNumber renders digits with type-aware grouping: amex as 4-6-5,
// everything else in runs of four. Output is truncated to 19 characters.
func FormatCardNumber(raw string) string {
	d := digitsOnly(raw)
	if d == "" {
		return ""
	}

	var groups []int
	if DetectCardType(d) == CardAmex {
		groups = []int{4, 6, 5}
	} else {
		groups = []int{4, 4, 4, 4}
	}

	var parts []string
	for _, g := range groups {
		if len(d) == 0 {
			break
		}
		if g > len(d) {
			g = len(d)
		}
		parts = append(parts, d[:g])
		d = d[g:]
	}
	if len(d) > 0 {
		parts = append(parts, d)
	}

	out := strings.Join(parts, " ")
	if len(out) > maxFormattedCardLen {
		out = out[:maxFormattedCardLen]
	}
	return out
}

// FormatExpiry renders digit input as MM/YY once at least two digits are
// present.
func FormatExpiry(raw string) string {
	d := digitsOnly(raw)
	if len(d) > 4 {
		d = d[:4]
	}
	if len(d) < 2 {
		return d
	}
	return d[:2] + "/" + d[2:]
}

// ValidateCardFields checks the card form and returns a per-field error map.
// Absence of an entry means the field is valid. Pure: the clock is passed in.
func ValidateCardFields(f models.CardFields, now time.Time) map[string]string {
	errs := make(map[string]string)

	number := digitsOnly(f.Number)
	switch {
	case number == "":
		errs["number"] = "card number is required"
	case len(number) < 13 || len(number) > 19:
		errs["number"] = "card number must be 13 to 19 digits"
	}

	if err := validateExpiry(f.Expiry, now); err != "" {
		errs["expiry"] = err
	}

	cvv := digitsOnly(f.CVV)
	switch {
	case cvv == "":
		errs["cvv"] = "security code is required"
	case len(cvv) < 3:
		errs["cvv"] = "security code must be at least 3 digits"
	}

	if strings.TrimSpace(f.HolderName) == "" {
		errs["holderName"] = "cardholder name is required"
	}

	return errs
}

func validateExpiry(expiry string, now time.Time) string {
	d := digitsOnly(expiry)
	if d == "" {
		return "expiry date is required"
	}
	if len(d) != 4 {
		return "expiry must be in MM/YY format"
	}
	month, _ := strconv.Atoi(d[:2])
	year, _ := strconv.Atoi(d[2:])
	if month < 1 || month > 12 {
		return "expiry month must be between 01 and 12"
	}
	year += 2000
	if year < now.Year() || (year == now.Year() && month < int(now.Month())) {
		return "card has expired"
	}
	return ""
}
