package checkout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"stayhub/models"
)

var cardNow = time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

func TestDetectCardType(t *testing.T) {
	cases := []struct {
		number   string
		expected CardType
	}{
		{"4111111111111111", CardVisa},
		{"5500000000000004", CardMastercard},
		{"5100000000000000", CardMastercard},
		{"2221000000000009", CardMastercard},
		{"2720990000000000", CardMastercard},
		{"3530111333300000", CardJCB},
		{"378282246310005", CardAmex},
		{"340000000000009", CardAmex},
		{"6011000990139424", CardUnknown},
		{"", CardUnknown},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.expected, DetectCardType(tc.number), "number %q", tc.number)
	}
}

func TestFormatCardNumber(t *testing.T) {
	assert.Equal(t, "4111 1111 1111 1111", FormatCardNumber("4111111111111111"))
	assert.Equal(t, "4111 1111", FormatCardNumber("4111-1111"))
	assert.Equal(t, "", FormatCardNumber("abc"))
	// Amex groups 4-6-5.
	assert.Equal(t, "3782 822463 10005", FormatCardNumber("378282246310005"))
	// Output never exceeds 19 characters.
	assert.LessOrEqual(t, len(FormatCardNumber("9999999999999999999")), 19)
}

func TestFormatExpiry(t *testing.T) {
	assert.Equal(t, "1", FormatExpiry("1"))
	assert.Equal(t, "12/", FormatExpiry("12"))
	assert.Equal(t, "12/3", FormatExpiry("123"))
	assert.Equal(t, "12/35", FormatExpiry("1235"))
	assert.Equal(t, "12/35", FormatExpiry("12/35"))
}

func validCard() models.CardFields {
	return models.CardFields{
		Number:     "4111 1111 1111 1111",
		Expiry:     "12/35",
		CVV:        "123",
		HolderName: "NGUYEN VAN A",
	}
}

func TestValidateCardFields_Valid(t *testing.T) {
	errs := ValidateCardFields(validCard(), cardNow)
	assert.Empty(t, errs)
}

func TestValidateCardFields_PastExpiry(t *testing.T) {
	card := validCard()
	card.Expiry = "01/20"
	errs := ValidateCardFields(card, cardNow)
	assert.Contains(t, errs, "expiry")
}

func TestValidateCardFields_CurrentMonthStillValid(t *testing.T) {
	card := validCard()
	card.Expiry = "08/26"
	errs := ValidateCardFields(card, cardNow)
	assert.NotContains(t, errs, "expiry")
}

func TestValidateCardFields_PreviousMonthRejected(t *testing.T) {
	card := validCard()
	card.Expiry = "07/26"
	errs := ValidateCardFields(card, cardNow)
	assert.Contains(t, errs, "expiry")
}

func TestValidateCardFields_FieldErrors(t *testing.T) {
	errs := ValidateCardFields(models.CardFields{}, cardNow)
	assert.Contains(t, errs, "number")
	assert.Contains(t, errs, "expiry")
	assert.Contains(t, errs, "cvv")
	assert.Contains(t, errs, "holderName")
}

func TestValidateCardFields_NumberLength(t *testing.T) {
	card := validCard()
	card.Number = "411111111111" // 12 digits
	errs := ValidateCardFields(card, cardNow)
	assert.Contains(t, errs, "number")

	card.Number = "4111111111111" // 13 digits
	errs = ValidateCardFields(card, cardNow)
	assert.NotContains(t, errs, "number")
}

func TestValidateCardFields_BadMonth(t *testing.T) {
	card := validCard()
	card.Expiry = "13/35"
	errs := ValidateCardFields(card, cardNow)
	assert.Contains(t, errs, "expiry")
}
