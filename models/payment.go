package models

import "time"

// PaymentMethod identifies how the guest intends to pay.
type PaymentMethod string

const (
	MethodWallet         PaymentMethod = "wallet"
	MethodBankTransferQR PaymentMethod = "bankTransferQR"
	MethodCard           PaymentMethod = "card"
	MethodQRScan         PaymentMethod = "qrScan"
)

// Valid reports whether the method is one of the supported choices.
func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodWallet, MethodBankTransferQR, MethodCard, MethodQRScan:
		return true
	}
	return false
}

// UsesQR reports whether the method is settled by scanning a QR payload.
func (m PaymentMethod) UsesQR() bool {
	return m == MethodBankTransferQR || m == MethodQRScan
}

// CardFields holds the raw card form input. Only attached while the card
// method is selected; switching away discards them.
type CardFields struct {
	Number     string `json:"number"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
	HolderName string `json:"holderName"`
}

// PaymentSelection is the guest's chosen method plus any method-specific
// attachments.
type PaymentSelection struct {
	Method PaymentMethod `json:"method"`
	Card   *CardFields   `json:"card,omitempty"`
}

// QRPayload is a bank-transfer/QR-scan payload handed to the client for
// rendering. Regenerating it re-arms the QR refresh countdown.
type QRPayload struct {
	Reference   string    `json:"reference"`
	Payload     string    `json:"payload"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// SettlementRequest is what the gateway needs to settle a payment.
type SettlementRequest struct {
	SessionID string        `json:"sessionId"`
	Method    PaymentMethod `json:"method"`
	Amount    int64         `json:"amount"`
}

// SettlementResult reports a successful settlement.
type SettlementResult struct {
	PaymentRef string    `json:"paymentRef"`
	SettledAt  time.Time `json:"settledAt"`
}
