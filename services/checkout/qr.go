package checkout

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"stayhub/models"
)

// newQRPayload composes a bank-transfer/QR-scan payload for the amount due.
// Each regeneration gets a fresh reference so a stale scan cannot settle.
func newQRPayload(method models.PaymentMethod, amount int64, now time.Time) *models.QRPayload {
	ref := uuid.New().String()
	return &models.QRPayload{
		Reference:   ref,
		Payload:     fmt.Sprintf("stayhub://%s?ref=%s&amount=%d", method, ref, amount),
		GeneratedAt: now,
	}
}
