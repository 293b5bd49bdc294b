package checkout

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"stayhub/models"
)

// SettlementGateway settles a payment. The checkout core ships a simulated
// implementation; a real gateway integration would sit behind this interface.
type SettlementGateway interface {
	Settle(ctx context.Context, req models.SettlementRequest) (*models.SettlementResult, error)
}

// SimulatedGateway settles after a fixed delay. FailureRate in [0,1] makes a
// fraction of settlements fail with ErrSettlementFailed; zero reproduces the
// always-succeeds demo behavior.
type SimulatedGateway struct {
	Delay       time.Duration
	FailureRate float64
	Logger      *zap.Logger
}

// Settle waits out the simulated processing delay, honoring cancellation of
// the owning session.
func (g *SimulatedGateway) Settle(ctx context.Context, req models.SettlementRequest) (*models.SettlementResult, error) {
	timer := time.NewTimer(g.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	if g.FailureRate > 0 && rand.Float64() < g.FailureRate {
		if g.Logger != nil {
			g.Logger.Warn("simulated settlement failure",
				zap.String("sessionId", req.SessionID),
				zap.Int64("amount", req.Amount))
		}
		return nil, ErrSettlementFailed
	}

	return &models.SettlementResult{
		PaymentRef: "pay_" + uuid.New().String(),
		SettledAt:  time.Now(),
	}, nil
}
