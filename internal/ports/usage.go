package ports

import (
	"context"
	"time"

	"github.com/bnema/chatgate/internal/domain"
)

type UsageCostSource interface {
	SessionCost(ctx context.Context, sessionID string) (domain.CostTotals, error)
	Summary(ctx context.Context, days int, now time.Time) (domain.CostSummary, error)
}
