package auction_clear

import (
	"context"
	"time"

	"matchclient/internal/entities"
	"matchclient/pkg/logger"
)

type Gateway interface {
	TriggerClearing(ctx context.Context, now time.Time) (entities.ClearingResult, error)
}

// AuctionClear периодически дергает клиринг аукциона на бэкенде.
// Fire-and-forget: сбои только логируются и никогда не всплывают —
// поэтому Do не возвращает ошибку наружу.
type AuctionClear struct {
	log      logger.Logger
	gateway  Gateway
	interval time.Duration
}

func NewAuctionClear(log logger.Logger, gateway Gateway, interval time.Duration) *AuctionClear {
	return &AuctionClear{
		log:      log,
		gateway:  gateway,
		interval: interval,
	}
}

func (a *AuctionClear) TTL() time.Duration {
	return a.interval
}

func (a *AuctionClear) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, a.interval)
	defer cancel()

	result, err := a.gateway.TriggerClearing(ctxWithTimeout, time.Now().UTC())
	if err != nil {
		a.log.Warn("auction clearing trigger failed",
			logger.NewField("error", err),
		)
		return nil
	}

	if result.Cleared {
		a.log.Info("auction cleared",
			logger.NewField("matches", result.Matches),
		)
	} else if result.Reason != "" {
		a.log.Info("auction not cleared",
			logger.NewField("reason", result.Reason),
		)
	}
	return nil
}

func (a *AuctionClear) Info() string {
	return "auction clearing trigger"
}
