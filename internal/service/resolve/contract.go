//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=resolve_test
package resolve

import (
	"context"

	"matchclient/internal/entities"
	"matchclient/pkg/logger"
)

type Gateway interface {
	ListOwnRequests(ctx context.Context, role entities.Role, bucket entities.RequestBucket, limit, offset int) ([]entities.RequestRow, error)
	ListOwnOffers(ctx context.Context, status entities.OfferStatus, limit, offset int) ([]entities.OfferRow, error)
	OfferMatchStatus(ctx context.Context, offerID string) (entities.MatchStatusReply, error)
}

type resolverLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
