//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=waitsession_test
package waitsession

import (
	"context"
	"time"

	"matchclient/internal/entities"
	"matchclient/pkg/logger"
)

type Gateway interface {
	DeferPush(ctx context.Context, role entities.Role, subjectID string, seconds int) (*time.Time, error)
	RequestMatchStatus(ctx context.Context, requestID string) (entities.MatchStatusReply, error)
	OfferMatchStatus(ctx context.Context, offerID string) (entities.MatchStatusReply, error)
}

type Resolver interface {
	Resolve(ctx context.Context, role entities.Role, hints entities.IDHints) (entities.ResolvedIDs, error)
}

type Reconciler interface {
	Fetch(ctx context.Context, ids entities.ResolvedIDs) (*entities.AssignmentDetail, error)
}

type sessionLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
