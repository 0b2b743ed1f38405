//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=reconcile_test
package reconcile

import (
	"context"

	"matchclient/internal/entities"
	"matchclient/pkg/logger"
)

type Gateway interface {
	AssignmentByID(ctx context.Context, assignmentID string) (*entities.AssignmentDetail, error)
	AssignmentByRequest(ctx context.Context, requestID string) (*entities.AssignmentDetail, error)
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type reconcilerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
