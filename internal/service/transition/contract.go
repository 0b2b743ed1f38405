//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=transition_test
package transition

import (
	"context"

	"matchclient/internal/entities"
	"matchclient/pkg/logger"
)

type Gateway interface {
	UpdateAssignmentStatus(ctx context.Context, assignmentID string, status entities.AssignmentStatus) (*entities.AssignmentDetail, error)
}

type validatorLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
