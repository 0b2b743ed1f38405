package transition

import (
	"context"
	"fmt"
	"strings"

	"matchclient/internal/entities"
	"matchclient/pkg/logger"
)

// Направленный ацикличный граф статусов назначения.
// completed, cancelled и failed терминальны.
var allowedTransitions = map[entities.AssignmentStatus][]entities.AssignmentStatus{
	entities.AssignmentCreated: {
		entities.AssignmentPickedUp,
		entities.AssignmentCancelled,
		entities.AssignmentFailed,
	},
	entities.AssignmentPickedUp: {
		entities.AssignmentInTransit,
		entities.AssignmentCancelled,
		entities.AssignmentFailed,
	},
	entities.AssignmentInTransit: {
		entities.AssignmentCompleted,
		entities.AssignmentCancelled,
		entities.AssignmentFailed,
	},
	entities.AssignmentCompleted: {},
	entities.AssignmentCancelled: {},
	entities.AssignmentFailed:    {},
}

// AllowedNext — единственный источник вариантов, которые UI вправе
// предложить водителю; любой другой набор — нарушение контракта.
func AllowedNext(current entities.AssignmentStatus) []entities.AssignmentStatus {
	next, ok := allowedTransitions[current]
	if !ok {
		return nil
	}
	out := make([]entities.AssignmentStatus, len(next))
	copy(out, next)
	return out
}

func Allowed(current, target entities.AssignmentStatus) bool {
	for _, status := range allowedTransitions[current] {
		if status == target {
			return true
		}
	}
	return false
}

// Validator пропускает к бэкенду только легальные переходы статуса.
type Validator struct {
	log     validatorLogger
	gateway Gateway
}

func New(log validatorLogger, gateway Gateway) *Validator {
	return &Validator{
		log:     log,
		gateway: gateway,
	}
}

// Request валидирует переход до единого сетевого вызова: нелегальный
// target никогда не достигает бэкенда. Успешный PATCH возвращает
// обновленную деталь.
func (v *Validator) Request(ctx context.Context, assignmentID string, current, target entities.AssignmentStatus) (*entities.AssignmentDetail, error) {
	if strings.TrimSpace(assignmentID) == "" {
		return nil, ErrInvalidAssignmentID
	}
	if !Allowed(current, target) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, current, target)
	}

	detail, err := v.gateway.UpdateAssignmentStatus(ctx, assignmentID, target)
	if err != nil {
		return nil, fmt.Errorf("update assignment status: %w", err)
	}

	v.log.Info("assignment status updated",
		logger.NewField("assignment_id", assignmentID),
		logger.NewField("from", current.String()),
		logger.NewField("to", detail.Status.String()),
	)
	return detail, nil
}
