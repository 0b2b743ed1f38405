package reconcile

import (
	"context"
	"fmt"
	"time"

	"matchclient/internal/entities"
	"matchclient/internal/gateway/rest/backend"
	retrierconfig "matchclient/pkg/retrier"
	"matchclient/pkg/retrier/backoff_adapter"
)

const (
	// "Еще не найдено" ретраится фиксированным шагом до бюджета,
	// после чего всплывает как терминальная ошибка.
	notFoundInterval = 1 * time.Second
	notFoundBudget   = 10 * time.Second
)

// Reconciler читает авторитетную деталь назначения и сверяет
// канонический request id с локально известным.
type Reconciler struct {
	log     reconcilerLogger
	gateway Gateway
	retrier retrier
}

func New(log reconcilerLogger, gateway Gateway) *Reconciler {
	retryConfig := retrierconfig.FixedInterval(notFoundInterval, notFoundBudget, backend.IsNotFound)

	return &Reconciler{
		log:     log,
		gateway: gateway,
		retrier: backoff_adapter.New(retryConfig),
	}
}

// NewWithRetrier используется в тестах для сжатия бюджета ожидания.
func NewWithRetrier(log reconcilerLogger, gateway Gateway, r retrier) *Reconciler {
	return &Reconciler{
		log:     log,
		gateway: gateway,
		retrier: r,
	}
}

// Fetch читает деталь assignment-first: assignment id — источник
// истины, выборка по request id — запасной путь. Ошибки класса
// not-found ретраятся внутри бюджета, любые другие всплывают сразу.
func (r *Reconciler) Fetch(ctx context.Context, ids entities.ResolvedIDs) (*entities.AssignmentDetail, error) {
	if ids.Empty() {
		return nil, ErrNoIDs
	}

	var detail *entities.AssignmentDetail

	err := r.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		var err error
		if ids.AssignmentID != "" {
			detail, err = r.gateway.AssignmentByID(ctx, ids.AssignmentID)
		} else {
			detail, err = r.gateway.AssignmentByRequest(ctx, ids.RequestID)
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("fetch assignment detail: %w", err)
	}

	if ids.RequestID != "" && detail.RequestID != ids.RequestID {
		return nil, &DriftError{Local: ids.RequestID, Server: detail.RequestID}
	}

	return detail, nil
}
