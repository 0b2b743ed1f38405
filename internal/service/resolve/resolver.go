package resolve

import (
	"context"
	"fmt"
	"time"

	"matchclient/internal/entities"
	"matchclient/pkg/logger"
)

const (
	// Окно добора assignment id по офферу: ~9 секунд шагом ~1 секунда.
	defaultOfferPollWindow   = 9 * time.Second
	defaultOfferPollInterval = 1 * time.Second

	// Корзины сканируются по одной записи: берем первую же заявку.
	bucketScanLimit = 1

	assignedOffersScanLimit = 50
)

// Порядок обхода корзин фиксирован: сперва активные, потом открытые.
var bucketScanOrder = []entities.RequestBucket{
	entities.BucketActive,
	entities.BucketOpen,
}

// Resolver определяет авторитетные request/assignment id для роли.
// Три ролевых варианта одного экрана схлопнуты в один параметризованный
// автомат: роль — явный дискриминатор, не подкласс.
type Resolver struct {
	log     resolverLogger
	gateway Gateway

	offerPollWindow   time.Duration
	offerPollInterval time.Duration
	now               func() time.Time
	sleep             func(ctx context.Context, d time.Duration) error
}

func New(log resolverLogger, gateway Gateway) *Resolver {
	return &Resolver{
		log:               log,
		gateway:           gateway,
		offerPollWindow:   defaultOfferPollWindow,
		offerPollInterval: defaultOfferPollInterval,
		now:               time.Now,
		sleep:             sleepWithContext,
	}
}

// Timing инжектит время для тестов: окно опроса оффера сжимается,
// сон подменяется.
type Timing struct {
	OfferPollWindow   time.Duration
	OfferPollInterval time.Duration
	Now               func() time.Time
	Sleep             func(ctx context.Context, d time.Duration) error
}

func NewWithTiming(log resolverLogger, gateway Gateway, timing Timing) *Resolver {
	r := New(log, gateway)
	if timing.OfferPollWindow > 0 {
		r.offerPollWindow = timing.OfferPollWindow
	}
	if timing.OfferPollInterval > 0 {
		r.offerPollInterval = timing.OfferPollInterval
	}
	if timing.Now != nil {
		r.now = timing.Now
	}
	if timing.Sleep != nil {
		r.sleep = timing.Sleep
	}
	return r
}

// Resolve возвращает авторитетные идентификаторы для роли и подсказок.
// Инвариант для всех ролей: известный assignment id возвращается сразу,
// без единого сетевого вызова — это самый узкий однозначный ключ.
func (r *Resolver) Resolve(ctx context.Context, role entities.Role, hints entities.IDHints) (entities.ResolvedIDs, error) {
	if hints.AssignmentID != "" {
		return entities.ResolvedIDs{
			RequestID:    hints.RequestID,
			AssignmentID: hints.AssignmentID,
		}, nil
	}

	switch role {
	case entities.RoleSender, entities.RoleRider:
		return r.resolveRequester(ctx, role, hints)
	case entities.RoleDriver:
		return r.resolveDriver(ctx, hints)
	default:
		return entities.ResolvedIDs{}, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
}

// resolveRequester: известный request id авторитетен; иначе берем
// первую заявку из корзин active, open — именно в этом порядке.
func (r *Resolver) resolveRequester(ctx context.Context, role entities.Role, hints entities.IDHints) (entities.ResolvedIDs, error) {
	if hints.RequestID != "" {
		return entities.ResolvedIDs{RequestID: hints.RequestID}, nil
	}

	for _, bucket := range bucketScanOrder {
		rows, err := r.gateway.ListOwnRequests(ctx, role, bucket, bucketScanLimit, 0)
		if err != nil {
			return entities.ResolvedIDs{}, fmt.Errorf("scan %s bucket: %w", bucket, err)
		}
		if len(rows) > 0 {
			return entities.ResolvedIDs{RequestID: rows[0].ID}, nil
		}
	}

	return entities.ResolvedIDs{}, ErrRequestNotFound
}

func (r *Resolver) resolveDriver(ctx context.Context, hints entities.IDHints) (entities.ResolvedIDs, error) {
	if hints.OfferID == "" && hints.RequestID == "" {
		return entities.ResolvedIDs{}, ErrNoUsableID
	}
	if hints.OfferID == "" {
		return entities.ResolvedIDs{RequestID: hints.RequestID}, nil
	}

	if ids, ok := r.pollOfferMatch(ctx, hints.OfferID); ok {
		return ids, nil
	}

	// Окно исчерпано — добираем request id из собственных
	// назначенных офферов.
	if ids, ok, err := r.scanAssignedOffers(ctx, hints.OfferID); err != nil {
		return entities.ResolvedIDs{}, err
	} else if ok {
		return ids, nil
	}

	if hints.RequestID != "" {
		return entities.ResolvedIDs{RequestID: hints.RequestID}, nil
	}
	return entities.ResolvedIDs{}, ErrRequestNotFound
}

// pollOfferMatch опрашивает match-status оффера в пределах окна.
// Сбои отдельных опросов не терминальны, просто следующая попытка.
func (r *Resolver) pollOfferMatch(ctx context.Context, offerID string) (entities.ResolvedIDs, bool) {
	horizon := r.now().Add(r.offerPollWindow)

	for {
		reply, err := r.gateway.OfferMatchStatus(ctx, offerID)
		if err != nil {
			r.log.Warn("offer match status poll failed",
				logger.NewField("offer_id", offerID),
				logger.NewField("error", err),
			)
		} else if reply.Status == entities.MatchMatched {
			ids := entities.ResolvedIDs{
				RequestID:    reply.RequestID,
				AssignmentID: reply.AssignmentID,
			}
			if !ids.Empty() {
				return ids, true
			}
		}

		if !r.now().Before(horizon) {
			return entities.ResolvedIDs{}, false
		}
		if err := r.sleep(ctx, r.offerPollInterval); err != nil {
			return entities.ResolvedIDs{}, false
		}
	}
}

func (r *Resolver) scanAssignedOffers(ctx context.Context, offerID string) (entities.ResolvedIDs, bool, error) {
	offers, err := r.gateway.ListOwnOffers(ctx, entities.OfferAssigned, assignedOffersScanLimit, 0)
	if err != nil {
		return entities.ResolvedIDs{}, false, fmt.Errorf("scan assigned offers: %w", err)
	}

	for i := range offers {
		if offers[i].ID == offerID && offers[i].RequestID != nil && *offers[i].RequestID != "" {
			return entities.ResolvedIDs{RequestID: *offers[i].RequestID}, true, nil
		}
	}
	return entities.ResolvedIDs{}, false, nil
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
