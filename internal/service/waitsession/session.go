package waitsession

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"matchclient/internal/entities"
	"matchclient/internal/service/reconcile"
	"matchclient/pkg/logger"
)

const (
	// Сколько раз подряд принимаем серверную коррекцию request id,
	// прежде чем признать расхождение терминальной ошибкой.
	maxDriftCorrections = 3
)

type Config struct {
	DefaultWait  time.Duration
	Grace        time.Duration
	PollInterval time.Duration
	DeferSeconds int

	// Инжект времени для тестов; nil — настоящие часы и сон.
	Now   func() time.Time
	Sleep func(ctx context.Context, d time.Duration) error
}

// Outcome — терминальный итог сессии ожидания.
type Outcome struct {
	Status entities.WaitStatus
	IDs    entities.ResolvedIDs
	Detail *entities.AssignmentDetail
}

// Session — явный объект сессии ожидания матча вместо жизненного цикла
// экрана: старт через Run, отмена через Cancel, время и сеть инжектятся.
// Одна сессия — один владелец; Run вызывается один раз.
type Session struct {
	log        sessionLogger
	gateway    Gateway
	resolver   Resolver
	reconciler Reconciler
	cfg        Config

	role  entities.Role
	hints entities.IDHints

	deadline *Deadline
	status   entities.WaitStatus
	resolved entities.ResolvedIDs
	detail   *entities.AssignmentDetail

	started   atomic.Bool
	cancelled atomic.Bool

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

func NewSession(
	log sessionLogger,
	gateway Gateway,
	resolver Resolver,
	reconciler Reconciler,
	cfg Config,
	role entities.Role,
	hints entities.IDHints,
) *Session {
	s := &Session{
		log:        log.With(logger.NewField("role", role.String())),
		gateway:    gateway,
		resolver:   resolver,
		reconciler: reconciler,
		cfg:        cfg,
		role:       role,
		hints:      hints,
		status:     entities.WaitSearching,
		now:        time.Now,
		sleep:      sleepWithContext,
	}
	if cfg.Now != nil {
		s.now = cfg.Now
	}
	if cfg.Sleep != nil {
		s.sleep = cfg.Sleep
	}
	return s
}

// Cancel идемпотентен. После отмены ни один запоздавший ответ
// не мутирует состояние сессии.
func (s *Session) Cancel() {
	s.cancelled.Store(true)
}

func (s *Session) Status() entities.WaitStatus {
	return s.status
}

func (s *Session) ResolvedIDs() entities.ResolvedIDs {
	return s.resolved
}

// Detail — read-through кэш серверного AssignmentDetail на время жизни
// экрана; обновляется Refresh'ем.
func (s *Session) Detail() *entities.AssignmentDetail {
	return s.detail
}

// Run ведет сессию до терминального состояния: matched, timeout,
// отмена или ошибка резолва. Тики строго последовательны — следующий
// запрос не уходит, пока не дождались предыдущего.
func (s *Session) Run(ctx context.Context) (Outcome, error) {
	if !s.started.CompareAndSwap(false, true) {
		return s.outcome(), ErrAlreadyStarted
	}
	if !s.role.Valid() {
		return s.outcome(), fmt.Errorf("%w: %q", ErrInvalidRole, s.role)
	}

	// Дедлайн по умолчанию назначается до любого сетевого вызова:
	// корректность не зависит от того, успеет ли серверная поправка.
	s.deadline = NewDeadlineWithClock(s.cfg.DefaultWait, s.cfg.Grace, s.now)

	// Водитель с оффером без назначения ждет матч прямо здесь, под
	// дедлайном сессии. Ограниченное окно резолвера — путь добора id,
	// когда матч уже должен был состояться, а не ожидание матча:
	// несматченный оффер дорабатывает до полного таймаута сессии.
	if s.role == entities.RoleDriver && s.hints.OfferID != "" && s.hints.AssignmentID == "" {
		s.resolved = entities.ResolvedIDs{RequestID: s.hints.RequestID}

		s.adjustDeadlineBestEffort(ctx)
		if s.isCancelled(ctx) {
			return s.outcome(), ErrCancelled
		}
		return s.pollLoop(ctx)
	}

	ids, err := s.resolver.Resolve(ctx, s.role, s.hints)
	if s.isCancelled(ctx) {
		return s.outcome(), ErrCancelled
	}
	if err != nil {
		return s.outcome(), fmt.Errorf("resolve ids: %w", err)
	}
	s.resolved = ids

	s.adjustDeadlineBestEffort(ctx)
	if s.isCancelled(ctx) {
		return s.outcome(), ErrCancelled
	}

	// Известный assignment id — матч уже состоялся, поллинг не нужен.
	if s.resolved.AssignmentID != "" {
		return s.settleMatched(ctx)
	}

	return s.pollLoop(ctx)
}

// Refresh перечитывает AssignmentDetail по уже известному id
// (assignment-first), не перезапуская цепочку резолва. Используется
// при возврате фокуса на экран.
func (s *Session) Refresh(ctx context.Context) (*entities.AssignmentDetail, error) {
	detail, err := s.fetchWithDriftCorrection(ctx)
	if err != nil {
		return nil, err
	}
	if s.isCancelled(ctx) {
		return nil, ErrCancelled
	}
	s.detail = detail
	return detail, nil
}

func (s *Session) pollLoop(ctx context.Context) (Outcome, error) {
	for {
		reply, tickErr := s.tick(ctx)
		if s.isCancelled(ctx) {
			return s.outcome(), ErrCancelled
		}

		switch {
		case tickErr != nil:
			// Сбой одного тика (таймаут запроса, сеть) — continue-класс,
			// терминальный timeout дает только дедлайн сессии.
			PollTicksTotal.WithLabelValues(s.role.String(), tickOutcomeError).Inc()
			s.log.Warn("poll tick failed",
				logger.NewField("error", tickErr),
			)
		case reply.Status == entities.MatchMatched:
			// Матч в том же тике, где истек дедлайн, все равно матч.
			if s.adoptMatchIDs(reply) {
				PollTicksTotal.WithLabelValues(s.role.String(), tickOutcomeMatched).Inc()
				return s.settleMatched(ctx)
			}
			// Matched без единого идентификатора не выводит сессию
			// из searching — ждем следующий тик.
			s.log.Warn("matched reply without ids, staying in searching")
			PollTicksTotal.WithLabelValues(s.role.String(), tickOutcomeContinue).Inc()
		default:
			PollTicksTotal.WithLabelValues(s.role.String(), tickOutcomeContinue).Inc()
		}

		if s.deadline.Expired() {
			PollTicksTotal.WithLabelValues(s.role.String(), tickOutcomeTimeout).Inc()
			s.status = entities.WaitTimeout
			s.log.Info("wait session timed out",
				logger.NewField("deadline", s.deadline.Value()),
			)
			return s.outcome(), nil
		}

		if err := s.sleep(ctx, s.cfg.PollInterval); err != nil {
			s.Cancel()
			return s.outcome(), ErrCancelled
		}
	}
}

// tick выбирает endpoint по наличию оффера, а не по роли: водитель,
// пришедший с одним request id, опрашивает статус матчинга заявки.
func (s *Session) tick(ctx context.Context) (entities.MatchStatusReply, error) {
	if s.role == entities.RoleDriver && s.hints.OfferID != "" {
		return s.gateway.OfferMatchStatus(ctx, s.hints.OfferID)
	}
	return s.gateway.RequestMatchStatus(ctx, s.resolved.RequestID)
}

func (s *Session) adoptMatchIDs(reply entities.MatchStatusReply) bool {
	ids := s.resolved
	if reply.AssignmentID != "" {
		ids.AssignmentID = reply.AssignmentID
	}
	if reply.RequestID != "" {
		ids.RequestID = reply.RequestID
	}
	if ids.Empty() {
		return false
	}
	s.resolved = ids
	return true
}

func (s *Session) settleMatched(ctx context.Context) (Outcome, error) {
	detail, err := s.fetchWithDriftCorrection(ctx)
	if s.isCancelled(ctx) {
		return s.outcome(), ErrCancelled
	}
	if err != nil {
		return s.outcome(), fmt.Errorf("reconcile assignment: %w", err)
	}

	s.detail = detail
	s.resolved = entities.ResolvedIDs{
		RequestID:    detail.RequestID,
		AssignmentID: detail.AssignmentID,
	}
	s.status = entities.WaitMatched

	s.log.Info("wait session matched",
		logger.NewField("assignment_id", detail.AssignmentID),
		logger.NewField("request_id", detail.RequestID),
	)
	return s.outcome(), nil
}

// fetchWithDriftCorrection перечитывает деталь, принимая серверную
// коррекцию канонического request id: устаревшее тело не используется,
// следующий цикл идет уже по исправленному id.
func (s *Session) fetchWithDriftCorrection(ctx context.Context) (*entities.AssignmentDetail, error) {
	ids := s.resolved
	var driftErr *reconcile.DriftError

	for attempt := 0; attempt <= maxDriftCorrections; attempt++ {
		detail, err := s.reconciler.Fetch(ctx, ids)
		if err == nil {
			if !s.isCancelled(ctx) {
				s.resolved = ids
			}
			return detail, nil
		}
		if !errors.As(err, &driftErr) {
			return nil, err
		}

		s.log.Warn("request id drift, correcting",
			logger.NewField("local", driftErr.Local),
			logger.NewField("server", driftErr.Server),
		)
		ids.RequestID = driftErr.Server
		if !s.isCancelled(ctx) {
			s.resolved = ids
		}
	}

	return nil, fmt.Errorf("request id keeps drifting after %d corrections: %w", maxDriftCorrections, driftErr)
}

// adjustDeadlineBestEffort просит бэкенд отложить пуш и переносит
// горизонт на серверный push_defer_until. Любой сбой не фатален:
// исходный дедлайн остается, сессия продолжает работу.
func (s *Session) adjustDeadlineBestEffort(ctx context.Context) {
	subjectID := s.deferSubjectID()
	if subjectID == "" {
		return
	}

	seconds := s.cfg.DeferSeconds
	if seconds <= 0 {
		seconds = int((s.cfg.DefaultWait + s.cfg.Grace) / time.Second)
	}

	serverUntil, err := s.gateway.DeferPush(ctx, s.role, subjectID, seconds)
	if err != nil {
		s.log.Warn("defer push failed, keeping default deadline",
			logger.NewField("error", err),
		)
		return
	}
	if serverUntil == nil || s.isCancelled(ctx) {
		return
	}

	if s.deadline.AdjustOnce(*serverUntil) {
		s.log.Info("deadline adjusted from server",
			logger.NewField("deadline", s.deadline.Value()),
		)
	}
}

func (s *Session) deferSubjectID() string {
	if s.role == entities.RoleDriver {
		return s.hints.OfferID
	}
	return s.resolved.RequestID
}

func (s *Session) isCancelled(ctx context.Context) bool {
	return s.cancelled.Load() || ctx.Err() != nil
}

func (s *Session) outcome() Outcome {
	return Outcome{
		Status: s.status,
		IDs:    s.resolved,
		Detail: s.detail,
	}
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
