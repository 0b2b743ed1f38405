package waitsession

import "time"

// Deadline держит единственный wall-clock горизонт сессии ожидания.
// Значение назначается один раз при старте и может быть переопределено
// не более одного раза доверенным серверным push_defer_until.
// Не потокобезопасен: владеет им ровно одна сессия.
type Deadline struct {
	now      func() time.Time
	deadline time.Time
	grace    time.Duration
	adjusted bool
	expired  bool
}

func NewDeadline(defaultWait, grace time.Duration) *Deadline {
	return NewDeadlineWithClock(defaultWait, grace, time.Now)
}

func NewDeadlineWithClock(defaultWait, grace time.Duration, now func() time.Time) *Deadline {
	return &Deadline{
		now:      now,
		deadline: now().Add(defaultWait + grace),
		grace:    grace,
	}
}

// AdjustOnce переносит горизонт на серверный момент плюс grace.
// Срабатывает максимум один раз; нулевое время и повторные вызовы
// молча игнорируются — исходный дедлайн остается в силе.
func (d *Deadline) AdjustOnce(serverDeadline time.Time) bool {
	if d.adjusted || serverDeadline.IsZero() {
		return false
	}
	d.deadline = serverDeadline.Add(d.grace)
	d.adjusted = true
	return true
}

func (d *Deadline) Value() time.Time {
	return d.deadline
}

func (d *Deadline) Remaining() time.Duration {
	remaining := d.deadline.Sub(d.now())
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Expired монотонен: однажды истекший дедлайн истек навсегда,
// даже если часы шагнут назад. Никогда не паникует.
func (d *Deadline) Expired() bool {
	if d.expired {
		return true
	}
	if !d.now().Before(d.deadline) {
		d.expired = true
	}
	return d.expired
}
