package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// Если nil - ретраятся все ошибки, если не nil - только те где функция вернула true
	ShouldRetry ShouldRetryFunc
}

// FixedInterval — конфиг постоянного шага без джиттера: им ждем
// "еще не найденное" назначение до исчерпания бюджета.
func FixedInterval(interval, budget time.Duration, shouldRetry ShouldRetryFunc) Config {
	return Config{
		InitialInterval: interval,
		MaxInterval:     interval,
		MaxElapsedTime:  budget,
		Randomization:   0,
		Multiplier:      1.0,
		ShouldRetry:     shouldRetry,
	}
}
