package app

import (
	"context"

	"matchclient/internal/gateway/rest/backend"
	"matchclient/internal/handlers/tasks/auction_clear"
	"matchclient/internal/pkg/config"
	"matchclient/internal/service/reconcile"
	"matchclient/internal/service/resolve"
	"matchclient/internal/service/transition"
	"matchclient/internal/service/waitsession"
	"matchclient/pkg/background"
	"matchclient/pkg/logger"
	"matchclient/pkg/token_bucket"
)

// Application — собранный клиент: шлюз, сервисы резолва/сверки/переходов,
// фабрика сессий ожидания и фоновые задачи.
type Application struct {
	Gateway           *backend.Gateway
	Resolver          *resolve.Resolver
	Reconciler        *reconcile.Reconciler
	Transitions       *transition.Validator
	Sessions          *waitsession.Factory
	BackgroundWorkers *background.Worker
}

func provideLimiter(cfg *config.Config) *token_bucket.TokenBucket {
	return token_bucket.NewTokenBucket(cfg.Backend.RateLimiterBurst, float64(cfg.Backend.RateLimiterQPS))
}

func provideGateway(cfg *config.Config, limiter *token_bucket.TokenBucket) *backend.Gateway {
	return backend.New(backend.Options{
		BaseURL:        cfg.Backend.BaseURL,
		Token:          cfg.Backend.Token,
		RequestTimeout: cfg.Backend.RequestTimeout,
		Limiter:        limiter,
	})
}

func provideResolver(log logger.Logger, gateway *backend.Gateway) *resolve.Resolver {
	return resolve.New(log, gateway)
}

func provideReconciler(log logger.Logger, gateway *backend.Gateway) *reconcile.Reconciler {
	return reconcile.New(log, gateway)
}

func provideValidator(log logger.Logger, gateway *backend.Gateway) *transition.Validator {
	return transition.New(log, gateway)
}

func provideSessionConfig(cfg *config.Config) waitsession.Config {
	return waitsession.Config{
		DefaultWait:  cfg.Wait.DefaultWait,
		Grace:        cfg.Wait.Grace,
		PollInterval: cfg.Wait.PollInterval,
		DeferSeconds: cfg.Wait.DeferSeconds,
	}
}

func provideSessionFactory(
	log logger.Logger,
	gateway *backend.Gateway,
	resolver *resolve.Resolver,
	reconciler *reconcile.Reconciler,
	sessionCfg waitsession.Config,
) *waitsession.Factory {
	return waitsession.NewFactory(log, gateway, resolver, reconciler, sessionCfg)
}

func provideAuctionClearTask(log logger.Logger, gateway *backend.Gateway, cfg *config.Config) *auction_clear.AuctionClear {
	return auction_clear.NewAuctionClear(log, gateway, cfg.Tasks.AuctionClearInterval)
}

func provideTaskList(cfg *config.Config, clearTask *auction_clear.AuctionClear) []background.Task {
	if !cfg.Tasks.AuctionClearEnabled {
		return nil
	}
	return []background.Task{clearTask}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
