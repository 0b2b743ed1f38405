//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"

	"matchclient/internal/pkg/config"
	"matchclient/pkg/logger"
)

// InitializeApplication для matchwatch CLI (cmd/matchwatch)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideLimiter,
		provideGateway,

		provideResolver,
		provideReconciler,
		provideValidator,

		provideSessionConfig,
		provideSessionFactory,

		provideAuctionClearTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil
}
