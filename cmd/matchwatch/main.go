package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	stdlog "log"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // отдельный отладочный порт, включается флагом PPROF_ENABLED
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	application "matchclient/internal/app"
	"matchclient/internal/entities"
	"matchclient/internal/pkg/config"
	"matchclient/internal/pkg/dotenv"
	metrics_system "matchclient/internal/pkg/metrics"
	"matchclient/internal/service/resolve"
	"matchclient/internal/service/transition"
	"matchclient/internal/service/waitsession"
	"matchclient/pkg/logger"
	"matchclient/pkg/logger/zap_adapter"
)

type cliParams struct {
	role         string
	requestID    string
	offerID      string
	assignmentID string
	token        string
}

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting matchwatch")

	var params cliParams
	flag.StringVar(&params.role, "role", "", "caller role: sender | rider | driver")
	flag.StringVar(&params.requestID, "request-id", "", "known request id (optional)")
	flag.StringVar(&params.offerID, "offer-id", "", "known offer id (driver only, optional)")
	flag.StringVar(&params.assignmentID, "assignment-id", "", "known assignment id (optional)")
	flag.StringVar(&params.token, "token", "", "bearer token (overrides BACKEND_TOKEN)")
	flag.Parse()

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}
	if params.token != "" {
		cfg.Backend.Token = params.token
	}

	err = run(context.Background(), cfg, appLogger, params)
	if err != nil {
		mainLog.Error("matchwatch failed", logger.NewField("error", err))
		return
	}
}

func run(ctx context.Context, cfg *config.Config, log logger.Logger, params cliParams) error {
	const shutdownPeriod = 5 * time.Second

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	role := entities.Role(params.role)
	if !role.Valid() {
		return fmt.Errorf("unknown role %q, expected sender, rider or driver", params.role)
	}

	app, err := application.InitializeApplication(ctx, log, cfg)
	if err != nil {
		return fmt.Errorf("application: %w", err)
	}

	var metricsServer *http.Server
	if cfg.Metrics.Enabled {
		metrics_system.StartSystemMetricsCollector()

		metricsServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Metrics.Port),
			Handler: initMetricsRouter(),

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
		go func() {
			runLog.Info("metrics server starting",
				logger.NewField("port", cfg.Metrics.Port),
			)
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				runLog.Error("metrics server", logger.NewField("error", err))
			}
		}()
	}

	if cfg.Metrics.PprofEnabled {
		go func() {
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Metrics.PprofPort),
			)
			//nolint:gosec // локальный отладочный порт, без таймаутов как в net/http/pprof README
			if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Metrics.PprofPort), nil); err != nil {
				runLog.Error("pprof server", logger.NewField("error", err))
			}
		}()
	}

	session := app.Sessions.NewSession(role, entities.IDHints{
		RequestID:    params.requestID,
		OfferID:      params.offerID,
		AssignmentID: params.assignmentID,
	})

	// Навигация прочь с экрана = сигнал процессу: отменяем сессию,
	// запоздавшие ответы уже ничего не мутируют.
	go func() {
		<-ctx.Done()
		session.Cancel()
	}()

	outcome, err := session.Run(ctx)
	reportOutcome(runLog, outcome, err)

	if metricsServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
		defer cancel()
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			runLog.Error("metrics server shutdown error", logger.NewField("error", err))
		}
	}

	return nil
}

// reportOutcome различает исходы для пользователя: таймаут и ошибка
// резолва заканчивают ожидание по-разному и звучат по-разному.
func reportOutcome(log logger.Logger, outcome waitsession.Outcome, err error) {
	switch {
	case errors.Is(err, waitsession.ErrCancelled):
		log.Info("wait cancelled")
	case errors.Is(err, resolve.ErrRequestNotFound), errors.Is(err, resolve.ErrNoUsableID):
		log.Error("could not resolve an id for this role, wait aborted",
			logger.NewField("error", err),
		)
	case err != nil:
		log.Error("wait failed", logger.NewField("error", err))
	case outcome.Status == entities.WaitTimeout:
		log.Info("no match within the deadline, safe to go back home")
	case outcome.Status == entities.WaitMatched:
		log.Info("matched",
			logger.NewField("assignment_id", outcome.IDs.AssignmentID),
			logger.NewField("request_id", outcome.IDs.RequestID),
			logger.NewField("status", outcome.Detail.Status.String()),
		)
		// Водителю предлагается ровно allowedNext(current), ничего сверх.
		if !outcome.Detail.Status.Terminal() {
			log.Info("allowed status transitions",
				logger.NewField("next", transition.AllowedNext(outcome.Detail.Status)),
			)
		}
	}
}

func initMetricsRouter() http.Handler {
	router := mux.NewRouter()

	router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	router.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")

	return router
}
