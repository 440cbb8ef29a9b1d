package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"github.com/meridian-retail/backoffice/internal/app"
	"github.com/meridian-retail/backoffice/internal/calendar"
	"github.com/meridian-retail/backoffice/internal/inventory"
	"github.com/meridian-retail/backoffice/internal/loans"
	"github.com/meridian-retail/backoffice/internal/observability"
	"github.com/meridian-retail/backoffice/internal/orders"
	"github.com/meridian-retail/backoffice/internal/overdue"
	"github.com/meridian-retail/backoffice/internal/platform/cache"
	"github.com/meridian-retail/backoffice/internal/platform/db"
	"github.com/meridian-retail/backoffice/internal/sales"
	"github.com/meridian-retail/backoffice/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	var inventoryCache *inventory.Cache
	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Warn("redis unavailable, dashboard cache disabled", slog.Any("error", err))
	} else {
		inventoryCache = inventory.NewCache(redisClient, cfg.DashboardCacheTTL)
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Warn("redis close", slog.Any("error", err))
			}
		}()

		queue := jobs.NewClient(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
		defer func() {
			if err := queue.Close(); err != nil {
				logger.Warn("queue close", slog.Any("error", err))
			}
		}()
		if err := queue.Enqueue(ctx, jobs.NewWarmDashboardTask()); err != nil {
			logger.Warn("enqueue dashboard warmup", slog.Any("error", err))
		}
	}

	metrics := observability.NewMetrics()

	loansService := loans.NewService(loans.NewRepository(pool))
	overdueService := overdue.NewService(overdue.NewRepository(pool))
	ordersService := orders.NewService(orders.NewRepository(pool))
	salesService := sales.NewService(sales.NewRepository(pool))
	calendarService := calendar.NewService(calendar.NewRepository(pool))
	inventoryService := inventory.NewService(inventory.NewRepository(pool), inventoryCache)

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		LoansHandler:     loans.NewHandler(logger, loansService),
		OverdueHandler:   overdue.NewHandler(logger, overdueService),
		OrdersHandler:    orders.NewHandler(logger, ordersService),
		SalesHandler:     sales.NewHandler(logger, salesService),
		CalendarHandler:  calendar.NewHandler(logger, calendarService),
		InventoryHandler: inventory.NewHandler(logger, inventoryService),
		Metrics:          metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("http server listening", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", slog.Any("error", err))
	}
}
