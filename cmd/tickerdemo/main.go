// Command tickerdemo hosts a ticker.Scheduler as a standalone process:
// it loads config the way the teacher's binaries do, wires the metrics
// and health endpoints, registers a handful of example timer/ticker/
// alarm jobs, and waits for a termination signal to shut down in order.
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kosuga/ticker"
	"github.com/kosuga/ticker/config"
	"github.com/kosuga/ticker/internal/health"
	"github.com/kosuga/ticker/internal/metrics"
	"github.com/kosuga/ticker/internal/obslog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := newLogger(cfg.Env, cfg.SlogLevel())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	sched := ticker.New(ctx, ticker.FromConfig(cfg)...)
	logger.Info("scheduler started", "workers", cfg.WorkerCount, "gmt", cfg.GMT)

	metrics.Register()
	checker := health.NewChecker(sched.Pinger(), logger, prometheus.DefaultRegisterer)

	registerExampleJobs(sched, logger)

	metricsSrv := metrics.NewServer(":"+cfg.MetricsPort, checker)
	go func() {
		logger.Info("metrics server started", "port", cfg.MetricsPort)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics server shutdown", "error", err)
	}

	sched.Stop()
	logger.Info("scheduler shut down")
}

// registerExampleJobs wires up one of each builder kind, standing in
// for the jobs a real host binary would register on startup.
func registerExampleJobs(sched *ticker.Scheduler, logger *slog.Logger) {
	sched.Timer().In(time.Minute).Do(func(context.Context) {
		logger.Info("one-shot job fired")
	})

	sched.Ticker().Every(30 * time.Second).Do(func(context.Context) {
		logger.Info("ticker job fired")
	})

	sched.Alarm().On(ticker.Month, 1).Do(func(context.Context) {
		logger.Info("monthly alarm fired")
	})
}

func newLogger(env string, level slog.Level) *slog.Logger {
	var inner slog.Handler
	if env == "local" {
		inner = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	} else {
		inner = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	}
	return slog.New(obslog.NewContextHandler(inner))
}
