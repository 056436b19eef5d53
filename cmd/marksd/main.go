package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	api "github.com/mind-engage/mindengage-marks/internal/api/http"
	"github.com/mind-engage/mindengage-marks/internal/config"
	"github.com/mind-engage/mindengage-marks/internal/db"
	"github.com/mind-engage/mindengage-marks/internal/logging"
	"github.com/mind-engage/mindengage-marks/internal/observability"
	"github.com/mind-engage/mindengage-marks/internal/results"
)

var version = "dev"

func main() {
	cfg := config.Load()

	lg, err := logging.Init(cfg.LogLevel, cfg.Env, cfg.LogFile)
	if err != nil {
		panic(err)
	}
	defer lg.Closer()
	log := lg.Base

	flush, err := observability.InitSentry(cfg.SentryDSN, cfg.Env, version)
	if err != nil {
		log.Warn("sentry init failed", zap.Error(err))
	}
	defer flush()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	cancel()
	if err != nil {
		log.Fatal("db open failed", zap.String("driver", cfg.DBDriver), zap.Error(err))
	}
	defer dbh.Close()

	store := results.NewSQLStore(dbh)
	r := api.NewRouter(api.Deps{
		DB:              dbh,
		Store:           store,
		Service:         results.NewService(store, log),
		Log:             log,
		RateLimitPerMin: cfg.RateLimitPerMin,
		RecentLimitMax:  cfg.RecentLimitMax,
		CORSOrigins:     cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-sigCtx.Done()
		shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shCtx)
	}()

	log.Info("listening", zap.String("addr", cfg.HTTPAddr), zap.String("env", cfg.Env), zap.String("db", cfg.DBDriver))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("http server", zap.Error(err))
	}
}
