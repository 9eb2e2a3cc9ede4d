// @title        Site App API
// @version      1.0
// @description  Snag tracking for construction and inspection projects.
// @host         localhost:3001
// @BasePath     /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

//go:generate swag init --dir ../.. --generalInfo cmd/service/service.go --output ../../docs --outputTypes go --exclude _examples

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/burdstermcfc/site-app/internal/cache"
	"github.com/burdstermcfc/site-app/internal/config"
	"github.com/burdstermcfc/site-app/internal/database"
	"github.com/burdstermcfc/site-app/internal/logging"
	"github.com/burdstermcfc/site-app/internal/metrics"
	"github.com/burdstermcfc/site-app/internal/middleware"
	"github.com/burdstermcfc/site-app/internal/router"
	"github.com/burdstermcfc/site-app/internal/service"
	"github.com/burdstermcfc/site-app/internal/tracing"
	"github.com/burdstermcfc/site-app/internal/worker"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	_ "github.com/burdstermcfc/site-app/docs" // swag generated docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

const (
	serviceName     = "site-app"
	shutdownTimeout = 10 * time.Second
)

var (
	loadDotEnv      = func() error { return godotenv.Load() }
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	initTracing     = tracing.Init
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	shutdownServer  = func(ctx context.Context, e *echo.Echo) error { return e.Shutdown(ctx) }
	newWorkerPool   = worker.NewPool
	exitFunc        = os.Exit
)

func run(ctx context.Context) error {
	if err := loadDotEnv(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel, nil)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}

	shutdownTracing, err := initTracing(ctx, cfg.OTLPEndpoint, serviceName, cfg.Environment)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.WithError(err).Warn("tracing shutdown")
		}
	}()

	db, err := newPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	wp := newWorkerPool(cfg.WorkerCount)
	defer wp.Stop()

	creds, err := service.NewCredentialStore(db, wp, cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("credential store: %w", err)
	}

	ts, err := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return fmt.Errorf("token service: %w", err)
	}
	var tokens service.Tokens = ts

	var rdb cache.Cache
	if cfg.RedisAddr != "" {
		rdb, err = newRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer rdb.Close()
		tokens = service.NewRevocableTokenService(ts, rdb)
		logger.WithField("addr", cfg.RedisAddr).Info("token revocation enabled")
	}

	limiter := middleware.NewRateLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst)
	limiter.StartCleanup(ctx, time.Minute)

	e := echo.New()
	router.Setup(e, router.Deps{
		DB:          db,
		Cache:       rdb,
		Credentials: creds,
		Tokens:      tokens,
		Metrics:     metrics.New(),
		Logger:      logger,
		AuthLimiter: limiter,
		CORSOrigins: cfg.CORSAllowedOrigins,
		ServiceName: serviceName,
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	errCh := make(chan error, 1)
	go func() {
		logger.WithFields(logrus.Fields{"addr": cfg.Addr(), "environment": cfg.Environment}).Info("server starting")
		errCh <- startServer(e, cfg.Addr())
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownServer(sctx, e); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := run(ctx); err != nil {
		logrus.WithError(err).Error("service exited")
		exitFunc(1)
	}
}
