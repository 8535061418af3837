package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"

	"github.com/staffline/workforce/contracts"
	workershandler "github.com/staffline/workforce/domains/workers/be/handler"
	workersrepo "github.com/staffline/workforce/domains/workers/be/repo"
	workersservice "github.com/staffline/workforce/domains/workers/be/service"
	workplaceshandler "github.com/staffline/workforce/domains/workplaces/be/handler"
	workplacesrepo "github.com/staffline/workforce/domains/workplaces/be/repo"
	workplacesservice "github.com/staffline/workforce/domains/workplaces/be/service"
	platformlogging "github.com/staffline/workforce/platform/go/logging"
	"github.com/staffline/workforce/platform/go/metrics"
	"github.com/staffline/workforce/platform/go/persistence"
)

type config struct {
	Port               string        `env:"PORT" envDefault:"3000"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	RequestTimeout     time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
	LogLevel           string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat          string        `env:"LOG_FORMAT" envDefault:"json"`
	DatabaseURL        string        `env:"DATABASE_URL,required"`
	DBMaxConns         int32         `env:"DB_MAX_CONNS"`
	DBMinConns         int32         `env:"DB_MIN_CONNS"`
	DBMaxConnLifetime  time.Duration `env:"DB_MAX_CONN_LIFETIME"`
	DBMaxConnIdleTime  time.Duration `env:"DB_MAX_CONN_IDLE_TIME"`
	AutoMigrate        bool          `env:"AUTO_MIGRATE" envDefault:"false"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	MetricsEnabled     bool          `env:"METRICS_ENABLED" envDefault:"true"`
}

func main() {
	ctx := context.Background()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := platformlogging.NewLogger(platformlogging.Config{
		Component: "workforce-api",
		Level:     cfg.LogLevel,
		Format:    cfg.LogFormat,
	})
	if err != nil {
		log.Fatalf("init zap logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	pool, err := persistence.NewPool(ctx, persistence.PoolConfig{
		ConnString:      cfg.DatabaseURL,
		MaxConns:        cfg.DBMaxConns,
		MinConns:        cfg.DBMinConns,
		MaxConnLifetime: cfg.DBMaxConnLifetime,
		MaxConnIdleTime: cfg.DBMaxConnIdleTime,
	})
	if err != nil {
		logger.Fatal("init postgres pool", zap.Error(err))
	}
	defer persistence.ClosePool(pool)

	if cfg.AutoMigrate {
		if err := persistence.BootstrapSchema(ctx, pool); err != nil {
			logger.Fatal("apply schema", zap.Error(err))
		}
		logger.Info("schema applied")
	}

	workerStore, err := persistence.NewWorkerStore(pool)
	if err != nil {
		logger.Fatal("init worker store", zap.Error(err))
	}
	workerService := workersservice.New(workersrepo.NewPostgresRepository(workerStore))
	workerHTTPHandler := workershandler.New(workerService, logger)

	workplaceStore, err := persistence.NewWorkplaceStore(pool)
	if err != nil {
		logger.Fatal("init workplace store", zap.Error(err))
	}
	workplaceService := workplacesservice.New(workplacesrepo.NewPostgresRepository(workplaceStore))
	workplaceHTTPHandler := workplaceshandler.New(workplaceService, logger)

	spec, err := contracts.Load()
	if err != nil {
		logger.Fatal("load openapi spec", zap.Error(err))
	}

	var httpMetrics *metrics.HTTP
	if cfg.MetricsEnabled {
		httpMetrics = metrics.NewHTTP()
	}

	router := newRouter(routerDeps{
		logger: logger,
		spec:   spec,
		ready: func(ctx context.Context) error {
			return persistence.Ready(ctx, pool)
		},
		metrics:        httpMetrics,
		corsOrigins:    cfg.CORSAllowedOrigins,
		requestTimeout: cfg.RequestTimeout,
		workers:        workerHTTPHandler,
		workplaces:     workplaceHTTPHandler,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  2 * time.Minute,
	}

	go func() {
		logger.Info("starting api server", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server listen failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
