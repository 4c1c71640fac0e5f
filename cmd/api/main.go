package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bryanwahyu/req2spec/internal/analyzer"
	appanalysis "github.com/bryanwahyu/req2spec/internal/application/analysis"
	"github.com/bryanwahyu/req2spec/internal/config"
	domain "github.com/bryanwahyu/req2spec/internal/domain/analysis"
	examplesdomain "github.com/bryanwahyu/req2spec/internal/domain/examples"
	memoryrepo "github.com/bryanwahyu/req2spec/internal/infra/db/memory"
	mysqlp "github.com/bryanwahyu/req2spec/internal/infra/db/mysql"
	postgresp "github.com/bryanwahyu/req2spec/internal/infra/db/postgres"
	"github.com/bryanwahyu/req2spec/internal/infra/httpserver"
	minioStore "github.com/bryanwahyu/req2spec/internal/infra/storage"
	"github.com/bryanwahyu/req2spec/internal/middleware"
)

func newLogger(level, format string) *zap.Logger {
	lvl := zapcore.InfoLevel
	switch level {
	case "debug":
		lvl = zapcore.DebugLevel
	case "warn":
		lvl = zapcore.WarnLevel
	case "error":
		lvl = zapcore.ErrorLevel
	}

	var cfg zap.Config
	if format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	logger, _ := cfg.Build()
	return logger
}

func main() {
	// .env is optional
	_ = godotenv.Load()

	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	// load config
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	logger := newLogger(cfg.Logging.Level, cfg.Logging.Format)
	defer logger.Sync()

	ctx := context.Background()

	// example catalog: database-backed when configured, built-in otherwise
	var (
		examples examplesdomain.Repository
		db       *sql.DB
	)
	switch cfg.Database.Driver {
	case "mysql":
		db, err = mysqlp.Connect(ctx, cfg.MySQLDSN())
		if err != nil {
			logger.Fatal("mysql connect error", zap.Error(err))
		}
		repo := mysqlp.NewExampleRepository(db)
		if err := repo.EnsureSeed(ctx); err != nil {
			logger.Fatal("example seed error", zap.Error(err))
		}
		examples = repo
	case "postgres":
		db, err = postgresp.Connect(ctx, cfg.PostgresDSN())
		if err != nil {
			logger.Fatal("postgres connect error", zap.Error(err))
		}
		repo := postgresp.NewExampleRepository(db)
		if err := repo.EnsureSeed(ctx); err != nil {
			logger.Fatal("example seed error", zap.Error(err))
		}
		examples = repo
	default:
		examples = memoryrepo.NewExampleRepository()
	}
	if db != nil {
		defer db.Close()
	}

	// artifact store is optional; exports fall back to direct downloads
	var artifacts domain.ArtifactStore
	if cfg.Minio.Endpoint != "" {
		store, err := minioStore.New(ctx,
			cfg.Minio.Endpoint,
			cfg.Minio.Region,
			cfg.Minio.BucketName,
			cfg.Minio.AccessKey,
			cfg.Minio.SecretKey,
			cfg.Minio.UseSSL,
		)
		if err != nil {
			logger.Fatal("minio init error", zap.Error(err))
		}
		artifacts = store
	}

	// init service
	svc := &appanalysis.Service{
		Analyzer:  analyzer.New(),
		Artifacts: artifacts,
		Clock:     appanalysis.SystemClock{},
	}

	checkers := map[string]middleware.HealthChecker{}
	if db != nil {
		checkers["database"] = &middleware.DatabaseHealthChecker{DB: db}
	}

	// init router + middleware chain
	mux := chi.NewRouter()
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	mux.Use(middleware.LoggingMiddleware(logger))
	mux.Use(middleware.MetricsMiddleware)
	mux.Use(middleware.RateLimitMiddleware(cfg.RateLimit.Capacity, cfg.RateLimit.RefillRate))
	mux.Use(middleware.APIKeyAuth(cfg.Auth.APIKeys))
	mux.Mount("/", httpserver.NewRouter(svc, examples, checkers, logger))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// run server
	go func() {
		logger.Info("server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	logger.Info("shutting down server...")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
