package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/auth"
	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/config"
	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/db"
	transport "github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/http"
	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/http/middleware"
	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/repo"
	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/services"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Env)

	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	var (
		userRepo     repo.UserRepository
		contestRepo  repo.ContestRepository
		questionRepo repo.QuestionRepository
	)

	switch cfg.DBType {
	case config.DBTypeMongo:
		mg, err := db.ConnectMongo(ctx, cfg.MongoURL)
		if err != nil {
			logger.Error("failed to connect to mongo", "error", err)
			os.Exit(1)
		}
		defer mg.Close(context.Background())

		if err := mg.EnsureIndexes(ctx); err != nil {
			logger.Error("failed to ensure indexes", "error", err)
			os.Exit(1)
		}

		userRepo = repo.NewMongoUserRepo(mg.DB, cfg.RequestTimeout)
		contestRepo = repo.NewMongoContestRepo(mg.DB, cfg.RequestTimeout)
		questionRepo = repo.NewMongoQuestionRepo(mg.DB, cfg.RequestTimeout)

	case config.DBTypePostgres:
		if err := db.RunMigrations(cfg.PostgresURL, cfg.MigrationsDir); err != nil {
			logger.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}

		pg, err := db.ConnectPostgres(ctx, cfg.PostgresURL)
		if err != nil {
			logger.Error("failed to connect to postgres", "error", err)
			os.Exit(1)
		}
		defer pg.Close()

		userRepo = repo.NewPostgresUserRepo(pg.Pool, cfg.RequestTimeout)
		contestRepo = repo.NewPostgresContestRepo(pg.Pool, cfg.RequestTimeout)
		questionRepo = repo.NewPostgresQuestionRepo(pg.Pool, cfg.RequestTimeout)
	}

	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiry)

	if err := db.EnsureAdmin(ctx, userRepo, hasher, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		logger.Error("failed to seed admin account", "error", err)
		os.Exit(1)
	}

	if err := db.EnsureQuestions(ctx, questionRepo); err != nil {
		logger.Error("failed to seed question bank", "error", err)
		os.Exit(1)
	}

	router := transport.NewRouter(transport.Dependencies{
		Config:         cfg,
		UserRepo:       userRepo,
		TokenIssuer:    tokens,
		AuthService:    services.NewAuthService(userRepo, hasher, tokens, cfg),
		UserService:    services.NewUserService(userRepo),
		ContestService: services.NewContestService(contestRepo, questionRepo, userRepo),
		Logger:         logger,
		RateLimiter:    middleware.NewRateLimiter(cfg.RateLimitPerMinute),
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadTimeout:       cfg.RequestTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.RequestTimeout,
		IdleTimeout:       60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "addr", cfg.HTTPAddr, "env", cfg.Env, "db", cfg.DBType)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serverErrors:
		logger.Error("http server stopped unexpectedly", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
		os.Exit(1)
	}

	logger.Info("http server stopped")
}

func newLogger(env string) *slog.Logger {
	level := slog.LevelInfo
	if env != "prod" {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if env == "prod" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	return slog.New(handler)
}
