package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/LessUp/PoopRecorder/internal"
	"github.com/LessUp/PoopRecorder/internal/api"
	"github.com/LessUp/PoopRecorder/internal/auth"
	"github.com/LessUp/PoopRecorder/internal/config"
	"github.com/LessUp/PoopRecorder/internal/storage"
)

type application struct {
	logger    internal.Logger
	entryRepo storage.EntryRepository
	userRepo  storage.UserRepository
	authSvc   *auth.Service
}

func (a *application) Logger() internal.Logger            { return a.logger }
func (a *application) EntryRepo() storage.EntryRepository { return a.entryRepo }
func (a *application) UserRepo() storage.UserRepository   { return a.userRepo }
func (a *application) Auth() *auth.Service                { return a.authSvc }
func (a *application) Now() time.Time                     { return time.Now() }

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := internal.NewLogger(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	var entryRepo storage.EntryRepository
	var userRepo storage.UserRepository
	switch cfg.StorageBackend {
	case "postgres":
		entryRepo, userRepo, err = storage.NewPostgresRepositories(cfg.PostgresDSN, logger)
	default:
		if dir := filepath.Dir(cfg.EntriesFile); dir != "." {
			if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
				logger.Fatalf("failed to create data dir: %v", mkErr)
			}
		}
		entryRepo, userRepo, err = storage.NewFileRepositories(cfg.EntriesFile, cfg.UsersFile, logger)
	}
	if err != nil {
		logger.Fatalf("failed to init storage: %v", err)
	}

	tokens := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTokenTTL)
	app := &application{
		logger:    logger,
		entryRepo: entryRepo,
		userRepo:  userRepo,
		authSvc:   auth.NewService(userRepo, tokens, logger),
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	api.RegisterRoutes(r, app, tokens)

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.Infof("server listening on %s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("server shutdown: %v", err)
	}
	if closer, ok := entryRepo.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			logger.Errorf("storage close: %v", err)
		}
	}
}
