package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/avc-dev/shortlink/internal/config"
	"go.uber.org/zap"
)

// shutdownTimeout время на завершение активных запросов при остановке
const shutdownTimeout = 10 * time.Second

// Storage хранилище, которым владеет приложение
type Storage interface {
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// App представляет приложение URL shortener
type App struct {
	config  *config.Config
	logger  *zap.Logger
	router  http.Handler
	storage Storage
}

// New создает новый экземпляр приложения
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	deps, err := initDependencies(ctx, cfg, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}

	return &App{
		config:  cfg,
		logger:  logger,
		router:  newRouter(deps.handler, deps.auth, logger, cfg),
		storage: deps.storage,
	}, nil
}

// Run запускает приложение и блокируется до отмены ctx или ошибки сервера
func Run(ctx context.Context) error {
	app, err := New(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = app.logger.Sync() }()

	defer func() {
		closeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		app.Close(closeCtx)
	}()

	return app.start(ctx)
}

// Close освобождает хранилище
func (a *App) Close(ctx context.Context) {
	if a.storage == nil {
		return
	}

	if err := a.storage.Close(ctx); err != nil {
		a.logger.Error("failed to close storage", zap.Error(err))
		return
	}
	a.logger.Info("Storage closed")
}

// newLogger создает zap логгер: JSON в production, консольный вывод иначе
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	zapCfg := zap.NewDevelopmentConfig()
	if cfg.Production {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.Level = level

	return zapCfg.Build()
}
