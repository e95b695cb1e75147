package app

import (
	"context"
	"fmt"

	"github.com/avc-dev/shortlink/internal/config"
	"github.com/avc-dev/shortlink/internal/config/db"
	"github.com/avc-dev/shortlink/internal/config/mongodb"
	"github.com/avc-dev/shortlink/internal/emailcheck"
	"github.com/avc-dev/shortlink/internal/handler"
	"github.com/avc-dev/shortlink/internal/mailer"
	"github.com/avc-dev/shortlink/internal/middleware"
	"github.com/avc-dev/shortlink/internal/migrations"
	"github.com/avc-dev/shortlink/internal/repository"
	"github.com/avc-dev/shortlink/internal/service"
	"github.com/avc-dev/shortlink/internal/store"
	"github.com/avc-dev/shortlink/internal/usecase"
	"github.com/avc-dev/shortlink/internal/validation"
	"go.uber.org/zap"
)

type dependencies struct {
	handler *handler.Handler
	auth    *middleware.AuthMiddleware
	storage Storage
}

// initDependencies инициализирует все зависимости приложения
func initDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*dependencies, error) {
	storage, err := initStorage(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	deps, err := buildDependencies(cfg, logger, storage)
	if err != nil {
		_ = storage.Close(ctx)
		return nil, err
	}
	return deps, nil
}

// buildDependencies собирает слои приложения поверх готового хранилища
func buildDependencies(cfg *config.Config, logger *zap.Logger, storage repository.Store) (*dependencies, error) {
	repo := repository.New(storage)

	urlService := service.NewURLService(repo, cfg)
	urlUsecase := usecase.NewURLUsecase(repo, urlService, cfg, logger)

	authService := service.NewAuthService(cfg.Auth.JWTSecret, cfg.Auth.JWTTTL, cfg.Production)
	hasher := service.NewPasswordHasher(cfg.Auth.PasswordHasher)
	checker := emailcheck.NewChecker(cfg.Email, logger)

	mail, err := mailer.New(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize mailer: %w", err)
	}

	authUsecase := usecase.NewAuthUsecase(repo, hasher, authService, mail, checker, cfg, logger)

	validator, err := validation.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize validator: %w", err)
	}

	return &dependencies{
		handler: handler.New(urlUsecase, authUsecase, authService, repo, validator, cfg, logger),
		auth:    middleware.NewAuthMiddleware(authService, logger),
		storage: repo,
	}, nil
}

// initStorage создает хранилище на основе конфигурации.
// Приоритет: MongoDB, затем PostgreSQL, иначе память.
func initStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.Store, error) {
	switch {
	case cfg.MongoURI != "":
		client, database, err := mongodb.NewConfig(cfg.MongoURI, cfg.MongoDatabase).Connect(ctx, logger)
		if err != nil {
			return nil, err
		}

		mongoStore, err := store.NewMongoStore(ctx, client, database)
		if err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		logger.Info("Using MongoDB storage", zap.String("database", cfg.MongoDatabase))
		return mongoStore, nil

	case cfg.DatabaseDSN != "":
		pg, err := db.NewConfig(cfg.DatabaseDSN).Connect(ctx)
		if err != nil {
			return nil, err
		}

		if err := migrations.NewMigrator(pg.DB(), logger).RunUp(); err != nil {
			pg.Close()
			return nil, err
		}
		logger.Info("Using PostgreSQL storage")
		return &postgresStore{DatabaseStore: store.NewDatabaseStore(pg.Pool), conn: pg}, nil

	default:
		logger.Info("Using in-memory storage")
		return store.NewStore(), nil
	}
}

// postgresStore закрывает подключения вместе с хранилищем
type postgresStore struct {
	*store.DatabaseStore
	conn *db.Postgres
}

func (s *postgresStore) Close(context.Context) error {
	s.conn.Close()
	return nil
}
