// Package mongodb открывает подключение к MongoDB с повтором первой проверки связи.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.uber.org/zap"
)

// Config настройки подключения к MongoDB
type Config struct {
	URI                    string
	Database               string
	ServerSelectionTimeout time.Duration
	ConnectTimeout         time.Duration
	MaxPoolSize            uint64
	MinPoolSize            uint64
	MaxConnIdleTime        time.Duration
	ConnectAttempts        int
	RetryDelay             time.Duration
}

// NewConfig возвращает настройки, рассчитанные на холодный старт в serverless окружении
func NewConfig(uri, database string) *Config {
	return &Config{
		URI:                    uri,
		Database:               database,
		ServerSelectionTimeout: 5 * time.Second,
		ConnectTimeout:         10 * time.Second,
		MaxPoolSize:            5,
		MinPoolSize:            0,
		MaxConnIdleTime:        30 * time.Second,
		ConnectAttempts:        3,
		RetryDelay:             time.Second,
	}
}

func (c *Config) clientOptions() *options.ClientOptions {
	return options.Client().
		ApplyURI(c.URI).
		SetAppName("shortlink").
		SetServerSelectionTimeout(c.ServerSelectionTimeout).
		SetConnectTimeout(c.ConnectTimeout).
		SetMaxPoolSize(c.MaxPoolSize).
		SetMinPoolSize(c.MinPoolSize).
		SetMaxConnIdleTime(c.MaxConnIdleTime).
		SetRetryWrites(true).
		SetRetryReads(true).
		SetCompressors([]string{"zlib"})
}

// Connect создает клиента и ждет успешного ping не более ConnectAttempts раз
func (c *Config) Connect(ctx context.Context, logger *zap.Logger) (*mongo.Client, *mongo.Database, error) {
	if c.URI == "" {
		return nil, nil, fmt.Errorf("mongo URI is required")
	}

	client, err := mongo.Connect(c.clientOptions())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	attempts := max(c.ConnectAttempts, 1)
	for attempt := 1; ; attempt++ {
		err = client.Ping(ctx, readpref.Primary())
		if err == nil {
			break
		}
		if attempt >= attempts {
			_ = client.Disconnect(context.Background())
			return nil, nil, fmt.Errorf("failed to ping mongo after %d attempts: %w", attempts, err)
		}

		logger.Warn("MongoDB ping failed, retrying",
			zap.Int("attempt", attempt),
			zap.Duration("delay", c.RetryDelay),
			zap.Error(err),
		)

		select {
		case <-ctx.Done():
			_ = client.Disconnect(context.Background())
			return nil, nil, fmt.Errorf("mongo connect canceled: %w", ctx.Err())
		case <-time.After(c.RetryDelay):
		}
	}

	logger.Info("Connected to MongoDB", zap.String("database", c.Database))

	return client, client.Database(c.Database), nil
}
