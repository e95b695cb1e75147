package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	// DefaultBodyLimit ограничение размера тела запроса
	DefaultBodyLimit = 16 << 10

	HasherBcrypt   = "bcrypt"
	HasherArgon2id = "argon2id"
)

// Config конфигурация приложения
type Config struct {
	ServerAddress NetworkAddress `env:"SERVER_ADDRESS"`
	BaseURL       URLPrefix      `env:"BASE_URL"`
	FrontendURL   string         `env:"FRONTEND_URL"`
	CORSOrigins   []string       `env:"CORS_ORIGINS" envSeparator:","`
	NotFoundURL   string         `env:"NOT_FOUND_URL"`
	Production    bool           `env:"PRODUCTION"`
	LogLevel      string         `env:"LOG_LEVEL"`
	BodyLimit     int64          `env:"BODY_LIMIT"`

	DatabaseDSN   string `env:"DATABASE_DSN"`
	MongoURI      string `env:"MONGO_URI"`
	MongoDatabase string `env:"MONGO_DATABASE"`

	CodeLength int `env:"CODE_LENGTH"`

	Retry RetryConfig
	Auth  AuthConfig
	SMTP  SMTPConfig
	Email EmailCheckConfig

	GRPCAddress   string `env:"GRPC_ADDRESS"`
	ConsulAddress string `env:"CONSUL_ADDRESS"`
}

// RetryConfig настройки повторных попыток генерации кода
type RetryConfig struct {
	MaxAttempts int `env:"RETRY_MAX_ATTEMPTS"`
}

// AuthConfig настройки аутентификации
type AuthConfig struct {
	JWTSecret                string        `env:"JWT_SECRET"`
	JWTTTL                   time.Duration `env:"JWT_TTL"`
	RequireEmailVerification bool          `env:"REQUIRE_EMAIL_VERIFICATION"`
	VerificationTokenTTL     time.Duration `env:"VERIFICATION_TOKEN_TTL"`
	ResetTokenTTL            time.Duration `env:"RESET_TOKEN_TTL"`
	PasswordHasher           string        `env:"PASSWORD_HASHER"`
}

// SMTPConfig настройки отправки почты. Пустой Host включает консольный режим.
type SMTPConfig struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM"`
}

// Enabled сообщает, настроена ли отправка через SMTP
func (c SMTPConfig) Enabled() bool {
	return c.Host != ""
}

// EmailCheckConfig настройки проверки доставляемости email
type EmailCheckConfig struct {
	APIKey  string        `env:"ABSTRACT_API_KEY"`
	APIURL  string        `env:"ABSTRACT_API_URL"`
	Timeout time.Duration `env:"ABSTRACT_API_TIMEOUT"`
}

// NewDefaultConfig возвращает конфигурацию со значениями по умолчанию
func NewDefaultConfig() *Config {
	return &Config{
		ServerAddress: NetworkAddress{Host: "localhost", Port: 3000},
		BaseURL:       URLPrefix("http://localhost:3000/"),
		FrontendURL:   "http://localhost:5173",
		LogLevel:      "info",
		BodyLimit:     DefaultBodyLimit,
		MongoDatabase: "urlshortener",
		CodeLength:    7,
		Retry: RetryConfig{
			MaxAttempts: 10,
		},
		Auth: AuthConfig{
			JWTSecret:                "dev-secret-change-me",
			JWTTTL:                   5 * time.Minute,
			RequireEmailVerification: true,
			VerificationTokenTTL:     24 * time.Hour,
			ResetTokenTTL:            time.Hour,
			PasswordHasher:           HasherBcrypt,
		},
		SMTP: SMTPConfig{
			Port: 587,
			From: "URL Shortener <noreply@localhost>",
		},
		Email: EmailCheckConfig{
			APIURL:  "https://emailvalidation.abstractapi.com/v1/",
			Timeout: 10 * time.Second,
		},
	}
}

// Load загружает конфигурацию: значения по умолчанию, затем .env,
// флаги командной строки и переменные окружения (имеют приоритет над флагами)
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	return LoadFromArgs(os.Args[1:])
}

// LoadFromArgs разбирает флаги из args и переменные окружения процесса
func LoadFromArgs(args []string) (*Config, error) {
	cfg := NewDefaultConfig()

	fs := flag.NewFlagSet("shortener", flag.ContinueOnError)
	fs.Var(&cfg.ServerAddress, "a", "address to run HTTP server")
	fs.Var(&cfg.BaseURL, "b", "base URL for shortened URL")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "PostgreSQL DSN")
	fs.StringVar(&cfg.MongoURI, "m", cfg.MongoURI, "MongoDB connection URI")
	fs.StringVar(&cfg.GRPCAddress, "g", cfg.GRPCAddress, "address of gRPC health endpoint")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if len(cfg.CORSOrigins) == 0 && cfg.FrontendURL != "" {
		cfg.CORSOrigins = []string{cfg.FrontendURL}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	if c.Retry.MaxAttempts <= 0 {
		return fmt.Errorf("RETRY_MAX_ATTEMPTS must be positive, got %d", c.Retry.MaxAttempts)
	}
	if c.CodeLength < 4 {
		return fmt.Errorf("CODE_LENGTH must be at least 4, got %d", c.CodeLength)
	}
	if c.Auth.JWTTTL <= 0 {
		return errors.New("JWT_TTL must be positive")
	}
	if c.Production && (c.Auth.JWTSecret == "" || c.Auth.JWTSecret == NewDefaultConfig().Auth.JWTSecret) {
		return errors.New("JWT_SECRET must be set in production")
	}
	if c.Auth.PasswordHasher != HasherBcrypt && c.Auth.PasswordHasher != HasherArgon2id {
		return fmt.Errorf("unknown PASSWORD_HASHER %q", c.Auth.PasswordHasher)
	}
	if c.BodyLimit <= 0 {
		return errors.New("BODY_LIMIT must be positive")
	}
	return nil
}
