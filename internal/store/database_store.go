package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation код SQLSTATE нарушения уникального индекса
const uniqueViolation = "23505"

// DatabaseStore реализует хранилище на PostgreSQL.
// Уникальность кодов и email обеспечивается уникальными индексами схемы.
type DatabaseStore struct {
	pool *pgxpool.Pool
}

// NewDatabaseStore создает новый DatabaseStore
func NewDatabaseStore(pool *pgxpool.Pool) *DatabaseStore {
	return &DatabaseStore{pool: pool}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

const urlColumns = `id, code, full_url, clicks, COALESCE(user_id, ''), created_at`

func scanURL(row pgx.Row) (*model.ShortURL, error) {
	var (
		record  model.ShortURL
		code    string
		fullURL string
	)
	if err := row.Scan(&record.ID, &code, &fullURL, &record.Clicks, &record.UserID, &record.CreatedAt); err != nil {
		return nil, err
	}
	record.Code = model.Code(code)
	record.FullURL = model.URL(fullURL)
	return &record, nil
}

// CreateURL сохраняет новую короткую ссылку
func (ds *DatabaseStore) CreateURL(ctx context.Context, record *model.ShortURL) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	query := `
		INSERT INTO short_urls (id, code, full_url, clicks, user_id)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''))
		RETURNING created_at
	`

	err := ds.pool.QueryRow(ctx, query,
		record.ID, string(record.Code), string(record.FullURL), record.Clicks, record.UserID,
	).Scan(&record.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("code %s: %w", record.Code, ErrAlreadyExists)
		}
		return fmt.Errorf("failed to insert url: %w", err)
	}

	return nil
}

// GetURLByCode читает ссылку по короткому коду
func (ds *DatabaseStore) GetURLByCode(ctx context.Context, code model.Code) (*model.ShortURL, error) {
	query := `SELECT ` + urlColumns + ` FROM short_urls WHERE code = $1`

	record, err := scanURL(ds.pool.QueryRow(ctx, query, string(code)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("code %s: %w", code, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read url: %w", err)
	}

	return record, nil
}

// IncrementClicks атомарно увеличивает счетчик переходов и возвращает обновленную запись
func (ds *DatabaseStore) IncrementClicks(ctx context.Context, code model.Code) (*model.ShortURL, error) {
	query := `
		UPDATE short_urls SET clicks = clicks + 1
		WHERE code = $1
		RETURNING ` + urlColumns

	record, err := scanURL(ds.pool.QueryRow(ctx, query, string(code)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("code %s: %w", code, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to increment clicks: %w", err)
	}

	return record, nil
}

// GetURLsByUserID возвращает ссылки пользователя, новые первыми
func (ds *DatabaseStore) GetURLsByUserID(ctx context.Context, userID string) ([]model.ShortURL, error) {
	query := `SELECT ` + urlColumns + ` FROM short_urls WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := ds.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user urls: %w", err)
	}
	defer rows.Close()

	result := make([]model.ShortURL, 0)
	for rows.Next() {
		record, err := scanURL(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan url: %w", err)
		}
		result = append(result, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user urls: %w", err)
	}

	return result, nil
}

const userColumns = `id, name, email, password_hash, is_email_verified,
	email_verification_token_hash, email_verification_expires,
	password_reset_token_hash, password_reset_expires, created_at, updated_at`

func scanUser(row pgx.Row) (*model.User, error) {
	var user model.User
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.IsEmailVerified,
		&user.EmailVerificationTokenHash, &user.EmailVerificationExpires,
		&user.PasswordResetTokenHash, &user.PasswordResetExpires,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser сохраняет нового пользователя
func (ds *DatabaseStore) CreateUser(ctx context.Context, user *model.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	query := `
		INSERT INTO users (id, name, email, password_hash, is_email_verified,
			email_verification_token_hash, email_verification_expires,
			password_reset_token_hash, password_reset_expires)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`

	err := ds.pool.QueryRow(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.IsEmailVerified,
		user.EmailVerificationTokenHash, user.EmailVerificationExpires,
		user.PasswordResetTokenHash, user.PasswordResetExpires,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("email %s: %w", user.Email, ErrAlreadyExists)
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

func (ds *DatabaseStore) getUser(ctx context.Context, where string, arg any) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + where + ` = $1`

	user, err := scanUser(ds.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read user: %w", err)
	}

	return user, nil
}

func (ds *DatabaseStore) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	return ds.getUser(ctx, "id", id)
}

func (ds *DatabaseStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return ds.getUser(ctx, "email", email)
}

func (ds *DatabaseStore) GetUserByVerificationToken(ctx context.Context, tokenHash string) (*model.User, error) {
	return ds.getUser(ctx, "email_verification_token_hash", tokenHash)
}

func (ds *DatabaseStore) GetUserByResetToken(ctx context.Context, tokenHash string) (*model.User, error) {
	return ds.getUser(ctx, "password_reset_token_hash", tokenHash)
}

// UpdateUser обновляет изменяемые поля пользователя
func (ds *DatabaseStore) UpdateUser(ctx context.Context, user *model.User) error {
	query := `
		UPDATE users SET
			name = $2,
			password_hash = $3,
			is_email_verified = $4,
			email_verification_token_hash = $5,
			email_verification_expires = $6,
			password_reset_token_hash = $7,
			password_reset_expires = $8,
			updated_at = $9
		WHERE id = $1
		RETURNING created_at
	`

	user.UpdatedAt = time.Now()

	err := ds.pool.QueryRow(ctx, query,
		user.ID, user.Name, user.PasswordHash, user.IsEmailVerified,
		user.EmailVerificationTokenHash, user.EmailVerificationExpires,
		user.PasswordResetTokenHash, user.PasswordResetExpires,
		user.UpdatedAt,
	).Scan(&user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("user %s: %w", user.ID, ErrNotFound)
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

func (ds *DatabaseStore) Ping(ctx context.Context) error {
	return ds.pool.Ping(ctx)
}

// Close ничего не делает: пулом владеет db.Postgres
func (ds *DatabaseStore) Close(context.Context) error {
	return nil
}
