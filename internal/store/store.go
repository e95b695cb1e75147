package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/google/uuid"
)

// Store хранит ссылки и пользователей в памяти процесса.
// Все операции выполняются под одним мьютексом, поэтому инкремент кликов атомарен.
type Store struct {
	urls       map[model.Code]*model.ShortURL
	users      map[string]*model.User
	emailIndex map[string]string
	mutex      sync.Mutex
	now        func() time.Time
}

func NewStore() *Store {
	return &Store{
		urls:       make(map[model.Code]*model.ShortURL),
		users:      make(map[string]*model.User),
		emailIndex: make(map[string]string),
		now:        time.Now,
	}
}

func (s *Store) CreateURL(_ context.Context, record *model.ShortURL) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.urls[record.Code]; exists {
		return fmt.Errorf("code %s: %w", record.Code, ErrAlreadyExists)
	}

	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = s.now()
	}

	stored := *record
	s.urls[record.Code] = &stored

	return nil
}

func (s *Store) GetURLByCode(_ context.Context, code model.Code) (*model.ShortURL, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	record, ok := s.urls[code]
	if !ok {
		return nil, fmt.Errorf("code %s: %w", code, ErrNotFound)
	}

	result := *record
	return &result, nil
}

func (s *Store) IncrementClicks(_ context.Context, code model.Code) (*model.ShortURL, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	record, ok := s.urls[code]
	if !ok {
		return nil, fmt.Errorf("code %s: %w", code, ErrNotFound)
	}

	record.Clicks++

	result := *record
	return &result, nil
}

func (s *Store) GetURLsByUserID(_ context.Context, userID string) ([]model.ShortURL, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	result := make([]model.ShortURL, 0)
	if userID == "" {
		return result, nil
	}

	for _, record := range s.urls {
		if record.UserID == userID {
			result = append(result, *record)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}

func (s *Store) CreateUser(_ context.Context, user *model.User) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.emailIndex[user.Email]; exists {
		return fmt.Errorf("email %s: %w", user.Email, ErrAlreadyExists)
	}

	now := s.now()
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = now
	user.UpdatedAt = now

	stored := *user
	s.users[user.ID] = &stored
	s.emailIndex[user.Email] = user.ID

	return nil
}

func (s *Store) GetUserByID(_ context.Context, id string) (*model.User, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}

	result := *user
	return &result, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mutex.Lock()
	id, ok := s.emailIndex[email]
	s.mutex.Unlock()

	if !ok {
		return nil, fmt.Errorf("email %s: %w", email, ErrNotFound)
	}

	return s.GetUserByID(ctx, id)
}

func (s *Store) GetUserByVerificationToken(_ context.Context, tokenHash string) (*model.User, error) {
	return s.findUser(func(u *model.User) bool {
		return u.EmailVerificationTokenHash == tokenHash
	})
}

func (s *Store) GetUserByResetToken(_ context.Context, tokenHash string) (*model.User, error) {
	return s.findUser(func(u *model.User) bool {
		return u.PasswordResetTokenHash == tokenHash
	})
}

func (s *Store) findUser(match func(u *model.User) bool) (*model.User, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, user := range s.users {
		if match(user) {
			result := *user
			return &result, nil
		}
	}

	return nil, fmt.Errorf("user: %w", ErrNotFound)
}

func (s *Store) UpdateUser(_ context.Context, user *model.User) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	stored, ok := s.users[user.ID]
	if !ok {
		return fmt.Errorf("user %s: %w", user.ID, ErrNotFound)
	}

	user.CreatedAt = stored.CreatedAt
	user.Email = stored.Email
	user.UpdatedAt = s.now()

	updated := *user
	s.users[user.ID] = &updated

	return nil
}

func (s *Store) Ping(context.Context) error {
	return nil
}

func (s *Store) Close(context.Context) error {
	return nil
}
