package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc-dev/shortlink/internal/model"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	usersCollection = "users"
	urlsCollection  = "shorturls"
)

type urlDocument struct {
	ID        bson.ObjectID  `bson:"_id,omitempty"`
	FullURL   string         `bson:"full_url"`
	ShortURL  string         `bson:"short_url"`
	Clicks    int64          `bson:"clicks"`
	User      *bson.ObjectID `bson:"user,omitempty"`
	CreatedAt time.Time      `bson:"createdAt"`
}

func (d *urlDocument) toModel() *model.ShortURL {
	record := &model.ShortURL{
		ID:        d.ID.Hex(),
		Code:      model.Code(d.ShortURL),
		FullURL:   model.URL(d.FullURL),
		Clicks:    d.Clicks,
		CreatedAt: d.CreatedAt,
	}
	if d.User != nil {
		record.UserID = d.User.Hex()
	}
	return record
}

type userDocument struct {
	ID                       bson.ObjectID `bson:"_id,omitempty"`
	Name                     string        `bson:"name"`
	Email                    string        `bson:"email"`
	Password                 string        `bson:"password"`
	IsEmailVerified          bool          `bson:"isEmailVerified"`
	EmailVerificationToken   string        `bson:"emailVerificationToken,omitempty"`
	EmailVerificationExpires *time.Time    `bson:"emailVerificationExpires,omitempty"`
	PasswordResetToken       string        `bson:"passwordResetToken,omitempty"`
	PasswordResetExpires     *time.Time    `bson:"passwordResetExpires,omitempty"`
	CreatedAt                time.Time     `bson:"createdAt"`
	UpdatedAt                time.Time     `bson:"updatedAt"`
}

func newUserDocument(u *model.User) userDocument {
	return userDocument{
		Name:                     u.Name,
		Email:                    u.Email,
		Password:                 u.PasswordHash,
		IsEmailVerified:          u.IsEmailVerified,
		EmailVerificationToken:   u.EmailVerificationTokenHash,
		EmailVerificationExpires: u.EmailVerificationExpires,
		PasswordResetToken:       u.PasswordResetTokenHash,
		PasswordResetExpires:     u.PasswordResetExpires,
		CreatedAt:                u.CreatedAt,
		UpdatedAt:                u.UpdatedAt,
	}
}

func (d *userDocument) toModel() *model.User {
	return &model.User{
		ID:                         d.ID.Hex(),
		Name:                       d.Name,
		Email:                      d.Email,
		PasswordHash:               d.Password,
		IsEmailVerified:            d.IsEmailVerified,
		EmailVerificationTokenHash: d.EmailVerificationToken,
		EmailVerificationExpires:   d.EmailVerificationExpires,
		PasswordResetTokenHash:     d.PasswordResetToken,
		PasswordResetExpires:       d.PasswordResetExpires,
		CreatedAt:                  d.CreatedAt,
		UpdatedAt:                  d.UpdatedAt,
	}
}

// MongoStore реализует хранилище на MongoDB.
// Коллекции совместимы с документами users/shorturls исходной схемы.
type MongoStore struct {
	client *mongo.Client
	users  *mongo.Collection
	urls   *mongo.Collection
}

// NewMongoStore создает хранилище и необходимые индексы
func NewMongoStore(ctx context.Context, client *mongo.Client, db *mongo.Database) (*MongoStore, error) {
	ms := &MongoStore{
		client: client,
		users:  db.Collection(usersCollection),
		urls:   db.Collection(urlsCollection),
	}

	_, err := ms.users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "emailVerificationToken", Value: 1}},
			Options: options.Index().SetSparse(true),
		},
		{
			Keys:    bson.D{{Key: "passwordResetToken", Value: 1}},
			Options: options.Index().SetSparse(true),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user indexes: %w", err)
	}

	_, err = ms.urls.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "short_url", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "user", Value: 1}, {Key: "createdAt", Value: -1}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create url indexes: %w", err)
	}

	return ms, nil
}

func userObjectID(id string) (*bson.ObjectID, error) {
	if id == "" {
		return nil, nil
	}
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return &oid, nil
}

// CreateURL сохраняет новую короткую ссылку
func (ms *MongoStore) CreateURL(ctx context.Context, record *model.ShortURL) error {
	owner, err := userObjectID(record.UserID)
	if err != nil {
		return err
	}

	doc := urlDocument{
		ID:        bson.NewObjectID(),
		FullURL:   string(record.FullURL),
		ShortURL:  string(record.Code),
		Clicks:    record.Clicks,
		User:      owner,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := ms.urls.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("code %s: %w", record.Code, ErrAlreadyExists)
		}
		return fmt.Errorf("failed to insert url: %w", err)
	}

	record.ID = doc.ID.Hex()
	record.CreatedAt = doc.CreatedAt

	return nil
}

// GetURLByCode читает ссылку по короткому коду
func (ms *MongoStore) GetURLByCode(ctx context.Context, code model.Code) (*model.ShortURL, error) {
	var doc urlDocument
	err := ms.urls.FindOne(ctx, bson.M{"short_url": string(code)}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("code %s: %w", code, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read url: %w", err)
	}

	return doc.toModel(), nil
}

// IncrementClicks атомарно увеличивает счетчик переходов через $inc
func (ms *MongoStore) IncrementClicks(ctx context.Context, code model.Code) (*model.ShortURL, error) {
	var doc urlDocument
	err := ms.urls.FindOneAndUpdate(ctx,
		bson.M{"short_url": string(code)},
		bson.M{"$inc": bson.M{"clicks": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("code %s: %w", code, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to increment clicks: %w", err)
	}

	return doc.toModel(), nil
}

// GetURLsByUserID возвращает ссылки пользователя, новые первыми
func (ms *MongoStore) GetURLsByUserID(ctx context.Context, userID string) ([]model.ShortURL, error) {
	owner, err := userObjectID(userID)
	if err != nil || owner == nil {
		return []model.ShortURL{}, nil
	}

	cursor, err := ms.urls.Find(ctx,
		bson.M{"user": *owner},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query user urls: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []urlDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode user urls: %w", err)
	}

	result := make([]model.ShortURL, 0, len(docs))
	for i := range docs {
		result = append(result, *docs[i].toModel())
	}

	return result, nil
}

// CreateUser сохраняет нового пользователя
func (ms *MongoStore) CreateUser(ctx context.Context, user *model.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	doc := newUserDocument(user)
	doc.ID = bson.NewObjectID()

	if _, err := ms.users.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("email %s: %w", user.Email, ErrAlreadyExists)
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	user.ID = doc.ID.Hex()

	return nil
}

func (ms *MongoStore) findUser(ctx context.Context, filter bson.M) (*model.User, error) {
	var doc userDocument
	if err := ms.users.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("user: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read user: %w", err)
	}
	return doc.toModel(), nil
}

func (ms *MongoStore) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return ms.findUser(ctx, bson.M{"_id": oid})
}

func (ms *MongoStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return ms.findUser(ctx, bson.M{"email": email})
}

func (ms *MongoStore) GetUserByVerificationToken(ctx context.Context, tokenHash string) (*model.User, error) {
	return ms.findUser(ctx, bson.M{"emailVerificationToken": tokenHash})
}

func (ms *MongoStore) GetUserByResetToken(ctx context.Context, tokenHash string) (*model.User, error) {
	return ms.findUser(ctx, bson.M{"passwordResetToken": tokenHash})
}

// UpdateUser заменяет документ пользователя, сохраняя email и дату создания
func (ms *MongoStore) UpdateUser(ctx context.Context, user *model.User) error {
	oid, err := bson.ObjectIDFromHex(user.ID)
	if err != nil {
		return fmt.Errorf("user %s: %w", user.ID, ErrNotFound)
	}

	existing, err := ms.findUser(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}

	user.Email = existing.Email
	user.CreatedAt = existing.CreatedAt
	user.UpdatedAt = time.Now().UTC()

	doc := newUserDocument(user)
	doc.ID = oid

	result, err := ms.users.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("user %s: %w", user.ID, ErrNotFound)
	}

	return nil
}

func (ms *MongoStore) Ping(ctx context.Context) error {
	return ms.client.Ping(ctx, nil)
}

// Close отключает клиента MongoDB
func (ms *MongoStore) Close(ctx context.Context) error {
	return ms.client.Disconnect(ctx)
}
