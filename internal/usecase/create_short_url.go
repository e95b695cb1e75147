package usecase

import (
	"context"
	"errors"
	"net/url"
	"regexp"
	"strings"

	"github.com/avc-dev/shortlink/internal/apperror"
	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/service"
	"go.uber.org/zap"
)

var customIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{3,30}$`)

// reservedCodes совпадают с путями API и не могут быть короткими кодами
var reservedCodes = map[string]struct{}{
	"api":     {},
	"health":  {},
	"ping":    {},
	"swagger": {},
}

// CreateShortURL создает короткий URL со случайным кодом.
// userID пуст для анонимных запросов.
func (u *URLUsecase) CreateShortURL(ctx context.Context, rawURL, userID string) (string, error) {
	fullURL, err := normalizeURL(rawURL)
	if err != nil {
		return "", err
	}

	code, err := u.service.CreateShortURL(ctx, fullURL, userID)
	if err != nil {
		u.logger.Error("failed to create short URL",
			zap.String("original_url", fullURL.String()),
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return "", apperror.Wrap(apperror.KindInternal, "failed to create short URL", err)
	}

	return u.buildShortURL(code)
}

// CreateCustomShortURL создает короткий URL с кодом, выбранным пользователем
func (u *URLUsecase) CreateCustomShortURL(ctx context.Context, rawURL, customID, userID string) (string, error) {
	if userID == "" {
		return "", apperror.Unauthorized(MsgCustomIDLogin)
	}

	fullURL, err := normalizeURL(rawURL)
	if err != nil {
		return "", err
	}

	code, err := validateCustomID(customID)
	if err != nil {
		return "", err
	}

	created, err := u.service.CreateCustomShortURL(ctx, fullURL, code, userID)
	if errors.Is(err, service.ErrCodeTaken) {
		return "", apperror.Wrap(apperror.KindConflict, MsgCustomIDExists, err)
	}
	if err != nil {
		u.logger.Error("failed to create custom short URL",
			zap.String("original_url", fullURL.String()),
			zap.String("code", code.String()),
			zap.Error(err),
		)
		return "", apperror.Wrap(apperror.KindInternal, "failed to create custom short URL", err)
	}

	return u.buildShortURL(created)
}

func (u *URLUsecase) buildShortURL(code model.Code) (string, error) {
	shortURL, err := url.JoinPath(u.cfg.BaseURL.String(), code.String())
	if err != nil {
		u.logger.Error("failed to build short URL",
			zap.String("base_url", u.cfg.BaseURL.String()),
			zap.String("code", code.String()),
			zap.Error(err),
		)
		return "", apperror.Wrap(apperror.KindInternal, "failed to build short URL", err)
	}
	return shortURL, nil
}

// normalizeURL очищает адрес и проверяет, что это абсолютный http(s) URL
func normalizeURL(rawURL string) (model.URL, error) {
	rawURL = strings.TrimSpace(rawURL)
	rawURL = strings.Trim(rawURL, `"'`)

	if rawURL == "" {
		return "", apperror.BadRequest(MsgURLRequired)
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil || parsedURL.Host == "" ||
		(parsedURL.Scheme != "http" && parsedURL.Scheme != "https") {
		return "", apperror.BadRequest(MsgInvalidURL)
	}

	return model.URL(rawURL), nil
}

func validateCustomID(customID string) (model.Code, error) {
	customID = strings.TrimSpace(customID)

	switch {
	case customID == "":
		return "", apperror.BadRequest(MsgCustomIDRequired)
	case !customIDPattern.MatchString(customID):
		return "", apperror.BadRequest(MsgCustomIDFormat)
	}

	if _, reserved := reservedCodes[strings.ToLower(customID)]; reserved {
		return "", apperror.BadRequest(MsgCustomIDReserved)
	}

	return model.Code(customID), nil
}
