package service

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthCookieName имя cookie с JWT
const AuthCookieName = "accessToken"

// Claims полезная нагрузка JWT
type Claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// AuthService выпускает и проверяет JWT и управляет auth cookie
type AuthService struct {
	jwtSecret []byte
	ttl       time.Duration
	secure    bool
	now       func() time.Time
}

// NewAuthService создает новый экземпляр AuthService.
// secure включает флаг Secure у cookie (production).
func NewAuthService(jwtSecret string, ttl time.Duration, secure bool) *AuthService {
	return &AuthService{
		jwtSecret: []byte(jwtSecret),
		ttl:       ttl,
		secure:    secure,
		now:       time.Now,
	}
}

// GenerateJWT создает HS256 токен для пользователя
func (a *AuthService) GenerateJWT(userID string) (string, error) {
	now := a.now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateJWT проверяет JWT токен и извлекает идентификатор пользователя
func (a *AuthService) ValidateJWT(tokenString string) (string, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (any, error) {
			return a.jwtSecret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.UserID == "" {
		return "", fmt.Errorf("%w: id not found in token", ErrInvalidToken)
	}

	return claims.UserID, nil
}

// TokenFromRequest возвращает значение auth cookie или пустую строку
func (a *AuthService) TokenFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(AuthCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// SetAuthCookie устанавливает httpOnly cookie со сроком жизни токена
func (a *AuthService) SetAuthCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     AuthCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   a.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(a.ttl.Seconds()),
	})
}

// ClearAuthCookie удаляет auth cookie
func (a *AuthService) ClearAuthCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     AuthCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   a.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
