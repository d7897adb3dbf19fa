package auth

import (
	"errors"
	"time"

	"threadhub_backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// AccessClaims are the claims of the short-lived access token.
type AccessClaims struct {
	UserID string          `json:"id"`
	Role   models.UserRole `json:"role"`
	Email  string          `json:"email"`
	Status bool            `json:"status"`
	jwt.RegisteredClaims
}

// RefreshClaims are the claims of the longer-lived refresh token.
type RefreshClaims struct {
	UserID string          `json:"userId"`
	Role   models.UserRole `json:"role"`
	Email  string          `json:"email"`
	jwt.RegisteredClaims
}

// GenerateAccessToken issues a signed access token for the user.
func GenerateAccessToken(user *models.User, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		UserID: user.ID,
		Role:   user.Role,
		Email:  user.Email,
		Status: user.Status,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// GenerateRefreshToken issues a signed refresh token for the user.
func GenerateRefreshToken(user *models.User, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := RefreshClaims{
		UserID: user.ID,
		Role:   user.Role,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAccessToken verifies signature and expiry and returns the claims.
func ParseAccessToken(tokenStr, secret string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ParseRefreshToken verifies a refresh token and returns the claims. No
// renewal endpoint is exposed yet; this is the verification side of the
// refresh tokens issued and stored at login.
func ParseRefreshToken(tokenStr, secret string) (*RefreshClaims, error) {
	claims := &RefreshClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
