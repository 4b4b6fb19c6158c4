package util

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// Claims is the payload carried by every token the server issues.
// End-user tokens carry {id, phone}; dashboard tokens carry {id, name}.
type Claims struct {
	ID    string `json:"id"`
	Phone string `json:"phone,omitempty"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// TokenPair holds an access/refresh token pair for an end-user login.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func signToken(claims Claims, secret string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(expiry))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// GenerateUserToken issues a single end-user token with {id, phone} claims.
func GenerateUserToken(id, phone, secret string, expiry time.Duration) (string, error) {
	return signToken(Claims{ID: id, Phone: phone}, secret, expiry)
}

// GenerateAdminToken issues a dashboard token with {id, name} claims.
func GenerateAdminToken(id, name, secret string, expiry time.Duration) (string, error) {
	return signToken(Claims{ID: id, Name: name}, secret, expiry)
}

// GenerateUserTokenPair issues the access and refresh tokens for an end-user,
// each signed with its own secret and lifetime.
func GenerateUserTokenPair(id, phone, accessSecret, refreshSecret string, accessExpiry, refreshExpiry time.Duration) (*TokenPair, error) {
	accessToken, err := GenerateUserToken(id, phone, accessSecret, accessExpiry)
	if err != nil {
		return nil, err
	}

	refreshToken, err := GenerateUserToken(id, phone, refreshSecret, refreshExpiry)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// ValidateToken verifies signature and expiry against the given secret and
// returns the decoded claims.
func ValidateToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
