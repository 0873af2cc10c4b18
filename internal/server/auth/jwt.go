// Package auth issues and validates the user tokens presented in every DFS
// request. Tokens are HS256 JWTs whose UserID claim must match the request's
// user_id.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/tdfs/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the registered claim set plus the owning user id.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

func GenerateToken(userID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID: userID,
	})

	return token.SignedString(secretKey)
}

// GetUserIDFromToken verifies tokenString and returns its UserID claim.
// Expired tokens yield common.ErrTokenExpired; anything else that fails
// verification yields an error wrapping common.ErrInvalidToken.
func GetUserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid || claims.UserID == "" {
		return "", common.ErrInvalidToken
	}

	return claims.UserID, nil
}

// Authenticator checks (user_id, user_token) pairs.
type Authenticator struct {
	secret []byte
}

func NewAuthenticator(secretKey string) *Authenticator {
	return &Authenticator{secret: []byte(secretKey)}
}

// Authenticate returns nil when token is valid and was issued to userID.
// A valid token for another user yields common.ErrorUnauthorized.
func (a *Authenticator) Authenticate(userID, token string) error {
	if token == "" {
		return common.ErrInvalidToken
	}
	subject, err := GetUserIDFromToken(token, a.secret)
	if err != nil {
		return err
	}
	if subject != userID {
		return common.ErrorUnauthorized
	}
	return nil
}
