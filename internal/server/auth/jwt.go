// Package auth issues and checks the bearer tokens that chat gateways
// present to the command webhook.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/listbot/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims identifies the gateway the token was minted for.
type Claims struct {
	jwt.RegisteredClaims
	Gateway string `json:"gateway"`
}

func GenerateToken(gateway string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
			Subject:   gateway,
		},
		Gateway: gateway,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetGatewayFromToken validates tokenString and returns the gateway name.
// Expired tokens yield common.ErrTokenExpired; every other failure yields
// common.ErrInvalidToken.
func GetGatewayFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	}

	if !token.Valid || claims.Gateway == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Gateway, nil
}
