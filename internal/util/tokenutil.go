package util

import (
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v4"
)

// TokenValidity is how long an issued access token stays usable.
const TokenValidity = 30 * 24 * time.Hour

// AccessClaims is the payload carried by an access token.
type AccessClaims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// CreateAccessToken signs a token binding userID to an expiry 30 days out.
func CreateAccessToken(userID uint, secret string) (string, error) {
	claims := &AccessClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenValidity)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}
	return t, nil
}

// VerifyAccessToken checks the token's signature and expiry against the
// secret and returns the embedded user ID. Every failure cause (bad
// signature, malformed payload, expired, wrong algorithm) comes back as an
// error; callers treat them all as a single rejection outcome and may log
// the cause.
func VerifyAccessToken(requestToken string, secret string) (uint, error) {
	claims := &AccessClaims{}

	token, err := jwt.ParseWithClaims(requestToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, err
	}

	if !token.Valid || claims.UserID == 0 {
		return 0, fmt.Errorf("invalid token")
	}

	return claims.UserID, nil
}
